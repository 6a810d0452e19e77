package syncer

import (
	"errors"
	"fmt"
)

// ErrRunInProgress returned when another sync run holds the run lock
var ErrRunInProgress = errors.New("sync run already in progress")

// FetchError is a run-fatal failure to retrieve the feed document
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError is a run-fatal failure to read items from the feed document
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse feed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
