package domain

import "time"

// SettingTriggerToken holds the bearer token for manual sync triggers
const SettingTriggerToken = "trigger_token"

// Setting represents a key-value configuration setting
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// LogEntry is a single line of the operation log
type LogEntry struct {
	ID   int64     `json:"id"`
	Time time.Time `json:"time"`
	Line string    `json:"line"`
}
