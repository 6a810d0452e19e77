package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/syncer"
)

// statusHandler returns server and sync status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"sync":    s.syncer.Status(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// syncHandler runs a manual sync and responds with the one-line summary, or the report with
// format=json. The run is not tied to the request, a dropped client doesn't interrupt it.
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	dryRun := r.URL.Query().Get("dryrun") == "1"
	rep, err := s.syncer.Run(context.WithoutCancel(r.Context()), dryRun, domain.SourceManual)

	var fetchErr *syncer.FetchError
	var parseErr *syncer.ParseError
	switch {
	case errors.Is(err, syncer.ErrRunInProgress):
		renderText(w, http.StatusConflict, err.Error())
		return
	case errors.As(err, &fetchErr), errors.As(err, &parseErr):
		lgr.Printf("[WARN] manual sync failed: %v", err)
		renderText(w, http.StatusBadGateway, err.Error())
		return
	case err != nil:
		lgr.Printf("[ERROR] manual sync failed: %v", err)
		renderText(w, http.StatusInternalServerError, err.Error())
		return
	}

	if r.URL.Query().Get("format") == "json" {
		RenderJSON(w, r, http.StatusOK, rep)
		return
	}
	renderText(w, http.StatusOK, rep.Summary())
}

// logHandler returns recent operation log lines, oldest first
func (s *Server) logHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 1 {
			RenderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = min(v, maxLogLimit)
	}

	entries, err := s.logs.Recent(r.Context(), limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to read operation log: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, entries)
}
