// Package server exposes session operations as a small JSON HTTP API for an
// external presentation layer.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"platemap-core/assign"
	"platemap-core/index"
	"platemap-core/plate"
	"platemap-core/samplesheet"
	"platemap/internal/jsonutil"
	"platemap/internal/output"
	"platemap/internal/session"
	"platemap/pkg/api"
)

// maxBody bounds request bodies; every body is a tiny JSON object.
const maxBody = 4 << 10

type Server struct {
	store *session.Store
	log   *slog.Logger
	now   func() time.Time
	mux   *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(l *slog.Logger) Option { return func(s *Server) { s.log = l } }
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

func New(store *session.Store, opts ...Option) *Server {
	s := &Server{
		store: store,
		log:   slog.New(slog.DiscardHandler),
		now:   time.Now,
		mux:   http.NewServeMux(),
	}
	for _, o := range opts {
		o(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /sessions", s.handleCreate)
	s.mux.HandleFunc("GET /sessions/{id}", s.handleGet)
	s.mux.HandleFunc("DELETE /sessions/{id}", s.handleDelete)
	s.mux.HandleFunc("POST /sessions/{id}/click", s.handleWell((*session.Session).ClickWell))
	s.mux.HandleFunc("POST /sessions/{id}/exclude", s.handleWell((*session.Session).ExcludeWell))
	s.mux.HandleFunc("POST /sessions/{id}/reset", s.handleReset)
	s.mux.HandleFunc("PUT /sessions/{id}/params", s.handleParams)
	s.mux.HandleFunc("GET /sessions/{id}/output/{kind}", s.handleOutput)
	s.mux.HandleFunc("GET /sessions/{id}/export/{kind}", s.handleExport)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.log.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "dur", time.Since(start))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	id := s.store.Create()
	var view api.SessionV1
	err := s.store.Do(id, func(ss *session.Session) error {
		view = Snapshot(ss)
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.reply(w, http.StatusCreated, view)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(ss *session.Session) error { return nil })
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(r.PathValue("id")) {
		s.fail(w, session.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWell(op func(*session.Session, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req api.WellRequestV1
		if err := jsonutil.DecodeStrict(http.MaxBytesReader(w, r.Body, maxBody), &req); err != nil {
			s.badRequest(w, err)
			return
		}
		s.withSession(w, r, func(ss *session.Session) error { return op(ss, req.Well) })
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(ss *session.Session) error {
		ss.ResetSelection()
		return nil
	})
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	var req api.ParamsV1
	if err := jsonutil.DecodeStrict(http.MaxBytesReader(w, r.Body, maxBody), &req); err != nil {
		s.badRequest(w, err)
		return
	}
	s.withSession(w, r, func(ss *session.Session) error {
		if err := ss.SetAssignmentParams(req.I7Col, req.I5Row, req.Prefix); err != nil {
			return err
		}
		ss.SetI5ReverseComplement(req.I5RevComp)
		return nil
	})
}

func (s *Server) handleOutput(w http.ResponseWriter, r *http.Request) {
	kind, err := samplesheet.ParseKind(r.PathValue("kind"))
	if err != nil {
		s.badRequest(w, err)
		return
	}
	var recs []assign.Record
	err = s.store.Do(r.PathValue("id"), func(ss *session.Session) error {
		var e error
		recs, e = ss.BuildOutput(kind)
		return e
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.reply(w, http.StatusOK, api.SampleSheetV1{Kind: string(kind), Samples: output.ToAPISamples(recs)})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	kind, err := samplesheet.ParseKind(r.PathValue("kind"))
	if err != nil {
		s.badRequest(w, err)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = output.FormatCSV
	}
	if !output.ValidFormat(format) {
		s.badRequest(w, fmt.Errorf("unknown format %q", format))
		return
	}
	var (
		name string
		data []byte
	)
	err = s.store.Do(r.PathValue("id"), func(ss *session.Session) error {
		var e error
		name, data, e = ss.Export(format, kind, s.now())
		return e
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", output.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	s.log.Info("exported", "session", r.PathValue("id"), "file", name, "bytes", len(data))
}

// withSession runs fn and replies with the resulting session view.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	var view api.SessionV1
	err := s.store.Do(r.PathValue("id"), func(ss *session.Session) error {
		if err := fn(ss); err != nil {
			return err
		}
		view = Snapshot(ss)
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.reply(w, http.StatusOK, view)
}

func (s *Server) reply(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := jsonutil.Encode(w, v); err != nil {
		s.log.Warn("write response", "err", err)
	}
}

func (s *Server) badRequest(w http.ResponseWriter, err error) {
	s.reply(w, http.StatusBadRequest, api.ErrorV1{Error: err.Error()})
}

// fail maps domain errors to status codes.
func (s *Server) fail(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, plate.ErrInvalidWell), errors.Is(err, assign.ErrInvalidParams):
		code = http.StatusBadRequest
	case errors.Is(err, index.ErrIndexNotFound):
		code = http.StatusUnprocessableEntity
	}
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", "err", err)
	}
	s.reply(w, code, api.ErrorV1{Error: err.Error()})
}
