// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server hosts diffscope's diff computation and streaming session lifecycle over HTTP for
// a browser-based viewer. It owns no diffing logic; every handler either calls
// diffscope.ComputeDiffWithOptions directly or looks up a *streaming.Session and calls one of its
// methods.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"diffscope.dev/diffscope"
	"diffscope.dev/diffscope/streaming"
)

// Server is the HTTP host for the diff API. The zero value is not usable; use New.
type Server struct {
	router *chi.Mux

	mu       sync.Mutex
	sessions map[uuid.UUID]*streaming.Session
}

// New builds a Server with its routes registered.
func New() *Server {
	s := &Server{
		sessions: make(map[uuid.UUID]*streaming.Session),
	}
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/diffs", s.handleComputeDiff)
	r.Post("/diffs/stream", s.handleStartSession)
	r.Post("/diffs/stream/{sessionID}/old", s.handleAddOldChunk)
	r.Post("/diffs/stream/{sessionID}/new", s.handleAddNewChunk)
	r.Post("/diffs/stream/{sessionID}/finalize", s.handleFinalize)
	r.Get("/diffs/stream/{sessionID}", s.handleIntermediateResult)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

type computeDiffRequest struct {
	OldText string             `json:"oldText"`
	NewText string             `json:"newText"`
	Options *diffscope.Options `json:"options,omitempty"`
}

func (s *Server) handleComputeDiff(w http.ResponseWriter, r *http.Request) {
	var req computeDiffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	opts := diffscope.DefaultOptions()
	if req.Options != nil {
		opts = *req.Options
	}
	result, err := diffscope.ComputeDiffWithOptions(req.OldText, req.NewText, opts)
	var decorationErr *diffscope.DecorationError
	if err != nil && !errors.As(err, &decorationErr) {
		writeError(w, statusForError(err), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var opts diffscope.Options
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	} else {
		opts = diffscope.DefaultOptions()
	}
	sess := streaming.New(opts)

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, struct {
		SessionID uuid.UUID `json:"sessionId"`
	}{sess.ID()})
}

func (s *Server) session(r *http.Request) (*streaming.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) removeSession(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Server) handleAddOldChunk(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := sess.AddOldChunk(body); err != nil {
		s.handleSessionError(w, sess, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddNewChunk(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if r.URL.Query().Get("finalize") == "true" {
		if err := sess.StartNewFile(); err != nil {
			s.handleSessionError(w, sess, err)
			return
		}
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := sess.AddNewChunk(body); err != nil {
		s.handleSessionError(w, sess, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	result, err := sess.Finalize()
	if err != nil {
		s.handleSessionError(w, sess, err)
		return
	}
	s.removeSession(sess.ID())
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleIntermediateResult(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, sess.IntermediateResult())
}

// handleSessionError writes the error response and, for errors that leave the session unusable
// (InvalidState, BufferOverflow), removes it from the registry.
func (s *Server) handleSessionError(w http.ResponseWriter, sess *streaming.Session, err error) {
	s.removeSession(sess.ID())
	writeError(w, statusForError(err), err)
}

func statusForError(err error) int {
	var invalidState *diffscope.InvalidStateError
	var syntaxErr *diffscope.SyntaxError
	var algoErr *diffscope.AlgorithmError
	switch {
	case errors.Is(err, diffscope.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, diffscope.ErrInvalidEncoding):
		return http.StatusUnprocessableEntity
	case errors.Is(err, diffscope.ErrBufferOverflow):
		return http.StatusUnprocessableEntity
	case errors.As(err, &invalidState):
		return http.StatusConflict
	case errors.As(err, &syntaxErr), errors.As(err, &algoErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{err.Error()})
}
