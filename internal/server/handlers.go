package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/balustrade/pkg/errors"
	"github.com/matzehuels/balustrade/pkg/fraction"
	"github.com/matzehuels/balustrade/pkg/pipeline"
)

// maxBodyBytes caps request bodies; a solve request is a few dozen bytes.
const maxBodyBytes = 1 << 16

// =============================================================================
// Payloads
// =============================================================================

type solveResponse struct {
	*pipeline.Response
	Candidates *pipeline.Candidates `json:"candidates,omitempty"`
}

type parseResult struct {
	Input string  `json:"input"`
	Value float64 `json:"value"`
	Form  string  `json:"form"`
}

type formatResult struct {
	Value float64 `json:"value"`
	Unit  int     `json:"unit"`
	Text  string  `json:"text"`
}

type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"requestId,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Request
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	req.MinSpan = s.minSpan

	resp, err := s.runner.Solve(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := solveResponse{Response: resp}
	if all, _ := strconv.ParseBool(r.URL.Query().Get("all")); all {
		cands, err := s.runner.Candidates(r.Context(), req)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		out.Candidates = &cands
	}

	status := http.StatusOK
	if !resp.Success {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, out)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	texts := r.URL.Query()["text"]
	if len(texts) == 0 {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "missing text query parameter"))
		return
	}

	out := make([]parseResult, 0, len(texts))
	for _, text := range texts {
		v, err := fraction.Parse(text)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		out = append(out, parseResult{Input: text, Value: v, Form: fraction.Classify(text)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := q.Get("value")
	if raw == "" {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "missing value query parameter"))
		return
	}
	v, err := fraction.Parse(raw)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	unit := fraction.DefaultUnit
	if u := q.Get("unit"); u != "" {
		unit, err = strconv.Atoi(u)
		if err != nil || unit <= 0 {
			s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "unit must be a positive integer, got %q", u))
			return
		}
	}
	writeJSON(w, http.StatusOK, formatResult{Value: v, Unit: unit, Text: fraction.FormatUnit(v, unit)})
}

// =============================================================================
// Helpers
// =============================================================================

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNoSolution):
		return http.StatusUnprocessableEntity
	case err == context.Canceled || err == context.DeadlineExceeded:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", RequestIDFromContext(r.Context()))
	}
	writeError(w, r, status, code, errors.UserMessage(err))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorBody{
		Error:     errorDetail{Code: code, Message: message},
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
