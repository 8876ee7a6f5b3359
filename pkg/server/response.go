package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// Response is the JSON envelope for every API reply
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	// Stale is set when the data came from an expired cache entry
	Stale bool `json:"stale,omitempty"`
}

// badRequest marks an error caused by the caller's query
type badRequest struct {
	err error
}

func (e badRequest) Error() string { return e.err.Error() }
func (e badRequest) Unwrap() error { return e.err }

func writeJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, message string, data interface{}, stale bool) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data, Stale: stale})
}

// statusFor maps an error onto the status code and client message
func statusFor(err error) (int, string) {
	var br badRequest
	switch {
	case errors.As(err, &br):
		return http.StatusBadRequest, br.Error()
	case errors.Is(err, timetable.ErrNotFound):
		return http.StatusNotFound, "timetable not found"
	default:
		return http.StatusBadGateway, "could not fetch the timetable"
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code, message := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}
	writeJSON(w, code, Response{Success: false, Message: message})
}
