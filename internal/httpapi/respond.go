package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/TemirB/grubdash/internal/domain"
)

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, v any) {
	writeJSON(w, status, dataEnvelope{Data: v})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Status: status, Message: msg})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

// decodeData reads a {"data": {...}} body of at most limit bytes into T. A
// missing body or data member leaves T zero so that field checks report what
// is missing.
func decodeData[T any](w http.ResponseWriter, r *http.Request, limit int64) (T, error) {
	var body struct {
		Data T `json:"data"`
	}
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(&body)
	if err == nil || errors.Is(err, io.EOF) {
		return body.Data, nil
	}

	var zero T
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return zero, domain.Invalidf("Request body must not exceed %d bytes", tooLarge.Limit)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return zero, domain.Invalidf("Request body must be a JSON object")
		}
		return zero, domain.Invalidf("Field %s must be of type %s", typeErr.Field, jsonType(typeErr.Type.Kind().String()))
	}
	return zero, domain.Invalidf("Request body must be valid JSON: %v", err)
}

func jsonType(kind string) string {
	switch kind {
	case "float64", "int":
		return "number"
	case "slice":
		return "array"
	case "struct", "map":
		return "object"
	default:
		return kind
	}
}
