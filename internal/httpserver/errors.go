package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blackmichael/blog-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, errType, message string) {
	writeJSON(w, status, map[string]string{
		"name":    errType,
		"message": message,
	})
}

// writeServiceError maps a domain error to its HTTP shape. Not-found
// sentinels become 404, input-validation sentinels 400, anything else a
// generic 500 with the detail kept in the log rather than the response.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrPostNotFound), errors.Is(err, domain.ErrCommentNotFound):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())
	case errors.Is(err, domain.ErrImageRequired), errors.Is(err, domain.ErrInvalidImageType):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "InternalError", "internal error")
	}
}
