package httpserver

import (
	"io"
	"net/http"
)

// maxImageSize bounds the in-memory portion of an image upload.
const maxImageSize = 10 << 20

func (s *Server) handleGetImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	payload, err := s.images.GetOrDefault(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", payload.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(payload.Data)
}

func (s *Server) handleUpdateImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "malformed multipart request")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "image part is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if err := s.images.Update(r.Context(), id, header.Header.Get("Content-Type"), data); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
