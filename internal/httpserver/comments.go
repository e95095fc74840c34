package httpserver

import (
	"fmt"
	"net/http"
)

func (s *Server) handleGetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	comments, err := s.comments.GetComments(r.Context(), postID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := make([]commentResponse, len(comments))
	for i, c := range comments {
		resp[i] = toCommentResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetComment(w http.ResponseWriter, r *http.Request) {
	postID, commentID, err := commentPathIDs(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	c, err := s.comments.GetComment(r.Context(), postID, commentID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(c))
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	var req commentCreateRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	c, err := s.comments.AddComment(r.Context(), postID, req.Text)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(c))
}

func (s *Server) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	postID, commentID, err := commentPathIDs(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	var req commentUpdateRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}
	if req.PostID != postID {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			fmt.Sprintf("post id in path (%d) does not match body (%d)", postID, req.PostID))
		return
	}
	if req.ID != commentID {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			fmt.Sprintf("comment id in path (%d) does not match body (%d)", commentID, req.ID))
		return
	}

	c, err := s.comments.UpdateComment(r.Context(), postID, commentID, req.Text)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(c))
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	postID, commentID, err := commentPathIDs(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	if err := s.comments.DeleteComment(r.Context(), postID, commentID); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func commentPathIDs(r *http.Request) (postID, commentID int64, err error) {
	postID, err = pathID(r, "postID")
	if err != nil {
		return 0, 0, err
	}
	commentID, err = pathID(r, "commentID")
	if err != nil {
		return 0, 0, err
	}
	return postID, commentID, nil
}
