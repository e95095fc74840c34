package httpserver

import (
	"github.com/go-playground/validator/v10"

	"github.com/blackmichael/blog-service/internal/domain"
)

var validate = validator.New()

type postCreateRequest struct {
	Title string   `json:"title" validate:"required,max=200"`
	Text  string   `json:"text" validate:"required,max=50000"`
	Tags  []string `json:"tags" validate:"max=20,dive,required,max=30"`
}

type postUpdateRequest struct {
	ID    int64    `json:"id" validate:"required,gt=0"`
	Title string   `json:"title" validate:"required,max=200"`
	Text  string   `json:"text" validate:"required,max=50000"`
	Tags  []string `json:"tags" validate:"max=20,dive,required,max=30"`
}

type commentCreateRequest struct {
	Text string `json:"text" validate:"required,max=10000"`
}

type commentUpdateRequest struct {
	ID     int64  `json:"id" validate:"required,gt=0"`
	Text   string `json:"text" validate:"required,max=10000"`
	PostID int64  `json:"postId" validate:"required,gt=0"`
}

type postResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Text          string   `json:"text"`
	Tags          []string `json:"tags"`
	LikesCount    int      `json:"likesCount"`
	CommentsCount int      `json:"commentsCount"`
}

type postsPageResponse struct {
	Posts    []postResponse `json:"posts"`
	HasPrev  bool           `json:"hasPrev"`
	HasNext  bool           `json:"hasNext"`
	LastPage int            `json:"lastPage"`
}

type commentResponse struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"postId"`
	Text   string `json:"text"`
}

func toPostResponse(p domain.Post) postResponse {
	return postResponse{
		ID:            p.ID,
		Title:         p.Title,
		Text:          p.Text,
		Tags:          p.Tags,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
	}
}

func toPostsPageResponse(page domain.Page) postsPageResponse {
	posts := make([]postResponse, len(page.Posts))
	for i, p := range page.Posts {
		posts[i] = toPostResponse(p)
	}
	return postsPageResponse{
		Posts:    posts,
		HasPrev:  page.HasPrev(),
		HasNext:  page.HasNext(),
		LastPage: page.LastPage,
	}
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{ID: c.ID, PostID: c.PostID, Text: c.Text}
}
