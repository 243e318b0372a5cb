package dto

import (
	"time"

	"pricingdesk.app/server/internal/model"
)

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type ListCommentsQuery struct {
	IncludeArchived bool `form:"include_archived"`
}

type CommentResponse struct {
	ID          int64      `json:"id,string"`
	RequestID   int64      `json:"request_id,string"`
	AuthorEmail string     `json:"author_email"`
	AuthorName  string     `json:"author_name"`
	AuthorRole  model.Role `json:"author_role"`
	Content     string     `json:"content"`
	Archived    bool       `json:"archived"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		RequestID:   c.RequestID,
		AuthorEmail: c.AuthorEmail,
		AuthorName:  c.AuthorName,
		AuthorRole:  c.AuthorRole,
		Content:     c.Content,
		Archived:    c.Archived,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToCommentResponses(cs []model.Comment) []CommentResponse {
	out := make([]CommentResponse, len(cs))
	for i := range cs {
		out[i] = ToCommentResponse(&cs[i])
	}
	return out
}
