package dto

import (
	"time"

	"socialku_backend/internals/features/feed/phrase"
	"socialku_backend/internals/features/social/posts/model"
)

// ============================
// Response DTO
// ============================
type PostDTO struct {
	PostID        string    `json:"post_id"`
	PostUserID    string    `json:"post_user_id"`
	PostContent   string    `json:"post_content"`
	PostImageURL  *string   `json:"post_image_url"`
	PostLat       *float64  `json:"post_lat,omitempty"`
	PostLon       *float64  `json:"post_lon,omitempty"`
	PostCreatedAt time.Time `json:"post_created_at"`

	LikeCount    int64    `json:"like_count"`
	DislikeCount int64    `json:"dislike_count"`
	TopPhrases   []string `json:"top_phrases,omitempty"`
}

// ============================
// Create Request DTO
// ============================
type CreatePostRequest struct {
	PostContent  string   `json:"post_content" validate:"required,min=1,max=5000"`
	PostImageURL *string  `json:"post_image_url" validate:"omitempty,url"`
	PostLat      *float64 `json:"post_lat" validate:"omitempty,latitude"`
	PostLon      *float64 `json:"post_lon" validate:"omitempty,longitude"`
}

// ============================
// Converter
// ============================
func ToPostDTO(m model.PostModel, likeCount, dislikeCount int64) PostDTO {
	return PostDTO{
		PostID:        m.PostID.String(),
		PostUserID:    m.PostUserID.String(),
		PostContent:   m.PostContent,
		PostImageURL:  m.PostImageURL,
		PostLat:       m.PostLat,
		PostLon:       m.PostLon,
		PostCreatedAt: m.PostCreatedAt,
		LikeCount:     likeCount,
		DislikeCount:  dislikeCount,
		TopPhrases:    phrase.TopPhraseStrings(m.PostContent, phrase.DefaultStopWords, 5),
	}
}
