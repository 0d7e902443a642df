package dto

import "time"

type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

func (r CreatePostRequest) Validate() error {
	return GetValidator().Struct(r)
}

type CreateReplyRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

func (r CreateReplyRequest) Validate() error {
	return GetValidator().Struct(r)
}

type Post struct {
	ID         string    `json:"id" validate:"required"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Likes      int       `json:"likes"`
	ReplyCount int       `json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type PostListResponse struct {
	Posts []Post `json:"posts" validate:"dive"`
}

type Reply struct {
	ID         string    `json:"id" validate:"required"`
	PostID     string    `json:"post_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReplyListResponse struct {
	Replies []Reply `json:"replies" validate:"dive"`
}

type LikeResponse struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}
