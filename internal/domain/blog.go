package domain

import (
	"context"
	"time"
)

// BlogPost is a post from the external blog feeding the forum. The blog is
// an opaque, read-only content source.
// swagger:model BlogPost
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	URL       string    `json:"url"`
	Author    string    `json:"author"`
	Published time.Time `json:"published"`
	Updated   time.Time `json:"updated"`
}

// BlogFetcher reads posts from the external blog API.
type BlogFetcher interface {
	ListPosts(ctx context.Context) ([]*BlogPost, error)
	GetPost(ctx context.Context, id string) (*BlogPost, error)
}

// Comment is a locally stored forum comment. Comments are never sent to the
// blog API; they live in on-device storage keyed by post ID.
// swagger:model Comment
type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
	ImageURL  string    `json:"imageUrl,omitempty"`
}

// CommentStore persists forum comments locally, keyed by post ID.
type CommentStore interface {
	ListByPost(ctx context.Context, postID string) ([]*Comment, error)
	Add(ctx context.Context, postID string, c *Comment) (*Comment, error)
}

// ForumService combines the external blog feed with local comments.
type ForumService interface {
	ListPosts(ctx context.Context) ([]*BlogPost, error)
	GetPost(ctx context.Context, id string) (*BlogPost, error)
	ListComments(ctx context.Context, postID string) ([]*Comment, error)
	AddComment(ctx context.Context, postID string, c *Comment) (*Comment, error)
}
