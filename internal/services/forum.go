package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"mezcaltasting/internal/domain"
)

// anonymousAuthor is stored when a comment arrives without an author name.
const anonymousAuthor = "Anónimo"

type forumService struct {
	blog     domain.BlogFetcher
	comments domain.CommentStore
}

// NewForumService combines the external blog feed with the local comment store.
func NewForumService(blog domain.BlogFetcher, comments domain.CommentStore) domain.ForumService {
	return &forumService{blog: blog, comments: comments}
}

func (s *forumService) ListPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	posts, err := s.blog.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *forumService) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	post, err := s.blog.GetPost(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

func (s *forumService) ListComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

func (s *forumService) AddComment(ctx context.Context, postID string, c *domain.Comment) (*domain.Comment, error) {
	if strings.TrimSpace(postID) == "" {
		return nil, fmt.Errorf("%w: post id is required", domain.ErrInvalidInput)
	}
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)
	}
	author := strings.TrimSpace(c.Author)
	if author == "" {
		author = anonymousAuthor
	}
	imageURL := strings.TrimSpace(c.ImageURL)
	if imageURL != "" {
		u, err := url.Parse(imageURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, fmt.Errorf("%w: image link is not a valid URL", domain.ErrInvalidInput)
		}
	}

	comment := &domain.Comment{
		Author:    author,
		Text:      text,
		ImageURL:  imageURL,
		CreatedAt: time.Now(),
	}
	return s.comments.Add(ctx, postID, comment)
}
