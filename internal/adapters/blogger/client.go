package blogger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mezcaltasting/internal/domain"
)

const defaultBaseURL = "https://www.googleapis.com/blogger/v3"

type bloggerHTTPFetcher struct {
	client  *http.Client
	baseURL string
	blogID  string
	apiKey  string
}

// NewHTTPFetcher returns a fetcher that reads posts from the Blogger v3 API.
// The blog is treated as an opaque, read-only content source.
func NewHTTPFetcher(client *http.Client, blogID, apiKey string) domain.BlogFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &bloggerHTTPFetcher{
		client:  client,
		baseURL: defaultBaseURL,
		blogID:  blogID,
		apiKey:  apiKey,
	}
}

// post is the wire form of a Blogger post.
type post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	URL       string    `json:"url"`
	Published time.Time `json:"published"`
	Updated   time.Time `json:"updated"`
	Author    struct {
		DisplayName string `json:"displayName"`
	} `json:"author"`
}

func (p *post) toDomain() *domain.BlogPost {
	return &domain.BlogPost{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		URL:       p.URL,
		Author:    p.Author.DisplayName,
		Published: p.Published,
		Updated:   p.Updated,
	}
}

func (f *bloggerHTTPFetcher) fetch(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch from blogger: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("blogger api returned status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode blogger response: %w", err)
	}
	return nil
}

func (f *bloggerHTTPFetcher) ListPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	q := url.Values{}
	q.Set("key", f.apiKey)
	q.Set("fetchBodies", "true")
	rawURL := fmt.Sprintf("%s/blogs/%s/posts?%s", f.baseURL, f.blogID, q.Encode())

	var data struct {
		Items []post `json:"items"`
	}
	if err := f.fetch(ctx, rawURL, &data); err != nil {
		return nil, err
	}
	posts := make([]*domain.BlogPost, 0, len(data.Items))
	for i := range data.Items {
		posts = append(posts, data.Items[i].toDomain())
	}
	return posts, nil
}

func (f *bloggerHTTPFetcher) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	q := url.Values{}
	q.Set("key", f.apiKey)
	rawURL := fmt.Sprintf("%s/blogs/%s/posts/%s?%s", f.baseURL, f.blogID, url.PathEscape(id), q.Encode())

	var p post
	if err := f.fetch(ctx, rawURL, &p); err != nil {
		return nil, err
	}
	return p.toDomain(), nil
}
