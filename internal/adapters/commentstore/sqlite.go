package commentstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"mezcaltasting/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS comments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	post_id TEXT NOT NULL,
	author TEXT NOT NULL,
	body TEXT NOT NULL,
	image_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id);
`

// Open opens (creating if needed) the local comment database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open comment db: %w", err)
	}
	return db, nil
}

type sqliteStore struct {
	db *sql.DB
}

// New returns a CommentStore on the given database, creating the comments
// table if it does not exist. Comments are local only; the blog API never
// sees them.
func New(db *sql.DB) (domain.CommentStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init comment schema: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, author, body, image_url, created_at FROM comments WHERE post_id = ? ORDER BY created_at DESC, id DESC`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []*domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		var createdAt time.Time
		if err := rows.Scan(&c.ID, &c.Author, &c.Text, &c.ImageURL, &createdAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.CreatedAt = createdAt
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

func (s *sqliteStore) Add(ctx context.Context, postID string, c *domain.Comment) (*domain.Comment, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO comments (post_id, author, body, image_url, created_at) VALUES (?, ?, ?, ?, ?)`,
		postID, c.Author, c.Text, c.ImageURL, c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("comment insert id: %w", err)
	}
	stored := *c
	stored.ID = id
	return &stored, nil
}
