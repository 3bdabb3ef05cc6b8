package commentstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mezcaltasting/internal/domain"
)

func newMockStore(t *testing.T) (domain.CommentStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS comments").
		WillReturnResult(sqlmock.NewResult(0, 0))
	store, err := New(db)
	require.NoError(t, err)
	return store, mock
}

func TestListByPost(t *testing.T) {
	store, mock := newMockStore(t)

	newer := time.Date(2023, time.November, 5, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-48 * time.Hour)
	rows := sqlmock.NewRows([]string{"id", "author", "body", "image_url", "created_at"}).
		AddRow(7, "Luis", "Excelente humo", "", newer).
		AddRow(3, "Anónimo", "¿Dónde lo compro?", "https://example.com/foto.jpg", older)

	mock.ExpectQuery("SELECT id, author, body, image_url, created_at FROM comments").
		WithArgs("post-1").
		WillReturnRows(rows)

	comments, err := store.ListByPost(context.Background(), "post-1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, int64(7), comments[0].ID)
	assert.Equal(t, "Excelente humo", comments[0].Text)
	assert.Equal(t, "https://example.com/foto.jpg", comments[1].ImageURL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByPost_Empty(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, author, body, image_url, created_at FROM comments").
		WithArgs("post-lonely").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author", "body", "image_url", "created_at"}))

	comments, err := store.ListByPost(context.Background(), "post-lonely")
	require.NoError(t, err)
	require.NotNil(t, comments, "no comments is an empty list, not nil")
	assert.Empty(t, comments)
}

func TestAdd(t *testing.T) {
	store, mock := newMockStore(t)

	createdAt := time.Date(2023, time.November, 5, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO comments").
		WithArgs("post-1", "Luis", "Excelente humo", "", createdAt).
		WillReturnResult(sqlmock.NewResult(42, 1))

	stored, err := store.Add(context.Background(), "post-1", &domain.Comment{
		Author:    "Luis",
		Text:      "Excelente humo",
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), stored.ID)
	assert.Equal(t, "Luis", stored.Author)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd_InsertError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO comments").
		WillReturnError(errors.New("disk full"))

	_, err := store.Add(context.Background(), "post-1", &domain.Comment{
		Author:    "Luis",
		Text:      "hola",
		CreatedAt: time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert comment")
}
