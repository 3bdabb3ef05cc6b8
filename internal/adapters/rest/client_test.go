package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mezcaltasting/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingBackend fakes the REST backend and records every request in order.
type recordingBackend struct {
	t        *testing.T
	handlers map[string]http.HandlerFunc
	calls    []string
}

func newRecordingBackend(t *testing.T) *recordingBackend {
	return &recordingBackend{t: t, handlers: map[string]http.HandlerFunc{}}
}

func (b *recordingBackend) handle(method, path string, h http.HandlerFunc) {
	b.handlers[method+" "+path] = h
}

func (b *recordingBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	b.calls = append(b.calls, key)
	if h, ok := b.handlers[key]; ok {
		h(w, r)
		return
	}
	http.NotFound(w, r)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestExperienceUpdate_FallbackShapes(t *testing.T) {
	capacity := 9
	patch := domain.ExperiencePatch{Capacity: &capacity}
	updated := &domain.Experience{ID: 5, Name: "Cata", Capacity: 9, Active: true}

	t.Run("primary shape wins", func(t *testing.T) {
		backend := newRecordingBackend(t)
		backend.handle(http.MethodPatch, "/diaCata/update/5", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, updated)
		})
		srv := httptest.NewServer(backend)
		defer srv.Close()

		repo := NewExperienceRepository(NewClient(srv.URL, srv.Client(), testLogger()))
		got, err := repo.Update(context.Background(), 5, patch)
		require.NoError(t, err)
		assert.Equal(t, 9, got.Capacity)
		assert.Equal(t, []string{"PATCH /diaCata/update/5"}, backend.calls)
	})

	t.Run("404 advances through every shape in order", func(t *testing.T) {
		backend := newRecordingBackend(t)
		backend.handle(http.MethodPatch, "/diaCata/update", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				ID       int  `json:"id"`
				Capacity *int `json:"capacidad"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 5, body.ID, "last shape carries the id in the body")
			require.NotNil(t, body.Capacity)
			assert.Equal(t, 9, *body.Capacity)
			writeJSON(t, w, updated)
		})
		srv := httptest.NewServer(backend)
		defer srv.Close()

		repo := NewExperienceRepository(NewClient(srv.URL, srv.Client(), testLogger()))
		got, err := repo.Update(context.Background(), 5, patch)
		require.NoError(t, err)
		assert.Equal(t, 5, got.ID)
		assert.Equal(t, []string{
			"PATCH /diaCata/update/5",
			"PATCH /diaCata/5",
			"PATCH /diaCata/update",
		}, backend.calls)
	})

	t.Run("non-404 failure is terminal, no fallback", func(t *testing.T) {
		backend := newRecordingBackend(t)
		backend.handle(http.MethodPatch, "/diaCata/update/5", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		srv := httptest.NewServer(backend)
		defer srv.Close()

		repo := NewExperienceRepository(NewClient(srv.URL, srv.Client(), testLogger()))
		_, err := repo.Update(context.Background(), 5, patch)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
		assert.Equal(t, []string{"PATCH /diaCata/update/5"}, backend.calls, "server errors never trigger the next shape")
	})

	t.Run("all shapes 404 reports not found", func(t *testing.T) {
		backend := newRecordingBackend(t)
		srv := httptest.NewServer(backend)
		defer srv.Close()

		repo := NewExperienceRepository(NewClient(srv.URL, srv.Client(), testLogger()))
		_, err := repo.Update(context.Background(), 5, patch)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Len(t, backend.calls, 3)
	})
}

func TestExperienceDelete_FallbackShapes(t *testing.T) {
	t.Run("plain-text success on second shape", func(t *testing.T) {
		backend := newRecordingBackend(t)
		backend.handle(http.MethodDelete, "/diaCata/remove/7", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("Experiencia eliminada"))
		})
		srv := httptest.NewServer(backend)
		defer srv.Close()

		repo := NewExperienceRepository(NewClient(srv.URL, srv.Client(), testLogger()))
		require.NoError(t, repo.Delete(context.Background(), 7))
		assert.Equal(t, []string{
			"DELETE /diaCata/delete/7",
			"DELETE /diaCata/remove/7",
		}, backend.calls)
	})

	t.Run("all shapes 404", func(t *testing.T) {
		backend := newRecordingBackend(t)
		srv := httptest.NewServer(backend)
		defer srv.Close()

		repo := NewExperienceRepository(NewClient(srv.URL, srv.Client(), testLogger()))
		err := repo.Delete(context.Background(), 7)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Len(t, backend.calls, 3)
	})
}

func TestClient_GetMapsStatuses(t *testing.T) {
	backend := newRecordingBackend(t)
	backend.handle(http.MethodGet, "/diaCata/findOne/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, &domain.Experience{ID: 1, Name: "Cata nocturna"})
	})
	backend.handle(http.MethodGet, "/diaCata/findOne/3", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(backend)
	defer srv.Close()

	repo := NewExperienceRepository(NewClient(srv.URL, srv.Client(), testLogger()))

	exp, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Cata nocturna", exp.Name)

	_, err = repo.GetByID(context.Background(), 2)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByID(context.Background(), 3)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Status)
	assert.Contains(t, statusErr.Error(), "503")
}

func TestExperienceList_NilBecomesEmpty(t *testing.T) {
	backend := newRecordingBackend(t)
	backend.handle(http.MethodGet, "/diaCata/findAll", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("null"))
	})
	srv := httptest.NewServer(backend)
	defer srv.Close()

	repo := NewExperienceRepository(NewClient(srv.URL, srv.Client(), testLogger()))
	out, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out)
}
