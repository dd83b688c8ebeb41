package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmay/wordtrail/internal/progression"
	"github.com/tanmay/wordtrail/internal/store"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{BaseURL: srv.URL, Token: "tok-123", Timeout: DefaultTimeout})
}

func TestFetchProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/learning/progress/user-1", r.URL.Path)
		assert.Equal(t, "tok-123", r.Header.Get("x-auth-token"))

		_, _ = w.Write([]byte(`{
			"categories": [
				{"id": "1", "title": "Basics", "icon": "book-open", "color": "#4F86C6", "progress": 20,
				 "lessons": [
					{"id": "1-1", "title": "Basics 1", "completed": true, "locked": false, "score": 80},
					{"id": "1-2", "title": "Basics 2", "completed": false, "locked": false}
				 ]}
			],
			"progress": {"totalLessonsCompleted": 1, "totalPoints": 80, "streak": 1, "lastStudyDate": "2025-03-10"}
		}`))
	}))
	defer srv.Close()

	payload, err := newTestClient(srv).FetchProgress(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, payload.Categories, 1)
	cat := payload.Categories[0]
	assert.Equal(t, "1", cat.CategoryID)
	assert.Equal(t, 20, cat.Progress)
	assert.Equal(t, 0, cat.Position)
	require.Len(t, cat.Lessons, 2)
	assert.True(t, cat.Lessons[0].Completed)
	require.NotNil(t, cat.Lessons[0].Score)
	assert.Equal(t, 80, *cat.Lessons[0].Score)
	assert.Equal(t, 1, cat.Lessons[1].Position)
	assert.Nil(t, cat.Lessons[1].Score)

	require.NotNil(t, payload.Progress)
	assert.Equal(t, 80, payload.Progress.TotalPoints)
	assert.Equal(t, "2025-03-10", payload.Progress.LastStudyDate)
}

func TestFetchProgressRejectsMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing categories", `{"progress": {}}`},
		{"category without id", `{"categories": [{"lessons": []}]}`},
		{"lesson without id", `{"categories": [{"id": "1", "lessons": [{"title": "x"}]}]}`},
		{"progress out of range", `{"categories": [{"id": "1", "progress": 150, "lessons": []}]}`},
		{"not JSON", `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv).FetchProgress(context.Background(), "user-1")
			require.Error(t, err)
		})
	}
}

func TestFetchProgressServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchProgress(context.Background(), "user-1")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestPushLessonCompletion(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/learning/complete-lesson", r.URL.Path)
		assert.Equal(t, "tok-123", r.Header.Get("x-auth-token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	completion := progression.LessonCompletion{
		CategoryID:     "1",
		LessonID:       "1-1",
		Score:          80,
		Progress:       store.Progress{TotalLessonsCompleted: 1, TotalPoints: 80, Streak: 1},
		IdempotencyKey: "key-abc",
	}
	require.NoError(t, newTestClient(srv).PushLessonCompletion(context.Background(), completion))

	assert.Equal(t, "1", got["categoryId"])
	assert.Equal(t, "1-1", got["lessonId"])
	assert.Equal(t, float64(80), got["score"])
	assert.Equal(t, "key-abc", got["idempotencyKey"])
	progressBody, ok := got["progress"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(80), progressBody["totalPoints"])
}

func TestPushCategories(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/learning/sync", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cats := []store.Category{
		{CategoryID: "1", Title: "Basics", Lessons: []store.Lesson{{LessonID: "1-1", Title: "Basics 1"}}},
	}
	require.NoError(t, newTestClient(srv).PushCategories(context.Background(), cats))

	wire, ok := got["categories"].([]any)
	require.True(t, ok)
	require.Len(t, wire, 1)
	first, ok := wire[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1", first["id"])
}

func TestFetchStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/learning/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"categoriesCompleted": 2, "totalLessonsCompleted": 10, "totalPoints": 750, "streak": 4}`))
	}))
	defer srv.Close()

	stats, err := newTestClient(srv).FetchStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.CategoriesCompleted)
	assert.Equal(t, 10, stats.TotalLessonsCompleted)
	assert.Equal(t, 750, stats.TotalPoints)
	assert.Equal(t, 4, stats.Streak)
}
