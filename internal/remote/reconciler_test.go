package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmay/wordtrail/internal/store"
)

// memTree is an in-memory CategoryRepo.
type memTree struct {
	cats  []store.Category
	saves int
}

func (m *memTree) LoadTree(_ context.Context) ([]store.Category, error) {
	return append([]store.Category(nil), m.cats...), nil
}

func (m *memTree) SaveTree(_ context.Context, cats []store.Category) error {
	m.cats = append([]store.Category(nil), cats...)
	m.saves++
	return nil
}

// memProgress is an in-memory ProgressRepo.
type memProgress struct {
	p *store.Progress
}

func (m *memProgress) Load(_ context.Context) (*store.Progress, error) {
	if m.p == nil {
		return nil, nil
	}
	copied := *m.p
	return &copied, nil
}

func (m *memProgress) Save(_ context.Context, p *store.Progress) error {
	copied := *p
	m.p = &copied
	return nil
}

// memEvents records sync events.
type memEvents struct {
	syncs []store.SyncEventData
}

func (m *memEvents) AppendAnswer(_ context.Context, _ store.AnswerEventData) error { return nil }

func (m *memEvents) AppendLessonCompletion(_ context.Context, _ store.LessonEventData) error {
	return nil
}

func (m *memEvents) AppendSync(_ context.Context, data store.SyncEventData) error {
	m.syncs = append(m.syncs, data)
	return nil
}

func localSeed() []store.Category {
	return []store.Category{
		{CategoryID: "1", Title: "Basics", Position: 0, Progress: 20, Lessons: []store.Lesson{
			{LessonID: "1-1", Title: "Basics 1", Position: 0, Completed: true},
			{LessonID: "1-2", Title: "Basics 2", Position: 1},
		}},
	}
}

func newTestReconciler(srv *httptest.Server) (*Reconciler, *memTree, *memProgress, *memEvents) {
	tree := &memTree{cats: localSeed()}
	progress := &memProgress{p: &store.Progress{TotalLessonsCompleted: 1, TotalPoints: 80, Streak: 1}}
	events := &memEvents{}
	client := NewClient(Config{BaseURL: srv.URL, Token: "tok-123", Timeout: DefaultTimeout})
	return NewReconciler(client, tree, progress, events), tree, progress, events
}

func TestSyncOnLoginReplacesLocalWholesale(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"categories": [
				{"id": "1", "title": "Basics", "progress": 40, "lessons": [
					{"id": "1-1", "completed": true, "locked": false},
					{"id": "1-2", "completed": true, "locked": false}
				]},
				{"id": "2", "title": "Colors", "progress": 0, "lessons": [
					{"id": "2-1", "completed": false, "locked": true}
				]}
			],
			"progress": {"totalLessonsCompleted": 2, "totalPoints": 150, "streak": 3, "lastStudyDate": "2025-03-09"}
		}`))
	}))
	defer srv.Close()

	r, tree, progress, events := newTestReconciler(srv)

	cats, agg, err := r.SyncOnLogin(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, cats, 2)
	assert.Equal(t, 40, cats[0].Progress)
	assert.Equal(t, "2", cats[1].CategoryID)
	assert.Equal(t, 1, cats[1].Position)
	assert.Len(t, tree.cats, 2)

	require.NotNil(t, agg)
	assert.Equal(t, 150, agg.TotalPoints)
	assert.Equal(t, 3, agg.Streak)
	assert.Equal(t, 150, progress.p.TotalPoints)

	require.Len(t, events.syncs, 1)
	assert.Equal(t, "pull", events.syncs[0].Direction)
	assert.True(t, events.syncs[0].Success)
}

func TestSyncOnLoginFailureStaysLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r, tree, progress, events := newTestReconciler(srv)

	cats, agg, err := r.SyncOnLogin(context.Background(), "user-1")
	require.NoError(t, err, "remote failure must not surface")

	require.Len(t, cats, 1)
	assert.Equal(t, "1", cats[0].CategoryID)
	assert.Equal(t, 20, cats[0].Progress)
	assert.Equal(t, 0, tree.saves, "local tree must not be rewritten on failure")

	require.NotNil(t, agg)
	assert.Equal(t, 80, agg.TotalPoints)
	assert.Equal(t, 80, progress.p.TotalPoints)

	require.Len(t, events.syncs, 1)
	assert.False(t, events.syncs[0].Success)
	assert.NotEmpty(t, events.syncs[0].ErrorMessage)
}

func TestSyncOnLoginEmptyRemoteKeepsLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"categories": [], "progress": null}`))
	}))
	defer srv.Close()

	r, tree, progress, _ := newTestReconciler(srv)

	cats, agg, err := r.SyncOnLogin(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, cats, 1)
	assert.Equal(t, 0, tree.saves, "empty remote categories must not replace local")
	require.NotNil(t, agg)
	assert.Equal(t, 80, progress.p.TotalPoints)
}

func TestSyncOnLoginExpiredTokenSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tree := &memTree{cats: localSeed()}
	progress := &memProgress{}
	events := &memEvents{}
	client := NewClient(Config{BaseURL: srv.URL, Token: expired, Timeout: DefaultTimeout})
	r := NewReconciler(client, tree, progress, events)

	cats, _, err := r.SyncOnLogin(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, cats, 1)
	assert.Equal(t, 0, calls, "expired token should skip the network call")
	require.Len(t, events.syncs, 1)
	assert.False(t, events.syncs[0].Success)
}

func TestPushProgressSwallowsRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r, _, _, events := newTestReconciler(srv)

	require.NoError(t, r.PushProgress(context.Background()))
	require.Len(t, events.syncs, 1)
	assert.Equal(t, "push", events.syncs[0].Direction)
	assert.False(t, events.syncs[0].Success)
}

func TestPushProgressSendsTree(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	r, _, _, events := newTestReconciler(srv)

	require.NoError(t, r.PushProgress(context.Background()))
	assert.Equal(t, "/api/learning/sync", gotPath)
	require.Len(t, events.syncs, 1)
	assert.True(t, events.syncs[0].Success)
}
