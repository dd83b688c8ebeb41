package remote

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/tanmay/wordtrail/internal/store"
)

// Reconciler mirrors progress between the local store and the remote
// service. Local data is authoritative while offline; a successful
// pull overwrites local state wholesale. Remote failures never
// surface: every path degrades to "stay local".
type Reconciler struct {
	mu         sync.Mutex
	client     *Client
	categories store.CategoryRepo
	progress   store.ProgressRepo
	events     store.EventRepo
}

// NewReconciler creates a Reconciler. The event repo may be nil, in
// which case sync attempts are not logged.
func NewReconciler(client *Client, categories store.CategoryRepo, progress store.ProgressRepo, events store.EventRepo) *Reconciler {
	return &Reconciler{
		client:     client,
		categories: categories,
		progress:   progress,
		events:     events,
	}
}

// SyncOnLogin pulls the user's remote progress. Non-empty remote
// categories replace the local tree wholesale, and a remote aggregate
// replaces the local one. On any remote failure the existing local
// state is returned unchanged; only a local storage failure is an
// error.
func (r *Reconciler) SyncOnLogin(ctx context.Context, userID string) ([]store.Category, *store.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, err := r.pull(ctx, userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: sync pull failed, staying local: %v\n", err)
		return r.localState(ctx)
	}

	if len(payload.Categories) > 0 {
		if err := r.categories.SaveTree(ctx, payload.Categories); err != nil {
			return nil, nil, fmt.Errorf("replace category tree: %w", err)
		}
	}
	if payload.Progress != nil {
		if err := r.progress.Save(ctx, payload.Progress); err != nil {
			return nil, nil, fmt.Errorf("replace progress: %w", err)
		}
	}

	return r.localState(ctx)
}

// PushProgress mirrors the local category tree to the server,
// fire-and-forget. Remote failures are logged and swallowed.
func (r *Reconciler) PushProgress(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cats, err := r.categories.LoadTree(ctx)
	if err != nil {
		return fmt.Errorf("load category tree: %w", err)
	}
	if len(cats) == 0 {
		return nil
	}

	pushErr := r.push(ctx, cats)
	if pushErr != nil {
		fmt.Fprintf(os.Stderr, "warning: sync push failed: %v\n", pushErr)
	}
	return nil
}

// pull fetches remote progress and records the attempt.
func (r *Reconciler) pull(ctx context.Context, userID string) (*ProgressPayload, error) {
	const endpoint = "/api/learning/progress"

	if !r.client.Usable() {
		err := fmt.Errorf("auth token missing or expired")
		r.recordSync(ctx, "pull", endpoint, err)
		return nil, err
	}

	payload, err := r.client.FetchProgress(ctx, userID)
	r.recordSync(ctx, "pull", endpoint, err)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// push mirrors the tree and records the attempt.
func (r *Reconciler) push(ctx context.Context, cats []store.Category) error {
	const endpoint = "/api/learning/sync"

	if !r.client.Usable() {
		err := fmt.Errorf("auth token missing or expired")
		r.recordSync(ctx, "push", endpoint, err)
		return err
	}

	err := r.client.PushCategories(ctx, cats)
	r.recordSync(ctx, "push", endpoint, err)
	return err
}

func (r *Reconciler) localState(ctx context.Context) ([]store.Category, *store.Progress, error) {
	cats, err := r.categories.LoadTree(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load category tree: %w", err)
	}
	agg, err := r.progress.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load progress: %w", err)
	}
	return cats, agg, nil
}

// recordSync appends a sync event, best-effort.
func (r *Reconciler) recordSync(ctx context.Context, direction, endpoint string, syncErr error) {
	if r.events == nil {
		return
	}
	data := store.SyncEventData{
		Direction: direction,
		Endpoint:  endpoint,
		Success:   syncErr == nil,
	}
	if syncErr != nil {
		data.ErrorMessage = syncErr.Error()
	}
	if err := r.events.AppendSync(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log sync event: %v\n", err)
	}
}
