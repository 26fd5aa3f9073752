package scheduler

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// TaskFunc does the work behind one JobKind
type TaskFunc func(ctx context.Context) error

// Tasks maps job kinds to their task and is the JobExecutor the server uses
type Tasks struct {
	mu    sync.RWMutex
	funcs map[JobKind]TaskFunc
}

// NewTasks creates an empty registry
func NewTasks() *Tasks {
	return &Tasks{funcs: make(map[JobKind]TaskFunc)}
}

// Register binds fn to kind, replacing any earlier binding
func (t *Tasks) Register(kind JobKind, fn TaskFunc) *Tasks {
	t.mu.Lock()
	t.funcs[kind] = fn
	t.mu.Unlock()
	return t
}

// Kinds lists the registered kinds
func (t *Tasks) Kinds() []JobKind {
	t.mu.RLock()
	defer t.mu.RUnlock()
	kinds := make([]JobKind, 0, len(t.funcs))
	for k := range t.funcs {
		kinds = append(kinds, k)
	}
	return kinds
}

// Execute implements JobExecutor
func (t *Tasks) Execute(ctx context.Context, job *Job) error {
	t.mu.RLock()
	fn, ok := t.funcs[job.Kind]
	t.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJobKind, job.Kind)
	}
	return fn(ctx)
}

// CartPurger deletes carts past their TTL
type CartPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// PurgeExpiredCarts adapts a CartPurger into a task
func PurgeExpiredCarts(carts CartPurger, logger *zap.Logger) TaskFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context) error {
		removed, err := carts.PurgeExpired(ctx)
		if err != nil {
			return fmt.Errorf("purge expired carts: %w", err)
		}
		logger.Info("Expired carts purged", zap.Int64("removed", removed))
		return nil
	}
}
