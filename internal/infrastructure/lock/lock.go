package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const lockTimeout = 5 * time.Second

// UserLockManager serializes balance mutations per user within the
// process. The database transaction still guards cross-process writes.
type UserLockManager struct {
	locks sync.Map // map[int64]*sync.Mutex
}

// NewUserLockManager creates a new lock manager
func NewUserLockManager() *UserLockManager {
	return &UserLockManager{}
}

// Lock acquires the lock for the given userID, honoring the context and a
// fixed timeout.
func (m *UserLockManager) Lock(ctx context.Context, userID int64) error {
	mu := m.getOrCreateMutex(userID)

	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	select {
	case <-lockChan:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to acquire lock for user %d: %w", userID, ctx.Err())
	case <-time.After(lockTimeout):
		return fmt.Errorf("failed to acquire lock for user %d: timeout", userID)
	}
}

// Unlock releases the lock for the given userID
func (m *UserLockManager) Unlock(userID int64) {
	muInterface, ok := m.locks.Load(userID)
	if !ok {
		return
	}
	muInterface.(*sync.Mutex).Unlock()
}

func (m *UserLockManager) getOrCreateMutex(userID int64) *sync.Mutex {
	if mu, ok := m.locks.Load(userID); ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(userID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
