package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type lease struct {
	token     string
	expiresAt time.Time
}

// MemoryLockService is a single-process LockService. Expired leases are
// treated as free, like keys evicted by Redis.
type MemoryLockService struct {
	mu     sync.Mutex
	leases map[string]lease
	now    func() time.Time
}

func NewMemoryLockService() *MemoryLockService {
	return &MemoryLockService{
		leases: make(map[string]lease),
		now:    time.Now,
	}
}

func (s *MemoryLockService) TryAcquire(_ context.Context, key string, ttl time.Duration) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if current, ok := s.leases[key]; ok && now.Before(current.expiresAt) {
		return "", false, nil
	}

	token := uuid.NewString()
	s.leases[key] = lease{token: token, expiresAt: now.Add(ttl)}

	return token, true, nil
}

func (s *MemoryLockService) Release(_ context.Context, key, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.leases[key]; ok && current.token == token {
		delete(s.leases, key)
	}

	return nil
}
