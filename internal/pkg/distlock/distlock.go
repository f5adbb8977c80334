// Package distlock guards periodic jobs so only one process runs them at a
// time. Redis is preferred; PostgreSQL advisory locks are the fallback, and
// a process-local lock is used when neither backend is configured.
package distlock

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrNotAcquired is returned by Run when another holder owns the lock.
	ErrNotAcquired = errors.New("lock held by another process")
	// ErrLeaseLost means a lease expired or was taken over before renewal.
	ErrLeaseLost = errors.New("lock lease lost")
)

// DistLock is the interface for distributed locking.
// Implementations must be safe for use from a single goroutine;
// concurrent use across goroutines requires separate lock instances.
type DistLock interface {
	// Acquire tries to acquire the lock. Returns true if successful.
	Acquire(ctx context.Context) (bool, error)
	// Release releases the lock if we still own it.
	Release(ctx context.Context) error
}

// Lease is implemented by locks that expire unless renewed. Run keeps a
// Lease alive for as long as the guarded function runs.
type Lease interface {
	TTL() time.Duration
	Extend(ctx context.Context, ttl time.Duration) error
}

// NewLock creates a distributed lock using the best available backend.
func NewLock(redisClient *redis.Client, db *sql.DB, key string, ttl time.Duration) DistLock {
	switch {
	case redisClient != nil:
		return NewRedisLock(redisClient, key, ttl)
	case db != nil:
		return NewPGAdvisoryLock(db, key)
	default:
		return NewLocalLock(key)
	}
}

// Run acquires l, runs fn, and releases l. It returns ErrNotAcquired without
// calling fn when the lock is taken.
func Run(ctx context.Context, l DistLock, fn func(ctx context.Context) error) error {
	ok, err := l.Acquire(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAcquired
	}
	defer func() {
		// Release on a fresh context so a cancelled run still frees the lock.
		relCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.Release(relCtx); err != nil {
			log.Printf("[distlock] release %T: %v", l, err)
		}
	}()

	lease, ok := l.(Lease)
	if !ok || lease.TTL() <= 0 {
		return fn(ctx)
	}

	runCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		renew(runCtx, lease)
	}()
	err = fn(runCtx)
	cancel()
	wg.Wait()
	return err
}

// renew extends lease at half its TTL until ctx ends or the lease is lost.
func renew(ctx context.Context, lease Lease) {
	ticker := time.NewTicker(lease.TTL() / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := lease.Extend(ctx, lease.TTL()); err != nil {
				if ctx.Err() == nil {
					log.Printf("[distlock] lease renewal stopped: %v", err)
				}
				return
			}
		}
	}
}

// PGAdvisoryLock implements DistLock using session-scoped PostgreSQL
// advisory locks. Acquire pins one pooled connection and Release unlocks on
// that same session; the lock drops with the connection.
type PGAdvisoryLock struct {
	db     *sql.DB
	lockID int64

	mu   sync.Mutex
	conn *sql.Conn
}

// NewPGAdvisoryLock creates a PG advisory lock with a deterministic lock ID
// derived from the given key string.
func NewPGAdvisoryLock(db *sql.DB, key string) *PGAdvisoryLock {
	h := fnv.New64a()
	h.Write([]byte(key))
	return &PGAdvisoryLock{
		db:     db,
		lockID: int64(h.Sum64()),
	}
}

// Acquire tries pg_try_advisory_lock, which does not block. The connection
// is kept only when the lock was granted.
func (l *PGAdvisoryLock) Acquire(ctx context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		return false, nil
	}

	conn, err := l.db.Conn(ctx)
	if err != nil {
		return false, fmt.Errorf("advisory lock %d: conn: %w", l.lockID, err)
	}
	var acquired bool
	err = conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", l.lockID).Scan(&acquired)
	if err != nil {
		discard(conn)
		return false, fmt.Errorf("advisory lock %d: %w", l.lockID, err)
	}
	if !acquired {
		conn.Close()
		return false, nil
	}
	l.conn = conn
	return true, nil
}

// Release unlocks on the session that took the lock and returns the
// connection to the pool. If the unlock fails the connection is discarded
// so the server drops the lock with the session.
func (l *PGAdvisoryLock) Release(ctx context.Context) error {
	l.mu.Lock()
	conn := l.conn
	l.conn = nil
	l.mu.Unlock()
	if conn == nil {
		return nil
	}

	var released bool
	err := conn.QueryRowContext(ctx, "SELECT pg_advisory_unlock($1)", l.lockID).Scan(&released)
	if err == nil && !released {
		err = ErrLeaseLost
	}
	if err != nil {
		discard(conn)
		return fmt.Errorf("advisory unlock %d: %w", l.lockID, err)
	}
	return conn.Close()
}

// discard closes conn without returning it to the pool.
func discard(conn *sql.Conn) {
	_ = conn.Raw(func(interface{}) error { return driver.ErrBadConn })
	conn.Close()
}

var localLocks sync.Map // key -> *sync.Mutex

// LocalLock is a process-wide lock keyed by name.
type LocalLock struct {
	mu *sync.Mutex
}

// NewLocalLock returns the process-local lock for key.
func NewLocalLock(key string) *LocalLock {
	mu, _ := localLocks.LoadOrStore(key, &sync.Mutex{})
	return &LocalLock{mu: mu.(*sync.Mutex)}
}

func (l *LocalLock) Acquire(context.Context) (bool, error) { return l.mu.TryLock(), nil }

func (l *LocalLock) Release(context.Context) error {
	l.mu.Unlock()
	return nil
}
