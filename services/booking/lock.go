package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// DayLocker serializes the check-then-write sequences for one vendor's day.
// The conflict and capacity checks are separate reads from the write that
// follows them; without a lock two concurrent creates or confirms can both
// observe a free slot and both commit.
type DayLocker interface {
	// Lock acquires the lock for (vendorID, date) and returns a release
	// function. It fails if the lock cannot be acquired within its wait budget.
	Lock(vendorID, date string) (release func(), err error)
}

const (
	lockTTL      = 5 * time.Second
	lockWait     = 3 * time.Second
	lockPollStep = 50 * time.Millisecond
)

// RedisDayLocker implements DayLocker with a Redis SET NX lease. The release
// function deletes the key only when it still holds this caller's token, so an
// expired lease can never release a successor's lock.
type RedisDayLocker struct {
	Client *redis.Client
}

// NewRedisDayLocker creates a DayLocker on the given client.
func NewRedisDayLocker(client *redis.Client) *RedisDayLocker {
	return &RedisDayLocker{Client: client}
}

func lockKey(vendorID, date string) string {
	return "booking-day-lock:" + vendorID + ":" + date
}

// Lock acquires the per-vendor-per-day lease, polling until the wait budget
// runs out.
func (l *RedisDayLocker) Lock(vendorID, date string) (func(), error) {
	key := lockKey(vendorID, date)
	token := uuid.New().String()
	deadline := time.Now().Add(lockWait)

	ctx, cancel := context.WithTimeout(context.Background(), lockWait+time.Second)
	defer cancel()

	for {
		ok, err := l.Client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire day lock for %s/%s: %w", vendorID, date, err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out acquiring day lock for %s/%s", vendorID, date)
		}
		time.Sleep(lockPollStep)
	}

	release := func() {
		rctx, rcancel := context.WithTimeout(context.Background(), time.Second)
		defer rcancel()
		// Delete only if the key still carries our token.
		const script = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`
		_ = l.Client.Eval(rctx, script, []string{key}, token).Err()
	}
	return release, nil
}
