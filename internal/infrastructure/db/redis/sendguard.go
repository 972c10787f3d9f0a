package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// guardTTL bounds how long a stuck pipeline can block further sends for the
// same employee (e.g. after a crash between Acquire and Release).
const guardTTL = 5 * time.Minute

// SendGuard serialises offer letter dispatch per employee using a Redis
// SET NX lock. Key format: offerletter:sending:<employee_id>
type SendGuard struct {
	client *redis.Client
}

// NewSendGuard creates a SendGuard wrapping the given Redis client.
func NewSendGuard(client *redis.Client) *SendGuard {
	return &SendGuard{client: client}
}

// Acquire attempts to take the per-employee lock. It returns false when a
// send for this employee is already in flight.
func (g *SendGuard) Acquire(ctx context.Context, employeeID int64) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(employeeID), "1", guardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("send guard acquire: %w", err)
	}
	return ok, nil
}

// Release frees the lock once the pipeline has finished, whatever the outcome.
func (g *SendGuard) Release(ctx context.Context, employeeID int64) error {
	return g.client.Del(ctx, g.key(employeeID)).Err()
}

func (g *SendGuard) key(employeeID int64) string {
	return fmt.Sprintf("offerletter:sending:%d", employeeID)
}
