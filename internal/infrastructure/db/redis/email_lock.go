package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultLockTTL = 5 * time.Second

// releaseScript deletes the key only while it still holds our token, so an
// expired reservation taken over by another writer is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// EmailLocker reserves employee email addresses across replicas.
// Key format: employee:email:<email>
type EmailLocker struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewEmailLocker creates an EmailLocker wrapping the given Redis client.
// Reservations expire after ttl even if never released.
func NewEmailLocker(client *redis.Client, ttl time.Duration, log zerolog.Logger) *EmailLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &EmailLocker{client: client, ttl: ttl, log: log}
}

// Reserve takes the reservation for email. ok is false when another writer
// currently holds it.
func (l *EmailLocker) Reserve(ctx context.Context, email string) (func(), bool, error) {
	key := l.key(email)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("reserve email: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// The request context may already be cancelled.
		releaseCtx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.log.Warn().Err(err).Str("key", key).Msg("release email reservation")
		}
	}
	return release, true, nil
}

func (l *EmailLocker) key(email string) string {
	return fmt.Sprintf("employee:email:%s", email)
}
