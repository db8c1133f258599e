package auth

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// rotate must check, remove and add in one step so that two refreshes
// racing on the same old token cannot both win.
const rotateScript = `
if redis.call("SREM", KEYS[1], ARGV[1]) == 1 then
  redis.call("SADD", KEYS[1], ARGV[2])
  return 1
end
return 0
`

var rotateLua = redis.NewScript(rotateScript)

// RedisLedger keeps the live refresh-token set in a redis set, letting
// several processes share one ledger. Entries still have no TTL of their
// own; an expired token fails signature verification and gets revoked on
// its next use.
type RedisLedger struct {
	client *redis.Client
	key    string
}

// NewRedisLedger wraps an existing client. prefix namespaces the set key;
// pass "" for the default.
func NewRedisLedger(client *redis.Client, prefix string) *RedisLedger {
	if prefix == "" {
		prefix = "melodia"
	}
	return &RedisLedger{
		client: client,
		key:    prefix + ":refresh_tokens",
	}
}

func (l *RedisLedger) Add(ctx context.Context, token string) error {
	return l.client.SAdd(ctx, l.key, token).Err()
}

func (l *RedisLedger) Revoke(ctx context.Context, token string) error {
	return l.client.SRem(ctx, l.key, token).Err()
}

func (l *RedisLedger) Contains(ctx context.Context, token string) (bool, error) {
	return l.client.SIsMember(ctx, l.key, token).Result()
}

func (l *RedisLedger) Rotate(ctx context.Context, oldToken, newToken string) (bool, error) {
	res, err := rotateLua.Run(ctx, l.client, []string{l.key}, oldToken, newToken).Int64()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
