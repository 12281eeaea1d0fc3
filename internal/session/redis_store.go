package session

import (
	"context"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const redisKeyPrefix = "admin_session:"

// RedisStore expira sessões pelo TTL da chave; nenhum job de limpeza é
// necessário.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, adminID uint) (string, error) {
	token := uuid.NewString()

	err := s.client.Set(
		ctx,
		redisKeyPrefix+token,
		strconv.FormatUint(uint64(adminID), 10),
		DefaultTTL,
	).Err()
	if err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (uint, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+token).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}

	return uint(id), nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}

// Compile-time check
var _ Store = (*RedisStore)(nil)
