package customdict

import (
	"context"
	"sort"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis set that holds learned words.
const DefaultKey = "dictcorrector:learned"

// CustomDict stores words learned during correction passes in a Redis set.
type CustomDict struct {
	client redis.UniversalClient
	key    string
}

// New creates a CustomDict on the given client. An empty key means DefaultKey.
func New(client redis.UniversalClient, key string) *CustomDict {
	if key == "" {
		key = DefaultKey
	}
	return &CustomDict{client: client, key: key}
}

// Add inserts a word into the set.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.SAdd(ctx, cd.key, word).Err()
}

// Remove deletes a word from the set.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, cd.key, word).Err()
}

// All returns every stored word, sorted.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	words, err := cd.client.SMembers(ctx, cd.key).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(words)
	return words, nil
}

func (cd *CustomDict) Ping(ctx context.Context) error {
	return cd.client.Ping(ctx).Err()
}

func (cd *CustomDict) Close() error { return cd.client.Close() }
