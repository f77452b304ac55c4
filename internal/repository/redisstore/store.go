package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "stylematch:"

func key(parts ...string) string {
	k := keyPrefix
	for i, p := range parts {
		if i > 0 {
			k += ":"
		}
		k += p
	}
	return k
}

// getJSON decodes the value at key into out, reporting false on a missing key.
func getJSON(ctx context.Context, rdb *redis.Client, k string, out interface{}) (bool, error) {
	raw, err := rdb.Get(ctx, k).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", k, err)
	}
	return true, nil
}

// setJSON overwrites key with the encoded document. SET is atomic per key.
func setJSON(ctx context.Context, rdb *redis.Client, k string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, k, payload, 0).Err()
}
