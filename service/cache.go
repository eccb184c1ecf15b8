package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/rs/zerolog"

	"rehab-roi/repository"
)

func cacheKey(prefix string, input any) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return prefix + ":" + hex.EncodeToString(sum[:]), nil
}

// cached returns the memoized result for input, computing and storing it on
// a miss. Cache failures are logged and never fail the call.
func cached[T any](
	ctx context.Context,
	cache repository.CacheRepository,
	prefix string,
	input any,
	compute func() (T, error),
) (T, error) {
	logger := zerolog.Ctx(ctx)

	key, err := cacheKey(prefix, input)
	if err != nil || cache == nil {
		return compute()
	}

	if raw, ok := cache.Get(ctx, key); ok {
		var hit T
		if err := json.Unmarshal([]byte(raw), &hit); err == nil {
			logger.Debug().Str("key", key).Msg("cache hit")
			return hit, nil
		}
		logger.Warn().Str("key", key).Msg("discarding unreadable cache entry")
	}

	result, err := compute()
	if err != nil {
		return result, err
	}

	// Guardar el resultado (no crítico si falla)
	if raw, err := json.Marshal(result); err == nil {
		if err := cache.Set(ctx, key, string(raw)); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("failed to cache result")
		}
	}

	return result, nil
}
