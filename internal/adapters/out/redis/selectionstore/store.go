// Package selectionstore keeps delivery-form sessions in Redis so several
// storefront instances can serve the same form.
//
// Each session is one JSON-encoded selection.Snapshot under
// "<prefix><formId>". Keys carry the session TTL, refreshed on every write,
// so Redis drops abandoned forms on its own; DeleteExpired is a sweep for
// keys written without a TTL.
package selectionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/selection"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix = "storefront:delivery-form:"

	paramName        = "formId"
	maxUpdateRetries = 10
	scanBatch        = 100
)

var ErrUpdateContention = errors.New("delivery form changed concurrently too many times")

type Store struct {
	client    redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

var _ ports.SelectionStore = (*Store)(nil)

// NewStore wraps an existing client. A zero ttl stores keys without expiry.
func NewStore(client redis.UniversalClient, keyPrefix string, ttl time.Duration) *Store {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &Store{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (st *Store) Add(ctx context.Context, s *selection.Selection) error {
	if s == nil {
		return errs.NewValueIsRequiredError("selection")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	payload, err := encode(s)
	if err != nil {
		return err
	}
	if err := st.client.Set(ctx, st.key(s.ID()), payload, st.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save delivery form: %w", err)
	}
	return nil
}

func (st *Store) Get(ctx context.Context, id kernel.UUID) (*selection.Selection, error) {
	payload, err := st.client.Get(ctx, st.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.NewObjectNotFoundError(paramName, id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load delivery form: %w", err)
	}
	return decode(payload)
}

// Update uses WATCH on the session key and retries when another writer got
// there first.
func (st *Store) Update(
	ctx context.Context,
	id kernel.UUID,
	fn func(s *selection.Selection) error,
) (*selection.Selection, error) {
	key := st.key(id)
	var result *selection.Selection

	txf := func(tx *redis.Tx) error {
		payload, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return errs.NewObjectNotFoundError(paramName, id.String())
		}
		if err != nil {
			return fmt.Errorf("failed to load delivery form: %w", err)
		}

		s, err := decode(payload)
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}

		updated, err := encode(s)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, st.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = s.Clone()
		return nil
	}

	for range maxUpdateRetries {
		err := st.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	return nil, ErrUpdateContention
}

func (st *Store) Delete(ctx context.Context, id kernel.UUID) error {
	if err := st.client.Del(ctx, st.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete delivery form: %w", err)
	}
	return nil
}

func (st *Store) DeleteExpired(ctx context.Context, now time.Time, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}

	removed := 0
	iter := st.client.Scan(ctx, 0, st.keyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		payload, err := st.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("failed to load delivery form: %w", err)
		}

		s, err := decode(payload)
		if err != nil || s.IsExpired(now, ttl) {
			n, err := st.client.Del(ctx, key).Result()
			if err != nil {
				return removed, fmt.Errorf("failed to delete delivery form: %w", err)
			}
			removed += int(n)
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("failed to scan delivery forms: %w", err)
	}

	return removed, nil
}

func (st *Store) key(id kernel.UUID) string {
	return st.keyPrefix + id.String()
}

func encode(s *selection.Selection) ([]byte, error) {
	payload, err := json.Marshal(s.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to encode delivery form: %w", err)
	}
	return payload, nil
}

func decode(payload []byte) (*selection.Selection, error) {
	var snap selection.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode delivery form: %w", err)
	}
	return selection.Restore(snap)
}
