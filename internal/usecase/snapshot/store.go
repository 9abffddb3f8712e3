package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	snapshotv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/snapshot/v1"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/errors"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/logger"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/redis"
)

// Store caches the latest book view per symbol in Redis so read-only
// clients can be served without touching a book. It is a display
// cache, not durable storage.
type Store struct {
	logger      logger.Interface
	redisclient redis.Client
}

var _ snapshotv1.Store = (*Store)(nil)

// NewStore creates a new book view cache backed by the given Redis
// client.
func NewStore(redisclient redis.Client, logger logger.Interface) *Store {
	return &Store{
		logger:      logger,
		redisclient: redisclient,
	}
}

// Store caches the view under its symbol's key.
func (s *Store) Store(ctx context.Context, view *snapshotv1.BookView) error {
	buf, err := json.Marshal(view)
	if err != nil {
		return errors.NewTracer("book_view_marshal_error").Wrap(err)
	}

	if err := s.redisclient.Set(ctx, key(view.Symbol), buf, 0); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "symbol",
			Value: view.Symbol,
		}, logger.Field{
			Key:   "action",
			Value: "store book view",
		})
		return errors.NewTracer("book_view_store_error").Wrap(err)
	}

	return nil
}

// Load returns the cached view for a symbol, or nil if none exists.
func (s *Store) Load(ctx context.Context, symbol string) (*snapshotv1.BookView, error) {
	data, err := s.redisclient.Get(ctx, key(symbol))
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "symbol",
			Value: symbol,
		}, logger.Field{
			Key:   "action",
			Value: "load book view",
		})
		return nil, errors.NewTracer("book_view_load_error").Wrap(err)
	}

	if data == "" {
		return nil, nil
	}

	var view snapshotv1.BookView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil, errors.NewTracer("book_view_unmarshal_error").Wrap(err)
	}

	return &view, nil
}

func key(symbol string) string {
	return fmt.Sprintf("orderbook:%s", symbol)
}
