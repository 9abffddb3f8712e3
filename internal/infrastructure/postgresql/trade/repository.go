package trade

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/errors"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/logger"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/postgresql"
)

type repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

// NewRepository creates a new trade repository.
func NewRepository(db postgresql.PostgreSQLClient, logger logger.Interface) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// Store stores a trade.
func (r *repository) Store(ctx context.Context, trade *Trade) error {
	query := `INSERT INTO trades (id, symbol, buy_order_id, sell_order_id, price, quantity, timestamp, buyer_id, seller_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	cmd, err := r.db.Exec(ctx, query,
		trade.ID,
		trade.Symbol,
		trade.BuyOrderID,
		trade.SellOrderID,
		trade.Price,
		trade.Quantity,
		trade.Timestamp,
		trade.BuyerID,
		trade.SellerID,
	)
	if err != nil {
		return errors.TracerFromError(err)
	}

	r.logger.Info("Inserted trade", logger.Field{
		Key:   "commandTag",
		Value: cmd.String(),
	})

	return nil
}

// StoreBatch stores a batch of trades.
func (r *repository) StoreBatch(ctx context.Context, trades []*Trade) error {
	copyCount, err := r.db.CopyFrom(ctx, pgx.Identifier{"trades"}, []string{
		"id",
		"symbol",
		"buy_order_id",
		"sell_order_id",
		"price",
		"quantity",
		"timestamp",
		"buyer_id",
		"seller_id",
	}, pgx.CopyFromSlice(len(trades), func(i int) ([]any, error) {
		trade := trades[i]
		return []any{
			trade.ID,
			trade.Symbol,
			trade.BuyOrderID,
			trade.SellOrderID,
			trade.Price,
			trade.Quantity,
			trade.Timestamp,
			trade.BuyerID,
			trade.SellerID,
		}, nil
	}))

	if err != nil {
		return errors.TracerFromError(err)
	}

	r.logger.Info("Inserted batch of trades", logger.Field{
		Key:   "copyCount",
		Value: copyCount,
	})

	return nil
}

// ListBySymbol lists the most recent trades for a symbol.
func (r *repository) ListBySymbol(ctx context.Context, symbol string, limit int) ([]*Trade, error) {
	query := `SELECT id, symbol, buy_order_id, sell_order_id, price, quantity, timestamp, buyer_id, seller_id FROM trades WHERE symbol = $1 ORDER BY timestamp DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, symbol, limit)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	trades := []*Trade{}
	for rows.Next() {
		trade := &Trade{}
		err := rows.Scan(
			&trade.ID,
			&trade.Symbol,
			&trade.BuyOrderID,
			&trade.SellOrderID,
			&trade.Price,
			&trade.Quantity,
			&trade.Timestamp,
			&trade.BuyerID,
			&trade.SellerID,
		)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	return trades, nil
}
