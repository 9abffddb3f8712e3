package tradepublisher

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/snapshot/v1"
	tradepublisherv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/trade-publisher/v1"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/config"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/errors"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/logger"
)

// Publisher publishes trade events and book views to Kafka. Messages
// are keyed by symbol so all events for one instrument land on the
// same partition in order.
type Publisher struct {
	tradeWriter *kafka.Writer
	bookWriter  *kafka.Writer
	logger      logger.Interface
}

var _ tradepublisherv1.Publisher = (*Publisher)(nil)

// NewPublisher creates a new Kafka publisher for trade and book view
// events.
func NewPublisher(cfg config.KafkaConfig, logger logger.Interface) *Publisher {
	tradeWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.TradesTopic,
	})
	bookWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.BooksTopic,
	})

	return &Publisher{
		tradeWriter: tradeWriter,
		bookWriter:  bookWriter,
		logger:      logger,
	}
}

// PublishTrade publishes a single execution event.
func (p *Publisher) PublishTrade(ctx context.Context, trade orderbookv1.Trade) error {
	msg := kafka.Message{
		Key:   []byte(trade.Symbol),
		Value: tradepublisherv1.ToBytes(tradepublisherv1.CreateFromTrade(trade)),
	}

	if err := p.tradeWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "tradeID", Value: trade.ID},
			logger.Field{Key: "symbol", Value: trade.Symbol},
		)
		return errors.NewTracer("failed to publish trade event").Wrap(err)
	}
	return nil
}

// PublishBookView publishes a book snapshot.
func (p *Publisher) PublishBookView(ctx context.Context, view *snapshotv1.BookView) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return errors.NewTracer("failed to marshal book view").Wrap(err)
	}

	msg := kafka.Message{
		Key:   []byte(view.Symbol),
		Value: payload,
	}

	if err := p.bookWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "symbol", Value: view.Symbol},
		)
		return errors.NewTracer("failed to publish book view").Wrap(err)
	}
	return nil
}

// Close closes both Kafka writers.
func (p *Publisher) Close() error {
	if err := p.tradeWriter.Close(); err != nil {
		return err
	}
	return p.bookWriter.Close()
}
