package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/snapshot/v1"
	snapshotmock "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/snapshot/v1/mock"
	publishermock "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/trade-publisher/v1/mock"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/infrastructure/postgresql/trade"
	trademock "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/infrastructure/postgresql/trade/mock"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/usecase/registry"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/logger"
)

type engineFixture struct {
	ctrl          *gomock.Controller
	engine        *Engine
	mockTrades    *trademock.MockRepository
	mockPublisher *publishermock.MockPublisher
	mockSnapshots *snapshotmock.MockStore
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)

	fixture := &engineFixture{
		ctrl:          ctrl,
		mockTrades:    trademock.NewMockRepository(ctrl),
		mockPublisher: publishermock.NewMockPublisher(ctrl),
		mockSnapshots: snapshotmock.NewMockStore(ctrl),
	}

	fixture.engine = NewEngineWithOptions(
		registry.NewRegistry(log),
		fixture.mockTrades,
		fixture.mockPublisher,
		fixture.mockSnapshots,
		log,
		&Options{SnapshotInterval: time.Hour},
	)
	return fixture
}

func (f *engineFixture) start(t *testing.T) {
	t.Helper()
	require.NoError(t, f.engine.Start(context.Background()))
}

// stop drains background goroutines so mock expectations can be
// verified deterministically.
func (f *engineFixture) stop(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.engine.Stop(ctx))
}

func placeRequest(side orderbookv1.Side, price float64, quantity int64, userID string) *orderbookv1.PlaceOrderRequest {
	return &orderbookv1.PlaceOrderRequest{
		Symbol:   "AAPL",
		Side:     side,
		Price:    decimal.NewFromFloat(price),
		Quantity: quantity,
		UserID:   userID,
	}
}

// Test 1: Lifecycle
func TestEngine_StartStop(t *testing.T) {
	fixture := newEngineFixture(t)

	fixture.start(t)
	fixture.stop(t)
}

// Test 2: Invalid requests are rejected before touching a book
func TestEngine_PlaceOrder_Invalid(t *testing.T) {
	fixture := newEngineFixture(t)
	fixture.start(t)
	defer fixture.stop(t)

	result, err := fixture.engine.PlaceOrder(context.Background(), &orderbookv1.PlaceOrderRequest{
		Side:     orderbookv1.SideBuy,
		Price:    decimal.NewFromInt(10),
		Quantity: 100,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, orderbookv1.ErrEmptySymbol)
}

// Test 3: A resting order triggers no persistence or publishing
func TestEngine_PlaceOrder_NoMatch(t *testing.T) {
	fixture := newEngineFixture(t)
	fixture.start(t)
	defer fixture.stop(t)

	result, err := fixture.engine.PlaceOrder(context.Background(), placeRequest(orderbookv1.SideBuy, 10.00, 100, "alice"))

	require.NoError(t, err)
	assert.NotEmpty(t, result.OrderID)
	assert.Equal(t, orderbookv1.StatusOpen, result.Status)
	assert.Equal(t, int64(100), result.Remaining)
	assert.Empty(t, result.ExecutedTrades)
	assert.Equal(t, int64(0), fixture.engine.TotalTrades())
}

// Test 4: A match is persisted, published and counted
func TestEngine_PlaceOrder_Match(t *testing.T) {
	fixture := newEngineFixture(t)
	fixture.start(t)

	fixture.mockTrades.EXPECT().
		StoreBatch(gomock.Any(), gomock.Len(1)).
		Return(nil)
	fixture.mockPublisher.EXPECT().
		PublishTrade(gomock.Any(), gomock.Any()).
		Return(nil)
	fixture.mockPublisher.EXPECT().
		PublishBookView(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := fixture.engine.PlaceOrder(context.Background(), placeRequest(orderbookv1.SideBuy, 10.00, 100, "alice"))
	require.NoError(t, err)

	result, err := fixture.engine.PlaceOrder(context.Background(), placeRequest(orderbookv1.SideSell, 9.50, 60, "bob"))
	require.NoError(t, err)

	require.Len(t, result.ExecutedTrades, 1)
	assert.True(t, result.ExecutedTrades[0].Price.Equal(decimal.NewFromFloat(9.50)))
	assert.Equal(t, int64(60), result.ExecutedTrades[0].Quantity)
	assert.Equal(t, orderbookv1.StatusFilled, result.Status)
	assert.Equal(t, int64(0), result.Remaining)

	fixture.stop(t)
	assert.Equal(t, int64(1), fixture.engine.TotalTrades())
}

// Test 5: Sink failures are swallowed, the submission still succeeds
func TestEngine_PlaceOrder_SinkFailure(t *testing.T) {
	fixture := newEngineFixture(t)
	fixture.start(t)

	fixture.mockTrades.EXPECT().
		StoreBatch(gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))
	fixture.mockPublisher.EXPECT().
		PublishTrade(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))
	fixture.mockPublisher.EXPECT().
		PublishBookView(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	_, err := fixture.engine.PlaceOrder(context.Background(), placeRequest(orderbookv1.SideBuy, 10.00, 50, "alice"))
	require.NoError(t, err)

	result, err := fixture.engine.PlaceOrder(context.Background(), placeRequest(orderbookv1.SideSell, 10.00, 50, "bob"))

	require.NoError(t, err)
	assert.Len(t, result.ExecutedTrades, 1)

	fixture.stop(t)
}

// Test 6: Cancelling an open order broadcasts the new book view
func TestEngine_CancelOrder(t *testing.T) {
	fixture := newEngineFixture(t)
	fixture.start(t)

	fixture.mockPublisher.EXPECT().
		PublishBookView(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := fixture.engine.PlaceOrder(context.Background(), placeRequest(orderbookv1.SideBuy, 10.00, 100, "alice"))
	require.NoError(t, err)

	assert.True(t, fixture.engine.CancelOrder(context.Background(), "AAPL", result.OrderID))
	assert.False(t, fixture.engine.CancelOrder(context.Background(), "AAPL", result.OrderID))
	assert.False(t, fixture.engine.CancelOrder(context.Background(), "MSFT", result.OrderID))

	fixture.stop(t)
}

// Test 7: Book snapshots come straight from the live book
func TestEngine_BookSnapshot(t *testing.T) {
	fixture := newEngineFixture(t)
	fixture.start(t)
	defer fixture.stop(t)

	_, ok := fixture.engine.BookSnapshot(context.Background(), "AAPL")
	assert.False(t, ok)

	_, err := fixture.engine.PlaceOrder(context.Background(), placeRequest(orderbookv1.SideBuy, 10.00, 100, "alice"))
	require.NoError(t, err)

	view, ok := fixture.engine.BookSnapshot(context.Background(), "AAPL")
	require.True(t, ok)
	assert.Equal(t, "AAPL", view.Symbol)
	assert.Len(t, view.Bids, 1)
}

// Test 8: Recent trades come from the repository
func TestEngine_RecentTrades(t *testing.T) {
	fixture := newEngineFixture(t)
	fixture.start(t)
	defer fixture.stop(t)

	stored := []*trade.Trade{
		{
			ID:       "trade1",
			Symbol:   "AAPL",
			Price:    decimal.NewFromFloat(9.50),
			Quantity: 60,
		},
	}
	fixture.mockTrades.EXPECT().
		ListBySymbol(gomock.Any(), "AAPL", 50).
		Return(stored, nil)

	trades, err := fixture.engine.RecentTrades(context.Background(), "AAPL", 50)

	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "trade1", trades[0].ID)
	assert.True(t, trades[0].Price.Equal(decimal.NewFromFloat(9.50)))
}

// Test 9: Repository failures surface to the caller
func TestEngine_RecentTrades_Error(t *testing.T) {
	fixture := newEngineFixture(t)
	fixture.start(t)
	defer fixture.stop(t)

	fixture.mockTrades.EXPECT().
		ListBySymbol(gomock.Any(), "AAPL", 50).
		Return(nil, errors.New("db down"))

	trades, err := fixture.engine.RecentTrades(context.Background(), "AAPL", 50)

	assert.Error(t, err)
	assert.Nil(t, trades)
}

// Test 10: The snapshot job caches views for every known symbol
func TestEngine_SnapshotJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)

	mockTrades := trademock.NewMockRepository(ctrl)
	mockPublisher := publishermock.NewMockPublisher(ctrl)
	mockSnapshots := snapshotmock.NewMockStore(ctrl)

	eng := NewEngineWithOptions(
		registry.NewRegistry(log),
		mockTrades,
		mockPublisher,
		mockSnapshots,
		log,
		&Options{SnapshotInterval: 20 * time.Millisecond},
	)

	stored := make(chan string, 64)
	mockSnapshots.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, view *snapshotv1.BookView) error {
			select {
			case stored <- view.Symbol:
			default:
			}
			return nil
		}).
		AnyTimes()

	require.NoError(t, eng.Start(context.Background()))

	_, err = eng.PlaceOrder(context.Background(), placeRequest(orderbookv1.SideBuy, 10.00, 100, "alice"))
	require.NoError(t, err)

	select {
	case symbol := <-stored:
		assert.Equal(t, "AAPL", symbol)
	case <-time.After(5 * time.Second):
		t.Fatal("snapshot job never stored a view")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, eng.Stop(ctx))
}
