package trade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/logger"
	mockLogger "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/logger/mock"
	mockPg "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/postgresql/mock"
)

func testTrade(id string, now time.Time) *Trade {
	return &Trade{
		ID:          id,
		Symbol:      "AAPL",
		BuyOrderID:  "buy-" + id,
		SellOrderID: "sell-" + id,
		Price:       decimal.NewFromFloat(10.00),
		Quantity:    50,
		Timestamp:   now,
		BuyerID:     "alice",
		SellerID:    "bob",
	}
}

func TestTrade_Store(t *testing.T) {
	ctx := context.Background()
	query := `INSERT INTO trades (id, symbol, buy_order_id, sell_order_id, price, quantity, timestamp, buyer_id, seller_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc *Trade)
		testData *Trade
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc *Trade) {
				mockpg.EXPECT().
					Exec(ctx, query,
						tc.ID,
						tc.Symbol,
						tc.BuyOrderID,
						tc.SellOrderID,
						tc.Price,
						tc.Quantity,
						tc.Timestamp,
						tc.BuyerID,
						tc.SellerID,
					).Return(pgconn.CommandTag{}, nil)

				mockLogger.EXPECT().
					Info("Inserted trade", logger.Field{
						Key:   "commandTag",
						Value: "",
					})
			},
			testData: testTrade("1", now),
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc *Trade) {
				mockpg.EXPECT().
					Exec(ctx, query,
						tc.ID,
						tc.Symbol,
						tc.BuyOrderID,
						tc.SellOrderID,
						tc.Price,
						tc.Quantity,
						tc.Timestamp,
						tc.BuyerID,
						tc.SellerID,
					).Return(pgconn.CommandTag{}, errors.New("error"))
			},
			testData: testTrade("1", now),
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, log, tc.testData)

			err := repo.Store(ctx, tc.testData)
			tc.assertFn(t, err)
		})
	}
}

func TestTrade_StoreBatch(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc []*Trade)
		testData []*Trade
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc []*Trade) {
				mockpg.EXPECT().
					CopyFrom(ctx,
						pgx.Identifier{"trades"},
						[]string{"id", "symbol", "buy_order_id", "sell_order_id", "price", "quantity", "timestamp", "buyer_id", "seller_id"},
						gomock.Any(),
					).Return(int64(2), nil)

				mockLogger.EXPECT().
					Info("Inserted batch of trades", logger.Field{
						Key:   "copyCount",
						Value: int64(2),
					})
			},
			testData: []*Trade{testTrade("1", now), testTrade("2", now)},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc []*Trade) {
				mockpg.EXPECT().
					CopyFrom(ctx,
						pgx.Identifier{"trades"},
						[]string{"id", "symbol", "buy_order_id", "sell_order_id", "price", "quantity", "timestamp", "buyer_id", "seller_id"},
						gomock.Any(),
					).Return(int64(0), errors.New("error"))
			},
			testData: []*Trade{testTrade("1", now)},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, log, tc.testData)

			err := repo.StoreBatch(ctx, tc.testData)
			tc.assertFn(t, err)
		})
	}
}

func TestTrade_ListBySymbol(t *testing.T) {
	ctx := context.Background()
	query := `SELECT id, symbol, buy_order_id, sell_order_id, price, quantity, timestamp, buyer_id, seller_id FROM trades WHERE symbol = $1 ORDER BY timestamp DESC LIMIT $2`
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface)
		assertFn func(t *testing.T, trades []*Trade, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface) {
				mockpg.EXPECT().
					Query(ctx, query, "AAPL", 50).
					Return(mockRows, nil)

				gomock.InOrder(
					mockRows.EXPECT().Next().Return(true),
					mockRows.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
					mockRows.EXPECT().Next().Return(false),
				)
				mockRows.EXPECT().Err().Return(nil)
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, trades []*Trade, err error) {
				assert.NoError(t, err)
				assert.Len(t, trades, 1)
			},
		},
		{
			name: "query error",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface) {
				mockpg.EXPECT().
					Query(ctx, query, "AAPL", 50).
					Return(nil, errors.New("error"))
			},
			assertFn: func(t *testing.T, trades []*Trade, err error) {
				assert.Error(t, err)
				assert.Nil(t, trades)
			},
		},
		{
			name: "scan error",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface) {
				mockpg.EXPECT().
					Query(ctx, query, "AAPL", 50).
					Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("error"))
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, trades []*Trade, err error) {
				assert.Error(t, err)
				assert.Nil(t, trades)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			rows := mockPg.NewMockRowsInterface(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, rows)

			trades, err := repo.ListBySymbol(ctx, "AAPL", 50)
			tc.assertFn(t, trades, err)
		})
	}
}
