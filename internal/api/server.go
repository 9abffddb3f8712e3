package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/app/engine"
	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/config"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/httplib/healthcheck"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/logger"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/util"
)

// defaultTradesLimit bounds a recent trades query when the client does
// not pass one.
const defaultTradesLimit = 50

// Server exposes the matching engine over HTTP.
type Server struct {
	engine *engine.Engine
	logger logger.Interface
	http   *http.Server
}

// NewServer builds the HTTP server, wiring routes, the health check and
// request id propagation.
func NewServer(eng *engine.Engine, cfg config.HTTPConfig, log logger.Interface) *Server {
	s := &Server{
		engine: eng,
		logger: log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/orders", s.placeOrder)
	mux.HandleFunc("DELETE /api/orders/{symbol}/{orderID}", s.cancelOrder)
	mux.HandleFunc("GET /api/orderbook/{symbol}", s.bookSnapshot)
	mux.HandleFunc("GET /api/trades/{symbol}", s.recentTrades)

	var handler http.Handler = mux
	handler = s.withRequestID(handler)
	handler = healthcheck.HealthCheck{}.Handler(handler)

	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// ListenAndServe starts serving and blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("HTTP server listening", logger.Field{
		Key:   "addr",
		Value: s.http.Addr,
	})
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server via the underlying http.Server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler returns the fully wrapped root handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) placeOrder(w http.ResponseWriter, r *http.Request) {
	var payload PlaceOrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.engine.PlaceOrder(r.Context(), payload.ToRequest())
	if err != nil {
		if isValidationError(err) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.ErrorContext(r.Context(), err, logger.Field{
			Key:   "action",
			Value: "place_order",
		})
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.writeJSON(w, http.StatusCreated, orderResponseFromResult(result))
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	orderID := r.PathValue("orderID")

	cancelled := s.engine.CancelOrder(r.Context(), symbol, orderID)
	if !cancelled {
		s.writeError(w, http.StatusNotFound, "order not found or not active")
		return
	}

	s.writeJSON(w, http.StatusOK, &CancelResponse{
		OrderID:   orderID,
		Symbol:    symbol,
		Cancelled: true,
	})
}

func (s *Server) bookSnapshot(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")

	view, ok := s.engine.BookSnapshot(r.Context(), symbol)
	if !ok {
		s.writeError(w, http.StatusNotFound, "no order book for symbol")
		return
	}

	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) recentTrades(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")

	limit := defaultTradesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	trades, err := s.engine.RecentTrades(r.Context(), symbol, limit)
	if err != nil {
		s.logger.ErrorContext(r.Context(), err, logger.Field{
			Key:   "action",
			Value: "recent_trades",
		}, logger.Field{
			Key:   "symbol",
			Value: symbol,
		})
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if trades == nil {
		trades = []orderbookv1.Trade{}
	}
	s.writeJSON(w, http.StatusOK, &TradesResponse{
		Symbol: symbol,
		Trades: trades,
	})
}

// withRequestID propagates the caller's X-Request-Id header into the
// request context, generating one when absent, and echoes it back.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := util.WithRequestID(r.Context(), r.Header.Get("X-Request-Id"))
		w.Header().Set("X-Request-Id", util.GetRequestID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(err, logger.Field{
			Key:   "action",
			Value: "encode_response",
		})
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, &ErrorResponse{Error: message})
}

func isValidationError(err error) bool {
	return errors.Is(err, orderbookv1.ErrEmptySymbol) ||
		errors.Is(err, orderbookv1.ErrInvalidSide) ||
		errors.Is(err, orderbookv1.ErrInvalidPrice) ||
		errors.Is(err, orderbookv1.ErrInvalidQuantity)
}
