package snapshotv1

import "context"

// Store defines the interface for caching and loading book views.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=snapshotv1_mock
type Store interface {
	// Store caches the latest view for the view's symbol.
	Store(ctx context.Context, view *BookView) error
	// Load returns the cached view for a symbol, or nil if none exists.
	Load(ctx context.Context, symbol string) (*BookView, error)
}
