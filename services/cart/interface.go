package cart

import (
	"context"

	"craftly/models"
	"craftly/store"

	"go.uber.org/zap"
)

// CartService defines the ledger owning a client's cart. Every mutation
// writes the full cart back atomically and returns the resulting snapshot.
type CartService interface {
	GetCart(ctx context.Context, clientID string) (*models.Cart, error)
	AddItem(ctx context.Context, clientID string, input models.AddItemInput) (*models.Cart, error)
	RemoveItem(ctx context.Context, clientID, itemID string) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, clientID, itemID string, quantity int) (*models.Cart, error)
	Clear(ctx context.Context, clientID string) error
	ItemCount(ctx context.Context, clientID string) (int, error)
	Total(ctx context.Context, clientID string) (float64, error)
}

// DefaultCartService implements CartService over a persistent store.
type DefaultCartService struct {
	Store  store.Store
	Logger *zap.Logger
}

const cartPrefix = "cart:"

func CartKey(clientID string) string {
	return cartPrefix + clientID
}
