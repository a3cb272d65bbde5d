package cart

import (
	"context"
	"strconv"
	"time"

	"craftly/models"
	"craftly/store"
	"craftly/utils"

	"go.uber.org/zap"
)

func emptyCart(clientID string) models.Cart {
	return models.Cart{ClientID: clientID, Items: []models.CartItem{}}
}

// GetCart returns the client's cart, empty if none has been stored yet.
func (svc *DefaultCartService) GetCart(ctx context.Context, clientID string) (*models.Cart, error) {
	c, err := store.Get(ctx, svc.Store, CartKey(clientID), emptyCart(clientID))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AddItem inserts a new line, or when a line with the same
// (ServiceID, ProviderID) already exists, increments its quantity instead.
func (svc *DefaultCartService) AddItem(ctx context.Context, clientID string, input models.AddItemInput) (*models.Cart, error) {
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var snapshot models.Cart
	err := svc.Store.Update(ctx, func(tx store.Tx) error {
		c, err := store.TxGet(tx, CartKey(clientID), emptyCart(clientID))
		if err != nil {
			return err
		}

		merged := false
		for i := range c.Items {
			if c.Items[i].ServiceID == input.ServiceID && c.Items[i].ProviderID == input.ProviderID {
				c.Items[i].Quantity += quantity
				merged = true
				break
			}
		}
		if !merged {
			c.Items = append(c.Items, models.CartItem{
				ID:         utils.NewRecordID(),
				ServiceID:  input.ServiceID,
				ProviderID: input.ProviderID,
				Quantity:   quantity,
				Selected:   true,
				Price:      input.Price,
				AddedAt:    time.Now(),
			})
		}

		c.UpdatedAt = time.Now()
		snapshot = c
		return store.TxSet(tx, CartKey(clientID), c)
	})
	if err != nil {
		return nil, err
	}

	svc.Logger.Debug("cart item added",
		zap.String("clientID", clientID),
		zap.String("serviceID", input.ServiceID),
		zap.Int("quantity", quantity),
	)
	return &snapshot, nil
}

// RemoveItem drops the line with the given id. An absent id is a no-op.
func (svc *DefaultCartService) RemoveItem(ctx context.Context, clientID, itemID string) (*models.Cart, error) {
	var snapshot models.Cart
	err := svc.Store.Update(ctx, func(tx store.Tx) error {
		c, err := store.TxGet(tx, CartKey(clientID), emptyCart(clientID))
		if err != nil {
			return err
		}

		kept := c.Items[:0]
		for _, item := range c.Items {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		c.Items = kept

		c.UpdatedAt = time.Now()
		snapshot = c
		return store.TxSet(tx, CartKey(clientID), c)
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// UpdateQuantity sets the line's quantity, clamped to a minimum of 1. An
// absent id is a no-op.
func (svc *DefaultCartService) UpdateQuantity(ctx context.Context, clientID, itemID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	var snapshot models.Cart
	err := svc.Store.Update(ctx, func(tx store.Tx) error {
		c, err := store.TxGet(tx, CartKey(clientID), emptyCart(clientID))
		if err != nil {
			return err
		}

		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items[i].Quantity = quantity
				break
			}
		}

		c.UpdatedAt = time.Now()
		snapshot = c
		return store.TxSet(tx, CartKey(clientID), c)
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Clear empties the cart.
func (svc *DefaultCartService) Clear(ctx context.Context, clientID string) error {
	return svc.Store.Remove(ctx, CartKey(clientID))
}

// ItemCount sums the quantities across all lines.
func (svc *DefaultCartService) ItemCount(ctx context.Context, clientID string) (int, error) {
	c, err := svc.GetCart(ctx, clientID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count, nil
}

// Total sums price times quantity across all lines. A line whose price does
// not parse contributes 0; bad data must not block checkout totals.
func (svc *DefaultCartService) Total(ctx context.Context, clientID string) (float64, error) {
	c, err := svc.GetCart(ctx, clientID)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, item := range c.Items {
		price, err := strconv.ParseFloat(item.Price, 64)
		if err != nil {
			svc.Logger.Debug("unparsable cart price treated as zero",
				zap.String("itemID", item.ID), zap.String("price", item.Price))
			continue
		}
		total += price * float64(item.Quantity)
	}
	return total, nil
}
