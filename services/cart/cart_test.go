package cart

import (
	"context"
	"testing"

	"craftly/models"
	"craftly/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *DefaultCartService {
	return &DefaultCartService{Store: store.NewMemoryStore(), Logger: zap.NewNop()}
}

func TestAddItem_MergesSameServiceAndProvider(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	in := models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "100"}
	_, err := svc.AddItem(ctx, "c1", in)
	require.NoError(t, err)
	snapshot, err := svc.AddItem(ctx, "c1", in)
	require.NoError(t, err)

	// One line, quantity summed; never two rows.
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)

	count, err := svc.ItemCount(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	total, err := svc.Total(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 200.0, total)
}

func TestAddItem_DifferentProvidersStaySeparate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "100"})
	require.NoError(t, err)
	snapshot, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p2", Price: "150"})
	require.NoError(t, err)

	require.Len(t, snapshot.Items, 2)
	assert.NotEqual(t, snapshot.Items[0].ID, snapshot.Items[1].ID)
}

func TestAddItem_DefaultsToQuantityOneSelected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snapshot, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "100"})
	require.NoError(t, err)

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
	assert.True(t, snapshot.Items[0].Selected)
	assert.False(t, snapshot.Items[0].AddedAt.IsZero())
}

func TestAddItem_RequestedQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "50", Quantity: 3})
	require.NoError(t, err)
	snapshot, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "50", Quantity: 2})
	require.NoError(t, err)

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 5, snapshot.Items[0].Quantity)
}

func TestUpdateQuantity_ClampsToMinimumOne(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snapshot, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "100", Quantity: 4})
	require.NoError(t, err)
	itemID := snapshot.Items[0].ID

	snapshot, err = svc.UpdateQuantity(ctx, "c1", itemID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)

	snapshot, err = svc.UpdateQuantity(ctx, "c1", itemID, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)

	snapshot, err = svc.UpdateQuantity(ctx, "c1", itemID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, snapshot.Items[0].Quantity)
}

func TestUpdateQuantity_AbsentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snapshot, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "100"})
	require.NoError(t, err)

	after, err := svc.UpdateQuantity(ctx, "c1", "missing", 9)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Items[0].Quantity, after.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	snapshot, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "100"})
	require.NoError(t, err)

	after, err := svc.RemoveItem(ctx, "c1", snapshot.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, after.Items)

	// Removing an absent id is a no-op, not an error.
	after, err = svc.RemoveItem(ctx, "c1", "missing")
	require.NoError(t, err)
	assert.Empty(t, after.Items)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "100"})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "c1"))

	count, err := svc.ItemCount(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTotal_EmptyCartIsZero(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	total, err := svc.Total(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestTotal_UnparsablePriceContributesZero(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "100", Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s2", ProviderID: "p1", Price: "call for price"})
	require.NoError(t, err)

	total, err := svc.Total(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 200.0, total)
}

func TestCartsAreIsolatedPerClient(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddItem(ctx, "c1", models.AddItemInput{ServiceID: "s1", ProviderID: "p1", Price: "100"})
	require.NoError(t, err)

	other, err := svc.GetCart(ctx, "c2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
