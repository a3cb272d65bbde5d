package catalog

import (
	"context"
	"testing"

	"craftly/models"
	"craftly/services/session"
	"craftly/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	svc := &DefaultCatalogService{Store: store.NewMemoryStore()}

	categories, err := svc.GetCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)

	ids := make(map[string]bool)
	for _, cat := range categories {
		ids[cat.ID] = true
		assert.NotEmpty(t, cat.Services, "category %s has no services", cat.ID)
	}
	assert.True(t, ids["embroidery"])
	assert.True(t, ids["home-food"])
	assert.True(t, ids["custom-gifts"])
}

func TestSeedProviders_FirstRunOnly(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	require.NoError(t, SeedProviders(ctx, st))

	providers, err := store.Get(ctx, st, session.RegisteredProvidersKey, []models.Provider{})
	require.NoError(t, err)
	require.NotEmpty(t, providers)
	for _, p := range providers {
		assert.True(t, p.Active)
		assert.NotEmpty(t, p.PasswordHash)
	}

	// A second run must not clobber the registry.
	providers[0].Name = "Renamed By Operator"
	require.NoError(t, store.Set(ctx, st, session.RegisteredProvidersKey, providers))
	require.NoError(t, SeedProviders(ctx, st))

	after, err := store.Get(ctx, st, session.RegisteredProvidersKey, []models.Provider{})
	require.NoError(t, err)
	assert.Equal(t, "Renamed By Operator", after[0].Name)
}

func TestListProviders_PublicFieldsOnly(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, SeedProviders(ctx, st))

	// Deactivated providers drop out of the directory.
	providers, err := store.Get(ctx, st, session.RegisteredProvidersKey, []models.Provider{})
	require.NoError(t, err)
	providers[0].Active = false
	require.NoError(t, store.Set(ctx, st, session.RegisteredProvidersKey, providers))

	svc := &DefaultCatalogService{Store: st}
	public, err := svc.ListProviders(ctx)
	require.NoError(t, err)
	assert.Len(t, public, len(providers)-1)
	for _, p := range public {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Category)
	}
}
