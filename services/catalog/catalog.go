package catalog

import (
	"context"

	"craftly/models"
	"craftly/services/session"
	"craftly/store"
)

// CatalogService serves the static category catalog and the public provider
// directory.
type CatalogService interface {
	GetCategories() ([]models.Category, error)
	ListProviders(ctx context.Context) ([]models.PublicProvider, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Store store.Store
}

// GetCategories returns the marketplace catalog. The catalog is static; the
// services under each category are what the seeded providers offer.
func (svc *DefaultCatalogService) GetCategories() ([]models.Category, error) {
	categories := []models.Category{
		{
			ID:   "embroidery",
			Name: "Embroidery",
			Icon: "🪡",
			Services: []models.Service{
				{ID: "hand-embroidery", Name: "Hand Embroidery", Price: "500", Duration: "5 days"},
				{ID: "machine-embroidery", Name: "Machine Embroidery", Price: "300", Duration: "2 days"},
				{ID: "monogramming", Name: "Monogramming", Price: "150", Duration: "1 day"},
			},
		},
		{
			ID:   "home-food",
			Name: "Home-Cooked Food",
			Icon: "🍲",
			Services: []models.Service{
				{ID: "daily-tiffin", Name: "Daily Tiffin", Price: "120"},
				{ID: "party-catering", Name: "Party Catering", Price: "2500"},
				{ID: "festive-sweets", Name: "Festive Sweets", Price: "600"},
			},
		},
		{
			ID:   "custom-gifts",
			Name: "Custom Gifts",
			Icon: "🎁",
			Services: []models.Service{
				{ID: "photo-frame", Name: "Personalized Photo Frame", Price: "450", Duration: "3 days"},
				{ID: "gift-hamper", Name: "Gift Hamper", Price: "1200", Duration: "2 days"},
				{ID: "handmade-card", Name: "Handmade Greeting Card", Price: "100", Duration: "1 day"},
			},
		},
	}
	return categories, nil
}

// ListProviders returns the public view of all active registered providers.
func (svc *DefaultCatalogService) ListProviders(ctx context.Context) ([]models.PublicProvider, error) {
	providers, err := store.Get(ctx, svc.Store, session.RegisteredProvidersKey, []models.Provider{})
	if err != nil {
		return nil, err
	}
	public := make([]models.PublicProvider, 0, len(providers))
	for _, p := range providers {
		if p.Active {
			public = append(public, p.Public())
		}
	}
	return public, nil
}
