package catalog

import (
	"context"
	"errors"
	"time"

	"craftly/models"
	"craftly/services/session"
	"craftly/store"
	"craftly/utils"

	"golang.org/x/crypto/bcrypt"
)

type seedProvider struct {
	name     string
	email    string
	password string
	category string
}

var seedProviders = []seedProvider{
	{"Meera Stitchworks", "meera@craftly.local", "stitch123", "embroidery"},
	{"Anita's Kitchen", "anita@craftly.local", "tiffin123", "home-food"},
	{"Ravi Gift Studio", "ravi@craftly.local", "hamper123", "custom-gifts"},
}

// SeedProviders writes the demo provider registry on first run. It is a no-op
// whenever the registry key already holds a value, so registrations and edits
// survive restarts.
func SeedProviders(ctx context.Context, st store.Store) error {
	_, err := st.Get(ctx, session.RegisteredProvidersKey)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	records := make([]models.Provider, 0, len(seedProviders))
	for _, sp := range seedProviders {
		hash, err := bcrypt.GenerateFromPassword([]byte(sp.password), bcrypt.DefaultCost)
		if err != nil {
			return &store.PersistenceError{Op: "hash", Err: err}
		}
		records = append(records, models.Provider{
			ID:           utils.NewRecordID(),
			Name:         sp.name,
			Email:        sp.email,
			PasswordHash: string(hash),
			Category:     sp.category,
			Active:       true,
			CreatedAt:    time.Now(),
		})
	}
	return store.Set(ctx, st, session.RegisteredProvidersKey, records)
}
