package session

import (
	"context"

	"craftly/models"
	"craftly/store"

	"go.uber.org/zap"
)

// SessionService owns the single active session and the registries it is
// checked against.
type SessionService interface {
	// Login verifies credentials against the registry for the requested
	// role and overwrites the active session.
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)

	// GetActiveSession returns the active session, or nil when logged out.
	GetActiveSession(ctx context.Context) (*models.Session, error)

	// Logout clears the active session. Logging out twice is harmless.
	Logout(ctx context.Context) error

	RegisterClient(ctx context.Context, input models.RegistrationInput) (*models.Client, error)
	RegisterProvider(ctx context.Context, input models.RegistrationInput) (*models.Provider, error)
}

// DefaultSessionService implements SessionService over a persistent store.
type DefaultSessionService struct {
	Store  store.Store
	Logger *zap.Logger
}

// Persisted keys.
const (
	SessionKey             = "session"
	RegisteredProvidersKey = "registeredProviders"
	RegisteredClientsKey   = "registeredClients"
)
