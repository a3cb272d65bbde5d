package session

import (
	"context"
	"strings"
	"time"

	"craftly/models"
	"craftly/store"
	"craftly/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// Login verifies the credentials against the role's registry and, on success,
// issues a token and overwrites the single session slot. Every failure mode
// surfaces as the same AuthenticationError.
func (svc *DefaultSessionService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	var id, name, hash string
	var active bool
	switch creds.Role {
	case models.RoleProvider:
		providers, err := store.Get(ctx, svc.Store, RegisteredProvidersKey, []models.Provider{})
		if err != nil {
			return nil, err
		}
		for _, p := range providers {
			if strings.ToLower(p.Email) == email {
				id, name, hash, active = p.ID, p.Name, p.PasswordHash, p.Active
				break
			}
		}
	case models.RoleClient:
		clients, err := store.Get(ctx, svc.Store, RegisteredClientsKey, []models.Client{})
		if err != nil {
			return nil, err
		}
		for _, c := range clients {
			if strings.ToLower(c.Email) == email {
				id, name, hash, active = c.ID, c.Name, c.PasswordHash, c.Active
				break
			}
		}
	default:
		return nil, &AuthenticationError{}
	}

	if id == "" || !active {
		return nil, &AuthenticationError{}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		return nil, &AuthenticationError{}
	}

	token, err := utils.GenerateToken(id, creds.Role, tokenLifetime)
	if err != nil {
		return nil, &store.PersistenceError{Op: "token", Err: err}
	}

	sess := models.Session{
		Token:     token,
		Role:      creds.Role,
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := store.Set(ctx, svc.Store, SessionKey, sess); err != nil {
		return nil, err
	}

	svc.Logger.Info("session opened",
		zap.String("role", sess.Role), zap.String("id", sess.ID))
	return &sess, nil
}

// GetActiveSession returns the stored session, or nil when none is active.
func (svc *DefaultSessionService) GetActiveSession(ctx context.Context) (*models.Session, error) {
	sess, err := store.Get(ctx, svc.Store, SessionKey, models.Session{})
	if err != nil {
		return nil, err
	}
	if sess.Token == "" {
		return nil, nil
	}
	return &sess, nil
}

// Logout clears the session slot.
func (svc *DefaultSessionService) Logout(ctx context.Context) error {
	return svc.Store.Remove(ctx, SessionKey)
}

func validateRegistration(input models.RegistrationInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(input.Email) == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(input.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

// RegisterClient appends a new client record with a bcrypt-hashed password.
func (svc *DefaultSessionService) RegisterClient(ctx context.Context, input models.RegistrationInput) (*models.Client, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &store.PersistenceError{Op: "hash", Err: err}
	}

	record := models.Client{
		ID:           utils.NewRecordID(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    time.Now(),
	}

	err = svc.Store.Update(ctx, func(tx store.Tx) error {
		clients, err := store.TxGet(tx, RegisteredClientsKey, []models.Client{})
		if err != nil {
			return err
		}
		for _, c := range clients {
			if strings.ToLower(c.Email) == email {
				return &ValidationError{Field: "email", Message: "email is already registered"}
			}
		}
		return store.TxSet(tx, RegisteredClientsKey, append(clients, record))
	})
	if err != nil {
		return nil, err
	}

	svc.Logger.Info("client registered", zap.String("id", record.ID))
	return &record, nil
}

// RegisterProvider appends a new provider record with a bcrypt-hashed password.
func (svc *DefaultSessionService) RegisterProvider(ctx context.Context, input models.RegistrationInput) (*models.Provider, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, &ValidationError{Field: "category", Message: "category is required"}
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &store.PersistenceError{Op: "hash", Err: err}
	}

	record := models.Provider{
		ID:           utils.NewRecordID(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Category:     input.Category,
		Active:       true,
		CreatedAt:    time.Now(),
	}

	err = svc.Store.Update(ctx, func(tx store.Tx) error {
		providers, err := store.TxGet(tx, RegisteredProvidersKey, []models.Provider{})
		if err != nil {
			return err
		}
		for _, p := range providers {
			if strings.ToLower(p.Email) == email {
				return &ValidationError{Field: "email", Message: "email is already registered"}
			}
		}
		return store.TxSet(tx, RegisteredProvidersKey, append(providers, record))
	})
	if err != nil {
		return nil, err
	}

	svc.Logger.Info("provider registered", zap.String("id", record.ID))
	return &record, nil
}
