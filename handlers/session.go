package handlers

import (
	"net/http"

	"craftly/models"
	"craftly/services/session"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes login, logout and registration.
type SessionHandler struct {
	Service session.SessionService
}

func NewSessionHandler(svc session.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := h.Service.Login(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	if err := h.Service.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// MeHandler returns the active session, or 401 when logged out.
func (h *SessionHandler) MeHandler(c *gin.Context) {
	sess, err := h.Service.GetActiveSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *SessionHandler) RegisterClientHandler(c *gin.Context) {
	var input models.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	client, err := h.Service.RegisterClient(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": client.ID, "name": client.Name, "email": client.Email})
}

func (h *SessionHandler) RegisterProviderHandler(c *gin.Context) {
	var input models.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	provider, err := h.Service.RegisterProvider(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, provider.Public())
}
