package handlers

import (
	"net/http"

	"craftly/middleware"
	"craftly/models"
	"craftly/services/cart"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the client's cart.
type CartHandler struct {
	Service cart.CartService
}

func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Service: svc}
}

func (h *CartHandler) GetCartHandler(c *gin.Context) {
	clientID := c.GetString(middleware.CtxSubjectID)

	snapshot, err := h.Service.GetCart(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	count, err := h.Service.ItemCount(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := h.Service.Total(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": snapshot, "item_count": count, "total": total})
}

func (h *CartHandler) AddItemHandler(c *gin.Context) {
	clientID := c.GetString(middleware.CtxSubjectID)

	var input models.AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	snapshot, err := h.Service.AddItem(c.Request.Context(), clientID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *CartHandler) UpdateQuantityHandler(c *gin.Context) {
	clientID := c.GetString(middleware.CtxSubjectID)
	itemID := c.Param("itemID")

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	snapshot, err := h.Service.UpdateQuantity(c.Request.Context(), clientID, itemID, input.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *CartHandler) RemoveItemHandler(c *gin.Context) {
	clientID := c.GetString(middleware.CtxSubjectID)
	itemID := c.Param("itemID")

	snapshot, err := h.Service.RemoveItem(c.Request.Context(), clientID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	clientID := c.GetString(middleware.CtxSubjectID)

	if err := h.Service.Clear(c.Request.Context(), clientID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
