package handlers

import (
	"net/http"

	"craftly/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the static category catalog and provider directory.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func (h *CatalogHandler) CategoriesHandler(c *gin.Context) {
	categories, err := h.Service.GetCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) ProvidersHandler(c *gin.Context) {
	providers, err := h.Service.ListProviders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}
