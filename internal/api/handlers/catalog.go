package handlers

import (
	"net/http"

	"fund-reporting-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogHandler serves the read-only reference tables the frontend populates
// its selectors from
type CatalogHandler struct {
	catalogRepo *repository.CatalogRepository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{catalogRepo: repository.NewCatalogRepository(db)}
}

// ListCountries handles GET /countries
// @Summary List countries
// @Description Get all active countries ordered by name
// @Tags catalogs
// @Accept json
// @Produce json
// @Success 200 {array} models.Country "Countries"
// @Router /countries [get]
func (h *CatalogHandler) ListCountries(c *gin.Context) {
	countries, err := h.catalogRepo.ListCountries()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

// ListAgencies handles GET /agencies
// @Summary List agencies
// @Description Get all implementing agencies ordered by name
// @Tags catalogs
// @Accept json
// @Produce json
// @Success 200 {array} models.Agency "Agencies"
// @Router /agencies [get]
func (h *CatalogHandler) ListAgencies(c *gin.Context) {
	agencies, err := h.catalogRepo.ListAgencies()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agencies)
}
