package api

import (
	"net/http"
	"strconv"

	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/domain"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the static training configuration read-only.
type CatalogHandler struct {
	registry *catalog.Registry
}

func NewCatalogHandler(registry *catalog.Registry) *CatalogHandler {
	return &CatalogHandler{registry: registry}
}

// TemplateResponse is one day template resolved for a tier.
type TemplateResponse struct {
	Name      string                         `json:"name"`
	Title     string                         `json:"title"`
	Focus     []string                       `json:"focus"`
	Tier      domain.GenderTier              `json:"tier"`
	Exercises []catalog.ExercisePrescription `json:"exercises"`
}

// ListSplits godoc
// @Summary List split archetypes for a weekly frequency
// @Tags Catalog
// @Produce json
// @Param frequency query int true "Workouts per week (3-6)"
// @Success 200 {array} catalog.SplitArchetype
// @Failure 400 {object} gin.H "Unsupported frequency"
// @Router /catalog/splits [get]
func (h *CatalogHandler) ListSplits(c *gin.Context) {
	frequency, err := strconv.Atoi(c.Query("frequency"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "frequency must be an integer.")
		return
	}
	archetypes, err := h.registry.Archetypes(frequency)
	if err != nil {
		respondServiceError(c, err, "Failed to list splits.")
		return
	}
	c.JSON(http.StatusOK, archetypes)
}

// GetTemplate godoc
// @Summary Get a day template for a tier
// @Tags Catalog
// @Produce json
// @Param name path string true "Template name"
// @Param tier query string false "male, female or senior (default male)"
// @Success 200 {object} TemplateResponse
// @Failure 404 {object} gin.H "Unknown template or tier"
// @Router /catalog/templates/{name} [get]
func (h *CatalogHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.registry.Template(c.Param("name"))
	if err != nil {
		respondServiceError(c, err, "Failed to load template.")
		return
	}
	tier := domain.GenderTier(c.Query("tier"))
	if tier == "" {
		tier = domain.DefaultTier
	}
	exercises, err := h.registry.ResolveDay(tpl.Name, tier)
	if err != nil {
		respondServiceError(c, err, "Failed to load template.")
		return
	}
	c.JSON(http.StatusOK, TemplateResponse{
		Name:      tpl.Name,
		Title:     tpl.Title(),
		Focus:     tpl.Focus,
		Tier:      tier,
		Exercises: exercises,
	})
}

// ListMuscles godoc
// @Summary List the muscle taxonomy
// @Tags Catalog
// @Produce json
// @Success 200 {array} catalog.Muscle
// @Router /catalog/muscles [get]
func (h *CatalogHandler) ListMuscles(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Muscles())
}
