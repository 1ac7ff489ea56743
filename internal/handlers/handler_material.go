package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stitchworks/trim_inventory_app/internal/core/ports/services"
	"github.com/stitchworks/trim_inventory_app/internal/dto"
	"github.com/stitchworks/trim_inventory_app/internal/middleware"
)

// materialHandler handles HTTP requests related to materials.
type materialHandler struct {
	materialService portssvc.MaterialSvcFacade
	ledgerService   portssvc.LedgerSvcFacade
}

// newMaterialHandler creates a new materialHandler.
func newMaterialHandler(ms portssvc.MaterialSvcFacade, ls portssvc.LedgerSvcFacade) *materialHandler {
	return &materialHandler{
		materialService: ms,
		ledgerService:   ls,
	}
}

// registerMaterialRoutes registers routes related to materials.
func registerMaterialRoutes(rg *gin.RouterGroup, ms portssvc.MaterialSvcFacade, ls portssvc.LedgerSvcFacade) {
	h := newMaterialHandler(ms, ls)

	materials := rg.Group("/materials")
	{
		materials.GET("", h.listMaterials)
		materials.GET("/:code", h.getMaterialByCode)
		materials.POST("", h.createMaterial)
		materials.PUT("/:id", h.updateMaterial)
	}
}

// listMaterials godoc
// @Summary List materials
// @Description Returns all materials, most recently updated first, optionally filtered by a search term matching code, name or rack.
// @Tags materials
// @Produce json
// @Param search query string false "Case-insensitive substring filter"
// @Success 200 {array} dto.MaterialResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /materials [get]
func (h *materialHandler) listMaterials(c *gin.Context) {
	var params dto.ListMaterialsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	materials, err := h.materialService.ListMaterials(c.Request.Context(), params.Search)
	if err != nil {
		handleServiceError(c, err, "Material not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaterialListResponse(materials))
}

// getMaterialByCode godoc
// @Summary Get a material by code
// @Tags materials
// @Produce json
// @Param code path string true "Material code"
// @Success 200 {object} dto.MaterialResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /materials/{code} [get]
func (h *materialHandler) getMaterialByCode(c *gin.Context) {
	code := c.Param("code")

	material, err := h.materialService.GetMaterialByCode(c.Request.Context(), code)
	if err != nil {
		handleServiceError(c, err, "Material not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaterialResponse(material))
}

// createMaterial godoc
// @Summary Register incoming stock (entry)
// @Description Adds stock for a material code, creating the material on first entry. Appends one ENTRY transaction atomically with the balance change.
// @Tags materials
// @Accept json
// @Produce json
// @Param entry body dto.EntryRequest true "Entry details"
// @Success 201 {object} dto.MaterialResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /materials [post]
func (h *materialHandler) createMaterial(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for entry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	material, err := h.ledgerService.Entry(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Material not found")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaterialResponse(material))
}

// updateMaterial godoc
// @Summary Update a material directly
// @Description Applies a partial admin edit by numeric id, bypassing transaction logging. For location fixes and manual quantity corrections.
// @Tags materials
// @Accept json
// @Produce json
// @Param id path int true "Material id"
// @Param material body dto.UpdateMaterialRequest true "Fields to update"
// @Success 200 {object} dto.MaterialResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /materials/{id} [put]
func (h *materialHandler) updateMaterial(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "id must be numeric", Field: "id"})
		return
	}

	var req dto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for material update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, bindingErrorResponse(err))
		return
	}

	material, err := h.ledgerService.UpdateMaterial(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err, "Material not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaterialResponse(material))
}
