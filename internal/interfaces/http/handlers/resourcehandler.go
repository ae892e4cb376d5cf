package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/application/resource/usecases"
	"github.com/folio-hq/folio/internal/domain/resource"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
	"github.com/folio-hq/folio/internal/shared/validation"
)

// ResourceEndpoints is the kind-independent view of a ResourceHandler used
// when registering routes from the kind table.
type ResourceEndpoints interface {
	Info() resource.Info
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Upsert(c *gin.Context)
}

// ResourceHandler serves the owner-scoped CRUD surface of one kind. Every
// action requires an authenticated principal.
type ResourceHandler[T resource.Record] struct {
	useCase *usecases.ManageResourceUseCase[T]
	logger  logger.Interface
}

func NewResourceHandler[T resource.Record](useCase *usecases.ManageResourceUseCase[T], logger logger.Interface) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		useCase: useCase,
		logger:  logger,
	}
}

var _ ResourceEndpoints = (*ResourceHandler[*resource.Skill])(nil)

func (h *ResourceHandler[T]) Info() resource.Info {
	return h.useCase.Info()
}

// List handles GET /api/<route>. Singleton kinds answer with their record.
func (h *ResourceHandler[T]) List(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	if h.Info().Singleton {
		record, err := h.useCase.GetSingleton(c.Request.Context(), principal.AccountID)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", record)
		return
	}

	records, err := h.useCase.List(c.Request.Context(), principal.AccountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", records)
}

// Get handles GET /api/<route>/:id
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", usecases.Label(h.Info().Kind))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	record, err := h.useCase.Get(c.Request.Context(), principal.AccountID, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", record)
}

// Create handles POST /api/<route>. Plan-limited kinds are quota checked by
// middleware before this runs.
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	record, err := h.useCase.Create(c.Request.Context(), principal.AccountID, h.bind(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, record, usecases.Label(h.Info().Kind)+" created successfully")
}

// Update handles PUT /api/<route>/:id
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", usecases.Label(h.Info().Kind))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	record, err := h.useCase.Update(c.Request.Context(), principal.AccountID, id, h.bind(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, usecases.Label(h.Info().Kind)+" updated successfully", record)
}

// Delete handles DELETE /api/<route>/:id
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(c, "id", usecases.Label(h.Info().Kind))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), principal.AccountID, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, h.useCase.DeletedMessage(), nil)
}

// Upsert handles PUT /api/<route> for singleton kinds.
func (h *ResourceHandler[T]) Upsert(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	record, err := h.useCase.Upsert(c.Request.Context(), principal.AccountID, h.bind(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, usecases.Label(h.Info().Kind)+" updated successfully", record)
}

// bind decodes the request body onto the record and validates the result,
// so updates may send only the fields they change.
func (h *ResourceHandler[T]) bind(c *gin.Context) usecases.MergeFunc[T] {
	return func(record T) error {
		if err := c.ShouldBindJSON(record); err != nil {
			h.logger.Debugw("invalid resource body", "kind", h.Info().Kind, "error", err)
			return validation.FromBindError(err)
		}
		return nil
	}
}
