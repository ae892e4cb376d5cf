package handlers

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-hq/folio/internal/application/upload/dto"
	"github.com/folio-hq/folio/internal/application/upload/usecases"
	"github.com/folio-hq/folio/internal/interfaces/http/middleware"
	"github.com/folio-hq/folio/internal/shared/errors"
	"github.com/folio-hq/folio/internal/shared/logger"
	"github.com/folio-hq/folio/internal/shared/utils"
)

type uploadImageUseCase interface {
	Execute(ctx context.Context, cmd usecases.UploadImageCommand) (*dto.FileDTO, error)
	ExecuteMany(ctx context.Context, cmds []usecases.UploadImageCommand) ([]*dto.FileDTO, error)
}

// UploadHandler accepts multipart image uploads for the caller.
type UploadHandler struct {
	uploadUseCase uploadImageUseCase
	logger        logger.Interface
}

func NewUploadHandler(uploadUC uploadImageUseCase, logger logger.Interface) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUC,
		logger:        logger,
	}
}

// Single handles POST /api/upload/single with form field "image".
func (h *UploadHandler) Single(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("No file uploaded"))
		return
	}

	file, err := h.upload(c, principal.AccountID, "image", header)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "File uploaded successfully", file)
}

// Multiple handles POST /api/upload/multiple with repeated form field "images".
func (h *UploadHandler) Multiple(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("No files uploaded"))
		return
	}

	headers := form.File["images"]
	cmds := make([]usecases.UploadImageCommand, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			h.logger.Errorw("failed to open upload", "error", err, "user_id", principal.AccountID)
			utils.ErrorResponseWithError(c, errors.NewInternalError("Server error during file upload"))
			return
		}
		defer f.Close()
		cmds = append(cmds, usecases.UploadImageCommand{
			OwnerID:      principal.AccountID,
			Field:        "images",
			OriginalName: header.Filename,
			Content:      f,
		})
	}

	files, err := h.uploadUseCase.ExecuteMany(c.Request.Context(), cmds)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Files uploaded successfully", files)
}

// Portfolio handles POST /api/upload/portfolio with optional form fields
// "image" and "largeImage"; at least one is required.
func (h *UploadHandler) Portfolio(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	result := make(map[string]*dto.FileDTO, 2)
	for _, field := range []string{"image", "largeImage"} {
		header, err := c.FormFile(field)
		if err != nil {
			continue
		}
		file, err := h.upload(c, principal.AccountID, field, header)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		result[field] = file
	}

	if len(result) == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("No files uploaded"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Portfolio images uploaded successfully", result)
}

func (h *UploadHandler) upload(c *gin.Context, ownerID uint, field string, header *multipart.FileHeader) (*dto.FileDTO, error) {
	f, err := header.Open()
	if err != nil {
		h.logger.Errorw("failed to open upload", "error", err, "user_id", ownerID)
		return nil, errors.NewInternalError("Server error during file upload")
	}
	defer f.Close()

	return h.uploadUseCase.Execute(c.Request.Context(), usecases.UploadImageCommand{
		OwnerID:      ownerID,
		Field:        field,
		OriginalName: header.Filename,
		Content:      f,
	})
}
