package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bidtrack/internal/adapter/http/dto/request"
	dto "bidtrack/internal/adapter/http/dto/response"
	"bidtrack/internal/adapter/http/middleware"
	"bidtrack/internal/domain/workflow"
	"bidtrack/internal/usecase"
	"bidtrack/pkg"
	"bidtrack/pkg/response"
)

var (
	errMissingFileProposalID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter 'proposalId' is required", http.StatusBadRequest)
	errMissingFileID         = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter 'id' is required", http.StatusBadRequest)
)

// FileHandler handles HTTP requests for proposal attachments. POST accepts
// either multipart uploads (field "files") or a JSON link payload; the
// Content-Type decides which.
type FileHandler struct {
	usecase usecase.IFileUseCase
}

func NewFileHandler(uc usecase.IFileUseCase) *FileHandler {
	return &FileHandler{usecase: uc}
}

// CreateFiles handles POST /files?proposalId=.
func (h *FileHandler) CreateFiles(c *gin.Context) {
	proposalID := strings.TrimSpace(c.Query("proposalId"))
	if proposalID == "" {
		c.JSON(errMissingFileProposalID.HTTPStatus, errMissingFileProposalID.ToHTTPError())
		return
	}

	if c.ContentType() == "multipart/form-data" {
		h.uploadFiles(c, proposalID)
		return
	}
	h.attachLink(c, proposalID)
}

func (h *FileHandler) uploadFiles(c *gin.Context, proposalID string) {
	form, err := c.MultipartForm()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid multipart request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	uploads := make([]usecase.FileUpload, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unreadable file part", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		defer f.Close()
		uploads = append(uploads, usecase.FileUpload{
			OriginalName: fh.Filename,
			MimeType:     fh.Header.Get("Content-Type"),
			Size:         fh.Size,
			Content:      f,
		})
	}

	created, err := h.usecase.Upload(c.Request.Context(), middleware.ActorFrom(c), proposalID, uploads)
	if err != nil {
		appErr := mapFileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.FromFiles(created)))
}

func (h *FileHandler) attachLink(c *gin.Context, proposalID string) {
	var payload request.AttachLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.AttachLink(c.Request.Context(), middleware.ActorFrom(c), proposalID, payload.URL, payload.Title)
	if err != nil {
		appErr := mapFileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.FromFile(created)))
}

// GetFiles handles GET /files?proposalId=.
func (h *FileHandler) GetFiles(c *gin.Context) {
	proposalID := strings.TrimSpace(c.Query("proposalId"))
	if proposalID == "" {
		c.JSON(errMissingFileProposalID.HTTPStatus, errMissingFileProposalID.ToHTTPError())
		return
	}

	files, err := h.usecase.ListByProposal(c.Request.Context(), middleware.ActorFrom(c), proposalID)
	if err != nil {
		appErr := mapFileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.FromFiles(files)))
}

// DeleteFile handles DELETE /files?id=.
func (h *FileHandler) DeleteFile(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		c.JSON(errMissingFileID.HTTPStatus, errMissingFileID.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		appErr := mapFileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(nil, "File deleted"))
}

func mapFileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidFileID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUpload), errors.Is(err, usecase.ErrInvalidLinkURL):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid file payload", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrRoleNotAllowed), errors.Is(err, workflow.ErrNotOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFileNotFound):
		return pkg.NewDomainErrorSimple("FILE_NOT_FOUND", "File not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
