package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bidtrack/internal/adapter/http/dto/request"
	dto "bidtrack/internal/adapter/http/dto/response"
	"bidtrack/internal/adapter/http/middleware"
	"bidtrack/internal/domain/entities"
	"bidtrack/internal/domain/workflow"
	"bidtrack/internal/usecase"
	"bidtrack/pkg"
	"bidtrack/pkg/pagination"
	"bidtrack/pkg/response"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingProposalID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter 'id' is required", http.StatusBadRequest)
)

// ProposalHandler handles HTTP requests for proposals. The query-parameter
// style (?id=) mirrors the rest of the API surface; there are no path params.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal handles POST /proposals.
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), payload.ToActionData())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.FromProposal(created)))
}

// GetProposals handles GET /proposals: with ?id= a single proposal, without it
// a role-scoped list (optional ?status= and ?limit=).
func (h *ProposalHandler) GetProposals(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	if id := strings.TrimSpace(c.Query("id")); id != "" {
		p, err := h.usecase.GetByID(c.Request.Context(), actor, id)
		if err != nil {
			appErr := mapProposalError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.Success(dto.FromProposal(p)))
		return
	}

	status := entities.ProposalStatus(strings.TrimSpace(c.Query("status")))
	if status != "" && !entities.ValidStatus(status) {
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Unknown status filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	params := pagination.Parse(c)
	proposals, err := h.usecase.List(c.Request.Context(), actor, usecase.ProposalFilter{Status: status, Limit: params.Limit})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.FromProposals(proposals)))
}

// UpdateProposal handles PUT /proposals?id=: one workflow action per request.
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		c.JSON(errMissingProposalID.HTTPStatus, errMissingProposalID.ToHTTPError())
		return
	}

	var payload request.ProposalActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ApplyAction(c.Request.Context(), middleware.ActorFrom(c), id, payload.ResolveAction(), payload.ToActionData())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.FromProposal(updated)))
}

// DeleteProposal handles DELETE /proposals?id=.
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		c.JSON(errMissingProposalID.HTTPStatus, errMissingProposalID.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(nil, "Proposal deleted"))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrUnknownAction):
		return pkg.NewDomainErrorSimple("INVALID_ACTION", "Unknown workflow action", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrInvalidActionData):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid action data", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Proposal status does not allow this action", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrRoleNotAllowed), errors.Is(err, workflow.ErrNotOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalConflict):
		return pkg.NewDomainErrorSimple("REVISION_CONFLICT", "Proposal was modified concurrently, reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
