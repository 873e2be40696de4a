package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	dto "bidtrack/internal/adapter/http/dto/response"
	"bidtrack/internal/adapter/http/middleware"
	"bidtrack/internal/domain/workflow"
	"bidtrack/internal/usecase"
	"bidtrack/pkg"
	"bidtrack/pkg/pagination"
	"bidtrack/pkg/response"
)

// ActivityHandler handles HTTP requests for the audit feed.
type ActivityHandler struct {
	usecase usecase.IActivityUseCase
}

func NewActivityHandler(uc usecase.IActivityUseCase) *ActivityHandler {
	return &ActivityHandler{usecase: uc}
}

// GetActivities handles GET /activities (optional ?proposalId= and ?limit=).
// A bdm sees only activity they can access: their own proposals or their own
// actions; other roles see the global feed.
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	params := pagination.Parse(c)
	filter := usecase.ActivityFilter{
		ProposalID: strings.TrimSpace(c.Query("proposalId")),
		Limit:      params.Limit,
	}

	activities, err := h.usecase.List(c.Request.Context(), middleware.ActorFrom(c), filter)
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.FromActivities(activities)))
}

func mapActivityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrNotOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
