package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bidtrack/internal/adapter/http/handlers/mocks"
	"bidtrack/internal/domain/entities"
	"bidtrack/internal/domain/workflow"
	"bidtrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestActivityHandler_GetActivities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("proposal filter passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		r := newActorRouter(bdmActor)
		r.GET("/activities", h.GetActivities)

		uc.EXPECT().List(gomock.Any(), bdmActor, usecase.ActivityFilter{ProposalID: "p-1", Limit: 5}).
			Return([]entities.Activity{{ID: "a-1"}, {ID: "a-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/activities?proposalId=p-1&limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, _ := body["data"].([]any)
		if len(data) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not owner of the proposal feed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		r := newActorRouter(bdmActor)
		r.GET("/activities", h.GetActivities)

		uc.EXPECT().List(gomock.Any(), bdmActor, usecase.ActivityFilter{ProposalID: "p-2", Limit: 20}).
			Return(nil, workflow.ErrNotOwner)

		req := httptest.NewRequest(http.MethodGet, "/activities?proposalId=p-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIActivityUseCase(ctrl)
		h := NewActivityHandler(uc)

		r := newActorRouter(directorActor)
		r.GET("/activities", h.GetActivities)

		uc.EXPECT().List(gomock.Any(), directorActor, usecase.ActivityFilter{ProposalID: "missing", Limit: 20}).
			Return(nil, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodGet, "/activities?proposalId=missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapActivityError(t *testing.T) {
	if got := mapActivityError(usecase.ErrInvalidProposalID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapActivityError(workflow.ErrNotOwner); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapActivityError(usecase.ErrProposalNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapActivityError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
