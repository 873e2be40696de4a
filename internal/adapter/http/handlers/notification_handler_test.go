package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bidtrack/internal/adapter/http/handlers/mocks"
	"bidtrack/internal/domain/entities"
	"bidtrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_GetNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unread filter and limit pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := newActorRouter(bdmActor)
		r.GET("/notifications", h.GetNotifications)

		uc.EXPECT().ListForActor(gomock.Any(), bdmActor, true, 10).
			Return([]entities.Notification{{ID: "n-1", Type: "proposal_approved"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/notifications?unread=true&limit=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, _ := body["data"].([]any)
		if len(data) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := newActorRouter(bdmActor)
		r.GET("/notifications", h.GetNotifications)

		uc.EXPECT().ListForActor(gomock.Any(), bdmActor, false, 20).
			Return(nil, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_UpdateNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mark one read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := newActorRouter(bdmActor)
		r.PUT("/notifications", h.UpdateNotifications)

		uc.EXPECT().MarkRead(gomock.Any(), bdmActor, "n-1").
			Return(entities.Notification{ID: "n-1", IsRead: true}, nil)

		req := httptest.NewRequest(http.MethodPut, "/notifications?id=n-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, _ := body["data"].(map[string]any)
		if data["isRead"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not the recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := newActorRouter(estimatorActor)
		r.PUT("/notifications", h.UpdateNotifications)

		uc.EXPECT().MarkRead(gomock.Any(), estimatorActor, "n-9").
			Return(entities.Notification{}, usecase.ErrNotRecipient)

		req := httptest.NewRequest(http.MethodPut, "/notifications?id=n-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("mark all read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := newActorRouter(bdmActor)
		r.PUT("/notifications", h.UpdateNotifications)

		uc.EXPECT().MarkAllRead(gomock.Any(), bdmActor).Return(3, nil)

		req := httptest.NewRequest(http.MethodPut, "/notifications", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, _ := body["data"].(map[string]any)
		if data["updated"] != float64(3) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["message"] != "All notifications marked as read" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapNotificationError(t *testing.T) {
	if got := mapNotificationError(usecase.ErrInvalidNotificationID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapNotificationError(usecase.ErrNotRecipient); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapNotificationError(usecase.ErrNotificationNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapNotificationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
