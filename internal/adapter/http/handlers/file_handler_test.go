package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
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

func TestFileHandler_CreateFiles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing proposal id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc)

		r := newActorRouter(bdmActor)
		r.POST("/files", h.CreateFiles)

		req := httptest.NewRequest(http.MethodPost, "/files", bytes.NewBufferString(`{"url":"https://example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("multipart upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc)

		r := newActorRouter(estimatorActor)
		r.POST("/files", h.CreateFiles)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("files", "takeoff.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := part.Write([]byte("%PDF-1.4")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mw.Close()

		uc.EXPECT().Upload(gomock.Any(), estimatorActor, "p-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ workflow.Actor, _ string, uploads []usecase.FileUpload) ([]entities.FileAttachment, error) {
				if len(uploads) != 1 {
					t.Fatalf("expected 1 upload, got %d", len(uploads))
				}
				if uploads[0].OriginalName != "takeoff.pdf" {
					t.Fatalf("unexpected original name %q", uploads[0].OriginalName)
				}
				if uploads[0].Size != int64(len("%PDF-1.4")) {
					t.Fatalf("unexpected size %d", uploads[0].Size)
				}
				return []entities.FileAttachment{{ID: "f-1", OriginalName: "takeoff.pdf", FileType: entities.FileTypeEstimation}}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/files?proposalId=p-1", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, _ := body["data"].([]any)
		if len(data) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("json body attaches a link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc)

		r := newActorRouter(bdmActor)
		r.POST("/files", h.CreateFiles)

		uc.EXPECT().AttachLink(gomock.Any(), bdmActor, "p-1", "https://drive.example.com/specs", "Drawings").
			Return(entities.FileAttachment{ID: "f-2", URL: "https://drive.example.com/specs", OriginalName: "Drawings"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/files?proposalId=p-1", bytes.NewBufferString(`{"url":"https://drive.example.com/specs","title":"Drawings"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data, _ := body["data"].(map[string]any)
		if data["id"] != "f-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("link with invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc)

		r := newActorRouter(bdmActor)
		r.POST("/files", h.CreateFiles)

		req := httptest.NewRequest(http.MethodPost, "/files?proposalId=p-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc)

		r := newActorRouter(bdmActor)
		r.POST("/files", h.CreateFiles)

		uc.EXPECT().AttachLink(gomock.Any(), bdmActor, "missing", "https://example.com", "").
			Return(entities.FileAttachment{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodPost, "/files?proposalId=missing", bytes.NewBufferString(`{"url":"https://example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestFileHandler_GetFiles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing proposal id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc)

		r := newActorRouter(bdmActor)
		r.GET("/files", h.GetFiles)

		req := httptest.NewRequest(http.MethodGet, "/files", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc)

		r := newActorRouter(directorActor)
		r.GET("/files", h.GetFiles)

		uc.EXPECT().ListByProposal(gomock.Any(), directorActor, "p-1").
			Return([]entities.FileAttachment{{ID: "f-1"}, {ID: "f-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/files?proposalId=p-1", nil)
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
}

func TestFileHandler_DeleteFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc)

		r := newActorRouter(bdmActor)
		r.DELETE("/files", h.DeleteFile)

		req := httptest.NewRequest(http.MethodDelete, "/files", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not uploader", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc)

		r := newActorRouter(estimatorActor)
		r.DELETE("/files", h.DeleteFile)

		uc.EXPECT().Delete(gomock.Any(), estimatorActor, "f-1").Return(workflow.ErrNotOwner)

		req := httptest.NewRequest(http.MethodDelete, "/files?id=f-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFileUseCase(ctrl)
		h := NewFileHandler(uc)

		r := newActorRouter(directorActor)
		r.DELETE("/files", h.DeleteFile)

		uc.EXPECT().Delete(gomock.Any(), directorActor, "f-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/files?id=f-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "File deleted" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapFileError(t *testing.T) {
	if got := mapFileError(usecase.ErrInvalidFileID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapFileError(usecase.ErrInvalidUpload); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapFileError(usecase.ErrInvalidLinkURL); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapFileError(workflow.ErrRoleNotAllowed); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapFileError(usecase.ErrProposalNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapFileError(usecase.ErrFileNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapFileError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
