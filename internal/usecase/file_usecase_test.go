package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"bidtrack/internal/domain/entities"
	mock_interfaces "bidtrack/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type fileMocks struct {
	repo      *mock_interfaces.MockIFileRepository
	proposals *mock_interfaces.MockIProposalRepository
	blobs     *mock_interfaces.MockIBlobStore
}

func newFileUseCaseForTest(t *testing.T) (*FileUseCase, fileMocks) {
	ctrl := gomock.NewController(t)
	m := fileMocks{
		repo:      mock_interfaces.NewMockIFileRepository(ctrl),
		proposals: mock_interfaces.NewMockIProposalRepository(ctrl),
		blobs:     mock_interfaces.NewMockIBlobStore(ctrl),
	}
	return NewFileUseCase(m.repo, m.proposals, m.blobs, zerolog.Nop()), m
}

func TestFileUseCase_Upload(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		uc, _ := newFileUseCaseForTest(t)
		_, err := uc.Upload(context.Background(), bdmActor, "p-1", nil)
		if !errors.Is(err, ErrInvalidUpload) {
			t.Fatalf("expected ErrInvalidUpload, got %v", err)
		}
	})

	t.Run("proposal not found", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Proposal{}, nil)

		_, err := uc.Upload(context.Background(), bdmActor, "p-1", []FileUpload{{OriginalName: "a.pdf", Content: strings.NewReader("x")}})
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("nameless part", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.StatusPendingEstimation), nil)

		_, err := uc.Upload(context.Background(), bdmActor, "p-1", []FileUpload{{OriginalName: "  ", Content: strings.NewReader("x")}})
		if !errors.Is(err, ErrInvalidUpload) {
			t.Fatalf("expected ErrInvalidUpload, got %v", err)
		}
	})

	t.Run("blob error aborts", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.StatusPendingEstimation), nil)
		m.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), "application/pdf", int64(3), gomock.Any()).Return("", errors.New("s3"))

		_, err := uc.Upload(context.Background(), bdmActor, "p-1", []FileUpload{
			{OriginalName: "scope.pdf", MimeType: "application/pdf", Size: 3, Content: strings.NewReader("abc")},
		})
		if err == nil || err.Error() != "s3" {
			t.Fatalf("expected s3 error, got %v", err)
		}
	})

	t.Run("estimator uploads become estimation files", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.StatusPendingEstimation), nil)
		m.blobs.EXPECT().Put(gomock.Any(), gomock.Any(), "application/pdf", int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, key, _ string, _ int64, _ io.Reader) (string, error) {
				if !strings.HasPrefix(key, "p-1/") || !strings.HasSuffix(key, ".pdf") {
					t.Fatalf("unexpected blob key: %s", key)
				}
				return "https://blobs.example.com/" + key, nil
			},
		)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.FileAttachment) (entities.FileAttachment, error) {
				if f.FileType != entities.FileTypeEstimation || f.UploadedByUID != "est-1" {
					t.Fatalf("unexpected attachment: %+v", f)
				}
				if f.ID == "" || f.URL == "" || f.Status != "active" {
					t.Fatalf("unexpected attachment: %+v", f)
				}
				return f, nil
			},
		)

		out, err := uc.Upload(context.Background(), estimatorActor, "p-1", []FileUpload{
			{OriginalName: "takeoff.pdf", MimeType: "application/pdf", Size: 3, Content: strings.NewReader("abc")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].OriginalName != "takeoff.pdf" {
			t.Fatalf("unexpected result: %+v", out)
		}
	})
}

func TestFileUseCase_AttachLink(t *testing.T) {
	t.Run("bdm cannot attach to another bdm's proposal", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		other := storedProposal(entities.StatusPendingEstimation)
		other.CreatedByUID = "bdm-2"
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(other, nil)

		_, err := uc.AttachLink(context.Background(), bdmActor, "p-1", "https://drive.example.com/x", "")
		if err == nil {
			t.Fatalf("expected ownership error")
		}
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.StatusPendingEstimation), nil)

		_, err := uc.AttachLink(context.Background(), bdmActor, "p-1", "ftp://old.example.com/x", "")
		if !errors.Is(err, ErrInvalidLinkURL) {
			t.Fatalf("expected ErrInvalidLinkURL, got %v", err)
		}
	})

	t.Run("title defaults to host", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.StatusPendingEstimation), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.FileAttachment) (entities.FileAttachment, error) {
				if f.FileType != entities.FileTypeLink || f.OriginalName != "drive.example.com" {
					t.Fatalf("unexpected attachment: %+v", f)
				}
				if f.FileName != "" {
					t.Fatalf("link must not carry a blob key: %+v", f)
				}
				return f, nil
			},
		)

		res, err := uc.AttachLink(context.Background(), bdmActor, "p-1", " https://drive.example.com/folder ", " ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.URL != "https://drive.example.com/folder" {
			t.Fatalf("unexpected url: %s", res.URL)
		}
	})
}

func TestFileUseCase_ListByProposal(t *testing.T) {
	attachments := []entities.FileAttachment{
		{ID: "f-1", FileType: entities.FileTypeProject, ProposalID: "p-1"},
		{ID: "f-2", FileType: entities.FileTypeEstimation, ProposalID: "p-1"},
		{ID: "f-3", FileType: entities.FileTypeLink, ProposalID: "p-1"},
	}

	t.Run("creator does not see estimation files before approval", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.StatusPendingDirectorApproval), nil)
		m.repo.EXPECT().ListByProposal(gomock.Any(), "p-1").Return(attachments, nil)

		res, err := uc.ListByProposal(context.Background(), bdmActor, "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 visible files, got %d", len(res))
		}
		for _, f := range res {
			if f.FileType == entities.FileTypeEstimation {
				t.Fatalf("estimation file leaked to creator: %+v", f)
			}
		}
	})

	t.Run("creator sees estimation files once approved", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.StatusApproved), nil)
		m.repo.EXPECT().ListByProposal(gomock.Any(), "p-1").Return(attachments, nil)

		res, err := uc.ListByProposal(context.Background(), bdmActor, "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 {
			t.Fatalf("expected all files visible, got %d", len(res))
		}
	})

	t.Run("director sees everything regardless of status", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.StatusPendingEstimation), nil)
		m.repo.EXPECT().ListByProposal(gomock.Any(), "p-1").Return(attachments, nil)

		res, err := uc.ListByProposal(context.Background(), directorActor, "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 {
			t.Fatalf("expected all files visible, got %d", len(res))
		}
	})
}

func TestFileUseCase_Delete(t *testing.T) {
	stored := entities.FileAttachment{
		ID:            "f-1",
		FileName:      "p-1/abc.pdf",
		FileType:      entities.FileTypeProject,
		ProposalID:    "p-1",
		UploadedByUID: "bdm-1",
	}

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newFileUseCaseForTest(t)
		if err := uc.Delete(context.Background(), bdmActor, " "); !errors.Is(err, ErrInvalidFileID) {
			t.Fatalf("expected ErrInvalidFileID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(entities.FileAttachment{}, nil)

		if err := uc.Delete(context.Background(), bdmActor, "f-1"); !errors.Is(err, ErrFileNotFound) {
			t.Fatalf("expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("only uploader or director", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(stored, nil)

		err := uc.Delete(context.Background(), cooActor, "f-1")
		if err == nil {
			t.Fatalf("expected role error")
		}
	})

	t.Run("uploader deletes blob and document", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "f-1").Return(stored, nil)
		m.blobs.EXPECT().Delete(gomock.Any(), "p-1/abc.pdf").Return(nil)
		m.repo.EXPECT().Delete(gomock.Any(), "f-1").Return(nil)

		if err := uc.Delete(context.Background(), bdmActor, "f-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("link skips the blob store", func(t *testing.T) {
		uc, m := newFileUseCaseForTest(t)
		link := entities.FileAttachment{ID: "f-2", FileType: entities.FileTypeLink, URL: "https://x.example.com", UploadedByUID: "bdm-1"}
		m.repo.EXPECT().GetByID(gomock.Any(), "f-2").Return(link, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "f-2").Return(nil)

		if err := uc.Delete(context.Background(), directorActor, "f-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
