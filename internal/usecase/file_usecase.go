package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/domain/workflow"
	"bidtrack/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrInvalidFileID  = errors.New("invalid file id")
	ErrInvalidUpload  = errors.New("invalid upload")
	ErrInvalidLinkURL = errors.New("invalid link url")
)

// FileUpload is one incoming multipart part, already opened by the handler.
type FileUpload struct {
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
}

//go:generate mockgen -source=file_usecase.go -destination=../adapter/http/handlers/mocks/file_usecase_mock.go -package=mocks

// IFileUseCase exposes attachment operations: blob uploads, external links,
// role-aware listing and deletion.
type IFileUseCase interface {
	Upload(ctx context.Context, actor workflow.Actor, proposalID string, uploads []FileUpload) ([]entities.FileAttachment, error)
	AttachLink(ctx context.Context, actor workflow.Actor, proposalID, linkURL, title string) (entities.FileAttachment, error)
	ListByProposal(ctx context.Context, actor workflow.Actor, proposalID string) ([]entities.FileAttachment, error)
	Delete(ctx context.Context, actor workflow.Actor, id string) error
}

type FileUseCase struct {
	repo      interfaces.IFileRepository
	proposals interfaces.IProposalRepository
	blobs     interfaces.IBlobStore
	log       zerolog.Logger
}

var _ IFileUseCase = (*FileUseCase)(nil)

func NewFileUseCase(
	repo interfaces.IFileRepository,
	proposals interfaces.IProposalRepository,
	blobs interfaces.IBlobStore,
	log zerolog.Logger,
) *FileUseCase {
	return &FileUseCase{
		repo:      repo,
		proposals: proposals,
		blobs:     blobs,
		log:       log.With().Str("component", "file_usecase").Logger(),
	}
}

// Upload stores each part in the blob store and records its metadata document,
// strictly in order. A failure aborts the whole request; parts already stored
// keep their documents so nothing acknowledged ever dangles.
func (u *FileUseCase) Upload(ctx context.Context, actor workflow.Actor, proposalID string, uploads []FileUpload) ([]entities.FileAttachment, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: no files in request", ErrInvalidUpload)
	}
	p, err := u.fetchProposal(ctx, actor, proposalID)
	if err != nil {
		return nil, err
	}

	fileType := workflow.UploadType(actor.Role)
	out := make([]entities.FileAttachment, 0, len(uploads))
	for _, up := range uploads {
		name := strings.TrimSpace(up.OriginalName)
		if name == "" || up.Content == nil {
			return nil, fmt.Errorf("%w: file name and content are required", ErrInvalidUpload)
		}

		key := fmt.Sprintf("%s/%s%s", p.ID, uuid.NewString(), filepath.Ext(name))
		blobURL, err := u.blobs.Put(ctx, key, up.MimeType, up.Size, up.Content)
		if err != nil {
			return nil, err
		}

		f := entities.FileAttachment{
			ID:             uuid.NewString(),
			OriginalName:   name,
			FileName:       key,
			URL:            blobURL,
			MimeType:       up.MimeType,
			FileSize:       up.Size,
			ProposalID:     p.ID,
			FileType:       fileType,
			UploadedByUID:  actor.UID,
			UploadedByRole: actor.Role,
			Status:         "active",
			CreatedAt:      time.Now().UTC(),
		}
		created, err := u.repo.Create(ctx, f)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, nil
}

// AttachLink records an external URL as an attachment; no blob is written.
func (u *FileUseCase) AttachLink(ctx context.Context, actor workflow.Actor, proposalID, linkURL, title string) (entities.FileAttachment, error) {
	p, err := u.fetchProposal(ctx, actor, proposalID)
	if err != nil {
		return entities.FileAttachment{}, err
	}

	parsed, err := url.Parse(strings.TrimSpace(linkURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return entities.FileAttachment{}, ErrInvalidLinkURL
	}
	name := strings.TrimSpace(title)
	if name == "" {
		name = parsed.Host
	}

	f := entities.FileAttachment{
		ID:             uuid.NewString(),
		OriginalName:   name,
		URL:            parsed.String(),
		ProposalID:     p.ID,
		FileType:       entities.FileTypeLink,
		UploadedByUID:  actor.UID,
		UploadedByRole: actor.Role,
		Status:         "active",
		CreatedAt:      time.Now().UTC(),
	}
	return u.repo.Create(ctx, f)
}

// ListByProposal returns the attachments the actor may see at the proposal's
// current status.
func (u *FileUseCase) ListByProposal(ctx context.Context, actor workflow.Actor, proposalID string) ([]entities.FileAttachment, error) {
	p, err := u.fetchProposal(ctx, actor, proposalID)
	if err != nil {
		return nil, err
	}

	all, err := u.repo.ListByProposal(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	visible := make([]entities.FileAttachment, 0, len(all))
	for _, f := range all {
		if workflow.FileVisible(f, p, actor) {
			visible = append(visible, f)
		}
	}
	return visible, nil
}

func (u *FileUseCase) Delete(ctx context.Context, actor workflow.Actor, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidFileID
	}
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f.ID == "" {
		return ErrFileNotFound
	}
	if !workflow.CanDeleteFile(f, actor) {
		return workflow.ErrRoleNotAllowed
	}

	if f.FileType != entities.FileTypeLink && f.FileName != "" {
		if err := u.blobs.Delete(ctx, f.FileName); err != nil {
			u.log.Warn().Err(err).Str("file_id", f.ID).Str("key", f.FileName).Msg("blob cleanup failed")
		}
	}
	return u.repo.Delete(ctx, f.ID)
}

func (u *FileUseCase) fetchProposal(ctx context.Context, actor workflow.Actor, proposalID string) (entities.Proposal, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	if actor.Role == entities.RoleBDM && p.CreatedByUID != actor.UID {
		return entities.Proposal{}, workflow.ErrNotOwner
	}
	return p, nil
}
