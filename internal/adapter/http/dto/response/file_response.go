package response

import (
	"time"

	"bidtrack/internal/domain/entities"
)

type FileResponse struct {
	ID             string    `json:"id"`
	OriginalName   string    `json:"originalName"`
	FileName       string    `json:"fileName"`
	URL            string    `json:"url"`
	MimeType       string    `json:"mimeType,omitempty"`
	FileSize       int64     `json:"fileSize"`
	ProposalID     string    `json:"proposalId"`
	FileType       string    `json:"fileType"`
	UploadedByUID  string    `json:"uploadedByUid"`
	UploadedByRole string    `json:"uploadedByRole"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromFile(f entities.FileAttachment) FileResponse {
	return FileResponse{
		ID:             f.ID,
		OriginalName:   f.OriginalName,
		FileName:       f.FileName,
		URL:            f.URL,
		MimeType:       f.MimeType,
		FileSize:       f.FileSize,
		ProposalID:     f.ProposalID,
		FileType:       string(f.FileType),
		UploadedByUID:  f.UploadedByUID,
		UploadedByRole: string(f.UploadedByRole),
		Status:         f.Status,
		CreatedAt:      f.CreatedAt,
	}
}

func FromFiles(fs []entities.FileAttachment) []FileResponse {
	out := make([]FileResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, FromFile(f))
	}
	return out
}
