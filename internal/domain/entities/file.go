package entities

import "time"

// FileType classifies an attachment. Links carry no blob; their URL points at an
// external resource instead of the blob store.
type FileType string

const (
	FileTypeProject    FileType = "project"
	FileTypeEstimation FileType = "estimation"
	FileTypeLink       FileType = "link"
)

// FileAttachment is the metadata document for one uploaded file or link.
// The bytes themselves live in the blob store under FileName.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id, created_at
type FileAttachment struct {
	ID             string    `json:"id"`
	OriginalName   string    `json:"original_name"`
	FileName       string    `json:"file_name"`
	URL            string    `json:"url"`
	MimeType       string    `json:"mime_type,omitempty"`
	FileSize       int64     `json:"file_size"`
	ProposalID     string    `json:"proposal_id"`
	FileType       FileType  `json:"file_type"`
	UploadedByUID  string    `json:"uploaded_by_uid"`
	UploadedByRole Role      `json:"uploaded_by_role"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
