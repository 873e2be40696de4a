package response

import (
	"time"

	"bidtrack/internal/domain/entities"
)

type NotificationResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	RecipientUID  string    `json:"recipientUid,omitempty"`
	RecipientRole string    `json:"recipientRole,omitempty"`
	ProposalID    string    `json:"proposalId"`
	ProjectName   string    `json:"projectName"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		Type:          n.Type,
		RecipientUID:  n.RecipientUID,
		RecipientRole: string(n.RecipientRole),
		ProposalID:    n.ProposalID,
		ProjectName:   n.ProjectName,
		Message:       n.Message,
		IsRead:        n.IsRead,
		CreatedAt:     n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}

// MarkAllReadResponse reports how many notifications a bulk mark-read touched.
type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}
