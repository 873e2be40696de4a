package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/usecase/interfaces"
)

// NatsPublisher publishes proposal workflow events to NATS for consumption
// by downstream services (reporting, client-facing integrations).
//
// Subject convention: proposals.<action>
// Actions follow the workflow action names: create, add_estimation,
// set_pricing, director_approve, director_reject, resubmit_after_revision,
// submit_to_client, mark_job_won, mark_job_lost, delete.
//
// Publishing is best-effort: the caller logs failures and moves on, the
// transition itself is already committed. A nil publisher is a no-op.
type NatsPublisher struct {
	conn *nats.Conn
	log  zerolog.Logger
}

var _ interfaces.IEventPublisher = (*NatsPublisher)(nil)

// TransitionEvent is the JSON schema published to NATS.
type TransitionEvent struct {
	Action      string `json:"action"`
	ProposalID  string `json:"proposal_id"`
	ProjectName string `json:"project_name"`
	Status      string `json:"status"`
	ActorName   string `json:"actor_name"`
	Revision    int64  `json:"revision"`
	OccurredAt  string `json:"occurred_at"`
}

// NewNatsPublisher connects to the NATS server named by NATS_URL. When the
// variable is unset the publisher is disabled and the constructor returns
// (nil, nil); callers treat a nil publisher as a no-op.
func NewNatsPublisher(log zerolog.Logger) (*NatsPublisher, error) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		return nil, nil
	}

	conn, err := nats.Connect(url,
		nats.Name("bidtrack-api"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return &NatsPublisher{conn: conn, log: log}, nil
}

// PublishTransition publishes a proposal workflow event.
// Subject: proposals.<action>
func (p *NatsPublisher) PublishTransition(_ context.Context, action string, proposal entities.Proposal, actorName string) error {
	if p == nil || p.conn == nil {
		return nil
	}

	event := TransitionEvent{
		Action:      action,
		ProposalID:  proposal.ID,
		ProjectName: proposal.ProjectName,
		Status:      string(proposal.Status),
		ActorName:   actorName,
		Revision:    proposal.Revision,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal transition event: %w", err)
	}

	subject := fmt.Sprintf("proposals.%s", action)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	p.log.Debug().
		Str("subject", subject).
		Str("proposal_id", proposal.ID).
		Msg("events: transition published")
	return nil
}

// Close drains the connection. Safe on a nil publisher.
func (p *NatsPublisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	p.conn.Close()
}
