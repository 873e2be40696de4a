package repository

import (
	"context"
	"errors"
	"strconv"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultProposalsTableName = "proposals"
	proposalsCreatorIndex     = "created_by_uid-index"
	proposalsRecordTypeIndex  = "record_type-index"

	// Constant GSI partition so the whole collection can be read newest first.
	proposalRecordType = "proposal"
)

type proposalItem struct {
	ID            string `dynamodbav:"id"`
	RecordType    string `dynamodbav:"record_type"`
	ProjectName   string `dynamodbav:"project_name"`
	ClientCompany string `dynamodbav:"client_company"`
	ProjectType   string `dynamodbav:"project_type"`
	ScopeOfWork   string `dynamodbav:"scope_of_work"`
	Priority      string `dynamodbav:"priority,omitempty"`
	Country       string `dynamodbav:"country,omitempty"`
	Timeline      string `dynamodbav:"timeline,omitempty"`
	CreatedByUID  string `dynamodbav:"created_by_uid"`
	CreatedByName string `dynamodbav:"created_by_name"`
	Status        string `dynamodbav:"status"`

	Estimation       *estimationItem       `dynamodbav:"estimation,omitempty"`
	Pricing          *pricingItem          `dynamodbav:"pricing,omitempty"`
	DirectorApproval *directorApprovalItem `dynamodbav:"director_approval,omitempty"`
	JobOutcome       *jobOutcomeItem       `dynamodbav:"job_outcome,omitempty"`
	RevisionHistory  []revisionEntryItem   `dynamodbav:"revision_history,omitempty"`
	ChangeLog        []changeLogEntryItem  `dynamodbav:"change_log"`

	Revision  int64  `dynamodbav:"revision"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type estimationItem struct {
	TotalHours      string `dynamodbav:"total_hours"`
	QuoteType       string `dynamodbav:"quote_type"`
	Notes           string `dynamodbav:"notes,omitempty"`
	EstimatedBy     string `dynamodbav:"estimated_by"`
	EstimatedByName string `dynamodbav:"estimated_by_name"`
	EstimatedAt     string `dynamodbav:"estimated_at"`
}

type pricingItem struct {
	HourlyRate    string `dynamodbav:"hourly_rate"`
	MaterialsCost string `dynamodbav:"materials_cost"`
	QuoteValue    string `dynamodbav:"quote_value"`
	ProfitMargin  string `dynamodbav:"profit_margin"`
	Currency      string `dynamodbav:"currency"`
	PricedBy      string `dynamodbav:"priced_by"`
	PricedByName  string `dynamodbav:"priced_by_name"`
	PricedAt      string `dynamodbav:"priced_at"`
}

type directorApprovalItem struct {
	Approved           bool   `dynamodbav:"approved"`
	Notes              string `dynamodbav:"notes,omitempty"`
	ApprovedBy         string `dynamodbav:"approved_by,omitempty"`
	ApprovedByName     string `dynamodbav:"approved_by_name,omitempty"`
	ApprovedAt         string `dynamodbav:"approved_at,omitempty"`
	RejectedBy         string `dynamodbav:"rejected_by,omitempty"`
	RejectedByName     string `dynamodbav:"rejected_by_name,omitempty"`
	RejectedAt         string `dynamodbav:"rejected_at,omitempty"`
	RequiresRevisionBy string `dynamodbav:"requires_revision_by,omitempty"`
}

type jobOutcomeItem struct {
	Outcome        string `dynamodbav:"outcome"`
	Reason         string `dynamodbav:"reason,omitempty"`
	Notes          string `dynamodbav:"notes,omitempty"`
	RecordedBy     string `dynamodbav:"recorded_by"`
	RecordedByName string `dynamodbav:"recorded_by_name"`
	RecordedAt     string `dynamodbav:"recorded_at"`
}

type changeLogEntryItem struct {
	Timestamp       string `dynamodbav:"timestamp"`
	Action          string `dynamodbav:"action"`
	PerformedByName string `dynamodbav:"performed_by_name"`
	Details         string `dynamodbav:"details,omitempty"`
}

type revisionEntryItem struct {
	ResubmittedBy     string `dynamodbav:"resubmitted_by"`
	ResubmittedByName string `dynamodbav:"resubmitted_by_name"`
	Notes             string `dynamodbav:"notes,omitempty"`
	ResubmittedAt     string `dynamodbav:"resubmitted_at"`
}

// ProposalDynamoRepository persists Proposal documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: created_by_uid-index (PK: created_by_uid, SK: created_at)
//   - GSI: record_type-index (PK: record_type, SK: created_at)
//
// Money and hours are stored as strings so decimal values survive round trips
// without float drift.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListAll(ctx context.Context, limit int) ([]entities.Proposal, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsRecordTypeIndex),
		KeyConditionExpression: aws.String("record_type = :rt"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rt": &types.AttributeValueMemberS{Value: proposalRecordType},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
}

func (r *ProposalDynamoRepository) ListByCreator(ctx context.Context, creatorUID string, limit int) ([]entities.Proposal, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsCreatorIndex),
		KeyConditionExpression: aws.String("created_by_uid = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: creatorUID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
}

// Update replaces the whole document, conditional on the revision the caller
// read. On a conditional failure it re-reads to distinguish a vanished
// document (zero value) from a lost race (ErrRevisionMismatch).
func (r *ProposalDynamoRepository) Update(ctx context.Context, p entities.Proposal, expectedRevision int64) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #revision = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#revision": "revision",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedRevision, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			current, gerr := r.GetByID(ctx, p.ID)
			if gerr != nil {
				return entities.Proposal{}, gerr
			}
			if current.ID == "" {
				return entities.Proposal{}, nil
			}
			return entities.Proposal{}, interfaces.ErrRevisionMismatch
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ProposalDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Proposal, 0, len(out.Items))
	for _, raw := range out.Items {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProposalItem(it))
	}
	return items, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	it := proposalItem{
		ID:            p.ID,
		RecordType:    proposalRecordType,
		ProjectName:   p.ProjectName,
		ClientCompany: p.ClientCompany,
		ProjectType:   p.ProjectType,
		ScopeOfWork:   p.ScopeOfWork,
		Priority:      p.Priority,
		Country:       p.Country,
		Timeline:      p.Timeline,
		CreatedByUID:  p.CreatedByUID,
		CreatedByName: p.CreatedByName,
		Status:        string(p.Status),
		Revision:      p.Revision,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}

	if p.Estimation != nil {
		it.Estimation = &estimationItem{
			TotalHours:      floatToString(p.Estimation.TotalHours),
			QuoteType:       p.Estimation.QuoteType,
			Notes:           p.Estimation.Notes,
			EstimatedBy:     p.Estimation.EstimatedBy,
			EstimatedByName: p.Estimation.EstimatedByName,
			EstimatedAt:     formatTime(p.Estimation.EstimatedAt),
		}
	}
	if p.Pricing != nil {
		it.Pricing = &pricingItem{
			HourlyRate:    p.Pricing.HourlyRate.String(),
			MaterialsCost: p.Pricing.MaterialsCost.String(),
			QuoteValue:    p.Pricing.QuoteValue.String(),
			ProfitMargin:  floatToString(p.Pricing.ProfitMargin),
			Currency:      p.Pricing.Currency,
			PricedBy:      p.Pricing.PricedBy,
			PricedByName:  p.Pricing.PricedByName,
			PricedAt:      formatTime(p.Pricing.PricedAt),
		}
	}
	if p.DirectorApproval != nil {
		it.DirectorApproval = &directorApprovalItem{
			Approved:           p.DirectorApproval.Approved,
			Notes:              p.DirectorApproval.Notes,
			ApprovedBy:         p.DirectorApproval.ApprovedBy,
			ApprovedByName:     p.DirectorApproval.ApprovedByName,
			ApprovedAt:         formatTimePtr(p.DirectorApproval.ApprovedAt),
			RejectedBy:         p.DirectorApproval.RejectedBy,
			RejectedByName:     p.DirectorApproval.RejectedByName,
			RejectedAt:         formatTimePtr(p.DirectorApproval.RejectedAt),
			RequiresRevisionBy: string(p.DirectorApproval.RequiresRevisionBy),
		}
	}
	if p.JobOutcome != nil {
		it.JobOutcome = &jobOutcomeItem{
			Outcome:        p.JobOutcome.Outcome,
			Reason:         p.JobOutcome.Reason,
			Notes:          p.JobOutcome.Notes,
			RecordedBy:     p.JobOutcome.RecordedBy,
			RecordedByName: p.JobOutcome.RecordedByName,
			RecordedAt:     formatTime(p.JobOutcome.RecordedAt),
		}
	}
	for _, e := range p.ChangeLog {
		it.ChangeLog = append(it.ChangeLog, changeLogEntryItem{
			Timestamp:       formatTime(e.Timestamp),
			Action:          e.Action,
			PerformedByName: e.PerformedByName,
			Details:         e.Details,
		})
	}
	for _, e := range p.RevisionHistory {
		it.RevisionHistory = append(it.RevisionHistory, revisionEntryItem{
			ResubmittedBy:     e.ResubmittedBy,
			ResubmittedByName: e.ResubmittedByName,
			Notes:             e.Notes,
			ResubmittedAt:     formatTime(e.ResubmittedAt),
		})
	}
	return it
}

func fromProposalItem(it proposalItem) entities.Proposal {
	p := entities.Proposal{
		ID:            it.ID,
		ProjectName:   it.ProjectName,
		ClientCompany: it.ClientCompany,
		ProjectType:   it.ProjectType,
		ScopeOfWork:   it.ScopeOfWork,
		Priority:      it.Priority,
		Country:       it.Country,
		Timeline:      it.Timeline,
		CreatedByUID:  it.CreatedByUID,
		CreatedByName: it.CreatedByName,
		Status:        entities.ProposalStatus(it.Status),
		Revision:      it.Revision,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}

	if it.Estimation != nil {
		hours, _ := strconv.ParseFloat(it.Estimation.TotalHours, 64)
		p.Estimation = &entities.Estimation{
			TotalHours:      hours,
			QuoteType:       it.Estimation.QuoteType,
			Notes:           it.Estimation.Notes,
			EstimatedBy:     it.Estimation.EstimatedBy,
			EstimatedByName: it.Estimation.EstimatedByName,
			EstimatedAt:     parseTime(it.Estimation.EstimatedAt),
		}
	}
	if it.Pricing != nil {
		hourlyRate, _ := decimal.NewFromString(it.Pricing.HourlyRate)
		materialsCost, _ := decimal.NewFromString(it.Pricing.MaterialsCost)
		quoteValue, _ := decimal.NewFromString(it.Pricing.QuoteValue)
		margin, _ := strconv.ParseFloat(it.Pricing.ProfitMargin, 64)
		p.Pricing = &entities.Pricing{
			HourlyRate:    hourlyRate,
			MaterialsCost: materialsCost,
			QuoteValue:    quoteValue,
			ProfitMargin:  margin,
			Currency:      it.Pricing.Currency,
			PricedBy:      it.Pricing.PricedBy,
			PricedByName:  it.Pricing.PricedByName,
			PricedAt:      parseTime(it.Pricing.PricedAt),
		}
	}
	if it.DirectorApproval != nil {
		p.DirectorApproval = &entities.DirectorApproval{
			Approved:           it.DirectorApproval.Approved,
			Notes:              it.DirectorApproval.Notes,
			ApprovedBy:         it.DirectorApproval.ApprovedBy,
			ApprovedByName:     it.DirectorApproval.ApprovedByName,
			ApprovedAt:         parseTimePtr(it.DirectorApproval.ApprovedAt),
			RejectedBy:         it.DirectorApproval.RejectedBy,
			RejectedByName:     it.DirectorApproval.RejectedByName,
			RejectedAt:         parseTimePtr(it.DirectorApproval.RejectedAt),
			RequiresRevisionBy: entities.Role(it.DirectorApproval.RequiresRevisionBy),
		}
	}
	if it.JobOutcome != nil {
		p.JobOutcome = &entities.JobOutcome{
			Outcome:        it.JobOutcome.Outcome,
			Reason:         it.JobOutcome.Reason,
			Notes:          it.JobOutcome.Notes,
			RecordedBy:     it.JobOutcome.RecordedBy,
			RecordedByName: it.JobOutcome.RecordedByName,
			RecordedAt:     parseTime(it.JobOutcome.RecordedAt),
		}
	}
	for _, e := range it.ChangeLog {
		p.ChangeLog = append(p.ChangeLog, entities.ChangeLogEntry{
			Timestamp:       parseTime(e.Timestamp),
			Action:          e.Action,
			PerformedByName: e.PerformedByName,
			Details:         e.Details,
		})
	}
	for _, e := range it.RevisionHistory {
		p.RevisionHistory = append(p.RevisionHistory, entities.RevisionEntry{
			ResubmittedBy:     e.ResubmittedBy,
			ResubmittedByName: e.ResubmittedByName,
			Notes:             e.Notes,
			ResubmittedAt:     parseTime(e.ResubmittedAt),
		})
	}
	return p
}
