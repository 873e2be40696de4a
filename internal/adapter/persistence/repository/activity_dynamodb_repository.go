package repository

import (
	"context"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultActivitiesTableName = "activities"
	activitiesProposalIndex    = "proposal_id-index"
	activitiesPerformerIndex   = "performed_by-index"
	activitiesRecordTypeIndex  = "record_type-index"
	activityRecordType         = "activity"
)

type activityItem struct {
	ID              string `dynamodbav:"id"`
	RecordType      string `dynamodbav:"record_type"`
	Type            string `dynamodbav:"type"`
	ProposalID      string `dynamodbav:"proposal_id"`
	ProjectName     string `dynamodbav:"project_name"`
	ClientCompany   string `dynamodbav:"client_company"`
	PerformedByUID  string `dynamodbav:"performed_by_uid"`
	PerformedByName string `dynamodbav:"performed_by_name"`
	PerformedByRole string `dynamodbav:"performed_by_role"`
	Details         string `dynamodbav:"details,omitempty"`
	Timestamp       string `dynamodbav:"ts"`
}

// ActivityDynamoRepository persists audit feed entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id, SK: ts)
//   - GSI: performed_by-index (PK: performed_by_uid, SK: ts)
//   - GSI: record_type-index (PK: record_type, SK: ts)

type ActivityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityRepository = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb *dynamodb.Client) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITIES_TABLE", defaultActivitiesTableName),
	}
}

func (r *ActivityDynamoRepository) Create(ctx context.Context, a entities.Activity) (entities.Activity, error) {
	av, err := attributevalue.MarshalMap(toActivityItem(a))
	if err != nil {
		return entities.Activity{}, err
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
		return entities.Activity{}, err
	}
	return a, nil
}

func (r *ActivityDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.Activity, error) {
	return r.query(ctx, activitiesRecordTypeIndex, "record_type = :v", activityRecordType, limit)
}

func (r *ActivityDynamoRepository) ListByProposal(ctx context.Context, proposalID string, limit int) ([]entities.Activity, error) {
	return r.query(ctx, activitiesProposalIndex, "proposal_id = :v", proposalID, limit)
}

func (r *ActivityDynamoRepository) ListByPerformer(ctx context.Context, performerUID string, limit int) ([]entities.Activity, error) {
	return r.query(ctx, activitiesPerformerIndex, "performed_by_uid = :v", performerUID, limit)
}

func (r *ActivityDynamoRepository) query(ctx context.Context, index, keyExpr, value string, limit int) ([]entities.Activity, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyExpr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Activity, 0, len(out.Items))
	for _, raw := range out.Items {
		var it activityItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromActivityItem(it))
	}
	return items, nil
}

func toActivityItem(a entities.Activity) activityItem {
	return activityItem{
		ID:              a.ID,
		RecordType:      activityRecordType,
		Type:            a.Type,
		ProposalID:      a.ProposalID,
		ProjectName:     a.ProjectName,
		ClientCompany:   a.ClientCompany,
		PerformedByUID:  a.PerformedByUID,
		PerformedByName: a.PerformedByName,
		PerformedByRole: string(a.PerformedByRole),
		Details:         a.Details,
		Timestamp:       formatTime(a.Timestamp),
	}
}

func fromActivityItem(it activityItem) entities.Activity {
	return entities.Activity{
		ID:              it.ID,
		Type:            it.Type,
		ProposalID:      it.ProposalID,
		ProjectName:     it.ProjectName,
		ClientCompany:   it.ClientCompany,
		PerformedByUID:  it.PerformedByUID,
		PerformedByName: it.PerformedByName,
		PerformedByRole: entities.Role(it.PerformedByRole),
		Details:         it.Details,
		Timestamp:       parseTime(it.Timestamp),
	}
}
