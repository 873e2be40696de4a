package repository

import (
	"context"
	"errors"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsUIDIndex         = "recipient_uid-index"
	notificationsRoleIndex        = "recipient_role-index"
)

type notificationItem struct {
	ID            string `dynamodbav:"id"`
	Type          string `dynamodbav:"type"`
	RecipientUID  string `dynamodbav:"recipient_uid,omitempty"`
	RecipientRole string `dynamodbav:"recipient_role,omitempty"`
	ProposalID    string `dynamodbav:"proposal_id"`
	ProjectName   string `dynamodbav:"project_name"`
	Message       string `dynamodbav:"message"`
	IsRead        bool   `dynamodbav:"is_read"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists notifications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: recipient_uid-index (PK: recipient_uid, SK: created_at)
//   - GSI: recipient_role-index (PK: recipient_role, SK: created_at)
//
// Sparse GSIs: an item carries recipient_uid or recipient_role, never both, so
// each index only holds the notifications addressed that way.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) ListByRecipientUID(ctx context.Context, uid string, limit int) ([]entities.Notification, error) {
	return r.query(ctx, notificationsUIDIndex, "recipient_uid = :v", uid, limit)
}

func (r *NotificationDynamoRepository) ListByRecipientRole(ctx context.Context, role entities.Role, limit int) ([]entities.Notification, error) {
	return r.query(ctx, notificationsRoleIndex, "recipient_role = :v", string(role), limit)
}

// MarkRead flips is_read and returns the new state; a missing id comes back as
// the zero value.
func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_read = :true"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#is_read": "is_read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) query(ctx context.Context, index, keyExpr, value string, limit int) ([]entities.Notification, error) {
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

	items := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNotificationItem(it))
	}
	return items, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:            n.ID,
		Type:          n.Type,
		RecipientUID:  n.RecipientUID,
		RecipientRole: string(n.RecipientRole),
		ProposalID:    n.ProposalID,
		ProjectName:   n.ProjectName,
		Message:       n.Message,
		IsRead:        n.IsRead,
		CreatedAt:     formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:            it.ID,
		Type:          it.Type,
		RecipientUID:  it.RecipientUID,
		RecipientRole: entities.Role(it.RecipientRole),
		ProposalID:    it.ProposalID,
		ProjectName:   it.ProjectName,
		Message:       it.Message,
		IsRead:        it.IsRead,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
