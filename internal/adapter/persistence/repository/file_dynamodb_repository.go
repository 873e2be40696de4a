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
	defaultFilesTableName = "files"
	filesProposalIndex    = "proposal_id-index"
)

type fileItem struct {
	ID             string `dynamodbav:"id"`
	OriginalName   string `dynamodbav:"original_name"`
	FileName       string `dynamodbav:"file_name,omitempty"`
	URL            string `dynamodbav:"url"`
	MimeType       string `dynamodbav:"mime_type,omitempty"`
	FileSize       int64  `dynamodbav:"file_size"`
	ProposalID     string `dynamodbav:"proposal_id"`
	FileType       string `dynamodbav:"file_type"`
	UploadedByUID  string `dynamodbav:"uploaded_by_uid"`
	UploadedByRole string `dynamodbav:"uploaded_by_role"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// FileDynamoRepository persists attachment metadata in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id, SK: created_at)

type FileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFileRepository = (*FileDynamoRepository)(nil)

func NewFileDynamoRepository(ddb *dynamodb.Client) *FileDynamoRepository {
	return &FileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FILES_TABLE", defaultFilesTableName),
	}
}

func (r *FileDynamoRepository) Create(ctx context.Context, f entities.FileAttachment) (entities.FileAttachment, error) {
	av, err := attributevalue.MarshalMap(toFileItem(f))
	if err != nil {
		return entities.FileAttachment{}, err
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
		return entities.FileAttachment{}, err
	}
	return f, nil
}

func (r *FileDynamoRepository) GetByID(ctx context.Context, id string) (entities.FileAttachment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FileAttachment{}, err
	}
	if len(out.Item) == 0 {
		return entities.FileAttachment{}, nil
	}

	var it fileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FileAttachment{}, err
	}
	return fromFileItem(it), nil
}

func (r *FileDynamoRepository) ListByProposal(ctx context.Context, proposalID string) ([]entities.FileAttachment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(filesProposalIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.FileAttachment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it fileItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromFileItem(it))
	}
	return items, nil
}

func (r *FileDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toFileItem(f entities.FileAttachment) fileItem {
	return fileItem{
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
		CreatedAt:      formatTime(f.CreatedAt),
	}
}

func fromFileItem(it fileItem) entities.FileAttachment {
	return entities.FileAttachment{
		ID:             it.ID,
		OriginalName:   it.OriginalName,
		FileName:       it.FileName,
		URL:            it.URL,
		MimeType:       it.MimeType,
		FileSize:       it.FileSize,
		ProposalID:     it.ProposalID,
		FileType:       entities.FileType(it.FileType),
		UploadedByUID:  it.UploadedByUID,
		UploadedByRole: entities.Role(it.UploadedByRole),
		Status:         it.Status,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
