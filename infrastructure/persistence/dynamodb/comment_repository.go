package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	"github.com/deepak445566/socialmedia/domain/comment"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// CommentRepository implements ports.CommentRepository using DynamoDB
type CommentRepository struct {
	client    *dynamodb.Client
	tableName string
	gsi1Name  string
	logger    *zap.Logger
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(client *dynamodb.Client, tableName, gsi1Name string, logger *zap.Logger) ports.CommentRepository {
	return &CommentRepository{
		client:    client,
		tableName: tableName,
		gsi1Name:  gsi1Name,
		logger:    logger,
	}
}

// commentItem is the DynamoDB item structure for a comment. GSI1 groups
// comments under their post, sorted by creation time.
type commentItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"` // POST#<id>
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"EntityType"`
	CommentID  string `dynamodbav:"CommentID"`
	UserID     string `dynamodbav:"UserID"`
	PostID     string `dynamodbav:"PostID"`
	Body       string `dynamodbav:"Body"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
}

// Save persists a new comment
func (r *CommentRepository) Save(ctx context.Context, c *comment.Comment) error {
	item := commentItem{
		PK:         commentPK(c.ID()),
		SK:         skMetadata,
		GSI1PK:     postPK(c.PostID()),
		GSI1SK:     timeSortKey("COMMENT", c.CreatedAt(), c.ID()),
		EntityType: entityComment,
		CommentID:  c.ID(),
		UserID:     c.UserID(),
		PostID:     c.PostID(),
		Body:       c.Body(),
		CreatedAt:  c.CreatedAt().Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal comment").WithCause(err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to save comment",
			zap.Error(err),
			zap.String("commentID", c.ID()),
		)
		return pkgerrors.NewDatabaseError("save comment", err)
	}

	return nil
}

// GetByID retrieves a comment by its ID
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*comment.Comment, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       commentKey(id),
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get comment", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("comment")
	}

	return unmarshalComment(result.Item)
}

// ListByPostID queries GSI1 for a post's comments, oldest first
func (r *CommentRepository) ListByPostID(ctx context.Context, postID string) ([]*comment.Comment, error) {
	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.gsi1Name),
		KeyConditionExpression: aws.String("GSI1PK = :pk AND begins_with(GSI1SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: postPK(postID)},
			":sk": &types.AttributeValueMemberS{Value: "COMMENT#"},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list comments", err)
	}

	comments := make([]*comment.Comment, 0, len(result.Items))
	for _, av := range result.Items {
		c, err := unmarshalComment(av)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 commentKey(id),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return pkgerrors.NewNotFoundError("comment")
		}
		return pkgerrors.NewDatabaseError("delete comment", err)
	}

	return nil
}

func commentKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: commentPK(id)},
		"SK": &types.AttributeValueMemberS{Value: skMetadata},
	}
}

func unmarshalComment(av map[string]types.AttributeValue) (*comment.Comment, error) {
	var item commentItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, pkgerrors.NewInternalError("failed to unmarshal comment").WithCause(err)
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, item.CreatedAt)

	return comment.Reconstruct(item.CommentID, item.UserID, item.PostID, item.Body, createdAt), nil
}
