package dynamodb

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	"github.com/deepak445566/socialmedia/domain/connection"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// ConnectionRepository implements ports.ConnectionRepository using
// DynamoDB. The edge's composite primary key is
// (FOLLOWER#<follower>, FOLLOWING#<following>); a conditional PutItem on
// that key makes the uniqueness check and the insert one atomic write, so
// the at-most-one-edge invariant holds under concurrent writers without
// an application-level lock.
type ConnectionRepository struct {
	client    *dynamodb.Client
	tableName string
	gsi1Name  string
	logger    *zap.Logger
}

// NewConnectionRepository creates a new ConnectionRepository
func NewConnectionRepository(client *dynamodb.Client, tableName, gsi1Name string, logger *zap.Logger) ports.ConnectionRepository {
	return &ConnectionRepository{
		client:    client,
		tableName: tableName,
		gsi1Name:  gsi1Name,
		logger:    logger,
	}
}

// connectionItem is the DynamoDB item structure for a follow edge
type connectionItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"` // FOLLOWING#<t>: followers listing
	GSI1SK     string `dynamodbav:"GSI1SK"` // CONN#<createdAt>#<follower>
	EntityType string `dynamodbav:"EntityType"`
	Follower   string `dynamodbav:"Follower"`
	Following  string `dynamodbav:"Following"`
	Status     string `dynamodbav:"Status"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
}

// Create inserts a follow edge with a conditional write on its key
func (r *ConnectionRepository) Create(ctx context.Context, e *connection.Edge) error {
	item := connectionItem{
		PK:         followerPK(e.Follower()),
		SK:         followingSK(e.Following()),
		GSI1PK:     followingSK(e.Following()),
		GSI1SK:     timeSortKey("CONN", e.CreatedAt(), e.Follower()),
		EntityType: entityConnection,
		Follower:   e.Follower(),
		Following:  e.Following(),
		Status:     string(e.Status()),
		CreatedAt:  e.CreatedAt().Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal connection").WithCause(err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return pkgerrors.NewConflictError("you are already following this user")
		}
		r.logger.Error("Failed to save connection",
			zap.Error(err),
			zap.String("follower", e.Follower()),
			zap.String("following", e.Following()),
		)
		return pkgerrors.NewDatabaseError("create connection", err)
	}

	return nil
}

// Delete removes a follow edge; a missing edge fails the condition and is
// reported as not found
func (r *ConnectionRepository) Delete(ctx context.Context, follower, following string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 edgeKey(follower, following),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return pkgerrors.NewNotFoundError("connection")
		}
		return pkgerrors.NewDatabaseError("delete connection", err)
	}

	return nil
}

// Exists reports whether the follower→following edge is present
func (r *ConnectionRepository) Exists(ctx context.Context, follower, following string) (bool, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.tableName),
		Key:                  edgeKey(follower, following),
		ProjectionExpression: aws.String("PK"),
	})
	if err != nil {
		return false, pkgerrors.NewDatabaseError("check connection exists", err)
	}
	return result.Item != nil, nil
}

// ListFollowers queries GSI1 on the following side, newest edge first
func (r *ConnectionRepository) ListFollowers(ctx context.Context, userID string) ([]*connection.Edge, error) {
	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.gsi1Name),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: followingSK(userID)},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list followers", err)
	}

	return unmarshalEdges(result.Items)
}

// ListFollowing queries the follower's partition and orders by edge
// creation time, newest first. The partition holds only that user's
// outgoing edges, so the in-memory sort is bounded by their follow count.
func (r *ConnectionRepository) ListFollowing(ctx context.Context, userID string) ([]*connection.Edge, error) {
	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: followerPK(userID)},
			":sk": &types.AttributeValueMemberS{Value: "FOLLOWING#"},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list following", err)
	}

	edges, err := unmarshalEdges(result.Items)
	if err != nil {
		return nil, err
	}

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].CreatedAt().After(edges[j].CreatedAt())
	})
	return edges, nil
}

// CountFollowers counts edges pointing at the user
func (r *ConnectionRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.gsi1Name),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: followingSK(userID)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("count followers", err)
	}
	return int(result.Count), nil
}

// CountFollowing counts the user's outgoing edges
func (r *ConnectionRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: followerPK(userID)},
			":sk": &types.AttributeValueMemberS{Value: "FOLLOWING#"},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("count following", err)
	}
	return int(result.Count), nil
}

func edgeKey(follower, following string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: followerPK(follower)},
		"SK": &types.AttributeValueMemberS{Value: followingSK(following)},
	}
}

func unmarshalEdges(items []map[string]types.AttributeValue) ([]*connection.Edge, error) {
	edges := make([]*connection.Edge, 0, len(items))
	for _, av := range items {
		var item connectionItem
		if err := attributevalue.UnmarshalMap(av, &item); err != nil {
			return nil, pkgerrors.NewInternalError("failed to unmarshal connection").WithCause(err)
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, item.CreatedAt)
		edges = append(edges, connection.Reconstruct(
			item.Follower,
			item.Following,
			connection.Status(item.Status),
			createdAt,
		))
	}
	return edges, nil
}
