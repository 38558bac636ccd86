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
	"github.com/deepak445566/socialmedia/domain/post"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// PostRepository implements ports.PostRepository using DynamoDB. The like
// toggle is a conditional UpdateItem that flips set membership and
// adjusts the counter in the same write, so concurrent likes by different
// users cannot lose updates.
type PostRepository struct {
	client    *dynamodb.Client
	tableName string
	gsi1Name  string
	gsi2Name  string
	logger    *zap.Logger
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(client *dynamodb.Client, tableName, gsi1Name, gsi2Name string, logger *zap.Logger) ports.PostRepository {
	return &PostRepository{
		client:    client,
		tableName: tableName,
		gsi1Name:  gsi1Name,
		gsi2Name:  gsi2Name,
		logger:    logger,
	}
}

// postItem is the DynamoDB item structure for a post. LikedBy is a string
// set; DynamoDB forbids empty sets so it is omitted until the first like.
type postItem struct {
	PK         string   `dynamodbav:"PK"`
	SK         string   `dynamodbav:"SK"`
	GSI1PK     string   `dynamodbav:"GSI1PK"` // USER#<id>: a user's posts
	GSI1SK     string   `dynamodbav:"GSI1SK"`
	GSI2PK     string   `dynamodbav:"GSI2PK"` // FEED: global listing
	GSI2SK     string   `dynamodbav:"GSI2SK"`
	EntityType string   `dynamodbav:"EntityType"`
	PostID     string   `dynamodbav:"PostID"`
	UserID     string   `dynamodbav:"UserID"`
	Body       string   `dynamodbav:"Body"`
	MediaURL   string   `dynamodbav:"MediaURL,omitempty"`
	MediaType  string   `dynamodbav:"MediaType,omitempty"`
	Likes      int      `dynamodbav:"Likes"`
	LikedBy    []string `dynamodbav:"LikedBy,stringset,omitemptyelem,omitempty"`
	CreatedAt  string   `dynamodbav:"CreatedAt"`
	UpdatedAt  string   `dynamodbav:"UpdatedAt"`
}

// Save persists a new post
func (r *PostRepository) Save(ctx context.Context, p *post.Post) error {
	item := postItem{
		PK:         postPK(p.ID()),
		SK:         skMetadata,
		GSI1PK:     userPK(p.UserID()),
		GSI1SK:     timeSortKey("POST", p.CreatedAt(), p.ID()),
		GSI2PK:     feedPartition,
		GSI2SK:     timeSortKey("POST", p.CreatedAt(), p.ID()),
		EntityType: entityPost,
		PostID:     p.ID(),
		UserID:     p.UserID(),
		Body:       p.Body(),
		MediaURL:   p.MediaURL(),
		MediaType:  string(p.MediaType()),
		Likes:      p.Likes(),
		LikedBy:    p.LikedBy(),
		CreatedAt:  p.CreatedAt().Format(time.RFC3339Nano),
		UpdatedAt:  p.UpdatedAt().Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal post").WithCause(err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to save post",
			zap.Error(err),
			zap.String("postID", p.ID()),
		)
		return pkgerrors.NewDatabaseError("save post", err)
	}

	return nil
}

// GetByID retrieves a post by its ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*post.Post, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       postKey(id),
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get post", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("post")
	}

	return unmarshalPost(result.Item)
}

// ListAll queries the feed partition, newest first
func (r *PostRepository) ListAll(ctx context.Context) ([]*post.Post, error) {
	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.gsi2Name),
		KeyConditionExpression: aws.String("GSI2PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: feedPartition},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list posts", err)
	}

	return unmarshalPosts(result.Items)
}

// ListByUserID queries GSI1 for a user's posts, newest first
func (r *PostRepository) ListByUserID(ctx context.Context, userID string) ([]*post.Post, error) {
	result, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.gsi1Name),
		KeyConditionExpression: aws.String("GSI1PK = :pk AND begins_with(GSI1SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: userPK(userID)},
			":sk": &types.AttributeValueMemberS{Value: "POST#"},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list user posts", err)
	}

	return unmarshalPosts(result.Items)
}

// Delete removes a post
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 postKey(id),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return pkgerrors.NewNotFoundError("post")
		}
		return pkgerrors.NewDatabaseError("delete post", err)
	}

	return nil
}

// ToggleLike flips the user's membership in the post's like-set. Each
// branch is a single conditional UpdateItem keyed on current membership:
// the "like" branch ADDs the member and increments the counter, the
// "unlike" branch DELETEs it and decrements. A branch losing a race to a
// concurrent toggle fails its condition and the other branch is tried,
// so the membership/counter pair always moves together.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (bool, int, error) {
	userSet := &types.AttributeValueMemberSS{Value: []string{userID}}

	for attempt := 0; attempt < 2; attempt++ {
		// Like branch: only applies while the user is not in the set.
		out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:           aws.String(r.tableName),
			Key:                 postKey(postID),
			ConditionExpression: aws.String("attribute_exists(PK) AND (attribute_not_exists(LikedBy) OR NOT contains(LikedBy, :uid))"),
			UpdateExpression:    aws.String("ADD LikedBy :uset, Likes :one"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid":  &types.AttributeValueMemberS{Value: userID},
				":uset": userSet,
				":one":  &types.AttributeValueMemberN{Value: "1"},
			},
			ReturnValues: types.ReturnValueAllNew,
		})
		if err == nil {
			return true, likesFrom(out.Attributes), nil
		}
		if !isConditionalCheckFailed(err) {
			return false, 0, pkgerrors.NewDatabaseError("like post", err)
		}

		// Unlike branch: only applies while the user is in the set.
		out, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:           aws.String(r.tableName),
			Key:                 postKey(postID),
			ConditionExpression: aws.String("attribute_exists(PK) AND contains(LikedBy, :uid)"),
			UpdateExpression:    aws.String("DELETE LikedBy :uset ADD Likes :minus"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid":   &types.AttributeValueMemberS{Value: userID},
				":uset":  userSet,
				":minus": &types.AttributeValueMemberN{Value: "-1"},
			},
			ReturnValues: types.ReturnValueAllNew,
		})
		if err == nil {
			likes := likesFrom(out.Attributes)
			if likes < 0 {
				// A previously drifted counter went under zero; floor it.
				r.floorLikes(ctx, postID)
				likes = 0
			}
			return false, likes, nil
		}
		if !isConditionalCheckFailed(err) {
			return false, 0, pkgerrors.NewDatabaseError("unlike post", err)
		}

		// Both branches lost their condition: either the post is gone or a
		// concurrent toggle by the same user flipped membership between the
		// two calls. Distinguish, then retry once.
		exists, err := r.postExists(ctx, postID)
		if err != nil {
			return false, 0, err
		}
		if !exists {
			return false, 0, pkgerrors.NewNotFoundError("post")
		}
	}

	return false, 0, pkgerrors.NewInternalError("like toggle did not settle under contention")
}

// floorLikes clamps a drifted counter back to zero. Best effort; the
// condition keeps it from clobbering a concurrent legitimate like.
func (r *PostRepository) floorLikes(ctx context.Context, postID string) {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 postKey(postID),
		ConditionExpression: aws.String("Likes < :zero"),
		UpdateExpression:    aws.String("SET Likes = :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		r.logger.Warn("Failed to floor like counter",
			zap.Error(err),
			zap.String("postID", postID),
		)
	}
}

func (r *PostRepository) postExists(ctx context.Context, postID string) (bool, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.tableName),
		Key:                  postKey(postID),
		ProjectionExpression: aws.String("PK"),
	})
	if err != nil {
		return false, pkgerrors.NewDatabaseError("check post exists", err)
	}
	return result.Item != nil, nil
}

func postKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: postPK(id)},
		"SK": &types.AttributeValueMemberS{Value: skMetadata},
	}
}

func likesFrom(attributes map[string]types.AttributeValue) int {
	var likes struct {
		Likes int `dynamodbav:"Likes"`
	}
	if err := attributevalue.UnmarshalMap(attributes, &likes); err != nil {
		return 0
	}
	return likes.Likes
}

func unmarshalPost(av map[string]types.AttributeValue) (*post.Post, error) {
	var item postItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, pkgerrors.NewInternalError("failed to unmarshal post").WithCause(err)
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, item.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, item.UpdatedAt)

	return post.Reconstruct(
		item.PostID,
		item.UserID,
		item.Body,
		item.MediaURL,
		post.MediaType(item.MediaType),
		item.Likes,
		item.LikedBy,
		createdAt,
		updatedAt,
	), nil
}

func unmarshalPosts(items []map[string]types.AttributeValue) ([]*post.Post, error) {
	posts := make([]*post.Post, 0, len(items))
	for _, av := range items {
		p, err := unmarshalPost(av)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}
