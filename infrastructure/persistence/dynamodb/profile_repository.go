package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	"github.com/deepak445566/socialmedia/domain/profile"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// ProfileRepository implements ports.ProfileRepository using DynamoDB.
// Profiles live in their owner's partition under a fixed sort key, so a
// user and their profile can share a partition read.
type ProfileRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ProfileRepository {
	return &ProfileRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

type workEntryItem struct {
	Company  string `dynamodbav:"Company"`
	Position string `dynamodbav:"Position"`
	Years    string `dynamodbav:"Years"`
}

type educationEntryItem struct {
	School       string `dynamodbav:"School"`
	Degree       string `dynamodbav:"Degree"`
	FieldOfStudy string `dynamodbav:"FieldOfStudy"`
}

type profileItem struct {
	PK              string               `dynamodbav:"PK"`
	SK              string               `dynamodbav:"SK"`
	EntityType      string               `dynamodbav:"EntityType"`
	UserID          string               `dynamodbav:"UserID"`
	Bio             string               `dynamodbav:"Bio,omitempty"`
	CurrentPosition string               `dynamodbav:"CurrentPosition,omitempty"`
	PastWork        []workEntryItem      `dynamodbav:"PastWork,omitempty"`
	Education       []educationEntryItem `dynamodbav:"Education,omitempty"`
	CreatedAt       string               `dynamodbav:"CreatedAt"`
	UpdatedAt       string               `dynamodbav:"UpdatedAt"`
}

// Save creates or replaces the profile for its user
func (r *ProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	item := profileItem{
		PK:              userPK(p.UserID()),
		SK:              skProfile,
		EntityType:      entityProfile,
		UserID:          p.UserID(),
		Bio:             p.Bio(),
		CurrentPosition: p.CurrentPosition(),
		PastWork:        toWorkItems(p.PastWork()),
		Education:       toEducationItems(p.Education()),
		CreatedAt:       p.CreatedAt().Format(time.RFC3339Nano),
		UpdatedAt:       p.UpdatedAt().Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal profile").WithCause(err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logger.Error("Failed to save profile",
			zap.Error(err),
			zap.String("userID", p.UserID()),
		)
		return pkgerrors.NewDatabaseError("save profile", err)
	}

	return nil
}

// GetByUserID retrieves the profile owned by the given user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(userID)},
			"SK": &types.AttributeValueMemberS{Value: skProfile},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get profile", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("profile")
	}

	return unmarshalProfile(result.Item)
}

// List scans for every profile in the table. The filter runs server side
// against the EntityType discriminator; pagination is followed to the end.
func (r *ProfileRepository) List(ctx context.Context) ([]*profile.Profile, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("EntityType").Equal(expression.Value(entityProfile))).
		Build()
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to build profile filter").WithCause(err)
	}

	var profiles []*profile.Profile
	var startKey map[string]types.AttributeValue

	for {
		result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("list profiles", err)
		}

		for _, av := range result.Items {
			p, err := unmarshalProfile(av)
			if err != nil {
				return nil, err
			}
			profiles = append(profiles, p)
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return profiles, nil
}

func unmarshalProfile(av map[string]types.AttributeValue) (*profile.Profile, error) {
	var item profileItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, pkgerrors.NewInternalError("failed to unmarshal profile").WithCause(err)
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, item.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, item.UpdatedAt)

	return profile.Reconstruct(
		item.UserID,
		item.Bio,
		item.CurrentPosition,
		fromWorkItems(item.PastWork),
		fromEducationItems(item.Education),
		createdAt,
		updatedAt,
	), nil
}

func toWorkItems(entries []profile.WorkEntry) []workEntryItem {
	items := make([]workEntryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, workEntryItem{Company: e.Company, Position: e.Position, Years: e.Years})
	}
	return items
}

func fromWorkItems(items []workEntryItem) []profile.WorkEntry {
	entries := make([]profile.WorkEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, profile.WorkEntry{Company: it.Company, Position: it.Position, Years: it.Years})
	}
	return entries
}

func toEducationItems(entries []profile.EducationEntry) []educationEntryItem {
	items := make([]educationEntryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, educationEntryItem{School: e.School, Degree: e.Degree, FieldOfStudy: e.FieldOfStudy})
	}
	return items
}

func fromEducationItems(items []educationEntryItem) []profile.EducationEntry {
	entries := make([]profile.EducationEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, profile.EducationEntry{School: it.School, Degree: it.Degree, FieldOfStudy: it.FieldOfStudy})
	}
	return entries
}
