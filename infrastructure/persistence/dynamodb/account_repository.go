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
	"github.com/deepak445566/socialmedia/domain/account"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// AccountRepository implements ports.AccountRepository using DynamoDB.
// Email and username uniqueness is enforced with claim items written in
// the same transaction as the account record, each guarded by
// attribute_not_exists, so duplicates fail atomically at the storage
// layer.
type AccountRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.AccountRepository {
	return &AccountRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// accountItem is the DynamoDB item structure for an account
type accountItem struct {
	PK             string `dynamodbav:"PK"`
	SK             string `dynamodbav:"SK"`
	EntityType     string `dynamodbav:"EntityType"`
	UserID         string `dynamodbav:"UserID"`
	Name           string `dynamodbav:"Name"`
	Username       string `dynamodbav:"Username"`
	Email          string `dynamodbav:"Email"`
	PasswordHash   string `dynamodbav:"PasswordHash"`
	ProfilePicture string `dynamodbav:"ProfilePicture,omitempty"`
	CreatedAt      string `dynamodbav:"CreatedAt"`
	UpdatedAt      string `dynamodbav:"UpdatedAt"`
}

// claimItem reserves an email or username and points back at its owner
type claimItem struct {
	PK     string `dynamodbav:"PK"`
	SK     string `dynamodbav:"SK"`
	UserID string `dynamodbav:"UserID"`
}

// Create persists a new account together with its uniqueness claims
func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	accountAV, err := attributevalue.MarshalMap(r.toItem(acc))
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal account").WithCause(err)
	}

	emailAV, err := attributevalue.MarshalMap(claimItem{PK: emailPK(acc.Email()), SK: skClaim, UserID: acc.ID()})
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal email claim").WithCause(err)
	}

	usernameAV, err := attributevalue.MarshalMap(claimItem{PK: usernamePK(acc.Username()), SK: skClaim, UserID: acc.ID()})
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal username claim").WithCause(err)
	}

	notExists := aws.String("attribute_not_exists(PK)")
	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: accountAV, ConditionExpression: notExists}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: emailAV, ConditionExpression: notExists}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: usernameAV, ConditionExpression: notExists}},
		},
	})
	if err != nil {
		if isTransactionConflict(err) {
			return pkgerrors.NewConflictError("user with this email or username already exists")
		}
		r.logger.Error("Failed to create account",
			zap.Error(err),
			zap.String("userID", acc.ID()),
		)
		return pkgerrors.NewDatabaseError("create account", err)
	}

	return nil
}

// Update persists account mutations, moving uniqueness claims when the
// email or username changed.
func (r *AccountRepository) Update(ctx context.Context, acc *account.Account, prevEmail, prevUsername string) error {
	accountAV, err := attributevalue.MarshalMap(r.toItem(acc))
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal account").WithCause(err)
	}

	items := []types.TransactWriteItem{
		{Put: &types.Put{TableName: aws.String(r.tableName), Item: accountAV}},
	}

	notExists := aws.String("attribute_not_exists(PK)")
	if acc.Email() != prevEmail {
		newClaim, err := attributevalue.MarshalMap(claimItem{PK: emailPK(acc.Email()), SK: skClaim, UserID: acc.ID()})
		if err != nil {
			return pkgerrors.NewInternalError("failed to marshal email claim").WithCause(err)
		}
		items = append(items,
			types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.tableName), Item: newClaim, ConditionExpression: notExists}},
			types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.tableName), Key: claimKey(emailPK(prevEmail))}},
		)
	}
	if acc.Username() != prevUsername {
		newClaim, err := attributevalue.MarshalMap(claimItem{PK: usernamePK(acc.Username()), SK: skClaim, UserID: acc.ID()})
		if err != nil {
			return pkgerrors.NewInternalError("failed to marshal username claim").WithCause(err)
		}
		items = append(items,
			types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.tableName), Item: newClaim, ConditionExpression: notExists}},
			types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.tableName), Key: claimKey(usernamePK(prevUsername))}},
		)
	}

	if _, err := r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isTransactionConflict(err) {
			return pkgerrors.NewConflictError("username or email already exists")
		}
		return pkgerrors.NewDatabaseError("update account", err)
	}

	return nil
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(id)},
			"SK": &types.AttributeValueMemberS{Value: skMetadata},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get account", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("user")
	}

	return r.fromItem(result.Item)
}

// GetByEmail resolves the email claim and loads its owner
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       claimKey(emailPK(email)),
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get account by email", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("user")
	}

	var claim claimItem
	if err := attributevalue.UnmarshalMap(result.Item, &claim); err != nil {
		return nil, pkgerrors.NewInternalError("failed to unmarshal email claim").WithCause(err)
	}

	return r.GetByID(ctx, claim.UserID)
}

// Exists reports whether an account with the given ID exists
func (r *AccountRepository) Exists(ctx context.Context, id string) (bool, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(id)},
			"SK": &types.AttributeValueMemberS{Value: skMetadata},
		},
		ProjectionExpression: aws.String("PK"),
	})
	if err != nil {
		return false, pkgerrors.NewDatabaseError("check account exists", err)
	}
	return result.Item != nil, nil
}

// GetSummaries batch-loads public projections for a set of account IDs
func (r *AccountRepository) GetSummaries(ctx context.Context, ids []string) (map[string]account.Summary, error) {
	out := make(map[string]account.Summary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	seen := make(map[string]struct{}, len(ids))
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(id)},
			"SK": &types.AttributeValueMemberS{Value: skMetadata},
		})
	}

	// BatchGetItem takes at most 100 keys per call
	for start := 0; start < len(keys); start += 100 {
		end := start + 100
		if end > len(keys) {
			end = len(keys)
		}

		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys[start:end]},
		}
		for len(request) > 0 {
			result, err := r.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, pkgerrors.NewDatabaseError("batch get accounts", err)
			}

			for _, item := range result.Responses[r.tableName] {
				acc, err := r.fromItem(item)
				if err != nil {
					return nil, err
				}
				out[acc.ID()] = acc.Summary()
			}

			request = result.UnprocessedKeys
		}
	}

	return out, nil
}

func (r *AccountRepository) toItem(acc *account.Account) accountItem {
	return accountItem{
		PK:             userPK(acc.ID()),
		SK:             skMetadata,
		EntityType:     entityAccount,
		UserID:         acc.ID(),
		Name:           acc.Name(),
		Username:       acc.Username(),
		Email:          acc.Email(),
		PasswordHash:   acc.PasswordHash(),
		ProfilePicture: acc.ProfilePicture(),
		CreatedAt:      acc.CreatedAt().Format(time.RFC3339Nano),
		UpdatedAt:      acc.UpdatedAt().Format(time.RFC3339Nano),
	}
}

func (r *AccountRepository) fromItem(av map[string]types.AttributeValue) (*account.Account, error) {
	var item accountItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, pkgerrors.NewInternalError("failed to unmarshal account").WithCause(err)
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, item.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, item.UpdatedAt)

	return account.Reconstruct(
		item.UserID,
		item.Name,
		item.Username,
		item.Email,
		item.PasswordHash,
		item.ProfilePicture,
		createdAt,
		updatedAt,
	), nil
}

func claimKey(pk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: skClaim},
	}
}
