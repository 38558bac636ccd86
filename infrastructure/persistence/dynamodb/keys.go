package dynamodb

import (
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Single-table key layout:
//
//	USER#<id>       / METADATA                      account record
//	USER#<id>       / PROFILE                       profile record
//	EMAIL#<email>   / CLAIM                         email uniqueness claim
//	USERNAME#<name> / CLAIM                         username uniqueness claim
//	POST#<id>       / METADATA                      post record
//	COMMENT#<id>    / METADATA                      comment record
//	FOLLOWER#<f>    / FOLLOWING#<t>                 follow edge
//
// GSI1 groups entity-scoped listings (a user's posts, a post's comments,
// a user's followers) sorted by creation time. GSI2 holds the global post
// feed.

const (
	skMetadata = "METADATA"
	skProfile  = "PROFILE"
	skClaim    = "CLAIM"

	entityAccount    = "ACCOUNT"
	entityProfile    = "PROFILE"
	entityPost       = "POST"
	entityComment    = "COMMENT"
	entityConnection = "CONNECTION"

	// GSI2PK for all posts; GSI2SK is the creation timestamp
	feedPartition = "FEED"
)

func userPK(id string) string          { return fmt.Sprintf("USER#%s", id) }
func emailPK(email string) string      { return fmt.Sprintf("EMAIL#%s", email) }
func usernamePK(username string) string { return fmt.Sprintf("USERNAME#%s", username) }
func postPK(id string) string          { return fmt.Sprintf("POST#%s", id) }
func commentPK(id string) string       { return fmt.Sprintf("COMMENT#%s", id) }
func followerPK(id string) string      { return fmt.Sprintf("FOLLOWER#%s", id) }
func followingSK(id string) string     { return fmt.Sprintf("FOLLOWING#%s", id) }

// timeSortKey produces a lexically sortable GSI sort key. Nanosecond
// precision keeps same-second records ordered; the entity ID breaks ties.
func timeSortKey(prefix string, t time.Time, id string) string {
	return fmt.Sprintf("%s#%s#%s", prefix, t.UTC().Format("2006-01-02T15:04:05.000000000Z"), id)
}

// isConditionalCheckFailed reports whether the error is a single-item
// conditional write failure
func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// isTransactionConflict reports whether a TransactWriteItems call was
// cancelled because one of its condition checks failed
func isTransactionConflict(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
