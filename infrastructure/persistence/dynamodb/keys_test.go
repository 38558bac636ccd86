package dynamodb

import (
	"sort"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
)

func TestKeyShapes(t *testing.T) {
	assert.Equal(t, "USER#u1", userPK("u1"))
	assert.Equal(t, "EMAIL#a@b.com", emailPK("a@b.com"))
	assert.Equal(t, "USERNAME#jordan", usernamePK("jordan"))
	assert.Equal(t, "POST#p1", postPK("p1"))
	assert.Equal(t, "COMMENT#c1", commentPK("c1"))
	assert.Equal(t, "FOLLOWER#f1", followerPK("f1"))
	assert.Equal(t, "FOLLOWING#t1", followingSK("t1"))
}

func TestTimeSortKeyOrdering(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	keys := []string{
		timeSortKey("POST", base.Add(2*time.Second), "b"),
		timeSortKey("POST", base, "a"),
		timeSortKey("POST", base.Add(time.Nanosecond), "c"),
	}

	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	assert.Equal(t, []string{keys[1], keys[2], keys[0]}, sorted,
		"lexical order must match chronological order")
}

func TestTimeSortKeyTieBreak(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	k1 := timeSortKey("CONN", at, "user-a")
	k2 := timeSortKey("CONN", at, "user-b")

	assert.NotEqual(t, k1, k2, "same-instant keys differ by entity ID")
}

func TestIsConditionalCheckFailed(t *testing.T) {
	assert.True(t, isConditionalCheckFailed(&types.ConditionalCheckFailedException{}))
	assert.False(t, isConditionalCheckFailed(assert.AnError))
	assert.False(t, isConditionalCheckFailed(nil))
}

func TestIsTransactionConflict(t *testing.T) {
	code := "ConditionalCheckFailed"
	okCode := "None"

	conflicted := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: &okCode},
			{Code: &code},
		},
	}
	clean := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: &okCode}},
	}

	assert.True(t, isTransactionConflict(conflicted))
	assert.False(t, isTransactionConflict(clean))
	assert.False(t, isTransactionConflict(assert.AnError))
}
