package services

import (
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// Owned is any resource with a creating account
type Owned interface {
	OwnerID() string
}

// AuthorizeOwner permits a mutation only to the resource's creator. The
// caller is responsible for resolving the resource first, so a missing
// resource is reported as not found before ownership is ever checked.
func AuthorizeOwner(resource Owned, actingUserID string) error {
	if resource.OwnerID() != actingUserID {
		return pkgerrors.NewForbiddenError("you can only modify your own content")
	}
	return nil
}
