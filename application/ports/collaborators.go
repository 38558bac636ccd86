package ports

import (
	"context"

	"github.com/deepak445566/socialmedia/domain/account"
	"github.com/deepak445566/socialmedia/domain/profile"
)

// MediaStore is the binary object store for uploaded media: accepts a byte
// buffer and a name, returns a retrievable URL.
type MediaStore interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// RenderRequest carries the data handed to the document renderer for a
// profile export.
type RenderRequest struct {
	Account   account.Summary          `json:"account"`
	Bio       string                   `json:"bio"`
	Position  string                   `json:"currentPosition"`
	PastWork  []profile.WorkEntry      `json:"pastWork"`
	Education []profile.EducationEntry `json:"education"`
}

// ProfileRenderer is the document-rendering collaborator: pass profile
// data, get back a URL to the rendered document.
type ProfileRenderer interface {
	Render(ctx context.Context, req RenderRequest) (string, error)
}
