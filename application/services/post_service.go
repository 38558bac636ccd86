package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	"github.com/deepak445566/socialmedia/domain/account"
	"github.com/deepak445566/socialmedia/domain/post"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// PostView joins a post with its author's account projection
type PostView struct {
	ID        string         `json:"_id"`
	User      account.Summary `json:"userId"`
	Body      string         `json:"body"`
	Media     string         `json:"media,omitempty"`
	FileType  string         `json:"fileType,omitempty"`
	Likes     int            `json:"likes"`
	CreatedAt time.Time      `json:"createdAt"`
}

// LikeResult is the outcome of a like toggle
type LikeResult struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// PostService handles post creation, listing, deletion, and the like toggle.
type PostService struct {
	postRepo    ports.PostRepository
	accountRepo ports.AccountRepository
	mediaStore  ports.MediaStore
	logger      *zap.Logger
}

// NewPostService creates a new post service
func NewPostService(
	postRepo ports.PostRepository,
	accountRepo ports.AccountRepository,
	mediaStore ports.MediaStore,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		accountRepo: accountRepo,
		mediaStore:  mediaStore,
		logger:      logger,
	}
}

// Create stores a post, uploading the optional media attachment first. The
// media kind tag is derived from the upload's content type.
func (s *PostService) Create(ctx context.Context, userID, body, contentType string, media []byte) (*PostView, error) {
	acc, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var mediaURL string
	mediaType := post.MediaNone
	if len(media) > 0 {
		name := fmt.Sprintf("posts/%s", uuid.New().String())
		mediaURL, err = s.mediaStore.Put(ctx, name, contentType, media)
		if err != nil {
			return nil, err
		}
		mediaType = mediaKind(contentType)
	}

	p, err := post.New(userID, body, mediaURL, mediaType)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Post created",
		zap.String("postID", p.ID()),
		zap.String("userID", userID),
		zap.String("fileType", string(mediaType)),
	)

	return joinPost(p, acc.Summary()), nil
}

// ListAll returns every post, newest first, decorated with author summaries
func (s *PostService) ListAll(ctx context.Context) ([]*PostView, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, posts)
}

// ListMine returns the caller's posts, newest first
func (s *PostService) ListMine(ctx context.Context, userID string) ([]*PostView, error) {
	posts, err := s.postRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, posts)
}

// Delete removes a post, permitted only to its creator. The post lookup
// precedes the ownership check.
func (s *PostService) Delete(ctx context.Context, postID, actingUserID string) error {
	if postID == "" {
		return pkgerrors.NewValidationError("post ID is required")
	}

	p, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := AuthorizeOwner(p, actingUserID); err != nil {
		return err
	}

	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the caller's like on a post. The membership flip and
// counter adjustment happen in one atomic storage update, so concurrent
// toggles by different users cannot lose likes. Concurrent toggles by the
// same user remain last-write-wins.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) (*LikeResult, error) {
	if postID == "" {
		return nil, pkgerrors.NewValidationError("post ID is required")
	}

	liked, likes, err := s.postRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	return &LikeResult{Liked: liked, Likes: likes}, nil
}

func (s *PostService) decorate(ctx context.Context, posts []*post.Post) ([]*PostView, error) {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.UserID())
	}

	summaries, err := s.accountRepo.GetSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*PostView, 0, len(posts))
	for _, p := range posts {
		summary, ok := summaries[p.UserID()]
		if !ok {
			continue
		}
		views = append(views, joinPost(p, summary))
	}
	return views, nil
}

func joinPost(p *post.Post, summary account.Summary) *PostView {
	return &PostView{
		ID:        p.ID(),
		User:      summary,
		Body:      p.Body(),
		Media:     p.MediaURL(),
		FileType:  string(p.MediaType()),
		Likes:     p.Likes(),
		CreatedAt: p.CreatedAt(),
	}
}

func mediaKind(contentType string) post.MediaType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return post.MediaImage
	case strings.HasPrefix(contentType, "video/"):
		return post.MediaVideo
	default:
		return post.MediaNone
	}
}
