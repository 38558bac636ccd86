package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/ports"
	"github.com/deepak445566/socialmedia/domain/account"
	"github.com/deepak445566/socialmedia/domain/comment"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// CommentView joins a comment with its author's account projection
type CommentView struct {
	ID        string         `json:"_id"`
	PostID    string         `json:"postId"`
	User      account.Summary `json:"userId"`
	Body      string         `json:"body"`
	CreatedAt time.Time      `json:"createdAt"`
}

// CommentService handles comment creation, listing, and deletion.
type CommentService struct {
	commentRepo ports.CommentRepository
	postRepo    ports.PostRepository
	accountRepo ports.AccountRepository
	logger      *zap.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(
	commentRepo ports.CommentRepository,
	postRepo ports.PostRepository,
	accountRepo ports.AccountRepository,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Create adds a comment to an existing post
func (s *CommentService) Create(ctx context.Context, postID, userID, body string) (*CommentView, error) {
	if postID == "" {
		return nil, pkgerrors.NewValidationError("post ID is required")
	}

	// Comments reference exactly one post; verify it exists first.
	p, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	acc, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	c, err := comment.New(userID, p.ID(), body)
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	return joinComment(c, acc.Summary()), nil
}

// ListByPost returns a post's comments, oldest first, with author summaries
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*CommentView, error) {
	if postID == "" {
		return nil, pkgerrors.NewValidationError("post ID is required")
	}

	comments, err := s.commentRepo.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.UserID())
	}

	summaries, err := s.accountRepo.GetSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*CommentView, 0, len(comments))
	for _, c := range comments {
		summary, ok := summaries[c.UserID()]
		if !ok {
			continue
		}
		views = append(views, joinComment(c, summary))
	}
	return views, nil
}

// Delete removes a comment, permitted only to its creator. The comment
// lookup precedes the ownership check.
func (s *CommentService) Delete(ctx context.Context, commentID, actingUserID string) error {
	if commentID == "" {
		return pkgerrors.NewValidationError("comment ID is required")
	}

	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := AuthorizeOwner(c, actingUserID); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func joinComment(c *comment.Comment, summary account.Summary) *CommentView {
	return &CommentView{
		ID:        c.ID(),
		PostID:    c.PostID(),
		User:      summary,
		Body:      c.Body(),
		CreatedAt: c.CreatedAt(),
	}
}
