package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a new active, non-trending post owned by userID.
func (srv *postService) Create(ctx context.Context, userID int64, input usecase.CreatePostInput) (*entity.Post, error) {
	if input.Title == "" || input.Content == "" || input.Category == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title, content and category are required")
	}

	post := &entity.Post{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Image:    input.Image,
		UserID:   userID,
		IsActive: true,
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Int64("postID", post.ID), slog.Int64("userID", userID))

	return post, nil
}

// ListByUser returns the caller's active posts.
func (srv *postService) ListByUser(ctx context.Context, userID int64) ([]*entity.Post, error) {
	posts, err := srv.postRepo.List(ctx, entity.PostFilter{UserID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user posts")
	}

	return posts, nil
}

// ListTrending returns active posts whose trending flag equals isTrending.
func (srv *postService) ListTrending(ctx context.Context, isTrending bool) ([]*entity.Post, error) {
	posts, err := srv.postRepo.List(ctx, entity.PostFilter{IsTrending: &isTrending})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trending posts")
	}

	return posts, nil
}

// Get returns a single post with its author.
func (srv *postService) Get(ctx context.Context, id int64) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get post")
	}

	return post, nil
}

// Update applies the non-nil fields of input. Only the author may update a post.
func (srv *postService) Update(ctx context.Context, userID, id int64, input usecase.UpdatePostInput) (*entity.Post, error) {
	var updated *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := srv.lockOwned(ctx, postRepo, userID, id)
		if err != nil {
			return err
		}

		applyPostUpdate(post, input)
		if err := postRepo.Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to save post")
		}
		updated = post

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update post")
	}

	srv.log(ctx).Info("Post updated", slog.Int64("postID", id), slog.Int64("userID", userID))

	return updated, nil
}

// Delete removes a post. Only the author may delete it.
func (srv *postService) Delete(ctx context.Context, userID, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		if _, err := srv.lockOwned(ctx, postRepo, userID, id); err != nil {
			return err
		}

		return postRepo.Delete(ctx, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.Int64("postID", id), slog.Int64("userID", userID))

	return nil
}

func (srv *postService) lockOwned(ctx context.Context, postRepo repository.PostRepository, userID, id int64) (*entity.Post, error) {
	post, err := postRepo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if !post.IsOwnedBy(userID) {
		srv.log(ctx).Warn("Post ownership violation",
			slog.Int64("postID", id),
			slog.Int64("ownerID", post.UserID),
			slog.Int64("userID", userID))

		return nil, domainerrors.ErrPostOwnershipViolation
	}

	return post, nil
}

func applyPostUpdate(post *entity.Post, input usecase.UpdatePostInput) {
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.Image != nil {
		post.Image = *input.Image
	}
	if input.IsActive != nil {
		post.IsActive = *input.IsActive
	}
	if input.IsTrending != nil {
		post.IsTrending = *input.IsTrending
	}
}
