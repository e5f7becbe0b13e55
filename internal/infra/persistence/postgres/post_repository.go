package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostCreationFailed.WithDetails("author does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPostCreationFailed.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByID retrieves a post with its author.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&postM).Error
	if err != nil {
		return nil, repo.lookupError(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByIDForUpdate retrieves a post with SELECT ... FOR UPDATE. Use inside a transaction.
func (repo *postRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&postM).Error
	if err != nil {
		return nil, repo.lookupError(err, "failed to lock post")
	}

	return toPostDomain(&postM), nil
}

// List returns active posts matching the filter, newest first.
func (repo *postRepository) List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	query := repo.db.WithContext(ctx).
		Preload("User").
		Where("is_active = ?", true)

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.IsTrending != nil {
		query = query.Where("is_trending = ?", *filter.IsTrending)
	}

	var postMs []*model.PostModel
	if err := query.Order("created_at DESC").Find(&postMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Update saves the mutable fields of a post. Zero values are written too.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)
	postM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{ID: post.ID}).
		Select("title", "image", "content", "category", "is_active", "is_trending", "updated_at").
		Updates(postM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPostNotFound
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Delete removes a post by ID.
func (repo *postRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPostNotFound
	}

	return nil
}

func (repo *postRepository) lookupError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrPostNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:         data.ID,
		Title:      data.Title,
		Image:      data.Image,
		Content:    data.Content,
		Category:   data.Category,
		UserID:     data.UserID,
		User:       toUserDomain(data.User),
		IsActive:   data.IsActive,
		IsTrending: data.IsTrending,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:         data.ID,
		Title:      data.Title,
		Image:      data.Image,
		Content:    data.Content,
		Category:   data.Category,
		UserID:     data.UserID,
		IsActive:   data.IsActive,
		IsTrending: data.IsTrending,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
