// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		return nil, repo.lookupError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email regardless of the active flag.
// Email lookups run on the primary so a user created moments ago is always visible.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		return nil, repo.lookupError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindActiveByEmail retrieves an active user by email.
func (repo *userRepository) FindActiveByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ? AND is_active = ?", email, true).
		First(&userM).Error
	if err != nil {
		return nil, repo.lookupError(err, "failed to find active user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and copies the generated ID and timestamp back onto it.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("users.email unique violation")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

func (repo *userRepository) lookupError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		Email:            data.Email,
		Name:             data.Name,
		PasswordHash:     data.Password.String,
		Provider:         entity.ProviderType(data.Provider.String),
		ProviderID:       data.ProviderID.String,
		ProfileImageLink: data.ProfileImageLink.String,
		IsActive:         data.IsActive,
		SubscriptionType: subscriptionOrFree(entity.SubscriptionType(data.SubscriptionType)),
		SubscriptionEnd:  data.SubscriptionEnd,
		CreatedAt:        data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		Email:            data.Email,
		Name:             data.Name,
		Password:         nullString(data.PasswordHash),
		Provider:         nullString(data.Provider.String()),
		ProviderID:       nullString(data.ProviderID),
		ProfileImageLink: nullString(data.ProfileImageLink),
		IsActive:         data.IsActive,
		SubscriptionType: string(subscriptionOrFree(data.SubscriptionType)),
		SubscriptionEnd:  data.SubscriptionEnd,
		CreatedAt:        data.CreatedAt,
	}
}

// subscriptionOrFree maps unknown or empty tiers to the free tier.
func subscriptionOrFree(s entity.SubscriptionType) entity.SubscriptionType {
	if !s.IsValid() {
		return entity.SubscriptionFree
	}

	return s
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
