package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/youssefhammani/file-rouge-final/internal/models"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
)

type UserRepository interface {
	BaseRepository[models.User]
	GetByEmail(ctx context.Context, email string, dest *models.User) error
	GetManyByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
}

type userRepository struct {
	BaseRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.User](db), db: db}
}

// GetByEmail looks a user up by email, case-insensitively. Emails are stored
// lowercased but the comparison lowercases the input too for safety.
func (r *userRepository) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Where("lower(email) = ?", email).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "user not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get user by email failed")
	}
	return nil
}

// GetManyByIDs fetches the users for the given ids in one query. Used to
// expand listings with owner/candidate details.
func (r *userRepository) GetManyByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get users by ids failed")
	}
	return out, nil
}
