package repositories

import (
	"context"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *entities.User) error
	GetUsers(ctx context.Context, page, limit int, orderBy, role string) ([]entities.User, int64, error)
	GetUserByID(ctx context.Context, id string) (*entities.User, error)
	UpdateUser(ctx context.Context, user *entities.User) error
	GetAgentsByManager(ctx context.Context, managerID string) ([]entities.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUsers(ctx context.Context, page, limit int, orderBy, role string) ([]entities.User, int64, error) {
	var users []entities.User
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	result := query.Order(orderBy).
		Offset(offset).
		Limit(limit).
		Find(&users)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return users, total, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	// Save writes all fields so cleared assignments (manager_id set back
	// to NULL) actually persist.
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) GetAgentsByManager(ctx context.Context, managerID string) ([]entities.User, error) {
	var agents []entities.User
	result := r.db.WithContext(ctx).
		Where("role = ? AND manager_id = ?", entities.RoleAgent, managerID).
		Order("full_name asc").
		Find(&agents)
	if result.Error != nil {
		return nil, result.Error
	}
	return agents, nil
}
