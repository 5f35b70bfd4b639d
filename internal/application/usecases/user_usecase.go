package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"github.com/elevateplus/coaching-api/internal/domain/repositories"
	"github.com/elevateplus/coaching-api/internal/validation"
	"gorm.io/gorm"
)

// IdentityProvider is the external authentication service. It owns
// credentials; this service only stores the profile row keyed by the
// provider's user id.
type IdentityProvider interface {
	CreateUser(email, password, fullName string) (string, error)
	SendPasswordReset(email string) error
}

// CreateUserRequest carries the admin form for a new account.
type CreateUserRequest struct {
	FullName   string  `json:"full_name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	Role       string  `json:"role" validate:"required,role"`
	ManagerID  *string `json:"manager_id" validate:"omitempty,uuid4"`
	CampaignID *string `json:"campaign_id" validate:"omitempty,uuid4"`
}

// UpdateUserRequest carries the editable profile fields. Email is fixed by
// the identity provider and full name only changes there.
type UpdateUserRequest struct {
	Role       string  `json:"role" validate:"required,role"`
	ManagerID  *string `json:"manager_id" validate:"omitempty,uuid4"`
	CampaignID *string `json:"campaign_id" validate:"omitempty,uuid4"`
}

type UserUseCase interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*entities.User, error)
	GetUsers(ctx context.Context, page, limit int, orderBy, role string) ([]entities.User, int64, error)
	GetUserByID(ctx context.Context, id string) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*entities.User, error)
	SendPasswordReset(email string) error
}

type userUseCase struct {
	userRepo repositories.UserRepository
	identity IdentityProvider
}

func NewUserUseCase(userRepo repositories.UserRepository, identity IdentityProvider) UserUseCase {
	return &userUseCase{userRepo, identity}
}

func (uc *userUseCase) CreateUser(ctx context.Context, req CreateUserRequest) (*entities.User, error) {
	if err := validation.CheckStruct(req); err != nil {
		return nil, err
	}
	if err := uc.checkAssignments(ctx, req.Role, req.ManagerID); err != nil {
		return nil, err
	}

	// Register with the provider first; its id keys the profile row. If
	// the profile insert fails afterwards the auth account survives as an
	// orphan with no role, pending cleanup in the provider console.
	providerID, err := uc.identity.CreateUser(req.Email, req.Password, req.FullName)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entities.User{
		UserID:     providerID,
		FullName:   req.FullName,
		Email:      req.Email,
		Role:       req.Role,
		ManagerID:  req.ManagerID,
		CampaignID: req.CampaignID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if user.Role != entities.RoleAgent {
		user.ManagerID = nil
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) GetUsers(ctx context.Context, page, limit int, orderBy, role string) ([]entities.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	return uc.userRepo.GetUsers(ctx, page, limit, orderBy, role)
}

func (uc *userUseCase) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (uc *userUseCase) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*entities.User, error) {
	if err := validation.CheckStruct(req); err != nil {
		return nil, err
	}
	if err := uc.checkAssignments(ctx, req.Role, req.ManagerID); err != nil {
		return nil, err
	}

	user, err := uc.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = req.Role
	user.ManagerID = req.ManagerID
	user.CampaignID = req.CampaignID
	if user.Role != entities.RoleAgent {
		// Leaving the Agent role drops the manager assignment.
		user.ManagerID = nil
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) SendPasswordReset(email string) error {
	return uc.identity.SendPasswordReset(email)
}

// checkAssignments enforces the manager rule: every agent needs a manager,
// and the manager must hold a role eligible to manage agents.
func (uc *userUseCase) checkAssignments(ctx context.Context, role string, managerID *string) error {
	if role != entities.RoleAgent {
		return nil
	}
	if managerID == nil || *managerID == "" {
		return validation.NewError(
			errors.New("please select a manager for the agent"),
			validation.FieldError{Field: "manager_id", Error: "a manager is required for agents"},
		)
	}

	manager, err := uc.userRepo.GetUserByID(ctx, *managerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return validation.NewError(
			errors.New("manager not found"),
			validation.FieldError{Field: "manager_id", Error: "manager does not exist"},
		)
	}
	if err != nil {
		return err
	}
	if !manager.IsAdmin() && !manager.IsManager() {
		return validation.NewError(
			errors.New("selected user cannot manage agents"),
			validation.FieldError{Field: "manager_id", Error: "selected user cannot manage agents"},
		)
	}
	return nil
}
