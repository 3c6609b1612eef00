package services

import (
	"context"
	"fmt"

	"github.com/yaronha/demo-llm-agent/ent"
	"github.com/yaronha/demo-llm-agent/ent/user"
	"github.com/yaronha/demo-llm-agent/pkg/models"
)

// UserService manages user records.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// Get retrieves a user by username.
func (s *UserService) Get(ctx context.Context, username string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, username)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// Create creates a new user.
func (s *UserService) Create(ctx context.Context, spec models.UserSpec) (*ent.User, error) {
	if spec.Username == "" {
		return nil, NewValidationError("username", "required")
	}
	if spec.Email == "" {
		return nil, NewValidationError("email", "required")
	}

	builder := s.client.User.Create().
		SetID(spec.Username).
		SetEmail(spec.Email).
		SetFullName(spec.FullName)
	if spec.Features != nil {
		builder.SetFeatures(spec.Features)
	}
	if spec.Policy != nil {
		builder.SetPolicy(spec.Policy)
	}

	u, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// Update applies the non-empty fields of spec to an existing user.
func (s *UserService) Update(ctx context.Context, spec models.UserSpec) (*ent.User, error) {
	if spec.Username == "" {
		return nil, NewValidationError("username", "required")
	}

	update := s.client.User.UpdateOneID(spec.Username)
	if spec.Email != "" {
		update.SetEmail(spec.Email)
	}
	if spec.FullName != "" {
		update.SetFullName(spec.FullName)
	}
	if spec.Features != nil {
		update.SetFeatures(spec.Features)
	}
	if spec.Policy != nil {
		update.SetPolicy(spec.Policy)
	}

	u, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// Delete removes a user by username.
func (s *UserService) Delete(ctx context.Context, username string) error {
	err := s.client.User.DeleteOneID(username).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// List returns users matching the filters.
func (s *UserService) List(ctx context.Context, filters models.UserFilters) ([]*ent.User, error) {
	query := s.client.User.Query()
	if filters.Email != "" {
		query = query.Where(user.EmailEQ(filters.Email))
	}
	if filters.FullName != "" {
		query = query.Where(user.FullNameContains(filters.FullName))
	}

	users, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
