package user

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateUser inserts the user row and its role row in one transaction. An
// unknown role fails before the database is touched.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	role, err := ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	if err := validateUserFields(input.Name, input.Email, input.Password); err != nil {
		return nil, err
	}

	user := User{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Gender:   strings.TrimSpace(input.Gender),
		Role:     role,
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateUser(ctx, &user); err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		if err := createRoleRow(ctx, tx, role, user.ID); err != nil {
			return fmt.Errorf("insert %s row: %w", role, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func createRoleRow(ctx context.Context, tx Repository, role Role, userID int64) error {
	switch role {
	case RoleManager:
		return tx.CreateManager(ctx, &Manager{ID: userID})
	case RolePetOwner:
		return tx.CreatePetOwner(ctx, &PetOwner{ID: userID})
	case RoleServiceProvider:
		return tx.CreateServiceProvider(ctx, &ServiceProvider{ID: userID})
	default:
		return ErrInvalidRole
	}
}

func (s *Service) GetUserByID(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}

// UpdateUser rewrites every column. The role may be respelled but not
// changed, since the role row is only created alongside the user.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*User, error) {
	role, err := ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	if err := validateUserFields(input.Name, input.Email, input.Password); err != nil {
		return nil, err
	}

	current, err := s.repo.GetUserByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if current.Role != role {
		return nil, fmt.Errorf("%w: role cannot change from %q to %q", ErrInvalidInput, current.Role, role)
	}

	user := User{
		ID:       input.ID,
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Gender:   strings.TrimSpace(input.Gender),
		Role:     role,
	}

	updated, err := s.repo.UpdateUser(ctx, &user)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *Service) DeleteUser(ctx context.Context, userID int64) error {
	deleted, err := s.repo.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// Managers

func (s *Service) GetManagerByID(ctx context.Context, id int64) (*Manager, error) {
	return s.repo.GetManagerByID(ctx, id)
}

func (s *Service) ListManagers(ctx context.Context) ([]Manager, error) {
	return s.repo.ListManagers(ctx)
}

// Pet owners

func (s *Service) GetPetOwnerByID(ctx context.Context, id int64) (*PetOwner, error) {
	return s.repo.GetPetOwnerByID(ctx, id)
}

func (s *Service) ListPetOwners(ctx context.Context) ([]PetOwner, error) {
	return s.repo.ListPetOwners(ctx)
}

func (s *Service) UpdatePetOwner(ctx context.Context, input UpdatePetOwnerInput) (*PetOwner, error) {
	owner := PetOwner{
		ID:      input.ID,
		Phone:   normalizePhone(input.Phone),
		City:    strings.TrimSpace(input.City),
		Address: strings.TrimSpace(input.Address),
	}

	updated, err := s.repo.UpdatePetOwner(ctx, &owner)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrPetOwnerNotFound
	}
	return &owner, nil
}

// Service providers

func (s *Service) GetServiceProviderByID(ctx context.Context, id int64) (*ServiceProvider, error) {
	return s.repo.GetServiceProviderByID(ctx, id)
}

func (s *Service) ListServiceProviders(ctx context.Context) ([]ServiceProvider, error) {
	return s.repo.ListServiceProviders(ctx)
}

func (s *Service) UpdateServiceProvider(ctx context.Context, input UpdateServiceProviderInput) (*ServiceProvider, error) {
	provider := ServiceProvider{
		ID:           input.ID,
		BusinessName: strings.TrimSpace(input.BusinessName),
		Logo:         input.Logo,
		Phone:        normalizePhone(input.Phone),
		Description:  input.Description,
		Address:      strings.TrimSpace(input.Address),
		Website:      strings.TrimSpace(input.Website),
	}

	updated, err := s.repo.UpdateServiceProvider(ctx, &provider)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrServiceProviderNotFound
	}
	return &provider, nil
}

// Validation helpers

func validateUserFields(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}

// normalizePhone maps blank phones to NULL so the unique index only covers
// real numbers.
func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
