package user

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID int64) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, user *User) (bool, error)
	DeleteUser(ctx context.Context, userID int64) (bool, error)

	CreateManager(ctx context.Context, manager *Manager) error
	GetManagerByID(ctx context.Context, id int64) (*Manager, error)
	ListManagers(ctx context.Context) ([]Manager, error)

	CreatePetOwner(ctx context.Context, owner *PetOwner) error
	GetPetOwnerByID(ctx context.Context, id int64) (*PetOwner, error)
	ListPetOwners(ctx context.Context) ([]PetOwner, error)
	UpdatePetOwner(ctx context.Context, owner *PetOwner) (bool, error)

	CreateServiceProvider(ctx context.Context, provider *ServiceProvider) error
	GetServiceProviderByID(ctx context.Context, id int64) (*ServiceProvider, error)
	ListServiceProviders(ctx context.Context) ([]ServiceProvider, error)
	UpdateServiceProvider(ctx context.Context, provider *ServiceProvider) (bool, error)
}
