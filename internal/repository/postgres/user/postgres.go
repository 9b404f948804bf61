package user

import (
	"context"
	"errors"

	userdomain "petcare-go/internal/domain/user"
	"petcare-go/internal/sqlerr"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(userdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

// Users

func (r *PostgresRepository) CreateUser(ctx context.Context, user *userdomain.User) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(user).Error)
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, userID int64) (*userdomain.User, error) {
	var user userdomain.User
	if err := r.db.WithContext(ctx).Where("userid = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &user, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]userdomain.User, error) {
	users := make([]userdomain.User, 0)
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return users, nil
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, user *userdomain.User) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("userid = ?", user.ID).
		Updates(map[string]interface{}{
			"name":     user.Name,
			"email":    user.Email,
			"password": user.Password,
			"gender":   user.Gender,
			"role":     user.Role,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&userdomain.User{}, "userid = ?", userID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

// Managers

func (r *PostgresRepository) CreateManager(ctx context.Context, manager *userdomain.Manager) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(manager).Error)
}

func (r *PostgresRepository) GetManagerByID(ctx context.Context, id int64) (*userdomain.Manager, error) {
	var manager userdomain.Manager
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&manager).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrManagerNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &manager, nil
}

func (r *PostgresRepository) ListManagers(ctx context.Context) ([]userdomain.Manager, error) {
	managers := make([]userdomain.Manager, 0)
	if err := r.db.WithContext(ctx).Find(&managers).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return managers, nil
}

// Pet owners

func (r *PostgresRepository) CreatePetOwner(ctx context.Context, owner *userdomain.PetOwner) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(owner).Error)
}

func (r *PostgresRepository) GetPetOwnerByID(ctx context.Context, id int64) (*userdomain.PetOwner, error) {
	var owner userdomain.PetOwner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrPetOwnerNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &owner, nil
}

func (r *PostgresRepository) ListPetOwners(ctx context.Context) ([]userdomain.PetOwner, error) {
	owners := make([]userdomain.PetOwner, 0)
	if err := r.db.WithContext(ctx).Find(&owners).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return owners, nil
}

func (r *PostgresRepository) UpdatePetOwner(ctx context.Context, owner *userdomain.PetOwner) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&userdomain.PetOwner{}).
		Where("id = ?", owner.ID).
		Updates(map[string]interface{}{
			"phone":   owner.Phone,
			"city":    owner.City,
			"address": owner.Address,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

// Service providers

func (r *PostgresRepository) CreateServiceProvider(ctx context.Context, provider *userdomain.ServiceProvider) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(provider).Error)
}

func (r *PostgresRepository) GetServiceProviderByID(ctx context.Context, id int64) (*userdomain.ServiceProvider, error) {
	var provider userdomain.ServiceProvider
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrServiceProviderNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &provider, nil
}

func (r *PostgresRepository) ListServiceProviders(ctx context.Context) ([]userdomain.ServiceProvider, error) {
	providers := make([]userdomain.ServiceProvider, 0)
	if err := r.db.WithContext(ctx).Find(&providers).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return providers, nil
}

func (r *PostgresRepository) UpdateServiceProvider(ctx context.Context, provider *userdomain.ServiceProvider) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&userdomain.ServiceProvider{}).
		Where("id = ?", provider.ID).
		Updates(map[string]interface{}{
			"bussiness_name": provider.BusinessName,
			"logo":           provider.Logo,
			"phone":          provider.Phone,
			"description":    provider.Description,
			"address":        provider.Address,
			"website":        provider.Website,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}
