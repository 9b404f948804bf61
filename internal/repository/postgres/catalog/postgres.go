package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalogdomain "petcare-go/internal/domain/catalog"
	"petcare-go/internal/domain/civil"
	"petcare-go/internal/sqlerr"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Service types

func (r *PostgresRepository) CreateServiceType(ctx context.Context, serviceType *catalogdomain.ServiceType) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(serviceType).Error)
}

func (r *PostgresRepository) GetServiceTypeByID(ctx context.Context, typeID int64) (*catalogdomain.ServiceType, error) {
	var serviceType catalogdomain.ServiceType
	if err := r.db.WithContext(ctx).Where("typeid = ?", typeID).First(&serviceType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogdomain.ErrServiceTypeNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &serviceType, nil
}

func (r *PostgresRepository) ListServiceTypes(ctx context.Context) ([]catalogdomain.ServiceType, error) {
	types := make([]catalogdomain.ServiceType, 0)
	if err := r.db.WithContext(ctx).Order("typeid").Find(&types).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return types, nil
}

func (r *PostgresRepository) UpdateServiceType(ctx context.Context, serviceType *catalogdomain.ServiceType) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&catalogdomain.ServiceType{}).
		Where("typeid = ?", serviceType.ID).
		Update("type", serviceType.Type)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeleteServiceType(ctx context.Context, typeID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&catalogdomain.ServiceType{}, "typeid = ?", typeID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

// Services

func (r *PostgresRepository) CreateService(ctx context.Context, service *catalogdomain.Offering) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(service).Error)
}

func (r *PostgresRepository) GetServiceByID(ctx context.Context, serviceID int64) (*catalogdomain.Offering, error) {
	var service catalogdomain.Offering
	if err := r.db.WithContext(ctx).Where("serviceid = ?", serviceID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalogdomain.ErrServiceNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &service, nil
}

func (r *PostgresRepository) ListServices(ctx context.Context) ([]catalogdomain.Offering, error) {
	return r.listServices(r.db.WithContext(ctx))
}

func (r *PostgresRepository) ListServicesByProviderID(ctx context.Context, providerID int64) ([]catalogdomain.Offering, error) {
	return r.listServices(r.db.WithContext(ctx).Where("providerid = ?", providerID))
}

func (r *PostgresRepository) ListServicesByTypeID(ctx context.Context, typeID int64) ([]catalogdomain.Offering, error) {
	return r.listServices(r.db.WithContext(ctx).Where("typeid = ?", typeID))
}

func (r *PostgresRepository) listServices(query *gorm.DB) ([]catalogdomain.Offering, error) {
	services := make([]catalogdomain.Offering, 0)
	if err := query.Order("serviceid").Find(&services).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return services, nil
}

func (r *PostgresRepository) UpdateService(ctx context.Context, service *catalogdomain.Offering) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&catalogdomain.Offering{}).
		Where("serviceid = ?", service.ID).
		Updates(map[string]interface{}{
			"name":        service.Name,
			"price":       service.Price,
			"description": service.Description,
			"duration":    service.Duration,
			"license":     service.License,
			"typeid":      service.TypeID,
			"providerid":  service.ProviderID,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeleteService(ctx context.Context, serviceID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&catalogdomain.Offering{}, "serviceid = ?", serviceID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

// Time slots

func (r *PostgresRepository) CreateTimeSlot(ctx context.Context, slot *catalogdomain.TimeSlot) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(slot).Error)
}

func (r *PostgresRepository) ListTimeSlots(ctx context.Context) ([]catalogdomain.TimeSlot, error) {
	slots := make([]catalogdomain.TimeSlot, 0)
	if err := r.db.WithContext(ctx).Order("serviceid, slot").Find(&slots).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return slots, nil
}

func (r *PostgresRepository) ListTimeSlotsByServiceID(ctx context.Context, serviceID int64) ([]catalogdomain.TimeSlot, error) {
	slots := make([]catalogdomain.TimeSlot, 0)
	if err := r.db.WithContext(ctx).Where("serviceid = ?", serviceID).Order("slot").Find(&slots).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return slots, nil
}

func (r *PostgresRepository) DeleteTimeSlot(ctx context.Context, serviceID int64, slot civil.TimeOfDay) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&catalogdomain.TimeSlot{}, "serviceid = ? AND slot = ?", serviceID, slot)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}
