package catalog

import (
	"context"

	"petcare-go/internal/domain/civil"
)

type Repository interface {
	CreateServiceType(ctx context.Context, serviceType *ServiceType) error
	GetServiceTypeByID(ctx context.Context, typeID int64) (*ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]ServiceType, error)
	UpdateServiceType(ctx context.Context, serviceType *ServiceType) (bool, error)
	DeleteServiceType(ctx context.Context, typeID int64) (bool, error)

	CreateService(ctx context.Context, service *Offering) error
	GetServiceByID(ctx context.Context, serviceID int64) (*Offering, error)
	ListServices(ctx context.Context) ([]Offering, error)
	ListServicesByProviderID(ctx context.Context, providerID int64) ([]Offering, error)
	ListServicesByTypeID(ctx context.Context, typeID int64) ([]Offering, error)
	UpdateService(ctx context.Context, service *Offering) (bool, error)
	DeleteService(ctx context.Context, serviceID int64) (bool, error)

	CreateTimeSlot(ctx context.Context, slot *TimeSlot) error
	ListTimeSlots(ctx context.Context) ([]TimeSlot, error)
	ListTimeSlotsByServiceID(ctx context.Context, serviceID int64) ([]TimeSlot, error)
	DeleteTimeSlot(ctx context.Context, serviceID int64, slot civil.TimeOfDay) (bool, error)
}
