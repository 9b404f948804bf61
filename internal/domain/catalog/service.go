package catalog

import (
	"context"
	"fmt"
	"strings"

	"petcare-go/internal/domain/civil"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Service types

func (s *Service) AddServiceType(ctx context.Context, name string) (*ServiceType, error) {
	serviceType, err := buildServiceType(0, name)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateServiceType(ctx, serviceType); err != nil {
		return nil, err
	}
	return serviceType, nil
}

func (s *Service) GetServiceTypeByID(ctx context.Context, typeID int64) (*ServiceType, error) {
	return s.repo.GetServiceTypeByID(ctx, typeID)
}

func (s *Service) ListServiceTypes(ctx context.Context) ([]ServiceType, error) {
	return s.repo.ListServiceTypes(ctx)
}

func (s *Service) UpdateServiceType(ctx context.Context, typeID int64, name string) (*ServiceType, error) {
	serviceType, err := buildServiceType(typeID, name)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateServiceType(ctx, serviceType)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrServiceTypeNotFound
	}
	return serviceType, nil
}

func (s *Service) DeleteServiceType(ctx context.Context, typeID int64) error {
	deleted, err := s.repo.DeleteServiceType(ctx, typeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrServiceTypeNotFound
	}
	return nil
}

func buildServiceType(typeID int64, name string) (*ServiceType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	return &ServiceType{ID: typeID, Type: name}, nil
}

// Services

func (s *Service) AddService(ctx context.Context, input OfferingInput) (*Offering, error) {
	service, err := buildService(0, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateService(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *Service) GetServiceByID(ctx context.Context, serviceID int64) (*Offering, error) {
	return s.repo.GetServiceByID(ctx, serviceID)
}

func (s *Service) ListServices(ctx context.Context) ([]Offering, error) {
	return s.repo.ListServices(ctx)
}

func (s *Service) ListServicesByProviderID(ctx context.Context, providerID int64) ([]Offering, error) {
	return s.repo.ListServicesByProviderID(ctx, providerID)
}

func (s *Service) ListServicesByTypeID(ctx context.Context, typeID int64) ([]Offering, error) {
	return s.repo.ListServicesByTypeID(ctx, typeID)
}

func (s *Service) UpdateService(ctx context.Context, serviceID int64, input OfferingInput) (*Offering, error) {
	service, err := buildService(serviceID, input)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateService(ctx, service)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrServiceNotFound
	}
	return service, nil
}

func (s *Service) DeleteService(ctx context.Context, serviceID int64) error {
	deleted, err := s.repo.DeleteService(ctx, serviceID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrServiceNotFound
	}
	return nil
}

func buildService(serviceID int64, input OfferingInput) (*Offering, error) {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	case input.Price < 0:
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	case input.Duration != nil && !input.Duration.Valid():
		return nil, fmt.Errorf("%w: invalid duration %s", ErrInvalidInput, input.Duration)
	case input.TypeID <= 0 || input.ProviderID <= 0:
		return nil, fmt.Errorf("%w: type and provider are required", ErrInvalidInput)
	}

	return &Offering{
		ID:          serviceID,
		Name:        name,
		Price:       input.Price,
		Description: input.Description,
		Duration:    input.Duration,
		License:     input.License,
		TypeID:      input.TypeID,
		ProviderID:  input.ProviderID,
	}, nil
}

// Time slots

func (s *Service) AddTimeSlot(ctx context.Context, serviceID int64, slot civil.TimeOfDay) (*TimeSlot, error) {
	if serviceID <= 0 {
		return nil, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if !slot.Valid() {
		return nil, fmt.Errorf("%w: invalid slot %s", ErrInvalidInput, slot)
	}

	timeSlot := &TimeSlot{ServiceID: serviceID, Slot: slot}
	if err := s.repo.CreateTimeSlot(ctx, timeSlot); err != nil {
		return nil, err
	}
	return timeSlot, nil
}

func (s *Service) ListTimeSlots(ctx context.Context) ([]TimeSlot, error) {
	return s.repo.ListTimeSlots(ctx)
}

func (s *Service) ListTimeSlotsByServiceID(ctx context.Context, serviceID int64) ([]TimeSlot, error) {
	return s.repo.ListTimeSlotsByServiceID(ctx, serviceID)
}

func (s *Service) DeleteTimeSlot(ctx context.Context, serviceID int64, slot civil.TimeOfDay) error {
	deleted, err := s.repo.DeleteTimeSlot(ctx, serviceID, slot)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTimeSlotNotFound
	}
	return nil
}
