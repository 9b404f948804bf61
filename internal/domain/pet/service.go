package pet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"petcare-go/internal/domain/civil"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Pets

func (s *Service) AddPet(ctx context.Context, input PetInput) (*Pet, error) {
	pet, err := buildPet(0, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreatePet(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

func (s *Service) GetPetByID(ctx context.Context, petID int64) (*Pet, error) {
	return s.repo.GetPetByID(ctx, petID)
}

func (s *Service) ListPetsByUserID(ctx context.Context, userID int64) ([]Pet, error) {
	return s.repo.ListPetsByUserID(ctx, userID)
}

func (s *Service) UpdatePet(ctx context.Context, petID int64, input PetInput) (*Pet, error) {
	pet, err := buildPet(petID, input)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdatePet(ctx, pet)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrPetNotFound
	}
	return pet, nil
}

func (s *Service) DeletePet(ctx context.Context, petID int64) error {
	deleted, err := s.repo.DeletePet(ctx, petID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPetNotFound
	}
	return nil
}

func buildPet(petID int64, input PetInput) (*Pet, error) {
	name := strings.TrimSpace(input.Name)
	breed := strings.TrimSpace(input.Breed)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case breed == "":
		return nil, fmt.Errorf("%w: breed is required", ErrInvalidInput)
	case input.Picture == nil:
		return nil, fmt.Errorf("%w: picture is required", ErrInvalidInput)
	case input.Age < 0:
		return nil, fmt.Errorf("%w: age must not be negative", ErrInvalidInput)
	case input.UserID <= 0:
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	return &Pet{
		ID:          petID,
		Name:        name,
		Breed:       breed,
		Description: input.Description,
		Picture:     input.Picture,
		Age:         input.Age,
		DOB:         dateOrNil(input.DOB),
		UserID:      input.UserID,
	}, nil
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	day := civil.DateOf(*t)
	return &day
}

// Diets

func (s *Service) AddDiet(ctx context.Context, input DietInput) (*Diet, error) {
	diet, err := buildDiet(0, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateDiet(ctx, diet); err != nil {
		return nil, err
	}
	return diet, nil
}

func (s *Service) GetDietByID(ctx context.Context, dietID int64) (*Diet, error) {
	return s.repo.GetDietByID(ctx, dietID)
}

func (s *Service) ListDietsByPetID(ctx context.Context, petID int64) ([]Diet, error) {
	return s.repo.ListDietsByPetID(ctx, petID)
}

func (s *Service) UpdateDiet(ctx context.Context, dietID int64, input DietInput) (*Diet, error) {
	diet, err := buildDiet(dietID, input)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateDiet(ctx, diet)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrDietNotFound
	}
	return diet, nil
}

func (s *Service) DeleteDiet(ctx context.Context, dietID int64) error {
	deleted, err := s.repo.DeleteDiet(ctx, dietID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDietNotFound
	}
	return nil
}

func buildDiet(dietID int64, input DietInput) (*Diet, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: diet name is required", ErrInvalidInput)
	}
	if input.PetID <= 0 {
		return nil, fmt.Errorf("%w: pet id is required", ErrInvalidInput)
	}
	return &Diet{
		ID:          dietID,
		Name:        name,
		Amount:      strings.TrimSpace(input.Amount),
		Description: input.Description,
		PetID:       input.PetID,
	}, nil
}

// Activities

func (s *Service) AddActivity(ctx context.Context, input ActivityInput) (*Activity, error) {
	activity, err := buildActivity(0, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *Service) GetActivityByID(ctx context.Context, activityID int64) (*Activity, error) {
	return s.repo.GetActivityByID(ctx, activityID)
}

func (s *Service) ListActivitiesByPetID(ctx context.Context, petID int64) ([]Activity, error) {
	return s.repo.ListActivitiesByPetID(ctx, petID)
}

func (s *Service) UpdateActivity(ctx context.Context, activityID int64, input ActivityInput) (*Activity, error) {
	activity, err := buildActivity(activityID, input)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateActivity(ctx, activity)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

func (s *Service) DeleteActivity(ctx context.Context, activityID int64) error {
	deleted, err := s.repo.DeleteActivity(ctx, activityID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrActivityNotFound
	}
	return nil
}

func buildActivity(activityID int64, input ActivityInput) (*Activity, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: activity name is required", ErrInvalidInput)
	}
	if input.PetID <= 0 {
		return nil, fmt.Errorf("%w: pet id is required", ErrInvalidInput)
	}
	return &Activity{
		ID:          activityID,
		Name:        name,
		Description: input.Description,
		PetID:       input.PetID,
	}, nil
}

// Pet schedules

func (s *Service) AddPetSchedule(ctx context.Context, input PetScheduleInput) (*PetSchedule, error) {
	schedule, err := buildPetSchedule(0, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreatePetSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *Service) GetPetScheduleByID(ctx context.Context, scheduleID int64) (*PetSchedule, error) {
	return s.repo.GetPetScheduleByID(ctx, scheduleID)
}

func (s *Service) ListPetSchedulesByDietID(ctx context.Context, dietID int64) ([]PetSchedule, error) {
	return s.repo.ListPetSchedulesByDietID(ctx, dietID)
}

func (s *Service) ListPetSchedulesByActivityID(ctx context.Context, activityID int64) ([]PetSchedule, error) {
	return s.repo.ListPetSchedulesByActivityID(ctx, activityID)
}

func (s *Service) UpdatePetSchedule(ctx context.Context, scheduleID int64, input PetScheduleInput) (*PetSchedule, error) {
	schedule, err := buildPetSchedule(scheduleID, input)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdatePetSchedule(ctx, schedule)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrPetScheduleNotFound
	}
	return schedule, nil
}

func (s *Service) DeletePetSchedule(ctx context.Context, scheduleID int64) error {
	deleted, err := s.repo.DeletePetSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPetScheduleNotFound
	}
	return nil
}

func buildPetSchedule(scheduleID int64, input PetScheduleInput) (*PetSchedule, error) {
	if !input.Target.Valid() {
		return nil, ErrInvalidTarget
	}
	if input.Hour < 0 || input.Hour > 23 {
		return nil, fmt.Errorf("%w: hour %d out of range", ErrInvalidInput, input.Hour)
	}
	if input.Minute < 0 || input.Minute > 59 {
		return nil, fmt.Errorf("%w: minute %d out of range", ErrInvalidInput, input.Minute)
	}

	repeat := strings.TrimSpace(input.RepeatOption)
	if repeat == "" {
		repeat = RepeatNever
	}

	return &PetSchedule{
		ID:           scheduleID,
		StartDate:    civil.DateOf(input.StartDate),
		RepeatOption: repeat,
		Hour:         input.Hour,
		Minute:       input.Minute,
		Target:       input.Target,
	}, nil
}
