package schedule

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

func (s *Service) AddSchedule(ctx context.Context, input ScheduleInput) (*Schedule, error) {
	schedule, err := buildSchedule(0, input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *Service) GetScheduleByID(ctx context.Context, scheduleID int64) (*Schedule, error) {
	return s.repo.GetScheduleByID(ctx, scheduleID)
}

func (s *Service) ListSchedulesByUserID(ctx context.Context, userID int64) ([]Schedule, error) {
	return s.repo.ListSchedulesByUserID(ctx, userID)
}

func (s *Service) UpdateSchedule(ctx context.Context, scheduleID int64, input ScheduleInput) (*Schedule, error) {
	schedule, err := buildSchedule(scheduleID, input)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateSchedule(ctx, schedule)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrScheduleNotFound
	}
	return schedule, nil
}

func (s *Service) DeleteSchedule(ctx context.Context, scheduleID int64) error {
	deleted, err := s.repo.DeleteSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrScheduleNotFound
	}
	return nil
}

func buildSchedule(scheduleID int64, input ScheduleInput) (*Schedule, error) {
	title := strings.TrimSpace(input.Title)
	switch {
	case title == "":
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	case input.ScheduledTime.IsZero():
		return nil, fmt.Errorf("%w: scheduled time is required", ErrInvalidInput)
	case input.UserID <= 0:
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	return &Schedule{
		ID:            scheduleID,
		ScheduledTime: input.ScheduledTime.UTC(),
		Title:         title,
		Detail:        input.Detail,
		UserID:        input.UserID,
	}, nil
}
