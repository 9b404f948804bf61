package schedule

import "context"

type Repository interface {
	CreateSchedule(ctx context.Context, schedule *Schedule) error
	GetScheduleByID(ctx context.Context, scheduleID int64) (*Schedule, error)
	ListSchedulesByUserID(ctx context.Context, userID int64) ([]Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *Schedule) (bool, error)
	DeleteSchedule(ctx context.Context, scheduleID int64) (bool, error)
}
