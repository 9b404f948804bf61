package schedule

import (
	"context"
	"errors"

	"gorm.io/gorm"

	scheduledomain "petcare-go/internal/domain/schedule"
	"petcare-go/internal/sqlerr"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateSchedule(ctx context.Context, schedule *scheduledomain.Schedule) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(schedule).Error)
}

func (r *PostgresRepository) GetScheduleByID(ctx context.Context, scheduleID int64) (*scheduledomain.Schedule, error) {
	var schedule scheduledomain.Schedule
	if err := r.db.WithContext(ctx).Where("scheduleid = ?", scheduleID).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduledomain.ErrScheduleNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &schedule, nil
}

// ListSchedulesByUserID returns the user's entries in calendar order.
func (r *PostgresRepository) ListSchedulesByUserID(ctx context.Context, userID int64) ([]scheduledomain.Schedule, error) {
	schedules := make([]scheduledomain.Schedule, 0)
	err := r.db.WithContext(ctx).
		Where("userid = ?", userID).
		Order("scheduled_time, scheduleid").
		Find(&schedules).Error
	if err != nil {
		return nil, sqlerr.Classify(err)
	}
	return schedules, nil
}

func (r *PostgresRepository) UpdateSchedule(ctx context.Context, schedule *scheduledomain.Schedule) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&scheduledomain.Schedule{}).
		Where("scheduleid = ?", schedule.ID).
		Updates(map[string]interface{}{
			"scheduled_time": schedule.ScheduledTime,
			"tittle":         schedule.Title,
			"detail":         schedule.Detail,
			"userid":         schedule.UserID,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeleteSchedule(ctx context.Context, scheduleID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&scheduledomain.Schedule{}, "scheduleid = ?", scheduleID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}
