package pet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	petdomain "petcare-go/internal/domain/pet"
	"petcare-go/internal/sqlerr"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// petScheduleRow is the stored shape of a PetSchedule.
type petScheduleRow struct {
	ID           int64     `gorm:"column:petscheduleid;primaryKey"`
	StartDate    time.Time `gorm:"column:startdate;type:date"`
	RepeatOption string    `gorm:"column:repeat_option;not null;default:never"`
	Hour         int       `gorm:"column:hour;not null"`
	Minute       int       `gorm:"column:minute;not null"`
	DietID       *int64    `gorm:"column:dietid;index"`
	ActivityID   *int64    `gorm:"column:activityid;index"`
}

func (petScheduleRow) TableName() string { return "petschedule" }

func toScheduleRow(schedule *petdomain.PetSchedule) (*petScheduleRow, error) {
	dietID, activityID, err := schedule.Target.Columns()
	if err != nil {
		return nil, err
	}
	return &petScheduleRow{
		ID:           schedule.ID,
		StartDate:    schedule.StartDate,
		RepeatOption: schedule.RepeatOption,
		Hour:         schedule.Hour,
		Minute:       schedule.Minute,
		DietID:       dietID,
		ActivityID:   activityID,
	}, nil
}

func (row petScheduleRow) toDomain() (petdomain.PetSchedule, error) {
	target, err := petdomain.TargetFromColumns(row.DietID, row.ActivityID)
	if err != nil {
		return petdomain.PetSchedule{}, fmt.Errorf("%w: petscheduleid %d", petdomain.ErrCorruptSchedule, row.ID)
	}
	return petdomain.PetSchedule{
		ID:           row.ID,
		StartDate:    row.StartDate.UTC(),
		RepeatOption: row.RepeatOption,
		Hour:         row.Hour,
		Minute:       row.Minute,
		Target:       target,
	}, nil
}

func utcDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// Pets

func (r *PostgresRepository) CreatePet(ctx context.Context, pet *petdomain.Pet) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(pet).Error)
}

func (r *PostgresRepository) GetPetByID(ctx context.Context, petID int64) (*petdomain.Pet, error) {
	var pet petdomain.Pet
	if err := r.db.WithContext(ctx).Where("petid = ?", petID).First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, petdomain.ErrPetNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	pet.DOB = utcDate(pet.DOB)
	return &pet, nil
}

func (r *PostgresRepository) ListPetsByUserID(ctx context.Context, userID int64) ([]petdomain.Pet, error) {
	pets := make([]petdomain.Pet, 0)
	if err := r.db.WithContext(ctx).Where("userid = ?", userID).Order("petid").Find(&pets).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	for i := range pets {
		pets[i].DOB = utcDate(pets[i].DOB)
	}
	return pets, nil
}

func (r *PostgresRepository) UpdatePet(ctx context.Context, pet *petdomain.Pet) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&petdomain.Pet{}).
		Where("petid = ?", pet.ID).
		Updates(map[string]interface{}{
			"name":        pet.Name,
			"breed":       pet.Breed,
			"description": pet.Description,
			"picture":     pet.Picture,
			"age":         pet.Age,
			"dob":         pet.DOB,
			"userid":      pet.UserID,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeletePet(ctx context.Context, petID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&petdomain.Pet{}, "petid = ?", petID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

// Diets

func (r *PostgresRepository) CreateDiet(ctx context.Context, diet *petdomain.Diet) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(diet).Error)
}

func (r *PostgresRepository) GetDietByID(ctx context.Context, dietID int64) (*petdomain.Diet, error) {
	var diet petdomain.Diet
	if err := r.db.WithContext(ctx).Where("dietid = ?", dietID).First(&diet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, petdomain.ErrDietNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &diet, nil
}

func (r *PostgresRepository) ListDietsByPetID(ctx context.Context, petID int64) ([]petdomain.Diet, error) {
	diets := make([]petdomain.Diet, 0)
	if err := r.db.WithContext(ctx).Where("petid = ?", petID).Order("dietid").Find(&diets).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return diets, nil
}

func (r *PostgresRepository) UpdateDiet(ctx context.Context, diet *petdomain.Diet) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&petdomain.Diet{}).
		Where("dietid = ?", diet.ID).
		Updates(map[string]interface{}{
			"name":        diet.Name,
			"amount":      diet.Amount,
			"description": diet.Description,
			"petid":       diet.PetID,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeleteDiet(ctx context.Context, dietID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&petdomain.Diet{}, "dietid = ?", dietID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

// Activities

func (r *PostgresRepository) CreateActivity(ctx context.Context, activity *petdomain.Activity) error {
	return sqlerr.Classify(r.db.WithContext(ctx).Create(activity).Error)
}

func (r *PostgresRepository) GetActivityByID(ctx context.Context, activityID int64) (*petdomain.Activity, error) {
	var activity petdomain.Activity
	if err := r.db.WithContext(ctx).Where("activityid = ?", activityID).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, petdomain.ErrActivityNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	return &activity, nil
}

func (r *PostgresRepository) ListActivitiesByPetID(ctx context.Context, petID int64) ([]petdomain.Activity, error) {
	activities := make([]petdomain.Activity, 0)
	if err := r.db.WithContext(ctx).Where("petid = ?", petID).Order("activityid").Find(&activities).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}
	return activities, nil
}

func (r *PostgresRepository) UpdateActivity(ctx context.Context, activity *petdomain.Activity) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&petdomain.Activity{}).
		Where("activityid = ?", activity.ID).
		Updates(map[string]interface{}{
			"name":        activity.Name,
			"description": activity.Description,
			"petid":       activity.PetID,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeleteActivity(ctx context.Context, activityID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&petdomain.Activity{}, "activityid = ?", activityID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

// Pet schedules

func (r *PostgresRepository) CreatePetSchedule(ctx context.Context, schedule *petdomain.PetSchedule) error {
	row, err := toScheduleRow(schedule)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return sqlerr.Classify(err)
	}
	schedule.ID = row.ID
	return nil
}

func (r *PostgresRepository) GetPetScheduleByID(ctx context.Context, scheduleID int64) (*petdomain.PetSchedule, error) {
	var row petScheduleRow
	if err := r.db.WithContext(ctx).Where("petscheduleid = ?", scheduleID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, petdomain.ErrPetScheduleNotFound
		}
		return nil, sqlerr.Classify(err)
	}
	schedule, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *PostgresRepository) ListPetSchedulesByDietID(ctx context.Context, dietID int64) ([]petdomain.PetSchedule, error) {
	return r.listSchedules(r.db.WithContext(ctx).Where("dietid = ?", dietID))
}

func (r *PostgresRepository) ListPetSchedulesByActivityID(ctx context.Context, activityID int64) ([]petdomain.PetSchedule, error) {
	return r.listSchedules(r.db.WithContext(ctx).Where("activityid = ?", activityID))
}

func (r *PostgresRepository) listSchedules(query *gorm.DB) ([]petdomain.PetSchedule, error) {
	rows := make([]petScheduleRow, 0)
	if err := query.Order("petscheduleid").Find(&rows).Error; err != nil {
		return nil, sqlerr.Classify(err)
	}

	schedules := make([]petdomain.PetSchedule, 0, len(rows))
	for _, row := range rows {
		schedule, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, nil
}

func (r *PostgresRepository) UpdatePetSchedule(ctx context.Context, schedule *petdomain.PetSchedule) (bool, error) {
	row, err := toScheduleRow(schedule)
	if err != nil {
		return false, err
	}
	result := r.db.WithContext(ctx).
		Model(&petScheduleRow{}).
		Where("petscheduleid = ?", row.ID).
		Updates(map[string]interface{}{
			"startdate":     row.StartDate,
			"repeat_option": row.RepeatOption,
			"hour":          row.Hour,
			"minute":        row.Minute,
			"dietid":        row.DietID,
			"activityid":    row.ActivityID,
		})
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}

func (r *PostgresRepository) DeletePetSchedule(ctx context.Context, scheduleID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&petScheduleRow{}, "petscheduleid = ?", scheduleID)
	return result.RowsAffected > 0, sqlerr.Classify(result.Error)
}
