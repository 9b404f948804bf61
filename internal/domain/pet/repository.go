package pet

import "context"

type Repository interface {
	CreatePet(ctx context.Context, pet *Pet) error
	GetPetByID(ctx context.Context, petID int64) (*Pet, error)
	ListPetsByUserID(ctx context.Context, userID int64) ([]Pet, error)
	UpdatePet(ctx context.Context, pet *Pet) (bool, error)
	DeletePet(ctx context.Context, petID int64) (bool, error)

	CreateDiet(ctx context.Context, diet *Diet) error
	GetDietByID(ctx context.Context, dietID int64) (*Diet, error)
	ListDietsByPetID(ctx context.Context, petID int64) ([]Diet, error)
	UpdateDiet(ctx context.Context, diet *Diet) (bool, error)
	DeleteDiet(ctx context.Context, dietID int64) (bool, error)

	CreateActivity(ctx context.Context, activity *Activity) error
	GetActivityByID(ctx context.Context, activityID int64) (*Activity, error)
	ListActivitiesByPetID(ctx context.Context, petID int64) ([]Activity, error)
	UpdateActivity(ctx context.Context, activity *Activity) (bool, error)
	DeleteActivity(ctx context.Context, activityID int64) (bool, error)

	CreatePetSchedule(ctx context.Context, schedule *PetSchedule) error
	GetPetScheduleByID(ctx context.Context, scheduleID int64) (*PetSchedule, error)
	ListPetSchedulesByDietID(ctx context.Context, dietID int64) ([]PetSchedule, error)
	ListPetSchedulesByActivityID(ctx context.Context, activityID int64) ([]PetSchedule, error)
	UpdatePetSchedule(ctx context.Context, schedule *PetSchedule) (bool, error)
	DeletePetSchedule(ctx context.Context, scheduleID int64) (bool, error)
}
