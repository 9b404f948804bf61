package pet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	petdomain "petcare-go/internal/domain/pet"
	"petcare-go/internal/repository/repotest"
)

func newTestDB(t *testing.T) *gorm.DB {
	return repotest.Open(t,
		&petdomain.Pet{},
		&petdomain.Diet{},
		&petdomain.Activity{},
		&petScheduleRow{},
	)
}

func TestPetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(newTestDB(t))
	service := petdomain.NewService(repo)

	picture := []byte{0xff, 0xd8, 0xff, 0x00, 0x10}
	dob := time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC)

	created, err := service.AddPet(ctx, petdomain.PetInput{
		Name:    "Rex",
		Breed:   "Labrador",
		Picture: picture,
		Age:     4,
		DOB:     &dob,
		UserID:  12,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	stored, err := repo.GetPetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, picture, stored.Picture)
	require.NotNil(t, stored.DOB)
	require.True(t, dob.Equal(*stored.DOB), "dob %v", stored.DOB)
	require.Equal(t, "Labrador", stored.Breed)

	_, err = service.UpdatePet(ctx, created.ID, petdomain.PetInput{
		Name: "Rex", Breed: "Labrador", Picture: picture, Age: 5, DOB: &dob, UserID: 12,
	})
	require.NoError(t, err)

	pets, err := repo.ListPetsByUserID(ctx, 12)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	require.Equal(t, 5, pets[0].Age)

	require.NoError(t, service.DeletePet(ctx, created.ID))
	_, err = repo.GetPetByID(ctx, created.ID)
	require.ErrorIs(t, err, petdomain.ErrPetNotFound)
}

func TestPetWithoutDOBStoresNull(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPostgres(db)
	service := petdomain.NewService(repo)

	dob := time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)
	created, err := service.AddPet(ctx, petdomain.PetInput{
		Name: "Mia", Breed: "Siamese", Picture: []byte{1}, UserID: 4,
	})
	require.NoError(t, err)

	var nulls int64
	require.NoError(t, db.Model(&petdomain.Pet{}).Where("petid = ? AND dob IS NULL", created.ID).Count(&nulls).Error)
	require.EqualValues(t, 1, nulls)

	stored, err := repo.GetPetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, stored.DOB)

	_, err = service.UpdatePet(ctx, created.ID, petdomain.PetInput{
		Name: "Mia", Breed: "Siamese", Picture: []byte{1}, DOB: &dob, UserID: 4,
	})
	require.NoError(t, err)
	_, err = service.UpdatePet(ctx, created.ID, petdomain.PetInput{
		Name: "Mia", Breed: "Siamese", Picture: []byte{1}, UserID: 4,
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&petdomain.Pet{}).Where("petid = ? AND dob IS NULL", created.ID).Count(&nulls).Error)
	require.EqualValues(t, 1, nulls)
}

func TestDietsAndActivities(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(newTestDB(t))
	service := petdomain.NewService(repo)

	diet, err := service.AddDiet(ctx, petdomain.DietInput{Name: "Kibble", Amount: "200g", PetID: 3})
	require.NoError(t, err)
	_, err = service.AddDiet(ctx, petdomain.DietInput{Name: "Treats", Amount: "2", PetID: 3})
	require.NoError(t, err)

	diets, err := repo.ListDietsByPetID(ctx, 3)
	require.NoError(t, err)
	require.Len(t, diets, 2)
	require.Equal(t, "Kibble", diets[0].Name)

	_, err = service.UpdateDiet(ctx, diet.ID, petdomain.DietInput{Name: "Kibble", Amount: "250g", PetID: 3})
	require.NoError(t, err)
	stored, err := repo.GetDietByID(ctx, diet.ID)
	require.NoError(t, err)
	require.Equal(t, "250g", stored.Amount)

	activity, err := service.AddActivity(ctx, petdomain.ActivityInput{Name: "Walk", PetID: 3})
	require.NoError(t, err)
	activities, err := repo.ListActivitiesByPetID(ctx, 3)
	require.NoError(t, err)
	require.Len(t, activities, 1)

	require.NoError(t, service.DeleteActivity(ctx, activity.ID))
	require.ErrorIs(t, service.DeleteActivity(ctx, activity.ID), petdomain.ErrActivityNotFound)

	empty, err := repo.ListDietsByPetID(ctx, 99)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestPetScheduleTargetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(newTestDB(t))
	service := petdomain.NewService(repo)

	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	dietSchedule, err := service.AddPetSchedule(ctx, petdomain.PetScheduleInput{
		StartDate: start, Hour: 8, Minute: 30, Target: petdomain.DietTarget(4),
	})
	require.NoError(t, err)
	require.Equal(t, petdomain.RepeatNever, dietSchedule.RepeatOption)

	activitySchedule, err := service.AddPetSchedule(ctx, petdomain.PetScheduleInput{
		StartDate: start, RepeatOption: "daily", Hour: 18, Minute: 0, Target: petdomain.ActivityTarget(4),
	})
	require.NoError(t, err)

	stored, err := repo.GetPetScheduleByID(ctx, dietSchedule.ID)
	require.NoError(t, err)
	require.Equal(t, petdomain.DietTarget(4), stored.Target)
	require.True(t, start.Equal(stored.StartDate))

	byDiet, err := repo.ListPetSchedulesByDietID(ctx, 4)
	require.NoError(t, err)
	require.Len(t, byDiet, 1)
	require.Equal(t, dietSchedule.ID, byDiet[0].ID)

	byActivity, err := repo.ListPetSchedulesByActivityID(ctx, 4)
	require.NoError(t, err)
	require.Len(t, byActivity, 1)
	require.Equal(t, "daily", byActivity[0].RepeatOption)

	_, err = service.UpdatePetSchedule(ctx, activitySchedule.ID, petdomain.PetScheduleInput{
		StartDate: start, Hour: 19, Minute: 15, Target: petdomain.DietTarget(4),
	})
	require.NoError(t, err)

	byDiet, err = repo.ListPetSchedulesByDietID(ctx, 4)
	require.NoError(t, err)
	require.Len(t, byDiet, 2)
	byActivity, err = repo.ListPetSchedulesByActivityID(ctx, 4)
	require.NoError(t, err)
	require.Empty(t, byActivity)
}

func TestPetScheduleRejectsMissingTarget(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPostgres(db)
	service := petdomain.NewService(repo)

	_, err := service.AddPetSchedule(ctx, petdomain.PetScheduleInput{Hour: 8})
	require.ErrorIs(t, err, petdomain.ErrInvalidTarget)

	err = repo.CreatePetSchedule(ctx, &petdomain.PetSchedule{Hour: 8, RepeatOption: petdomain.RepeatNever})
	require.ErrorIs(t, err, petdomain.ErrInvalidTarget)

	var count int64
	require.NoError(t, db.Model(&petScheduleRow{}).Count(&count).Error)
	require.Zero(t, count)

	// A row written outside the repository with neither target set.
	broken := petScheduleRow{Hour: 1, Minute: 1, RepeatOption: petdomain.RepeatNever}
	require.NoError(t, db.Create(&broken).Error)
	_, err = repo.GetPetScheduleByID(ctx, broken.ID)
	require.ErrorIs(t, err, petdomain.ErrCorruptSchedule)
	require.NotErrorIs(t, err, petdomain.ErrInvalidTarget)

	_, err = repo.ListPetSchedulesByDietID(ctx, 0)
	require.NoError(t, err)
}

func TestPetMissingKeys(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(newTestDB(t))

	_, err := repo.GetDietByID(ctx, 1)
	require.ErrorIs(t, err, petdomain.ErrDietNotFound)
	_, err = repo.GetActivityByID(ctx, 1)
	require.ErrorIs(t, err, petdomain.ErrActivityNotFound)
	_, err = repo.GetPetScheduleByID(ctx, 1)
	require.ErrorIs(t, err, petdomain.ErrPetScheduleNotFound)

	updated, err := repo.UpdatePetSchedule(ctx, &petdomain.PetSchedule{ID: 1, Target: petdomain.DietTarget(1)})
	require.NoError(t, err)
	require.False(t, updated)
}

func TestModelsMatchMigrations(t *testing.T) {
	repotest.RequireMigrationCovers(t,
		&petdomain.Pet{},
		&petdomain.Diet{},
		&petdomain.Activity{},
		&petScheduleRow{},
	)
}
