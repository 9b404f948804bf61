package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	scheduledomain "petcare-go/internal/domain/schedule"
	"petcare-go/internal/repository/repotest"
)

func TestSchedules(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgres(repotest.Open(t, &scheduledomain.Schedule{}))
	service := scheduledomain.NewService(repo)

	later := time.Date(2024, 7, 2, 15, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	vet, err := service.AddSchedule(ctx, scheduledomain.ScheduleInput{ScheduledTime: later, Title: "Vet", UserID: 4})
	require.NoError(t, err)
	_, err = service.AddSchedule(ctx, scheduledomain.ScheduleInput{ScheduledTime: earlier, Title: "Groomer", Detail: "bring leash", UserID: 4})
	require.NoError(t, err)

	list, err := repo.ListSchedulesByUserID(ctx, 4)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Groomer", list[0].Title)
	require.Equal(t, "Vet", list[1].Title)

	_, err = service.UpdateSchedule(ctx, vet.ID, scheduledomain.ScheduleInput{ScheduledTime: later, Title: "Vet checkup", UserID: 4})
	require.NoError(t, err)
	stored, err := repo.GetScheduleByID(ctx, vet.ID)
	require.NoError(t, err)
	require.Equal(t, "Vet checkup", stored.Title)
	require.True(t, later.Equal(stored.ScheduledTime))

	require.NoError(t, service.DeleteSchedule(ctx, vet.ID))
	_, err = repo.GetScheduleByID(ctx, vet.ID)
	require.ErrorIs(t, err, scheduledomain.ErrScheduleNotFound)
	require.ErrorIs(t, service.DeleteSchedule(ctx, vet.ID), scheduledomain.ErrScheduleNotFound)

	none, err := repo.ListSchedulesByUserID(ctx, 99)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestScheduleValidation(t *testing.T) {
	service := scheduledomain.NewService(NewPostgres(repotest.Open(t, &scheduledomain.Schedule{})))

	_, err := service.AddSchedule(context.Background(), scheduledomain.ScheduleInput{Title: "x", UserID: 1})
	require.ErrorIs(t, err, scheduledomain.ErrInvalidInput)

	_, err = service.UpdateSchedule(context.Background(), 5, scheduledomain.ScheduleInput{ScheduledTime: time.Now(), Title: "x", UserID: 1})
	require.ErrorIs(t, err, scheduledomain.ErrScheduleNotFound)
}

func TestModelsMatchMigrations(t *testing.T) {
	repotest.RequireMigrationCovers(t,
		&scheduledomain.Schedule{},
	)
}
