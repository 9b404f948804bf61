package ticket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ticketdomain "petcare-go/internal/domain/ticket"
	"petcare-go/internal/repository/repotest"
)

func newTestRepo(t *testing.T) *PostgresRepository {
	return NewPostgres(repotest.Open(t, &ticketdomain.Ticket{}))
}

func TestTicketLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	service := ticketdomain.NewService(repo)

	created, err := service.CreateTicket(ctx, ticketdomain.CreateTicketInput{
		UserID:      5,
		Subject:     "Missed walk",
		Description: "walker never came",
		Attachment:  []byte{0x00, 0x01, 0xfe},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	stored, err := repo.GetTicketByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, ticketdomain.StatusPending, stored.Status)
	require.Nil(t, stored.ManagerID)
	require.Nil(t, stored.AssignTime)
	require.Equal(t, []byte{0x00, 0x01, 0xfe}, stored.Attachment)

	_, err = service.AssignTicket(ctx, created.ID, 9)
	require.NoError(t, err)

	stored, err = repo.GetTicketByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, ticketdomain.StatusSolving, stored.Status)
	require.NotNil(t, stored.ManagerID)
	require.EqualValues(t, 9, *stored.ManagerID)
	require.NotNil(t, stored.AssignTime)

	_, err = service.UpdateTicket(ctx, ticketdomain.UpdateTicketInput{ID: created.ID, Subject: "edited"})
	require.ErrorIs(t, err, ticketdomain.ErrTicketLocked)

	_, err = service.UpdateTicketResponse(ctx, ticketdomain.RespondInput{ID: created.ID, Response: []byte("sorry"), Status: "closed"})
	require.NoError(t, err)

	stored, err = repo.GetTicketByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, ticketdomain.StatusClosed, stored.Status)
	require.Equal(t, []byte("sorry"), stored.Response)
	require.Equal(t, "Missed walk", stored.Subject)
}

func TestConditionalUpdatesRespectExpectedStatus(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	ticket := &ticketdomain.Ticket{UserID: 1, Status: ticketdomain.StatusPending, CreateTime: time.Now().UTC()}
	require.NoError(t, repo.CreateTicket(ctx, ticket))

	updated, err := repo.UpdateTicketResponse(ctx, ticket.ID, ticketdomain.StatusSolving, []byte("x"), ticketdomain.StatusFinished)
	require.NoError(t, err)
	require.False(t, updated)

	stored, err := repo.GetTicketByID(ctx, ticket.ID)
	require.NoError(t, err)
	require.Equal(t, ticketdomain.StatusPending, stored.Status)
	require.Nil(t, stored.Response)
}

func TestTicketListsAndMissingKeys(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	service := ticketdomain.NewService(repo)

	for _, userID := range []int64{1, 2, 1} {
		_, err := service.CreateTicket(ctx, ticketdomain.CreateTicketInput{UserID: userID})
		require.NoError(t, err)
	}

	all, err := repo.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	mine, err := repo.ListTicketsByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Less(t, mine[0].ID, mine[1].ID)

	none, err := repo.ListTicketsByManagerID(ctx, 77)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)

	_, err = repo.GetTicketByID(ctx, 404)
	require.ErrorIs(t, err, ticketdomain.ErrTicketNotFound)

	require.ErrorIs(t, service.DeleteTicket(ctx, 404), ticketdomain.ErrTicketNotFound)
	require.NoError(t, service.DeleteTicket(ctx, all[0].ID))
}

func TestModelsMatchMigrations(t *testing.T) {
	repotest.RequireMigrationCovers(t,
		&ticketdomain.Ticket{},
	)
}
