package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func newCloseUseCase(
	t *testing.T,
	existing *ticket.Ticket,
	role authorization.UserRole,
	updated *bool,
	published *bool,
) *CloseTicketUseCase {
	t.Helper()

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			if updated != nil {
				*updated = true
			}
			return nil
		},
	}
	publisher := &mockEventPublisher{
		PublishFunc: func(event events.DomainEvent) error {
			if published != nil {
				*published = true
			}
			return nil
		},
	}

	return NewCloseTicketUseCase(ticketRepo, agentLookup(t, role), publisher, &mockLogger{})
}

func TestCloseTicketUseCase_CreatorCloses(t *testing.T) {
	existing := testTicket(t, 1, vo.StatusResolved)
	updated := false
	published := false

	uc := newCloseUseCase(t, existing, authorization.RoleEndUser, &updated, &published)

	result, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: 1, UserID: testCreatorID})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed.String(), result.Status)
	require.NotNil(t, result.ClosedAt)
	assert.True(t, updated)
	assert.True(t, published)
}

func TestCloseTicketUseCase_StaffCloses(t *testing.T) {
	existing := testTicket(t, 1, vo.StatusOpen)

	uc := newCloseUseCase(t, existing, authorization.RoleSupportAgent, nil, nil)

	result, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: 1, UserID: 99})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed.String(), result.Status)
}

func TestCloseTicketUseCase_StrangerForbidden(t *testing.T) {
	existing := testTicket(t, 1, vo.StatusOpen)

	uc := newCloseUseCase(t, existing, authorization.RoleEndUser, nil, nil)

	_, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: 1, UserID: 99})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCloseTicketUseCase_AlreadyClosedIsNoOp(t *testing.T) {
	existing := testTicket(t, 1, vo.StatusClosed)
	updated := false
	published := false

	uc := newCloseUseCase(t, existing, authorization.RoleAdmin, &updated, &published)

	result, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: 1, UserID: 99})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed.String(), result.Status)
	assert.False(t, updated, "closing a closed ticket must not write")
	assert.False(t, published)
}

func TestCloseTicketUseCase_TicketNotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{}

	uc := NewCloseTicketUseCase(
		ticketRepo, agentLookup(t, authorization.RoleAdmin), &mockEventPublisher{}, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: 404, UserID: 99})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCloseTicketUseCase_Unauthenticated(t *testing.T) {
	uc := NewCloseTicketUseCase(
		&mockTicketRepository{}, &mockUserRepository{}, &mockEventPublisher{}, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: 1})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}
