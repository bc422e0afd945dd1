package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func TestResolvePermissionsUseCase(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return testTicket(t, ticketID, vo.StatusOpen), nil
		},
	}

	uc := NewResolvePermissionsUseCase(
		ticketRepo, agentLookup(t, authorization.RoleSupportAgent), &mockLogger{},
	)

	result, err := uc.Execute(context.Background(), ResolvePermissionsQuery{TicketID: 1, CallerID: 5})

	require.NoError(t, err)
	assert.True(t, result.Capabilities.CanReply)
	assert.True(t, result.Capabilities.CanClose)
	assert.False(t, result.Capabilities.IsOwner)
}

func TestResolvePermissionsUseCase_Anonymous(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return testTicket(t, ticketID, vo.StatusOpen), nil
		},
	}

	uc := NewResolvePermissionsUseCase(ticketRepo, &mockUserRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ResolvePermissionsQuery{TicketID: 1})

	require.NoError(t, err)
	assert.Equal(t, ticket.Capabilities{}, result.Capabilities)
}

func TestResolvePermissionsUseCase_TicketNotFound(t *testing.T) {
	uc := NewResolvePermissionsUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ResolvePermissionsQuery{TicketID: 404})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
