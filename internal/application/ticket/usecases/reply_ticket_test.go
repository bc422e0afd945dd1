package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func agentLookup(t *testing.T, role authorization.UserRole) *mockUserRepository {
	t.Helper()
	return &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testAccount(t, id, role, false), nil
		},
	}
}

func TestReplyTicketUseCase_ReplyResolvesTicket(t *testing.T) {
	existing := testTicket(t, 1, vo.StatusOpen)

	var savedComment *ticket.Comment
	var updatedTicket *ticket.Ticket
	var published events.DomainEvent

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updatedTicket = tk
			return nil
		},
	}
	commentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
			require.NoError(t, c.SetID(7))
			savedComment = c
			return nil
		},
	}
	publisher := &mockEventPublisher{
		PublishFunc: func(event events.DomainEvent) error {
			published = event
			return nil
		},
	}

	uc := NewReplyTicketUseCase(
		ticketRepo, commentRepo, agentLookup(t, authorization.RoleSupportAgent),
		&mockTxRunner{}, publisher, &mockLogger{},
	)

	result, err := uc.Execute(context.Background(), ReplyTicketCommand{
		TicketID: 1,
		AuthorID: 5,
		Content:  "  We fixed the printer.  ",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 7, result.CommentID)
	assert.Equal(t, vo.StatusResolved.String(), result.Status)
	require.NotNil(t, result.ResolvedAt)

	require.NotNil(t, savedComment)
	assert.Equal(t, "We fixed the printer.", savedComment.Content())

	require.NotNil(t, updatedTicket)
	assert.Equal(t, vo.StatusResolved, updatedTicket.Status())

	require.NotNil(t, published)
	assert.Equal(t, ticket.EventTicketResolved, published.GetEventType())
}

func TestReplyTicketUseCase_ReplyResolvesClosedTicket(t *testing.T) {
	existing := testTicket(t, 1, vo.StatusClosed)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	uc := NewReplyTicketUseCase(
		ticketRepo, &mockCommentRepository{}, agentLookup(t, authorization.RoleAdmin),
		&mockTxRunner{}, &mockEventPublisher{}, &mockLogger{},
	)

	result, err := uc.Execute(context.Background(), ReplyTicketCommand{
		TicketID: 1,
		AuthorID: 5,
		Content:  "Reopening with a fix.",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved.String(), result.Status)
}

func TestReplyTicketUseCase_InternalNoteKeepsStatus(t *testing.T) {
	existing := testTicket(t, 1, vo.StatusOpen)

	updated := false
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = true
			return nil
		},
	}
	published := false
	publisher := &mockEventPublisher{
		PublishFunc: func(event events.DomainEvent) error {
			published = true
			return nil
		},
	}

	uc := NewReplyTicketUseCase(
		ticketRepo, &mockCommentRepository{}, agentLookup(t, authorization.RoleSupportAgent),
		&mockTxRunner{}, publisher, &mockLogger{},
	)

	result, err := uc.Execute(context.Background(), ReplyTicketCommand{
		TicketID:   1,
		AuthorID:   5,
		Content:    "Needs escalation to networking team.",
		IsInternal: true,
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen.String(), result.Status)
	assert.Nil(t, result.ResolvedAt)
	assert.False(t, updated, "internal notes must not touch the ticket row")
	assert.False(t, published)
}

func TestReplyTicketUseCase_EndUserForbidden(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return testTicket(t, ticketID, vo.StatusOpen), nil
		},
	}

	uc := NewReplyTicketUseCase(
		ticketRepo, &mockCommentRepository{}, agentLookup(t, authorization.RoleEndUser),
		&mockTxRunner{}, &mockEventPublisher{}, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), ReplyTicketCommand{
		TicketID: 1,
		AuthorID: testCreatorID, // even the creator cannot reply
		Content:  "bump",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestReplyTicketUseCase_ValidationErrors(t *testing.T) {
	uc := NewReplyTicketUseCase(
		&mockTicketRepository{}, &mockCommentRepository{}, agentLookup(t, authorization.RoleSupportAgent),
		&mockTxRunner{}, &mockEventPublisher{}, &mockLogger{},
	)

	tests := []struct {
		name string
		cmd  ReplyTicketCommand
	}{
		{"missing ticket ID", ReplyTicketCommand{AuthorID: 5, Content: "hi"}},
		{"empty content", ReplyTicketCommand{TicketID: 1, AuthorID: 5, Content: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestReplyTicketUseCase_Unauthenticated(t *testing.T) {
	uc := NewReplyTicketUseCase(
		&mockTicketRepository{}, &mockCommentRepository{}, &mockUserRepository{},
		&mockTxRunner{}, &mockEventPublisher{}, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), ReplyTicketCommand{TicketID: 1, Content: "hi"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestReplyTicketUseCase_TicketNotFound(t *testing.T) {
	uc := NewReplyTicketUseCase(
		&mockTicketRepository{}, &mockCommentRepository{}, agentLookup(t, authorization.RoleSupportAgent),
		&mockTxRunner{}, &mockEventPublisher{}, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), ReplyTicketCommand{TicketID: 404, AuthorID: 5, Content: "hi"})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
