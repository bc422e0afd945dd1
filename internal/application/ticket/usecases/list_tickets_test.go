package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func ticketPage(t *testing.T, filter ticket.TicketFilter, total int) []*ticket.Ticket {
	t.Helper()

	start := (filter.Page - 1) * filter.PageSize
	if start >= total {
		return nil
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}

	page := make([]*ticket.Ticket, 0, end-start)
	for i := start; i < end; i++ {
		page = append(page, testTicket(t, uint(i+1), vo.StatusOpen))
	}
	return page
}

func TestListTicketsUseCase_Pagination(t *testing.T) {
	const total = 25

	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			return ticketPage(t, filter, total), total, nil
		},
	}
	uc := NewListTicketsUseCase(ticketRepo, &mockLogger{})
	ctx := context.Background()

	// 25 tickets at 10 per page: 10, 10, 5, then empty.
	page1, err := uc.Execute(ctx, ListTicketsQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page1.Tickets, 10)
	assert.EqualValues(t, total, page1.Total)
	assert.Equal(t, 3, page1.TotalPages)
	assert.True(t, page1.HasNext)
	assert.False(t, page1.HasPrevious)

	page3, err := uc.Execute(ctx, ListTicketsQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page3.Tickets, 5)
	assert.False(t, page3.HasNext)
	assert.True(t, page3.HasPrevious)

	page4, err := uc.Execute(ctx, ListTicketsQuery{Page: 4, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page4.Tickets)
	assert.EqualValues(t, total, page4.Total)

	// No page overlap between consecutive pages.
	page2, err := uc.Execute(ctx, ListTicketsQuery{Page: 2, PageSize: 10})
	require.NoError(t, err)
	seen := map[uint]bool{}
	for _, item := range append(page1.Tickets, page2.Tickets...) {
		assert.False(t, seen[item.ID], "ticket %d appeared twice", item.ID)
		seen[item.ID] = true
	}
}

func TestListTicketsUseCase_DefaultsApplied(t *testing.T) {
	var captured ticket.TicketFilter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(ticketRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{})

	require.NoError(t, err)
	assert.Equal(t, ticket.SortRecent, captured.SortBy)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.PageSize)
}

func TestListTicketsUseCase_StatusFilter(t *testing.T) {
	var captured ticket.TicketFilter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(ticketRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Status: "resolved"})

	require.NoError(t, err)
	require.NotNil(t, captured.Status)
	assert.Equal(t, vo.StatusResolved, *captured.Status)
}

func TestListTicketsUseCase_OpenOnlyOverridesStatus(t *testing.T) {
	var captured ticket.TicketFilter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(ticketRepo, &mockLogger{})

	// An explicit status loses to the open-only switch.
	_, err := uc.Execute(context.Background(), ListTicketsQuery{Status: "closed", OpenOnly: true})
	require.NoError(t, err)
	require.NotNil(t, captured.Status)
	assert.Equal(t, vo.StatusOpen, *captured.Status)

	_, err = uc.Execute(context.Background(), ListTicketsQuery{OpenOnly: true})
	require.NoError(t, err)
	require.NotNil(t, captured.Status)
	assert.Equal(t, vo.StatusOpen, *captured.Status)
}

func TestListTicketsUseCase_CategoryNameFilter(t *testing.T) {
	var captured ticket.TicketFilter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(ticketRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Category: "  Billing "})

	require.NoError(t, err)
	assert.Equal(t, "Billing", captured.Category)
}

func TestListTicketsUseCase_MineOnly(t *testing.T) {
	var captured ticket.TicketFilter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(ticketRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{MineOnly: true, CallerID: 42})
	require.NoError(t, err)
	require.NotNil(t, captured.CreatorID)
	assert.EqualValues(t, 42, *captured.CreatorID)

	_, err = uc.Execute(context.Background(), ListTicketsQuery{MineOnly: true})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestListTicketsUseCase_InvalidFilters(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Status: "on_hold"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListTicketsQuery{SortBy: "alphabetical"})
	assert.True(t, errors.IsValidationError(err))
}
