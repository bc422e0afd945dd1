package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// SortKey selects the ordering of ticket listings.
type SortKey string

const (
	SortRecent      SortKey = "recent"
	SortOldest      SortKey = "oldest"
	SortMostUpvoted SortKey = "most_upvoted"
	SortMostViewed  SortKey = "most_viewed"
	SortPriority    SortKey = "priority"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortRecent, SortOldest, SortMostUpvoted, SortMostViewed, SortPriority:
		return true
	}
	return false
}

// TicketFilter narrows and orders ticket listings. Search matches subject or
// description as a case-insensitive substring. Category matches the category
// name exactly, ignoring case.
type TicketFilter struct {
	Search     string
	CategoryID *uint
	Category   string
	Status     *vo.TicketStatus
	CreatorID  *uint
	SortBy     SortKey
	Page       int
	PageSize   int
}

// StatusCounts aggregates ticket totals per status for display purposes.
type StatusCounts struct {
	Total      int64
	Open       int64
	InProgress int64
	Resolved   int64
	Closed     int64
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)

	// IncrementViewCount adds exactly 1 to the ticket's view counter.
	IncrementViewCount(ctx context.Context, ticketID uint) error

	// AdjustVoteCounters applies a vote delta to the cached counters. Must be
	// called inside the same transaction as the vote row mutation.
	AdjustVoteCounters(ctx context.Context, ticketID uint, delta VoteDelta) error

	GetStatusCounts(ctx context.Context) (StatusCounts, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type VoteRepository interface {
	Save(ctx context.Context, vote *Vote) error
	Update(ctx context.Context, vote *Vote) error
	Delete(ctx context.Context, voteID uint) error
	// GetByTicketAndUser returns nil (no error) when the user has not voted.
	GetByTicketAndUser(ctx context.Context, ticketID, userID uint) (*Vote, error)
	GetByTicket(ctx context.Context, ticketID uint) ([]*Vote, error)
}
