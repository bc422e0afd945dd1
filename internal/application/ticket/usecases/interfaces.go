package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ApplyVoteExecutor interface {
	Execute(ctx context.Context, cmd ApplyVoteCommand) (*ApplyVoteResult, error)
}

type ReplyTicketExecutor interface {
	Execute(ctx context.Context, cmd ReplyTicketCommand) (*ReplyTicketResult, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error)
}

type ResolvePermissionsExecutor interface {
	Execute(ctx context.Context, query ResolvePermissionsQuery) (*ResolvePermissionsResult, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context) (*dto.TicketStatsDTO, error)
}

// VoteRateLimiter throttles vote mutations per user. Allow reports whether
// the user may cast another vote right now.
type VoteRateLimiter interface {
	Allow(ctx context.Context, userID uint) (bool, error)
}

// TransactionRunner executes a function within a storage transaction. The
// context passed to fn carries the transaction for repositories to pick up.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
