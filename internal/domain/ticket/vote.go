package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Vote is a single user's endorsement of a ticket, unique per (ticket, user).
// The vote rows are the source of truth; the counters on Ticket are a cached
// projection derived from them.
type Vote struct {
	id        uint
	ticketID  uint
	userID    uint
	isUpvote  bool
	createdAt time.Time
}

func NewVote(ticketID, userID uint, isUpvote bool) (*Vote, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Vote{
		ticketID:  ticketID,
		userID:    userID,
		isUpvote:  isUpvote,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructVote(id, ticketID, userID uint, isUpvote bool, createdAt time.Time) (*Vote, error) {
	if id == 0 {
		return nil, fmt.Errorf("vote ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Vote{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		isUpvote:  isUpvote,
		createdAt: createdAt,
	}, nil
}

func (v *Vote) ID() uint {
	return v.id
}

func (v *Vote) TicketID() uint {
	return v.ticketID
}

func (v *Vote) UserID() uint {
	return v.userID
}

func (v *Vote) IsUpvote() bool {
	return v.isUpvote
}

func (v *Vote) CreatedAt() time.Time {
	return v.createdAt
}

func (v *Vote) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("vote ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("vote ID cannot be zero")
	}
	v.id = id
	return nil
}

// Flip reverses the vote polarity in place.
func (v *Vote) Flip() {
	v.isUpvote = !v.isUpvote
}

// VoteAction describes the outcome of applying a vote.
type VoteAction string

const (
	VoteAdded   VoteAction = "added"
	VoteChanged VoteAction = "changed"
	VoteRemoved VoteAction = "removed"
)

// VoteDelta is the counter adjustment a vote application produces. It is
// applied to the ticket's cached counters in the same transaction as the
// vote row mutation.
type VoteDelta struct {
	Upvotes   int64
	Downvotes int64
}

// ResolveVote decides what applying a vote of the requested polarity does to
// an existing vote (nil when the user has not voted on the ticket):
//
//   - no existing vote: a new row is created ("added")
//   - same polarity: the row is deleted, retracting the vote ("removed")
//   - opposite polarity: the row flips, swinging the differential by 2 ("changed")
func ResolveVote(existing *Vote, isUpvote bool) (VoteAction, VoteDelta) {
	if existing == nil {
		if isUpvote {
			return VoteAdded, VoteDelta{Upvotes: 1}
		}
		return VoteAdded, VoteDelta{Downvotes: 1}
	}

	if existing.IsUpvote() == isUpvote {
		if isUpvote {
			return VoteRemoved, VoteDelta{Upvotes: -1}
		}
		return VoteRemoved, VoteDelta{Downvotes: -1}
	}

	if isUpvote {
		return VoteChanged, VoteDelta{Upvotes: 1, Downvotes: -1}
	}
	return VoteChanged, VoteDelta{Upvotes: -1, Downvotes: 1}
}
