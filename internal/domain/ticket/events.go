package ticket

import (
	"strconv"
	"time"

	"helpdesk/internal/domain/shared/events"
)

const (
	EventTicketCreated  = "ticket.created"
	EventTicketResolved = "ticket.resolved"
	EventTicketClosed   = "ticket.closed"
	EventTicketVoted    = "ticket.voted"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID  uint
	Subject   string
	CreatorID uint
	Priority  string
}

func NewTicketCreatedEvent(ticketID uint, subject string, creatorID uint, priority string, at time.Time) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketCreated,
			OccurredAt:  at,
		},
		TicketID:  ticketID,
		Subject:   subject,
		CreatorID: creatorID,
		Priority:  priority,
	}
}

// TicketResolvedEvent is emitted when a staff reply resolves a ticket. The
// notification sender subscribes to it to mail the creator.
type TicketResolvedEvent struct {
	events.BaseEvent
	TicketID   uint
	Subject    string
	CreatorID  uint
	ResolvedBy uint
	Reply      string
}

func NewTicketResolvedEvent(ticketID uint, subject string, creatorID, resolvedBy uint, reply string, at time.Time) TicketResolvedEvent {
	return TicketResolvedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketResolved,
			OccurredAt:  at,
		},
		TicketID:   ticketID,
		Subject:    subject,
		CreatorID:  creatorID,
		ResolvedBy: resolvedBy,
		Reply:      reply,
	}
}

type TicketClosedEvent struct {
	events.BaseEvent
	TicketID uint
	ClosedBy uint
}

func NewTicketClosedEvent(ticketID, closedBy uint, at time.Time) TicketClosedEvent {
	return TicketClosedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketClosed,
			OccurredAt:  at,
		},
		TicketID: ticketID,
		ClosedBy: closedBy,
	}
}

type TicketVotedEvent struct {
	events.BaseEvent
	TicketID uint
	UserID   uint
	Action   VoteAction
}

func NewTicketVotedEvent(ticketID, userID uint, action VoteAction, at time.Time) TicketVotedEvent {
	return TicketVotedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(ticketID), 10),
			EventType:   EventTicketVoted,
			OccurredAt:  at,
		},
		TicketID: ticketID,
		UserID:   userID,
		Action:   action,
	}
}
