package email

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

// ResolvedEmailSender is the slice of SMTPEmailService the notifier needs.
type ResolvedEmailSender interface {
	SendTicketResolvedEmail(to, recipientName, ticketSubject, reply string) error
}

// TicketNotifier mails the ticket creator when a staff reply resolves
// their ticket. Delivery is best effort; a failed send is logged and the
// event is considered handled.
type TicketNotifier struct {
	sender   ResolvedEmailSender
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewTicketNotifier(sender ResolvedEmailSender, userRepo user.UserRepository, log logger.Interface) *TicketNotifier {
	return &TicketNotifier{
		sender:   sender,
		userRepo: userRepo,
		logger:   log.With("component", "email.notifier"),
	}
}

// Register subscribes the notifier to the dispatcher.
func (n *TicketNotifier) Register(dispatcher *events.InMemoryEventDispatcher) error {
	return dispatcher.Subscribe(ticket.EventTicketResolved,
		events.NewSimpleEventHandler(ticket.EventTicketResolved, n.handleResolved))
}

func (n *TicketNotifier) handleResolved(event events.DomainEvent) error {
	resolved, ok := event.(ticket.TicketResolvedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}

	creator, err := n.userRepo.GetByID(context.Background(), resolved.CreatorID)
	if err != nil {
		return fmt.Errorf("failed to load ticket creator: %w", err)
	}
	if creator.Email() == "" {
		n.logger.Debugw("ticket creator has no email address, skipping notification",
			"ticket_id", resolved.TicketID,
			"creator_id", resolved.CreatorID)
		return nil
	}

	if err := n.sender.SendTicketResolvedEmail(
		creator.Email(),
		creator.Name(),
		resolved.Subject,
		resolved.Reply,
	); err != nil {
		n.logger.Warnw("failed to send resolution email",
			"ticket_id", resolved.TicketID,
			"creator_id", resolved.CreatorID,
			"error", err)
		return nil
	}

	n.logger.Infow("resolution email sent",
		"ticket_id", resolved.TicketID,
		"creator_id", resolved.CreatorID)
	return nil
}
