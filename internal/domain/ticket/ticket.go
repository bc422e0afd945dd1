package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

type Ticket struct {
	id          uint
	subject     string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	creatorID   uint
	assigneeID  *uint
	categoryID  uint
	viewCount   int64
	upvotes     int64
	downvotes   int64
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	closedAt    *time.Time
	comments    []*Comment
}

func NewTicket(
	subject string,
	description string,
	categoryID uint,
	priority vo.Priority,
	creatorID uint,
) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		subject:     subject,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		creatorID:   creatorID,
		categoryID:  categoryID,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	subject string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	creatorID uint,
	assigneeID *uint,
	categoryID uint,
	viewCount int64,
	upvotes int64,
	downvotes int64,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:          id,
		subject:     subject,
		description: description,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		categoryID:  categoryID,
		viewCount:   viewCount,
		upvotes:     upvotes,
		downvotes:   downvotes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
		closedAt:    closedAt,
		comments:    []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

func (t *Ticket) ViewCount() int64 {
	return t.viewCount
}

func (t *Ticket) Upvotes() int64 {
	return t.upvotes
}

func (t *Ticket) Downvotes() int64 {
	return t.downvotes
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignTo sets the assignee and moves an open ticket into in_progress.
// Assignment is the only path into in_progress.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = biztime.NowUTC()

	if t.status.IsOpen() {
		t.status = vo.StatusInProgress
	}

	return nil
}

// ResolveByReply moves the ticket to resolved and stamps resolvedAt,
// regardless of the current status. The first staff reply always resolves
// the ticket; keeping the unconditional write in one place makes the
// behavior auditable.
func (t *Ticket) ResolveByReply() {
	now := biztime.NowUTC()
	t.status = vo.StatusResolved
	t.resolvedAt = &now
	t.updatedAt = now
}

// Close moves the ticket to closed and stamps closedAt. Closing an already
// closed ticket is a no-op.
func (t *Ticket) Close() error {
	if t.status.IsClosed() {
		return nil
	}

	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket with status %s", t.status)
	}

	now := biztime.NowUTC()
	t.status = vo.StatusClosed
	t.closedAt = &now
	t.updatedAt = now

	return nil
}

// RecordView bumps the in-memory view counter after the persisted counter
// has been incremented, so a freshly read ticket reflects its own view.
func (t *Ticket) RecordView() {
	t.viewCount++
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	return nil
}

func (t *Ticket) Validate() error {
	if len(t.subject) == 0 {
		return fmt.Errorf("subject is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if t.creatorID == 0 {
		return fmt.Errorf("creator ID is required")
	}
	if t.categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	return nil
}
