package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/mapper"
)

type TicketDTO struct {
	ID           uint                `json:"id"`
	Subject      string              `json:"subject"`
	Description  string              `json:"description"`
	Status       string              `json:"status"`
	Priority     string              `json:"priority"`
	CategoryID   uint                `json:"category_id"`
	CategoryName string              `json:"category_name,omitempty"`
	CreatorID    uint                `json:"creator_id"`
	AssigneeID   *uint               `json:"assignee_id"`
	ViewCount    int64               `json:"view_count"`
	Upvotes      int64               `json:"upvotes"`
	Downvotes    int64               `json:"downvotes"`
	MyVote       *string             `json:"my_vote"`
	Permissions  ticket.Capabilities `json:"permissions"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	ResolvedAt   *time.Time          `json:"resolved_at"`
	ClosedAt     *time.Time          `json:"closed_at"`
	Comments     []CommentDTO        `json:"comments"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	AuthorID   uint      `json:"author_id"`
	Content    string    `json:"content"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID           uint      `json:"id"`
	Subject      string    `json:"subject"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CreatorID    uint      `json:"creator_id"`
	ViewCount    int64     `json:"view_count"`
	Upvotes      int64     `json:"upvotes"`
	Downvotes    int64     `json:"downvotes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

type TicketStatsDTO struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}

// ToTicketDTO maps a ticket and its comments for the requesting caller.
// Internal comments are stripped for non-staff callers. myVote is nil when
// the caller has no vote on the ticket.
func ToTicketDTO(
	t *ticket.Ticket,
	comments []*ticket.Comment,
	caps ticket.Capabilities,
	myVote *ticket.Vote,
) *TicketDTO {
	if t == nil {
		return nil
	}

	commentDTOs := make([]CommentDTO, 0)
	for _, c := range comments {
		if c.IsInternal() && !caps.Role.IsStaff() {
			continue
		}
		commentDTOs = append(commentDTOs, ToCommentDTO(c))
	}

	var voteStr *string
	if myVote != nil {
		v := "down"
		if myVote.IsUpvote() {
			v = "up"
		}
		voteStr = &v
	}

	return &TicketDTO{
		ID:          t.ID(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CategoryID:  t.CategoryID(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		ViewCount:   t.ViewCount(),
		Upvotes:     t.Upvotes(),
		Downvotes:   t.Downvotes(),
		MyVote:      voteStr,
		Permissions: caps,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ResolvedAt:  t.ResolvedAt(),
		ClosedAt:    t.ClosedAt(),
		Comments:    commentDTOs,
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:         t.ID(),
		Subject:    t.Subject(),
		Status:     t.Status().String(),
		Priority:   t.Priority().String(),
		CategoryID: t.CategoryID(),
		CreatorID:  t.CreatorID(),
		ViewCount:  t.ViewCount(),
		Upvotes:    t.Upvotes(),
		Downvotes:  t.Downvotes(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}

func ToTicketListItemDTOs(tickets []*ticket.Ticket) []TicketListItemDTO {
	return mapper.MapSlice(tickets, ToTicketListItemDTO)
}

func ToTicketStatsDTO(counts ticket.StatusCounts) TicketStatsDTO {
	return TicketStatsDTO{
		Total:      counts.Total,
		Open:       counts.Open,
		InProgress: counts.InProgress,
		Resolved:   counts.Resolved,
		Closed:     counts.Closed,
	}
}
