package mappers

import (
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	VoteToModel(v *ticket.Vote) *models.VoteModel
	VoteToDomain(model *models.VoteModel) (*ticket.Vote, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		CategoryID:  t.CategoryID(),
		ViewCount:   t.ViewCount(),
		Upvotes:     t.Upvotes(),
		Downvotes:   t.Downvotes(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
		ResolvedAt:  timePtrToMillis(t.ResolvedAt()),
		ClosedAt:    timePtrToMillis(t.ClosedAt()),
	}
}

// ToDomain converts a ticket persistence model to a domain entity. Comments
// are loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status on ticket %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority on ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Subject,
		model.Description,
		status,
		priority,
		model.CreatorID,
		model.AssigneeID,
		model.CategoryID,
		model.ViewCount,
		model.Upvotes,
		model.Downvotes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		millisPtrToTime(model.ResolvedAt),
		millisPtrToTime(model.ClosedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.IsInternal,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) VoteToModel(v *ticket.Vote) *models.VoteModel {
	return &models.VoteModel{
		ID:        v.ID(),
		TicketID:  v.TicketID(),
		UserID:    v.UserID(),
		IsUpvote:  v.IsUpvote(),
		CreatedAt: v.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) VoteToDomain(model *models.VoteModel) (*ticket.Vote, error) {
	return ticket.ReconstructVote(
		model.ID,
		model.TicketID,
		model.UserID,
		model.IsUpvote,
		millisToTime(model.CreatedAt),
	)
}
