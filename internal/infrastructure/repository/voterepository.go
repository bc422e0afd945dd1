package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type VoteRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewVoteRepository(gdb *gorm.DB) *VoteRepository {
	return &VoteRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *VoteRepository) Save(ctx context.Context, vote *ticket.Vote) error {
	model := r.mapper.VoteToModel(vote)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}

	return vote.SetID(model.ID)
}

func (r *VoteRepository) Update(ctx context.Context, vote *ticket.Vote) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.VoteModel{}).
		Where("id = ?", vote.ID()).
		UpdateColumn("is_upvote", vote.IsUpvote())

	if result.Error != nil {
		return fmt.Errorf("failed to update vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("vote not found")
	}
	return nil
}

func (r *VoteRepository) Delete(ctx context.Context, voteID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.VoteModel{}, voteID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("vote not found")
	}
	return nil
}

// GetByTicketAndUser returns (nil, nil) when the user has no vote on the
// ticket.
func (r *VoteRepository) GetByTicketAndUser(ctx context.Context, ticketID, userID uint) (*ticket.Vote, error) {
	var model models.VoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ? AND user_id = ?", ticketID, userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vote: %w", err)
	}

	return r.mapper.VoteToDomain(&model)
}

func (r *VoteRepository) GetByTicket(ctx context.Context, ticketID uint) ([]*ticket.Vote, error) {
	var voteModels []models.VoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&voteModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load votes: %w", err)
	}

	votes := make([]*ticket.Vote, len(voteModels))
	for i := range voteModels {
		v, err := r.mapper.VoteToDomain(&voteModels[i])
		if err != nil {
			return nil, err
		}
		votes[i] = v
	}

	return votes, nil
}
