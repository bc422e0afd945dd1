package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

// GetTicketStatsUseCase aggregates ticket counts per status for dashboard
// display. Stats are decorative; a storage failure degrades to zeros rather
// than failing the page that embeds them.
type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*dto.TicketStatsDTO, error) {
	counts, err := uc.ticketRepo.GetStatusCounts(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load ticket stats, serving zeros", "error", err)
		return &dto.TicketStatsDTO{}, nil
	}

	stats := dto.ToTicketStatsDTO(counts)
	return &stats, nil
}
