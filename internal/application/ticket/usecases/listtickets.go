package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Search     string
	CategoryID *uint
	// Category filters by exact category name, ignoring case.
	Category string
	Status   string
	// OpenOnly narrows the listing to open tickets and wins over Status.
	OpenOnly bool
	// MineOnly restricts the listing to tickets created by CallerID.
	MineOnly bool
	CallerID uint
	SortBy   string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets     []dto.TicketListItemDTO
	Total       int64
	Page        int
	PageSize    int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	totalPages := utils.TotalPages(total, filter.PageSize)

	return &ListTicketsResult{
		Tickets:     dto.ToTicketListItemDTOs(tickets),
		Total:       total,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
		TotalPages:  totalPages,
		HasNext:     filter.Page < totalPages,
		HasPrevious: filter.Page > 1,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		Search:     strings.TrimSpace(query.Search),
		CategoryID: query.CategoryID,
		Category:   strings.TrimSpace(query.Category),
	}

	if query.Status != "" {
		status := vo.TicketStatus(query.Status)
		if !status.IsValid() {
			return filter, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if query.OpenOnly {
		open := vo.StatusOpen
		filter.Status = &open
	}

	if query.MineOnly {
		if query.CallerID == 0 {
			return filter, errors.NewUnauthorizedError("authentication required")
		}
		creatorID := query.CallerID
		filter.CreatorID = &creatorID
	}

	filter.SortBy = ticket.SortRecent
	if query.SortBy != "" {
		sortKey := ticket.SortKey(query.SortBy)
		if !sortKey.IsValid() {
			return filter, errors.NewValidationError("invalid sort key")
		}
		filter.SortBy = sortKey
	}

	pg := utils.ValidatePagination(query.Page, query.PageSize)
	filter.Page = pg.Page
	filter.PageSize = pg.PageSize

	return filter, nil
}
