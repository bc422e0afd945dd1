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

// priorityRankExpr orders tickets urgent first. Priorities are stored as
// strings, so the ranking happens in SQL. Works on both MySQL and SQLite.
const priorityRankExpr = "CASE priority " +
	"WHEN 'urgent' THEN 4 " +
	"WHEN 'high' THEN 3 " +
	"WHEN 'medium' THEN 2 " +
	"WHEN 'low' THEN 1 " +
	"ELSE 0 END"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") forces zero values (cleared pointers, false booleans)
	// through; a struct update would silently skip them. The counters are
	// omitted so concurrent votes and views are never overwritten by a
	// stale snapshot.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at", "view_count", "upvotes", "downvotes").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

// GetByID returns (nil, nil) when no such ticket exists.
func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(subject) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Category != "" {
		categoryIDs := tx.
			Model(&models.CategoryModel{}).
			Select("id").
			Where("LOWER(name) = LOWER(?)", filter.Category)
		query = query.Where("category_id IN (?)", categoryIDs)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = applyTicketOrder(query, filter.SortBy)

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

// applyTicketOrder maps a sort key onto a fixed ORDER BY clause. The keys
// are a closed set, never raw user input into SQL.
func applyTicketOrder(query *gorm.DB, sortBy ticket.SortKey) *gorm.DB {
	switch sortBy {
	case ticket.SortOldest:
		return query.Order("created_at ASC")
	case ticket.SortMostUpvoted:
		return query.Order("upvotes DESC").Order("downvotes ASC").Order("created_at DESC")
	case ticket.SortMostViewed:
		return query.Order("view_count DESC").Order("created_at DESC")
	case ticket.SortPriority:
		return query.Order(priorityRankExpr + " DESC").Order("created_at DESC")
	default:
		return query.Order("created_at DESC")
	}
}

func (r *TicketRepository) IncrementViewCount(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))

	if result.Error != nil {
		return fmt.Errorf("failed to increment view count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}
	return nil
}

func (r *TicketRepository) AdjustVoteCounters(ctx context.Context, ticketID uint, delta ticket.VoteDelta) error {
	if delta.Upvotes == 0 && delta.Downvotes == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	columns := map[string]interface{}{}
	if delta.Upvotes != 0 {
		columns["upvotes"] = gorm.Expr("upvotes + ?", delta.Upvotes)
	}
	if delta.Downvotes != 0 {
		columns["downvotes"] = gorm.Expr("downvotes + ?", delta.Downvotes)
	}

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		UpdateColumns(columns)

	if result.Error != nil {
		return fmt.Errorf("failed to adjust vote counters: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetStatusCounts(ctx context.Context) (ticket.StatusCounts, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
	}
	if err := tx.
		Model(&models.TicketModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&rows).Error; err != nil {
		return ticket.StatusCounts{}, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	var counts ticket.StatusCounts
	for _, row := range rows {
		counts.Total += row.Count
		switch row.Status {
		case "open":
			counts.Open = row.Count
		case "in_progress":
			counts.InProgress = row.Count
		case "resolved":
			counts.Resolved = row.Count
		case "closed":
			counts.Closed = row.Count
		}
	}

	return counts, nil
}
