package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	CategoryID  uint   `json:"category_id"`
	Category    string `json:"category"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Subject:     r.Subject,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Category:    r.Category,
		Priority:    r.Priority,
		CreatorID:   creatorID,
	}
}

type ApplyVoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

type ReplyTicketRequest struct {
	Content    string `json:"content" binding:"required,max=5000"`
	IsInternal bool   `json:"is_internal"`
}

type ListTicketsRequest struct {
	Search     string `json:"search" validate:"omitempty,max=200"`
	CategoryID *uint  `json:"category_id"`
	Category   string `json:"category" validate:"omitempty,max=100"`
	Status     string `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	OpenOnly   bool   `json:"open_only"`
	MineOnly   bool   `json:"mine"`
	SortBy     string `json:"sort_by" validate:"omitempty,oneof=recent oldest most_upvoted most_viewed priority"`
	Page       int    `json:"page" validate:"min=1"`
	PageSize   int    `json:"page_size" validate:"min=1,max=100"`
}

func (r *ListTicketsRequest) ToQuery(callerID uint) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Search:     r.Search,
		CategoryID: r.CategoryID,
		Category:   r.Category,
		Status:     r.Status,
		OpenOnly:   r.OpenOnly,
		MineOnly:   r.MineOnly,
		CallerID:   callerID,
		SortBy:     r.SortBy,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		OpenOnly: c.Query("open_only") == "true",
		MineOnly: c.Query("mine") == "true",
		SortBy:   c.Query("sort_by"),
		Page:     page,
		PageSize: pageSize,
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32)
		if err != nil || categoryID == 0 {
			return nil, errors.NewValidationError("Invalid category_id")
		}
		id := uint(categoryID)
		req.CategoryID = &id
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	return req, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}
