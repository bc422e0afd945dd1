package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	assistantUC "helpdesk/internal/application/assistant/usecases"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	applyVoteUC    usecases.ApplyVoteExecutor
	replyTicketUC  usecases.ReplyTicketExecutor
	closeTicketUC  usecases.CloseTicketExecutor
	permissionsUC  usecases.ResolvePermissionsExecutor
	statsUC        usecases.GetTicketStatsExecutor
	suggestReplyUC assistantUC.SuggestReplyExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	applyVoteUC usecases.ApplyVoteExecutor,
	replyTicketUC usecases.ReplyTicketExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	permissionsUC usecases.ResolvePermissionsExecutor,
	statsUC usecases.GetTicketStatsExecutor,
	suggestReplyUC assistantUC.SuggestReplyExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		applyVoteUC:    applyVoteUC,
		replyTicketUC:  replyTicketUC,
		closeTicketUC:  closeTicketUC,
		permissionsUC:  permissionsUC,
		statsUC:        statsUC,
		suggestReplyUC: suggestReplyUC,
		logger:         logger.NewLogger(),
	}
}

// callerID returns the authenticated local user ID, or zero on anonymous
// requests behind OptionalAuth.
func callerID(c *gin.Context) uint {
	if v, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(callerID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID: ticketID,
		CallerID: callerID(c),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(callerID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// ApplyVote handles POST /tickets/:id/vote
func (h *TicketHandler) ApplyVote(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ApplyVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ApplyVoteCommand{
		TicketID: ticketID,
		UserID:   callerID(c),
		IsUpvote: req.Direction == "up",
	}

	result, err := h.applyVoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vote applied", result)
}

// ReplyTicket handles POST /tickets/:id/replies
func (h *TicketHandler) ReplyTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reply", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ReplyTicketCommand{
		TicketID:   ticketID,
		AuthorID:   callerID(c),
		Content:    req.Content,
		IsInternal: req.IsInternal,
	}

	result, err := h.replyTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reply added successfully")
}

// CloseTicket handles POST /tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CloseTicketCommand{
		TicketID: ticketID,
		UserID:   callerID(c),
	}

	result, err := h.closeTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed", result)
}

// GetPermissions handles GET /tickets/:id/permissions
func (h *TicketHandler) GetPermissions(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ResolvePermissionsQuery{
		TicketID: ticketID,
		CallerID: callerID(c),
	}

	result, err := h.permissionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Capabilities)
}

// GetStats handles GET /tickets/stats
func (h *TicketHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SuggestReply handles POST /tickets/:id/suggest-reply
func (h *TicketHandler) SuggestReply(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := assistantUC.SuggestReplyQuery{
		TicketID: ticketID,
		AgentID:  callerID(c),
	}

	result, err := h.suggestReplyUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
