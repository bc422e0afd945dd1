package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Subject     string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	CreatorID   uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	CategoryID  uint   `gorm:"not null;index"`
	ViewCount   int64  `gorm:"not null;default:0"`
	Upvotes     int64  `gorm:"not null;default:0"`
	Downvotes   int64  `gorm:"not null;default:0"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
	ResolvedAt  *int64
	ClosedAt    *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

// VoteModel stores one row per (ticket, user) pair. The composite unique
// index is what makes a concurrent double-insert fail instead of producing
// two votes for the same user.
type VoteModel struct {
	ID        uint  `gorm:"primaryKey"`
	TicketID  uint  `gorm:"not null;uniqueIndex:idx_ticket_votes_ticket_user;index"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_ticket_votes_ticket_user"`
	IsUpvote  bool  `gorm:"not null"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (VoteModel) TableName() string {
	return "ticket_votes"
}
