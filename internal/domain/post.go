package domain

import (
	"github.com/google/uuid"
)

// HateThreshold is the hate count at which a post becomes flagged
const HateThreshold = 10

// Post represents a post within a board
type Post struct {
	BaseModel
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index:idx_posts_board_id" json:"board_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_posts_user_id" json:"user_id"`
	Title     string    `gorm:"type:varchar(60);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  *string   `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	LikeCount int       `gorm:"not null;default:0" json:"like_count"`
	HateCount int       `gorm:"not null;default:0" json:"hate_count"`
	ViewCount int       `gorm:"not null;default:0" json:"view_count"`
	// Flagged is derived: true exactly while HateCount >= HateThreshold.
	// It is recomputed in the same UPDATE as every hate count change.
	Flagged  bool      `gorm:"not null;default:false" json:"flagged"`
	Board    Board     `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
	User     User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}
