package domain

// Board represents a named board that posts belong to
type Board struct {
	BaseModel
	Name  string `gorm:"type:varchar(30);not null;uniqueIndex:idx_boards_name" json:"name"`
	Posts []Post `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
