package models

import "time"

// MaxCommentLength is counted in characters, not bytes.
const MaxCommentLength = 1000

type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	MovieID   uint      `json:"movie_id" gorm:"not null;index"`
	Movie     *Movie    `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
