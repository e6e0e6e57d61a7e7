package models

import "time"

// Rating rows are never deduplicated; a user may rate the same movie many times.
type Rating struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	MovieID   uint      `json:"movie_id" gorm:"not null;index"`
	Movie     *Movie    `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
	Score     int       `json:"score" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
