package models

import "time"

type Movie struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Title      string    `json:"title" gorm:"size:255;not null;index"`
	Synopsis   string    `json:"synopsis" gorm:"type:text"`
	Year       int       `json:"year"`
	Duration   int       `json:"duration"` // minutes
	Genre      string    `json:"genre" gorm:"size:100"`
	CoverImage string    `json:"cover_image" gorm:"size:500"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
