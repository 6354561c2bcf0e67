package entity

import "time"

const DefaultCategory = "General"

type Todo struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null;index"`
	Image       string    `json:"image" gorm:"not null"`
	Done        bool      `json:"done" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
