package model

import (
	"time"

	"gorm.io/datatypes"
)

// Document stores one whole collection as a JSON array under a versioned key.
type Document struct {
	Key       string         `gorm:"primaryKey;size:64;not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

type Snapshot struct {
	Products     []Product     `json:"products"`
	Orders       []Order       `json:"orders"`
	Testimonials []Testimonial `json:"testimonials"`
}
