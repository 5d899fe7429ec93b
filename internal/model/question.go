package model

import (
	"time"
)

// Question categories accepted by the interview bank.
const (
	CategoryBehavioral   = "Behavioral"
	CategoryTechnical    = "Technical"
	CategorySystemDesign = "SystemDesign"
)

type Question struct {
	ID               string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Question         string    `gorm:"type:text;not null" json:"question"`
	Category         string    `gorm:"not null;index" json:"category"` // "Behavioral", "Technical", "SystemDesign"
	Type             string    `json:"type"`                           // "STAR", "Explanation", "Design"
	Difficulty       string    `gorm:"index" json:"difficulty"`
	Tags             []string  `gorm:"serializer:json;type:text" json:"tags"`
	ExpectedKeywords []string  `gorm:"serializer:json;type:text" json:"expectedKeywords"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Question) TableName() string {
	return "interview_questions"
}

// IsValidCategory reports whether c is one of the known question categories.
func IsValidCategory(c string) bool {
	switch c {
	case CategoryBehavioral, CategoryTechnical, CategorySystemDesign:
		return true
	}
	return false
}
