package model

import (
	"time"
)

// ResponseRecord is the audit trail of one answer submission. The question
// text and category are copied at submission time and never re-joined.
type ResponseRecord struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID     string    `gorm:"not null;index" json:"userId"`
	QuestionID string    `gorm:"not null;index" json:"questionId"`
	Question   string    `gorm:"type:text" json:"question"`
	Category   string    `json:"category"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	Feedback   Feedback  `gorm:"serializer:json;type:text" json:"feedback"`
	TimeSpent  int       `json:"timeSpent"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}

func (ResponseRecord) TableName() string {
	return "interview_responses"
}
