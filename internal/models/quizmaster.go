package models

import "time"

// QuizMaster is a Telegram user authorized to control quiz sessions.
type QuizMaster struct {
	UserID    int64     `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (QuizMaster) TableName() string {
	return "quiz_masters"
}
