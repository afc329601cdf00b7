package model

import "time"

// Topic is a user-owned grouping for entries.
type Topic struct {
	TopicID      uint      `json:"topic_id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	TopicName    string    `json:"topic_name" gorm:"size:255;not null"`
	CreationDate time.Time `json:"creation_date" gorm:"autoCreateTime"`
}

// TableName keeps the table name the migrations and indexes were built on.
func (Topic) TableName() string { return "topics" }
