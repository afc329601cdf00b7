package model

import "time"

// AuthType discriminates how an account authenticates.
type AuthType string

const (
	// AuthTypeNative marks accounts that log in with email and password.
	AuthTypeNative AuthType = "NATIVE"
	// AuthTypeGoogle marks accounts created through Google sign-in.
	AuthTypeGoogle AuthType = "GOOGLE"
)

// User represents a registered user. Password is set only for NATIVE
// accounts, GoogleID only for GOOGLE accounts; auth_type is fixed at
// creation.
type User struct {
	UserID           uint      `json:"user_id" gorm:"primaryKey"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password         *string   `json:"-" gorm:"size:255"`
	GoogleID         *string   `json:"-" gorm:"uniqueIndex;size:255"`
	AuthType         AuthType  `json:"auth_type" gorm:"size:16;not null;default:'NATIVE'"`
	RegistrationDate time.Time `json:"registration_date" gorm:"autoCreateTime"`
}

// TableName keeps the table name the migrations and indexes were built on.
func (User) TableName() string { return "users" }
