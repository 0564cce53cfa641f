package models

import (
	"time"
)

type User struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email            string    `gorm:"size:255;uniqueIndex" json:"email"`
	FullName         string    `gorm:"size:255" json:"full_name"`
	Password         string    `gorm:"size:255" json:"-"`
	Bio              string    `gorm:"size:1024" json:"bio"`
	ProfilePic       string    `gorm:"size:512" json:"profile_pic"`
	NativeLanguage   string    `gorm:"size:60" json:"native_language"`
	LearningLanguage string    `gorm:"size:60" json:"learning_language"`
	Location         string    `gorm:"size:255" json:"location"`
	IsOnboarded      bool      `gorm:"default:false" json:"is_onboarded"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type UserTokens struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64  `gorm:"index:user_token_idx,unique" json:"user_id"`
	Token  string `gorm:"size:255;index:user_token_idx,unique" json:"token"`
}

func (UserTokens) TableName() string {
	return "user_tokens"
}
