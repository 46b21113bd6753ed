package domain

import "time"

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
}

func (User) TableName() string {
	return "users"
}
