package auth

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "users" }

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
