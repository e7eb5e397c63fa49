package models

import "strings"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"not null;index"`
	PasswordHash string `gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

func (user User) RowKey() string {
	return strings.Join([]string{user.Username, user.PasswordHash}, rowKeySeparator)
}

func (user User) Owner() string {
	return user.Username
}
