package domain

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	FirstName    string    `gorm:"size:64;not null" json:"firstName"`
	LastName     *string   `gorm:"size:64" json:"lastName"`
	PasswordHash string    `gorm:"size:191;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// UserPatch 部分更新：nil 字段不动
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(u *User) error
}
