package domain

import "time"

// Role is ordinal: USER < ADMIN.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	default:
		return "User"
	}
}

// User models a learner or administrator account.
type User struct {
	ID                int       `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName          string    `json:"fullName" gorm:"not null"`
	UserName          string    `json:"userName" gorm:"uniqueIndex;not null"`
	CountryCode       string    `json:"countryCode"`
	PhoneNo           string    `json:"phoneNo" gorm:"uniqueIndex;not null"`
	IsPhoneNoVerified bool      `json:"isPhoneNoVerified"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	IsEmailVerified   bool      `json:"isEmailVerified"`
	Dob               time.Time `json:"dob"`
	Gender            int       `json:"gender"`
	PasswordHash      string    `json:"-" gorm:"column:password;not null"`
	Role              Role      `json:"role" gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }
