package models

import (
	"golang.org/x/crypto/bcrypt"
)

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeProvider UserType = "provider"
)

// User is a demo account. The exported fields form the session record
// written to the session store on login; PasswordHash never leaves the
// process.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Avatar       string   `json:"avatar"`
	Type         UserType `json:"type"`
	Verified     bool     `json:"verified"`
	Phone        string   `json:"phone,omitempty"`
	JoinedDate   string   `json:"joinedDate"`
	PasswordHash string   `json:"-"`
}

func (u *User) HashPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
