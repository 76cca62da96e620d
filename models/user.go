package models

import "time"

type Role string

const (
	RoleHR        Role = "hr"
	RoleAdmin     Role = "admin"
	RoleApplicant Role = "applicant"
)

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"password,omitempty" bson:"-"`
	PasswordHash  string    `json:"-" bson:"password_hash"`
	DisplayName   string    `json:"displayName,omitempty" bson:"displayName,omitempty"`
	Role          Role      `json:"role" bson:"role"`
	FirstName     string    `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName      string    `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	ProfilePic    string    `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}

// ProfileResponse is the public shape of a user profile.
type ProfileResponse struct {
	UserID      string    `json:"userid" bson:"userid"`
	Email       string    `json:"email" bson:"email"`
	DisplayName string    `json:"displayName,omitempty" bson:"displayName,omitempty"`
	Role        Role      `json:"role" bson:"role"`
	FirstName   string    `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	ProfilePic  string    `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	LastLogin   time.Time `json:"last_login" bson:"last_login"`
}
