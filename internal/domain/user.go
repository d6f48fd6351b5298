package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the authenticated caller, extracted from the JWT by the HTTP
// layer and trusted as given by the services.
type Identity struct {
	UserID string
	Role   Role
}

type Traveler struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DateOfBirth    string `json:"dateOfBirth"`
	PassportNumber string `json:"passportNumber"`
	Nationality    string `json:"nationality"`
}

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	Passport     string     `json:"passport,omitempty"`
	Role         Role       `json:"role"`
	Travelers    []Traveler `json:"travelers"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (u *User) Clone() *User {
	c := *u
	if u.Travelers != nil {
		c.Travelers = make([]Traveler, len(u.Travelers))
		copy(c.Travelers, u.Travelers)
	}
	return &c
}
