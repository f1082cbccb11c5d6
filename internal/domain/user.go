package domain

import "time"

type UserRole string

const (
	UserRoleCustomer       UserRole = "customer"
	UserRoleAdmin          UserRole = "admin"
	UserRoleStationManager UserRole = "station_manager"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleCustomer, UserRoleAdmin, UserRoleStationManager:
		return true
	}
	return false
}

type User struct {
	ID           int32      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	PhoneNumber  string     `json:"phone_number"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
