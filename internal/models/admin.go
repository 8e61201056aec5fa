package models

import "time"

// Admin role constants. Roles form a small closed set; there is no
// per-permission matrix beyond route-level checks.
const (
	RoleModerator  = "moderator"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AdminUser is the session record materialized after a successful credential
// check. It is never persisted.
type AdminUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	LastLogin time.Time `json:"lastLogin"`
}

// ValidRole reports whether role belongs to the closed admin role set.
func ValidRole(role string) bool {
	switch role {
	case RoleModerator, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
