package entities

import (
	"time"
)

// Roles recognized by the platform. An empty or unknown role means the
// account is still pending assignment by an administrator.
const (
	RoleSuperAdmin = "Super Admin"
	RoleAdmin      = "Admin"
	RoleManager    = "Manager"
	RoleAgent      = "Agent"
)

var AllRoles = []string{RoleSuperAdmin, RoleAdmin, RoleManager, RoleAgent}

// User mirrors the identity provider account plus the role/assignment
// profile kept locally. UserID is the provider's subject id.
type User struct {
	UserID     string    `json:"user_id" gorm:"primaryKey;column:user_id"`
	FullName   string    `json:"full_name" gorm:"column:full_name"`
	Email      string    `json:"email" gorm:"column:email;uniqueIndex"`
	Role       string    `json:"role" gorm:"column:role"`
	ManagerID  *string   `json:"manager_id" gorm:"column:manager_id"`
	CampaignID *string   `json:"campaign_id" gorm:"column:campaign_id"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleAdmin
}

func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

func (u *User) IsAgent() bool {
	return u.Role == RoleAgent
}

// ManagesAgent reports whether the given agent is assigned to this user.
func (u *User) ManagesAgent(agent *User) bool {
	return agent.ManagerID != nil && *agent.ManagerID == u.UserID
}
