package entities

import "time"

// Role is the workforce role attached to every authenticated actor.
//
// Roles are authoritative in the users table; the JWT claim is a fallback for
// tokens minted before the user document existed.
type Role string

const (
	RoleBDM       Role = "bdm"
	RoleEstimator Role = "estimator"
	RoleCOO       Role = "coo"
	RoleDirector  Role = "director"
)

// ValidRole reports whether r is one of the four known workforce roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleBDM, RoleEstimator, RoleCOO, RoleDirector:
		return true
	}
	return false
}

// User is the workforce account persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: uid
type User struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
