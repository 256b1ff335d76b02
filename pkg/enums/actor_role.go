package enums

import "fmt"

// ActorRole is the self-declared role stored on the session record. It drives
// which navigation the client renders; the API does not enforce it.
type ActorRole string

const (
	ActorRoleSeller   ActorRole = "seller"
	ActorRoleManager  ActorRole = "manager"
	ActorRoleMechanic ActorRole = "mechanic"
	ActorRoleAdmin    ActorRole = "admin"
)

var validActorRoles = []ActorRole{
	ActorRoleSeller,
	ActorRoleManager,
	ActorRoleMechanic,
	ActorRoleAdmin,
}

// String implements fmt.Stringer.
func (r ActorRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ActorRole.
func (r ActorRole) IsValid() bool {
	for _, candidate := range validActorRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseActorRole converts raw input into an ActorRole.
func ParseActorRole(value string) (ActorRole, error) {
	for _, candidate := range validActorRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid actor role %q", value)
}
