package authz

import (
	"slices"

	"loyalty-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const callerKey = "Caller"

// Caller is the verified identity behind a request. Roles is empty when the
// user has no profile yet.
type Caller struct {
	UserID uuid.UUID
	Email  string
	Roles  []string
}

func (c Caller) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

func (c Caller) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if c.HasRole(r) {
			return true
		}
	}
	return false
}

// IsStaff is true for staff and admins
func (c Caller) IsStaff() bool {
	return c.HasAnyRole(store.RoleStaff, store.RoleAdmin)
}

// CanActAs reports whether the caller may read or act on customerID's data
func (c Caller) CanActAs(customerID uuid.UUID) bool {
	return c.UserID == customerID || c.IsStaff()
}

// CallerFrom returns the caller set by the authentication middleware
func CallerFrom(c *gin.Context) (Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return Caller{}, false
	}
	caller, ok := v.(Caller)
	return caller, ok
}

// SetCaller stores caller on the request context
func SetCaller(c *gin.Context, caller Caller) {
	c.Set(callerKey, caller)
	c.Set("User-ID", caller.UserID.String())
}
