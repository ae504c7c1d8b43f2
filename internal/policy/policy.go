// Package policy is the single place where role-based access is decided. Routes declare the
// capability they need; the policy resolves it from the caller's role.
package policy

import (
	"strings"

	"github.com/google/uuid"

	"jobportal/internal/models"
)

// Capability has the form "resource:action". "*" matches everything and
// "resource:*" matches every action on a resource.
type Capability string

const (
	CapabilityAll Capability = "*"

	JobsRead           Capability = "jobs:read"
	JobsManage         Capability = "jobs:manage"
	ApplicationsSubmit Capability = "applications:submit"
	ApplicationsReview Capability = "applications:review"
	UsersPromote       Capability = "users:promote"
)

func (c Capability) resource() string {
	res, _, _ := strings.Cut(string(c), ":")
	return res
}

// Grants reports whether c, as a held capability, covers the requested one.
func (c Capability) Grants(requested Capability) bool {
	if c == CapabilityAll || c == requested {
		return true
	}
	return strings.HasSuffix(string(c), ":*") && c.resource() == requested.resource()
}

type Policy struct {
	roles map[models.Role][]Capability
}

// Default grants admins everything and regular users browsing and submission.
func Default() *Policy {
	return New(map[models.Role][]Capability{
		models.RoleAdmin: {CapabilityAll},
		models.RoleUser:  {JobsRead, ApplicationsSubmit},
	})
}

func New(roles map[models.Role][]Capability) *Policy {
	return &Policy{roles: roles}
}

func (p *Policy) Can(user *models.User, capability Capability) bool {
	if user == nil {
		return false
	}
	for _, held := range p.roles[user.Role] {
		if held.Grants(capability) {
			return true
		}
	}
	return false
}

// Owned is implemented by resources that belong to a single user.
type Owned interface {
	OwnerID() uuid.UUID
}

// Owns reports whether userID owns the resource. Ownership is never bypassed by role.
func Owns(userID uuid.UUID, resource Owned) bool {
	if resource == nil || userID == uuid.Nil {
		return false
	}
	return resource.OwnerID() == userID
}
