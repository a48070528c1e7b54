package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func profileWithRole(role Role) *Profile {
	return &Profile{ID: "u-1", Email: "test@example.com", Role: role}
}

func TestIsAtLeast_Hierarchy(t *testing.T) {
	assert.False(t, IsAtLeast(profileWithRole(RoleEmployee), RoleAdmin))
	assert.True(t, IsAtLeast(profileWithRole(RoleAdmin), RoleEmployee))
	assert.True(t, IsAtLeast(profileWithRole(RoleManager), RoleManager))
	assert.True(t, IsAtLeast(profileWithRole(RoleAdmin), RoleManager))
	assert.False(t, IsAtLeast(profileWithRole(RoleEmployee), RoleManager))
}

func TestIsAtLeast_UnknownRolesFail(t *testing.T) {
	assert.False(t, IsAtLeast(profileWithRole("intern"), RoleEmployee))
	assert.False(t, IsAtLeast(profileWithRole(RoleAdmin), "superadmin"))
	assert.False(t, IsAtLeast(nil, RoleEmployee))
}

func TestHasRole_ExactSetMembership(t *testing.T) {
	// Exact-set semantics: a manager is NOT implicitly in an admin-only set.
	assert.True(t, HasRole(profileWithRole(RoleAdmin), RoleAdmin))
	assert.False(t, HasRole(profileWithRole(RoleManager), RoleAdmin))
	assert.True(t, HasRole(profileWithRole(RoleManager), RoleAdmin, RoleManager))
	assert.False(t, HasRole(profileWithRole(RoleEmployee), RoleAdmin, RoleManager))
}

func TestHasRole_EmptySetAndMissingProfile(t *testing.T) {
	assert.False(t, HasRole(profileWithRole(RoleAdmin)))
	assert.False(t, HasRole(nil, RoleAdmin))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole(" Admin "))
	assert.Equal(t, RoleManager, ParseRole("MANAGER"))
	assert.False(t, ParseRole("hr-lead").Known())
	assert.True(t, ParseRole("employee").Known())
}
