// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafidhsn/smriti/internal/platform/sec"
)

/*
TestIsAdministrative pins the admin-role set: every role except USER has
back-office access.
*/
func TestIsAdministrative(t *testing.T) {
	administrative := []sec.UserRole{
		sec.RoleSuperAdmin, sec.RoleAdmin, sec.RoleManager, sec.RoleEditor,
	}
	for _, role := range administrative {
		assert.True(t, role.IsAdministrative(), "role %s", role)
	}

	assert.False(t, sec.RoleUser.IsAdministrative())
	assert.False(t, sec.UserRole("unknown").IsAdministrative())
}

/*
TestValid rejects role strings outside the enumeration.
*/
func TestValid(t *testing.T) {
	assert.True(t, sec.RoleUser.Valid())
	assert.True(t, sec.RoleSuperAdmin.Valid())
	assert.False(t, sec.UserRole("admin").Valid()) // lowercase is not a role
	assert.False(t, sec.UserRole("").Valid())
}

/*
TestCanManageRoles restricts role mutation to the two top-level roles.
*/
func TestCanManageRoles(t *testing.T) {
	assert.True(t, sec.RoleSuperAdmin.CanManageRoles())
	assert.True(t, sec.RoleAdmin.CanManageRoles())
	assert.False(t, sec.RoleManager.CanManageRoles())
	assert.False(t, sec.RoleEditor.CanManageRoles())
	assert.False(t, sec.RoleUser.CanManageRoles())
}
