package auth

import (
	"testing"

	"talentrack/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveRolePublicSignup(t *testing.T) {
	role := ResolveRole("jane@example.com", nil, PortalPublic)
	assert.Equal(t, models.RoleApplicant, role)
}

func TestResolveRoleHRPortal(t *testing.T) {
	role := ResolveRole("recruiter@acme.com", nil, PortalHR)
	assert.Equal(t, models.RoleHR, role)
}

func TestResolveRoleAdminAllowList(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "boss@acme.com, ops@acme.com")

	// allow-list wins over the portal, case-insensitively
	assert.Equal(t, models.RoleAdmin, ResolveRole("boss@acme.com", nil, PortalPublic))
	assert.Equal(t, models.RoleAdmin, ResolveRole("OPS@ACME.COM", nil, PortalHR))
	assert.Equal(t, models.RoleApplicant, ResolveRole("other@acme.com", nil, PortalPublic))
}

func TestResolveRoleExistingProfileWins(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "sticky@acme.com")

	// roles are assigned once; later sign-ins never re-derive them
	existing := &models.User{Email: "sticky@acme.com", Role: models.RoleApplicant}
	assert.Equal(t, models.RoleApplicant, ResolveRole("sticky@acme.com", existing, PortalHR))
}

func TestResolveRoleExistingWithoutRoleIsBackfilled(t *testing.T) {
	existing := &models.User{Email: "old@acme.com"}
	assert.Equal(t, models.RoleHR, ResolveRole("old@acme.com", existing, PortalHR))
}

func TestAdminEmailsParsing(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " A@x.com ,, b@x.com ")
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, AdminEmails())

	t.Setenv("ADMIN_EMAILS", "")
	assert.Empty(t, AdminEmails())
}
