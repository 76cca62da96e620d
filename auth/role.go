package auth

import (
	"os"
	"strings"

	"talentrack/models"
)

// Portal identifies which sign-in surface a request came from.
const (
	PortalHR     = "hr"
	PortalPublic = "public"
)

// AdminEmails returns the configured administrator allow-list, lowercased.
func AdminEmails() []string {
	raw := os.Getenv("ADMIN_EMAILS")
	if raw == "" {
		return nil
	}
	var out []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func isAdminEmail(email string, allowList []string) bool {
	email = strings.ToLower(email)
	for _, a := range allowList {
		if a == email {
			return true
		}
	}
	return false
}

// ResolveRole decides a principal's role. An existing profile always wins:
// roles are assigned once, at first sign-in, and never re-derived. For new
// principals the admin allow-list takes precedence; otherwise HR-portal
// sign-ins become hr and public sign-ups become applicants.
func ResolveRole(email string, existing *models.User, portal string) models.Role {
	if existing != nil && existing.Role != "" {
		return existing.Role
	}
	if isAdminEmail(email, AdminEmails()) {
		return models.RoleAdmin
	}
	if portal == PortalHR {
		return models.RoleHR
	}
	return models.RoleApplicant
}
