package routes

import (
	"net/http"
	"strings"

	"jobmarket_backend/internal/models"
)

// Access describes who may pass a rule. Public rules skip the principal
// check entirely; an empty Roles list means any authenticated user.
type Access struct {
	Public bool
	Roles  []models.UserRole
}

func Public() Access                       { return Access{Public: true} }
func Authenticated() Access                { return Access{} }
func Role(roles ...models.UserRole) Access { return Access{Roles: roles} }

func (a Access) AllowsRole(role models.UserRole) bool {
	if len(a.Roles) == 0 {
		return true
	}
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Rule binds a method set and a path pattern to an access level. A nil
// method set matches every method. Patterns match segment by segment:
// '*' consumes exactly one segment, a trailing '**' consumes the rest.
type Rule struct {
	Methods []string
	Pattern string
	Access  Access
}

func anyMethod(pattern string, access Access) Rule {
	return Rule{Pattern: pattern, Access: access}
}

func get(pattern string, access Access) Rule {
	return Rule{Methods: []string{http.MethodGet}, Pattern: pattern, Access: access}
}

// AccessTable is the single authority on route access. First match wins;
// requests matching no rule require authentication. Order matters: the
// job-applications rules sit above the public GET /api/jobs/* rule.
var AccessTable = []Rule{
	anyMethod("/api/auth/**", Public()),

	get("/api/jobs/*/applications", Authenticated()),
	{Methods: []string{http.MethodPost}, Pattern: "/api/jobs/*/applications", Access: Role(models.UserRoleFreelancer)},
	{Methods: []string{http.MethodPost}, Pattern: "/api/jobs", Access: Role(models.UserRoleEmployer)},
	get("/api/jobs", Public()),
	get("/api/jobs/*", Public()),

	{Methods: []string{http.MethodPost}, Pattern: "/api/applications", Access: Role(models.UserRoleFreelancer)},

	get("/api/categories/**", Public()),
	get("/api/skills/**", Public()),
	get("/api/payment-types/**", Public()),

	anyMethod("/api/employer/**", Role(models.UserRoleEmployer)),
	anyMethod("/api/freelancer/**", Role(models.UserRoleFreelancer)),

	anyMethod("/docs/**", Public()),
}

// Decide resolves the access level for a request. OPTIONS is always public
// so CORS preflights never need credentials.
func Decide(method, path string) Access {
	if method == http.MethodOptions {
		return Public()
	}
	for _, rule := range AccessTable {
		if rule.matchesMethod(method) && matchPattern(rule.Pattern, path) {
			return rule.Access
		}
	}
	return Authenticated()
}

func (r Rule) matchesMethod(method string) bool {
	if len(r.Methods) == 0 {
		return true
	}
	for _, m := range r.Methods {
		if m == method {
			return true
		}
	}
	return false
}

func matchPattern(pattern, path string) bool {
	patSegs := splitPath(pattern)
	pathSegs := splitPath(path)

	for i, seg := range patSegs {
		if seg == "**" {
			return true
		}
		if i >= len(pathSegs) {
			return false
		}
		if seg != "*" && seg != pathSegs[i] {
			return false
		}
	}
	return len(patSegs) == len(pathSegs)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
