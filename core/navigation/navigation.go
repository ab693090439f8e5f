// Package navigation holds the route table of the platform and decides, for a
// role, whether a route renders or redirects.
package navigation

import (
	"strings"

	"github.com/trezcool/mentorhub/core/user"
)

// Paths
const (
	PathRoot          = "/"
	PathLogin         = "/login"
	PathRegister      = "/register"
	PathDashboard     = "/dashboard"
	PathStudents      = "/students"
	PathPrograms      = "/programs"
	PathLessons       = "/lessons"
	PathMaterials     = "/materials"
	PathMessages      = "/messages"
	PathNotifications = "/notifications"
	PathProfile       = "/profile"
	PathAdminUsers    = "/admin/users"
	PathAdminStats    = "/admin/stats"
)

var allRoles = []user.Role{user.RoleSuperAdmin, user.RoleMentor, user.RoleStudent}

type (
	Route struct {
		Path       string      `json:"path"`
		View       string      `json:"view"`
		Roles      []user.Role `json:"roles,omitempty"`
		PublicOnly bool        `json:"public_only,omitempty"` // only reachable while unauthenticated
	}

	Link struct {
		Name string `json:"name"`
		Path string `json:"path"`
	}

	Outcome int

	Decision struct {
		Outcome  Outcome
		Redirect string
		Route    Route
	}

	Policy struct {
		routes []Route
		links  map[user.Role][]Link
	}
)

// Outcomes
const (
	Allow Outcome = iota
	Redirect
	NotFound
)

func (d Decision) Allowed() bool { return d.Outcome == Allow }

// NewPolicy returns the platform's fixed route table and nav links.
func NewPolicy() *Policy {
	return &Policy{
		routes: []Route{
			{Path: PathLogin, View: "login", PublicOnly: true},
			{Path: PathRegister, View: "register", PublicOnly: true},
			{Path: PathDashboard, View: "dashboard", Roles: allRoles},
			{Path: PathStudents, View: "students", Roles: []user.Role{user.RoleMentor}},
			{Path: PathPrograms, View: "programs", Roles: allRoles},
			{Path: PathLessons, View: "lessons", Roles: []user.Role{user.RoleMentor}},
			{Path: PathMaterials, View: "materials", Roles: allRoles},
			{Path: PathMessages, View: "messages", Roles: allRoles},
			{Path: PathNotifications, View: "notifications", Roles: allRoles},
			{Path: PathProfile, View: "profile", Roles: allRoles},
			{Path: PathAdminUsers, View: "user_management", Roles: []user.Role{user.RoleSuperAdmin}},
			{Path: PathAdminStats, View: "platform_stats", Roles: []user.Role{user.RoleSuperAdmin}},
		},
		links: map[user.Role][]Link{
			user.RoleStudent: {
				{Name: "Dashboard", Path: PathDashboard},
				{Name: "Programs", Path: PathPrograms},
				{Name: "Materials", Path: PathMaterials},
				{Name: "Messages", Path: PathMessages},
				{Name: "Notifications", Path: PathNotifications},
			},
			user.RoleMentor: {
				{Name: "Dashboard", Path: PathDashboard},
				{Name: "My Students", Path: PathStudents},
				{Name: "Programs", Path: PathPrograms},
				{Name: "Lessons", Path: PathLessons},
				{Name: "Materials", Path: PathMaterials},
				{Name: "Messages", Path: PathMessages},
				{Name: "Notifications", Path: PathNotifications},
			},
			user.RoleSuperAdmin: {
				{Name: "Dashboard", Path: PathDashboard},
				{Name: "User Management", Path: PathAdminUsers},
				{Name: "Platform Stats", Path: PathAdminStats},
				{Name: "Programs", Path: PathPrograms},
				{Name: "Materials", Path: PathMaterials},
				{Name: "Notifications", Path: PathNotifications},
			},
		},
	}
}

// normalize treats unknown roles as students; the empty role stays unauthenticated.
func normalize(role user.Role) user.Role {
	if role == "" || role.IsValid() {
		return role
	}
	return user.RoleStudent
}

// Lookup returns the route `path` belongs to: the route itself or its longest prefix.
func (p *Policy) Lookup(path string) (Route, bool) {
	var match Route
	var found bool
	for _, r := range p.routes {
		if path == r.Path || strings.HasPrefix(path, r.Path+"/") {
			if !found || len(r.Path) > len(match.Path) {
				match, found = r, true
			}
		}
	}
	return match, found
}

// Decide tells whether `path` renders for `role`; the empty role is an unauthenticated visitor.
func (p *Policy) Decide(path string, role user.Role) Decision {
	role = normalize(role)
	authed := role != ""

	if path == PathRoot || path == "" {
		if authed {
			return Decision{Outcome: Redirect, Redirect: PathDashboard}
		}
		return Decision{Outcome: Redirect, Redirect: PathLogin}
	}

	route, ok := p.Lookup(path)
	if !ok {
		return Decision{Outcome: NotFound}
	}
	switch {
	case route.PublicOnly && authed:
		return Decision{Outcome: Redirect, Redirect: PathDashboard, Route: route}
	case route.PublicOnly:
		return Decision{Outcome: Allow, Route: route}
	case !authed:
		return Decision{Outcome: Redirect, Redirect: PathLogin, Route: route}
	case !route.allows(role):
		return Decision{Outcome: Redirect, Redirect: PathDashboard, Route: route}
	}
	return Decision{Outcome: Allow, Route: route}
}

// Links returns the nav links of `role`; unknown roles get the student links.
func (p *Policy) Links(role user.Role) []Link {
	role = normalize(role)
	if links, ok := p.links[role]; ok {
		return append([]Link(nil), links...)
	}
	return append([]Link(nil), p.links[user.RoleStudent]...)
}

// Routes lists the routes `role` can reach.
func (p *Policy) Routes(role user.Role) []Route {
	role = normalize(role)
	routes := make([]Route, 0, len(p.routes))
	for _, r := range p.routes {
		if p.Decide(r.Path, role).Allowed() {
			routes = append(routes, r)
		}
	}
	return routes
}

func (r Route) allows(role user.Role) bool {
	for _, rr := range r.Roles {
		if rr == role {
			return true
		}
	}
	return false
}
