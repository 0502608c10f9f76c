package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"go-nexus-crm/internal/model"
	"go-nexus-crm/internal/service"
	"go-nexus-crm/internal/session"
	"go-nexus-crm/pkg/jwt"
)

// newGuardedApp mirrors the production route layout closely enough to
// exercise the guard matrix: a public login route, an auth-only leads
// route, and a role-gated users route.
func newGuardedApp(t *testing.T, trap service.TrapService, sessions *session.Store) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(Trap(trap, "/api/v1/trap/reset"))

	app.Post("/api/v1/auth/login", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "login view"})
	})
	app.Post("/api/v1/trap/reset", func(c *fiber.Ctx) error {
		trap.Reset()
		return c.JSON(fiber.Map{"active": false})
	})

	protected := app.Group("", RequireAuth(sessions))
	protected.Get("/api/v1/leads", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "leads"})
	})
	protected.Get("/api/v1/users", RequireRole("ADMIN", "SUPERUSER"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "users"})
	})
	return app
}

func loginAs(t *testing.T, sessions *session.Store, user *model.User) string {
	t.Helper()
	version := "test-version"
	if err := sessions.Set(user, version); err != nil {
		t.Fatalf("session set: %v", err)
	}
	token, err := jwt.GenerateToken(user.ID, user.Username, user.RoleName(), version)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	var body map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &body)
	return resp, body
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	app := newGuardedApp(t, service.NewTrapService(), sessions)

	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/users", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if body["redirect"] != "/login" {
		t.Fatalf("expected redirect to /login, got %v", body["redirect"])
	}
	if body["from"] != "/api/v1/users" {
		t.Fatalf("expected original location captured, got %v", body["from"])
	}
}

func TestEmployeeGetsAccessDeniedNotRedirect(t *testing.T) {
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	app := newGuardedApp(t, service.NewTrapService(), sessions)

	token := loginAs(t, sessions, &model.User{
		ID: "u5", Username: "emp2",
		Role:          &model.RoleRef{ID: "r3", Name: "EMPLOYEE"},
		AccountActive: true,
	})

	// The role-gated route resolves with an inline denial, not a redirect.
	resp, body := doRequest(t, app, http.MethodGet, "/api/v1/users", token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if _, hasRedirect := body["redirect"]; hasRedirect {
		t.Fatalf("access denial must not redirect: %v", body)
	}

	// Auth-only routes still work for the same user.
	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/leads", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("leads status = %d, want 200", resp.StatusCode)
	}
}

func TestAdminPassesRoleGate(t *testing.T) {
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	app := newGuardedApp(t, service.NewTrapService(), sessions)

	token := loginAs(t, sessions, &model.User{
		ID: "u3", Username: "admin",
		Role:          &model.RoleRef{ID: "r2", Name: "ADMIN"},
		AccountActive: true,
	})

	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/users", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestTrapPreemptsEveryRouteUntilReset(t *testing.T) {
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	trap := service.NewTrapService()
	app := newGuardedApp(t, trap, sessions)

	token := loginAs(t, sessions, &model.User{
		ID: "u1", Username: "super",
		Role:          &model.RoleRef{ID: "r1", Name: "SUPERUSER"},
		AccountActive: true,
	})

	trap.Trigger("simulated backend outage")

	// Every route resolves to the fallback, the login view included, even
	// for a freshly authenticated caller.
	for _, path := range []string{"/api/v1/users", "/api/v1/leads"} {
		resp, body := doRequest(t, app, http.MethodGet, path, token)
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Fatalf("%s status = %d, want 503", path, resp.StatusCode)
		}
		if body["view"] != "trap" {
			t.Fatalf("%s expected trap view, got %v", path, body)
		}
	}
	resp, body := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "")
	if resp.StatusCode != http.StatusServiceUnavailable || body["view"] != "trap" {
		t.Fatalf("login must be pre-empted too: %d %v", resp.StatusCode, body)
	}

	// The reset route stays reachable and restores normal routing.
	resp, _ = doRequest(t, app, http.MethodPost, "/api/v1/trap/reset", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reset status = %d, want 200", resp.StatusCode)
	}
	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/leads", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("post-reset leads status = %d, want 200", resp.StatusCode)
	}
}

func TestStaleTokenVersionRejected(t *testing.T) {
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	app := newGuardedApp(t, service.NewTrapService(), sessions)

	user := &model.User{ID: "u1", Username: "super", Role: &model.RoleRef{ID: "r1", Name: "SUPERUSER"}, AccountActive: true}
	oldToken := loginAs(t, sessions, user)

	// A second login rotates the version; the old bearer token no longer
	// matches the single active session.
	if err := sessions.Set(user, "rotated-version"); err != nil {
		t.Fatalf("session set: %v", err)
	}

	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/leads", oldToken)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

// newRouteLayoutApp registers the same group structure as the api binary,
// with stub handlers, so group-scoped middleware is exercised exactly the
// way the server wires it. Keep this in sync with cmd/api/main.go.
func newRouteLayoutApp(sessions *session.Store) *fiber.App {
	app := fiber.New()
	ok := func(name string) fiber.Handler {
		return func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"message": name}) }
	}

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", ok("login"))

	protected := api.Group("", RequireAuth(sessions))

	protected.Get("/dashboard", ok("dashboard"))

	users := protected.Group("/users", RequireRole("ADMIN", "SUPERUSER"))
	users.Get("/", ok("users"))

	manageRBAC := RequireRole("ADMIN", "SUPERUSER")
	protected.Get("/roles", manageRBAC, ok("roles"))
	protected.Get("/authorities", manageRBAC, ok("authorities"))

	protected.Get("/leads", ok("leads"))

	companies := protected.Group("/companies", RequireRole("SUPERUSER"))
	companies.Get("/", ok("companies"))

	protected.Get("/notifications", ok("notifications"))

	return app
}

// A role gate attached to one group must not leak onto auth-only routes
// registered after it.
func TestRoleGatesScopedToTheirRoutes(t *testing.T) {
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	app := newRouteLayoutApp(sessions)

	empToken := loginAs(t, sessions, &model.User{
		ID: "u5", Username: "emp2",
		Role:          &model.RoleRef{ID: "r3", Name: "EMPLOYEE"},
		AccountActive: true,
	})

	employeeMatrix := []struct {
		path   string
		status int
	}{
		{"/api/v1/dashboard", http.StatusOK},
		{"/api/v1/leads", http.StatusOK},
		{"/api/v1/notifications", http.StatusOK},
		{"/api/v1/users", http.StatusForbidden},
		{"/api/v1/roles", http.StatusForbidden},
		{"/api/v1/authorities", http.StatusForbidden},
		{"/api/v1/companies", http.StatusForbidden},
	}
	for _, tt := range employeeMatrix {
		resp, _ := doRequest(t, app, http.MethodGet, tt.path, empToken)
		if resp.StatusCode != tt.status {
			t.Errorf("EMPLOYEE %s status = %d, want %d", tt.path, resp.StatusCode, tt.status)
		}
	}

	adminToken := loginAs(t, sessions, &model.User{
		ID: "u3", Username: "admin",
		Role:          &model.RoleRef{ID: "r2", Name: "ADMIN"},
		AccountActive: true,
	})

	adminMatrix := []struct {
		path   string
		status int
	}{
		{"/api/v1/users", http.StatusOK},
		{"/api/v1/roles", http.StatusOK},
		{"/api/v1/leads", http.StatusOK},
		{"/api/v1/companies", http.StatusForbidden},
	}
	for _, tt := range adminMatrix {
		resp, _ := doRequest(t, app, http.MethodGet, tt.path, adminToken)
		if resp.StatusCode != tt.status {
			t.Errorf("ADMIN %s status = %d, want %d", tt.path, resp.StatusCode, tt.status)
		}
	}

	superToken := loginAs(t, sessions, &model.User{
		ID: "u1", Username: "super",
		Role:          &model.RoleRef{ID: "r1", Name: "SUPERUSER"},
		AccountActive: true,
	})
	resp, _ := doRequest(t, app, http.MethodGet, "/api/v1/companies", superToken)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("SUPERUSER /api/v1/companies status = %d, want 200", resp.StatusCode)
	}
}
