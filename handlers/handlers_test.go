package handlers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"staffdesk/database"
	"staffdesk/handlers"
	"staffdesk/internal/session"
	"staffdesk/models"
	"staffdesk/repositories"
	"staffdesk/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// newTestApp wires the full application against a per-test in-memory
// SQLite database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	engine := html.New("../views", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	userStore := repositories.NewGormUserStore(db)
	employeeStore := repositories.NewGormEmployeeStore(db)
	taskStore := repositories.NewGormTaskStore(db)

	auth := handlers.NewAuthHandler(userStore, testSecret, 1)
	dashboard := handlers.NewDashboardHandler(employeeStore, taskStore)
	employees := handlers.NewEmployeeHandler(employeeStore)
	tasks := handlers.NewTaskHandler(taskStore, employeeStore)

	routes.Setup(app, auth, dashboard, employees, tasks, testSecret)
	return app, db
}

// loginCookie creates a user directly and returns a valid session cookie
// for it.
func loginCookie(t *testing.T, db *gorm.DB) *http.Cookie {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pw"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{Username: "tester", PasswordHash: string(hash), Role: "user"}
	require.NoError(t, repositories.NewGormUserStore(db).Create(user))

	token, err := session.CreateToken(user, testSecret, 1)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func get(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func responseCookie(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}
