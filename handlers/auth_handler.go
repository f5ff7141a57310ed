package handlers

import (
	"errors"
	"strings"

	"staffdesk/internal/session"
	"staffdesk/models"
	"staffdesk/repositories"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves signup, login and logout.
type AuthHandler struct {
	Users        repositories.UserStore
	Secret       string
	SessionHours int
}

func NewAuthHandler(users repositories.UserStore, secret string, sessionHours int) *AuthHandler {
	return &AuthHandler{Users: users, Secret: secret, SessionHours: sessionHours}
}

type credentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *AuthHandler) ShowSignup(c *fiber.Ctx) error {
	return render(c, "signup", nil)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var form credentialsForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	username := strings.TrimSpace(form.Username)
	password := strings.TrimSpace(form.Password)
	if username == "" || password == "" {
		session.SetFlash(c, "danger", "Username and password are required")
		return c.Redirect("/signup", fiber.StatusSeeOther)
	}

	if _, err := h.Users.GetByUsername(username); err == nil {
		session.SetFlash(c, "danger", "Username already exists!")
		return c.Redirect("/signup", fiber.StatusSeeOther)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "user",
	}
	if err := h.Users.Create(user); err != nil {
		return err
	}

	session.SetFlash(c, "success", "Signup successful! Please login.")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return render(c, "login", nil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form credentialsForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	username := strings.TrimSpace(form.Username)
	password := strings.TrimSpace(form.Password)

	// One generic message for both unknown user and wrong password.
	user, err := h.Users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			session.SetFlash(c, "danger", "Invalid username or password")
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		session.SetFlash(c, "danger", "Invalid username or password")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	token, err := session.CreateToken(user, h.Secret, h.SessionHours)
	if err != nil {
		return err
	}
	session.SetCookie(c, token, h.SessionHours)

	session.SetFlash(c, "success", "Login successful!")
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session.ClearCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
