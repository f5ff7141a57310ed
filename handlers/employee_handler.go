package handlers

import (
	"errors"
	"strconv"
	"time"

	"staffdesk/internal/session"
	"staffdesk/models"
	"staffdesk/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// EmployeeHandler serves the employee CRUD screens.
type EmployeeHandler struct {
	Employees repositories.EmployeeStore
}

func NewEmployeeHandler(employees repositories.EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{Employees: employees}
}

type employeeForm struct {
	FullName   string `form:"full_name"`
	Email      string `form:"email"`
	Department string `form:"department"`
	Role       string `form:"role"`
	Location   string `form:"location"`
	DateJoined string `form:"date_joined"`
}

// validate checks the required fields and parses the date. The returned
// message is empty when the form is valid.
func (f *employeeForm) validate() (*models.Employee, string) {
	if f.FullName == "" || f.Email == "" || f.Department == "" || f.Role == "" || f.Location == "" {
		return nil, "All fields are required"
	}

	dateJoined := time.Now()
	if f.DateJoined != "" {
		parsed, err := time.Parse(dateLayout, f.DateJoined)
		if err != nil {
			return nil, "Date joined must be in YYYY-MM-DD format"
		}
		dateJoined = parsed
	}

	return &models.Employee{
		FullName:   f.FullName,
		Email:      f.Email,
		Department: f.Department,
		Role:       f.Role,
		Location:   f.Location,
		DateJoined: dateJoined,
	}, ""
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	emps, err := h.Employees.List()
	if err != nil {
		return err
	}
	return render(c, "employees", fiber.Map{"Employees": emps})
}

func (h *EmployeeHandler) ShowCreate(c *fiber.Ctx) error {
	return render(c, "employee_form", nil)
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var form employeeForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	emp, msg := form.validate()
	if msg != "" {
		session.SetFlash(c, "danger", msg)
		return c.Redirect("/employees/new", fiber.StatusSeeOther)
	}

	if err := h.Employees.Create(emp); err != nil {
		return err
	}

	session.SetFlash(c, "success", "Employee added!")
	return c.Redirect("/employees", fiber.StatusSeeOther)
}

func (h *EmployeeHandler) ShowEdit(c *fiber.Ctx) error {
	emp, err := h.loadEmployee(c)
	if err != nil {
		return err
	}
	return render(c, "employee_form", fiber.Map{"Employee": emp})
}

func (h *EmployeeHandler) Edit(c *fiber.Ctx) error {
	emp, err := h.loadEmployee(c)
	if err != nil {
		return err
	}

	var form employeeForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	updated, msg := form.validate()
	if msg != "" {
		session.SetFlash(c, "danger", msg)
		return c.Redirect("/employees/"+c.Params("id")+"/edit", fiber.StatusSeeOther)
	}

	// Overwrite every field unconditionally.
	updated.ID = emp.ID
	updated.CreatedAt = emp.CreatedAt
	if err := h.Employees.Update(updated); err != nil {
		return err
	}

	session.SetFlash(c, "success", "Employee updated!")
	return c.Redirect("/employees", fiber.StatusSeeOther)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	emp, err := h.loadEmployee(c)
	if err != nil {
		return err
	}

	if err := h.Employees.Delete(emp.ID); err != nil {
		return err
	}

	session.SetFlash(c, "info", "Employee deleted!")
	return c.Redirect("/employees", fiber.StatusSeeOther)
}

func (h *EmployeeHandler) loadEmployee(c *fiber.Ctx) (*models.Employee, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, fiber.ErrNotFound
	}
	emp, err := h.Employees.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, err
	}
	return emp, nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
