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

// TaskHandler serves the task CRUD screens. It also needs the employee
// store: the forms offer an employee picker and the list view shows the
// assignee's name.
type TaskHandler struct {
	Tasks     repositories.TaskStore
	Employees repositories.EmployeeStore
}

func NewTaskHandler(tasks repositories.TaskStore, employees repositories.EmployeeStore) *TaskHandler {
	return &TaskHandler{Tasks: tasks, Employees: employees}
}

type taskForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Status      string `form:"status"`
	DueDate     string `form:"due_date"`
	EmployeeID  string `form:"employee_id"`
}

// validate checks required fields and parses the optional due date. An
// empty due date is stored as NULL.
func (f *taskForm) validate() (*models.Task, string) {
	if f.Title == "" || f.Description == "" || f.Status == "" || f.EmployeeID == "" {
		return nil, "Title, description, status and employee are required"
	}

	employeeID, err := strconv.ParseUint(f.EmployeeID, 10, 64)
	if err != nil {
		return nil, "Employee is invalid"
	}

	var dueDate *time.Time
	if f.DueDate != "" {
		parsed, err := time.Parse(dateLayout, f.DueDate)
		if err != nil {
			return nil, "Due date must be in YYYY-MM-DD format"
		}
		dueDate = &parsed
	}

	return &models.Task{
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
		DueDate:     dueDate,
		EmployeeID:  uint(employeeID),
	}, ""
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	tasks, err := h.Tasks.List()
	if err != nil {
		return err
	}
	emps, err := h.Employees.List()
	if err != nil {
		return err
	}

	names := make(map[uint]string, len(emps))
	for _, e := range emps {
		names[e.ID] = e.FullName
	}

	return render(c, "tasks", fiber.Map{
		"Tasks":         tasks,
		"EmployeeNames": names,
	})
}

func (h *TaskHandler) ShowCreate(c *fiber.Ctx) error {
	emps, err := h.Employees.List()
	if err != nil {
		return err
	}
	return render(c, "task_form", fiber.Map{"AllEmployees": emps})
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var form taskForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	task, msg := form.validate()
	if msg == "" {
		msg = h.checkEmployee(task.EmployeeID)
	}
	if msg != "" {
		session.SetFlash(c, "danger", msg)
		return c.Redirect("/tasks/new", fiber.StatusSeeOther)
	}

	if err := h.Tasks.Create(task); err != nil {
		return err
	}

	session.SetFlash(c, "success", "Task created!")
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

func (h *TaskHandler) ShowEdit(c *fiber.Ctx) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}
	emps, err := h.Employees.List()
	if err != nil {
		return err
	}
	return render(c, "task_form", fiber.Map{
		"Task":         task,
		"AllEmployees": emps,
	})
}

func (h *TaskHandler) Edit(c *fiber.Ctx) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}

	var form taskForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	updated, msg := form.validate()
	if msg == "" {
		msg = h.checkEmployee(updated.EmployeeID)
	}
	if msg != "" {
		session.SetFlash(c, "danger", msg)
		return c.Redirect("/tasks/"+c.Params("id")+"/edit", fiber.StatusSeeOther)
	}

	// Overwrite every field; an empty due date clears the stored one.
	updated.ID = task.ID
	updated.CreatedAt = task.CreatedAt
	if err := h.Tasks.Update(updated); err != nil {
		return err
	}

	session.SetFlash(c, "success", "Task updated!")
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}

	if err := h.Tasks.Delete(task.ID); err != nil {
		return err
	}

	session.SetFlash(c, "info", "Task deleted!")
	return c.Redirect("/tasks", fiber.StatusSeeOther)
}

// checkEmployee verifies the picked employee exists so a stale form can't
// store a dangling reference.
func (h *TaskHandler) checkEmployee(id uint) string {
	if _, err := h.Employees.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "Selected employee does not exist"
		}
		return "Could not verify selected employee"
	}
	return ""
}

func (h *TaskHandler) loadTask(c *fiber.Ctx) (*models.Task, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, fiber.ErrNotFound
	}
	task, err := h.Tasks.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, err
	}
	return task, nil
}
