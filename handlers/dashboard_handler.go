package handlers

import (
	"staffdesk/repositories"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler renders the summary page. Every request recomputes the
// aggregates live from the database.
type DashboardHandler struct {
	Employees repositories.EmployeeStore
	Tasks     repositories.TaskStore
}

func NewDashboardHandler(employees repositories.EmployeeStore, tasks repositories.TaskStore) *DashboardHandler {
	return &DashboardHandler{Employees: employees, Tasks: tasks}
}

func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	totalEmployees, err := h.Employees.Count()
	if err != nil {
		return err
	}
	totalTasks, err := h.Tasks.Count()
	if err != nil {
		return err
	}
	completedTasks, err := h.Tasks.CountWithStatus("Completed")
	if err != nil {
		return err
	}

	deptCounts, err := h.Employees.CountByDepartment()
	if err != nil {
		return err
	}
	// Missing departments land in a single "Unknown" bucket.
	for i := range deptCounts {
		if deptCounts[i].Department == "" {
			deptCounts[i].Department = "Unknown"
		}
	}

	statusCounts, err := h.Tasks.CountByStatus()
	if err != nil {
		return err
	}

	return render(c, "dashboard", fiber.Map{
		"TotalEmployees": totalEmployees,
		"TotalTasks":     totalTasks,
		"CompletedTasks": completedTasks,
		"DeptCounts":     deptCounts,
		"StatusCounts":   statusCounts,
	})
}
