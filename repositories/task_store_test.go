package repositories

import (
	"testing"
	"time"

	"staffdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAssignee(t *testing.T, store *GormEmployeeStore) *models.Employee {
	t.Helper()
	emp := newEmployee("Eng")
	require.NoError(t, store.Create(emp))
	return emp
}

func TestTaskStoreDueDateLifecycle(t *testing.T) {
	db := newTestDB(t)
	emp := seedAssignee(t, NewGormEmployeeStore(db))
	store := NewGormTaskStore(db)

	task := &models.Task{Title: "ship it", Description: "d", Status: "Pending", EmployeeID: emp.ID}
	require.NoError(t, store.Create(task))

	got, err := store.GetByID(task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)

	due := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	got.DueDate = &due
	require.NoError(t, store.Update(got))

	got, err = store.GetByID(task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2025-01-02", got.DueDate.Format("2006-01-02"))

	got.DueDate = nil
	require.NoError(t, store.Update(got))

	got, err = store.GetByID(task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)
}

func TestTaskStoreDelete(t *testing.T) {
	db := newTestDB(t)
	emp := seedAssignee(t, NewGormEmployeeStore(db))
	store := NewGormTaskStore(db)

	task := &models.Task{Title: "t", Description: "d", Status: "Pending", EmployeeID: emp.ID}
	require.NoError(t, store.Create(task))
	require.NoError(t, store.Delete(task.ID))

	_, err := store.GetByID(task.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskStoreStatusAggregates(t *testing.T) {
	db := newTestDB(t)
	emp := seedAssignee(t, NewGormEmployeeStore(db))
	store := NewGormTaskStore(db)

	for _, status := range []string{"Pending", "Pending", "Completed", "someday maybe"} {
		require.NoError(t, store.Create(&models.Task{
			Title: "t", Description: "d", Status: status, EmployeeID: emp.ID,
		}))
	}

	total, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	completed, err := store.CountWithStatus("Completed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), completed)

	rows, err := store.CountByStatus()
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	// Statuses are grouped verbatim, including free-text ones.
	assert.Equal(t, int64(2), counts["Pending"])
	assert.Equal(t, int64(1), counts["Completed"])
	assert.Equal(t, int64(1), counts["someday maybe"])
}
