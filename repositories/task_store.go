package repositories

import (
	"staffdesk/models"

	"gorm.io/gorm"
)

// StatusCount is one row of the tasks-per-status aggregate. Statuses are
// reported verbatim.
type StatusCount struct {
	Status string
	Count  int64
}

type TaskStore interface {
	List() ([]models.Task, error)
	GetByID(id uint) (*models.Task, error)
	Create(task *models.Task) error
	Update(task *models.Task) error
	Delete(id uint) error
	Count() (int64, error)
	CountWithStatus(status string) (int64, error)
	CountByStatus() ([]StatusCount, error)
}

type GormTaskStore struct {
	db *gorm.DB
}

func NewGormTaskStore(db *gorm.DB) *GormTaskStore {
	return &GormTaskStore{db: db}
}

func (s *GormTaskStore) List() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *GormTaskStore) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *GormTaskStore) Create(task *models.Task) error {
	return s.db.Create(task).Error
}

// Update overwrites every column, including a nil DueDate, which clears the
// stored date back to NULL.
func (s *GormTaskStore) Update(task *models.Task) error {
	return s.db.Save(task).Error
}

func (s *GormTaskStore) Delete(id uint) error {
	return s.db.Delete(&models.Task{}, id).Error
}

func (s *GormTaskStore) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Task{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *GormTaskStore) CountWithStatus(status string) (int64, error) {
	var n int64
	if err := s.db.Model(&models.Task{}).Where("status = ?", status).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *GormTaskStore) CountByStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := s.db.Model(&models.Task{}).
		Select("status, count(id) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
