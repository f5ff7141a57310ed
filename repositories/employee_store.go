package repositories

import (
	"staffdesk/models"

	"gorm.io/gorm"
)

// DepartmentCount is one row of the employees-per-department aggregate.
type DepartmentCount struct {
	Department string
	Count      int64
}

type EmployeeStore interface {
	List() ([]models.Employee, error)
	GetByID(id uint) (*models.Employee, error)
	Create(emp *models.Employee) error
	Update(emp *models.Employee) error
	Delete(id uint) error
	Count() (int64, error)
	CountByDepartment() ([]DepartmentCount, error)
}

type GormEmployeeStore struct {
	db *gorm.DB
}

func NewGormEmployeeStore(db *gorm.DB) *GormEmployeeStore {
	return &GormEmployeeStore{db: db}
}

func (s *GormEmployeeStore) List() ([]models.Employee, error) {
	var emps []models.Employee
	if err := s.db.Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

func (s *GormEmployeeStore) GetByID(id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.First(&emp, id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *GormEmployeeStore) Create(emp *models.Employee) error {
	return s.db.Create(emp).Error
}

// Update overwrites every column of the row. Last writer wins.
func (s *GormEmployeeStore) Update(emp *models.Employee) error {
	return s.db.Save(emp).Error
}

// Delete removes the employee and all of its tasks in one transaction, so
// the cascade does not depend on the engine enforcing foreign keys.
func (s *GormEmployeeStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Employee{}, id).Error
	})
}

func (s *GormEmployeeStore) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Employee{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// CountByDepartment groups NULL and empty departments together; the caller
// decides how to label that bucket.
func (s *GormEmployeeStore) CountByDepartment() ([]DepartmentCount, error) {
	var rows []DepartmentCount
	err := s.db.Model(&models.Employee{}).
		Select("coalesce(department, '') as department, count(id) as count").
		Group("coalesce(department, '')").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
