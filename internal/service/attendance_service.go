package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/apperror"
	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/models"
)

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

func (s *AttendanceService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	if err := s.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, mapDatabaseError(err)
	}
	return employees, nil
}

func (s *AttendanceService) GetEmployee(ctx context.Context, employeeID uint) (models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, apperror.NotFoundf("Employee not found")
		}
		return models.Employee{}, mapDatabaseError(err)
	}
	return employee, nil
}

func (s *AttendanceService) SaveAttendance(ctx context.Context, input CreateAttendanceInput) error {
	record := models.Attendance{
		Employee:     input.Employee,
		Date:         input.Date,
		Status:       input.Status,
		WorkingHours: input.WorkingHours,
		Notes:        input.Notes,
		EmployeeID:   input.EmployeeID,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

// ListAttendance filters on employee_id when employeeID is not empty. The value
// is handed to the database as received.
func (s *AttendanceService) ListAttendance(ctx context.Context, employeeID string) ([]models.Attendance, error) {
	query := s.db.WithContext(ctx).Model(&models.Attendance{})
	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}

	records := []models.Attendance{}
	if err := query.Find(&records).Error; err != nil {
		return nil, mapDatabaseError(err)
	}
	return records, nil
}
