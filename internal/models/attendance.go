package models

// Attendance is append-only. Values are stored as received; the columns that
// arrive loosely typed from the dashboard are kept as nullable pointers so the
// database, not the service, decides what is acceptable.
type Attendance struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Employee     *string `gorm:"column:employee;type:varchar(200)" json:"employee"`
	Date         *string `gorm:"column:date;type:varchar(10)" json:"date"`
	Status       *string `gorm:"column:status;type:varchar(50)" json:"status"`
	WorkingHours *string `gorm:"column:workingHours;type:varchar(20)" json:"workingHours"`
	Notes        string  `gorm:"column:notes;type:varchar(500);not null;default:''" json:"notes"`
	EmployeeID   *int64  `gorm:"column:employee_id;not null;index" json:"employee_id"`
}

func (Attendance) TableName() string {
	return "attendance"
}
