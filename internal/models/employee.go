package models

// Employee is read-only from this service; rows are maintained elsewhere.
type Employee struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"column:Fullname;type:varchar(200);not null" json:"Fullname"`
}

func (Employee) TableName() string {
	return "employee_data"
}
