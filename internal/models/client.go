package models

import (
	"time"

	"gorm.io/datatypes"
)

// Client is a row of the sales table.
type Client struct {
	ID          uint           `gorm:"primaryKey"`
	ClientName  string         `gorm:"column:client_name;type:varchar(200);not null"`
	Address     string         `gorm:"column:address;type:varchar(500);not null"`
	Email       string         `gorm:"column:email;type:varchar(200);not null"`
	PhoneNo     string         `gorm:"column:phone_no;type:varchar(20);not null"`
	JoinedDate  datatypes.Date `gorm:"column:joined_date;not null"`
	GstNo       string         `gorm:"column:gst_no;type:varchar(20);not null"`
	CompanyType string         `gorm:"column:company_type;type:varchar(50);not null"`
	CreatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Client) TableName() string {
	return "sales"
}
