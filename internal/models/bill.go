package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const PaymentStatusUnpaid = "unpaid"

type Bill struct {
	ID            uint            `gorm:"primaryKey"`
	BillNo        string          `gorm:"column:bill_no;type:varchar(50);not null;index"`
	JobName       string          `gorm:"column:job_name;type:varchar(200);not null"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount;type:decimal(12,2);not null"`
	PaymentStatus string          `gorm:"column:payment_status;type:varchar(20);not null"`
	DateBilled    datatypes.Date  `gorm:"column:date_billed;not null"`
	SalesID       uint            `gorm:"column:sales_id;not null;index"`
}

func (Bill) TableName() string {
	return "bills"
}
