package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/models"
)

const dateLayout = "2006-01-02"

type CreateClientInput struct {
	ClientName  string `validate:"required"`
	Address     string `validate:"required"`
	Email       string `validate:"required"`
	PhoneNo     string `validate:"required"`
	JoinedDate  string `validate:"required"`
	CompanyType string `validate:"required"`
	GstNo       string `validate:"required"`
}

type CreateBillInput struct {
	BillNo        string          `validate:"required"`
	JobName       string          `validate:"required"`
	TotalAmount   decimal.Decimal `validate:"required"`
	PaymentStatus string          `validate:"required"`
	DateBilled    string          `validate:"required"`
	SalesID       uint            `validate:"required"`
}

// CreateAttendanceInput is inserted without presence checks; nil fields are
// written as NULL and left to the table constraints.
type CreateAttendanceInput struct {
	Employee     *string
	Date         *string
	Status       *string
	WorkingHours *string
	Notes        string
	EmployeeID   *int64
}

type ClientSummaryDTO struct {
	ID         uint   `json:"id"`
	ClientName string `json:"client_name"`
}

type ClientProfileDTO struct {
	ID          uint   `json:"id"`
	ClientName  string `json:"client_name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	PhoneNo     string `json:"phone_no"`
	JoinedDate  string `json:"joined_date"`
	GstNo       string `json:"gst_no"`
	CompanyType string `json:"company_type"`
}

type BillDTO struct {
	ID            uint            `json:"id"`
	BillNo        string          `json:"bill_no"`
	JobName       string          `json:"job_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	DateBilled    string          `json:"date_billed"`
	SalesID       uint            `json:"sales_id"`
}

type BillSummaryDTO struct {
	TotalBills  int64   `json:"total_bills"`
	TotalAmount float64 `json:"total_amount"`
	UnpaidBills int64   `json:"unpaid_bills"`
}

type ClientManager interface {
	ListClientNames(ctx context.Context) ([]ClientSummaryDTO, error)
	ListClientProfiles(ctx context.Context) ([]ClientProfileDTO, error)
	GetClientProfile(ctx context.Context, clientID uint) (ClientProfileDTO, error)
	CreateClient(ctx context.Context, input CreateClientInput) (uint, error)
	UpdateClient(ctx context.Context, clientID uint, patch ClientPatch) error
	DeleteClient(ctx context.Context, clientID uint) error
}

type BillManager interface {
	ListBills(ctx context.Context, salesID *uint) ([]BillDTO, error)
	GetBillSummary(ctx context.Context, clientID uint) (BillSummaryDTO, error)
	CreateBill(ctx context.Context, input CreateBillInput) (uint, error)
	UpdatePaymentStatus(ctx context.Context, billNo string, status string) error
	DeleteBill(ctx context.Context, billID uint) error
}

type AttendanceManager interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, employeeID uint) (models.Employee, error)
	SaveAttendance(ctx context.Context, input CreateAttendanceInput) error
	ListAttendance(ctx context.Context, employeeID string) ([]models.Attendance, error)
}
