package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/apperror"
	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/models"
)

type billTotals struct {
	TotalBills  int64
	TotalAmount decimal.NullDecimal
}

type BillService struct {
	db *gorm.DB
}

func NewBillService(db *gorm.DB) *BillService {
	return &BillService{db: db}
}

func (s *BillService) ListBills(ctx context.Context, salesID *uint) ([]BillDTO, error) {
	query := s.db.WithContext(ctx).Model(&models.Bill{})
	if salesID != nil {
		query = query.Where("sales_id = ?", *salesID)
	}

	var bills []models.Bill
	if err := query.Find(&bills).Error; err != nil {
		return nil, mapDatabaseError(err)
	}

	result := make([]BillDTO, 0, len(bills))
	for _, bill := range bills {
		result = append(result, billToDTO(bill))
	}
	return result, nil
}

// GetBillSummary never fails for a client without bills: the sum of an empty
// set is reported as zero.
func (s *BillService) GetBillSummary(ctx context.Context, clientID uint) (BillSummaryDTO, error) {
	var totals billTotals
	if err := s.db.WithContext(ctx).
		Model(&models.Bill{}).
		Select("COUNT(*) AS total_bills, COALESCE(SUM(total_amount), 0) AS total_amount").
		Where("sales_id = ?", clientID).
		Scan(&totals).Error; err != nil {
		return BillSummaryDTO{}, mapDatabaseError(err)
	}

	var unpaid int64
	if err := s.db.WithContext(ctx).
		Model(&models.Bill{}).
		Where("sales_id = ? AND payment_status = ?", clientID, models.PaymentStatusUnpaid).
		Count(&unpaid).Error; err != nil {
		return BillSummaryDTO{}, mapDatabaseError(err)
	}

	return BillSummaryDTO{
		TotalBills:  totals.TotalBills,
		TotalAmount: totals.TotalAmount.Decimal.InexactFloat64(),
		UnpaidBills: unpaid,
	}, nil
}

func (s *BillService) CreateBill(ctx context.Context, input CreateBillInput) (uint, error) {
	if err := requireAll(input, "All fields are required."); err != nil {
		return 0, err
	}

	dateBilled, err := parseDate(input.DateBilled, "date_billed")
	if err != nil {
		return 0, err
	}

	bill := models.Bill{
		BillNo:        input.BillNo,
		JobName:       input.JobName,
		TotalAmount:   input.TotalAmount,
		PaymentStatus: input.PaymentStatus,
		DateBilled:    dateBilled,
		SalesID:       input.SalesID,
	}

	if err := s.db.WithContext(ctx).Create(&bill).Error; err != nil {
		return 0, mapDatabaseError(err)
	}
	return bill.ID, nil
}

// UpdatePaymentStatus looks bills up by their business number, not by the
// surrogate id that DeleteBill uses. Both the existence check and the write
// match on bill_no, so every bill sharing the number is updated.
func (s *BillService) UpdatePaymentStatus(ctx context.Context, billNo string, status string) error {
	if status == "" {
		return apperror.Validation("Missing 'payment_status' in request body.")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Bill{}).Where("bill_no = ?", billNo).Count(&count).Error; err != nil {
		return mapDatabaseError(err)
	}
	if count == 0 {
		return apperror.NotFoundf("No bill found with ID %s.", billNo)
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Bill{}).
		Where("bill_no = ?", billNo).
		Update("payment_status", status).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func (s *BillService) DeleteBill(ctx context.Context, billID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Bill{}).Where("id = ?", billID).Count(&count).Error; err != nil {
		return mapDatabaseError(err)
	}
	if count == 0 {
		return apperror.NotFoundf("No bill found with ID %d", billID)
	}

	if err := s.db.WithContext(ctx).Delete(&models.Bill{}, billID).Error; err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func billToDTO(bill models.Bill) BillDTO {
	return BillDTO{
		ID:            bill.ID,
		BillNo:        bill.BillNo,
		JobName:       bill.JobName,
		TotalAmount:   bill.TotalAmount,
		PaymentStatus: bill.PaymentStatus,
		DateBilled:    formatDate(bill.DateBilled),
		SalesID:       bill.SalesID,
	}
}
