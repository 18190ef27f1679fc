package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/apperror"
)

func TestBillSummaryWithoutBills(t *testing.T) {
	svc := NewBillService(newTestDB(t))

	summary, err := svc.GetBillSummary(context.Background(), 7)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary != (BillSummaryDTO{TotalBills: 0, TotalAmount: 0, UnpaidBills: 0}) {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestBillSummaryCountsUnpaidExactly(t *testing.T) {
	svc := NewBillService(newTestDB(t))
	ctx := context.Background()

	inputs := []CreateBillInput{
		validBillInput(1, "1001"),
		validBillInput(1, "1002"),
		validBillInput(1, "1003"),
		validBillInput(2, "2001"),
	}
	inputs[1].PaymentStatus = "paid"
	inputs[1].TotalAmount = decimal.RequireFromString("499.50")
	inputs[2].PaymentStatus = "Unpaid"
	inputs[2].TotalAmount = decimal.RequireFromString("1000")

	for _, input := range inputs {
		if _, err := svc.CreateBill(ctx, input); err != nil {
			t.Fatalf("create bill %s: %v", input.BillNo, err)
		}
	}

	summary, err := svc.GetBillSummary(ctx, 1)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalBills != 3 {
		t.Fatalf("expected 3 bills, got %d", summary.TotalBills)
	}
	if summary.TotalAmount != 3000 {
		t.Fatalf("expected total 3000, got %v", summary.TotalAmount)
	}
	if summary.UnpaidBills != 1 {
		t.Fatalf("expected 1 unpaid bill, got %d", summary.UnpaidBills)
	}
}

func TestListBillsFilter(t *testing.T) {
	svc := NewBillService(newTestDB(t))
	ctx := context.Background()

	for _, input := range []CreateBillInput{validBillInput(1, "1001"), validBillInput(2, "2001")} {
		if _, err := svc.CreateBill(ctx, input); err != nil {
			t.Fatalf("create bill: %v", err)
		}
	}

	all, err := svc.ListBills(ctx, nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 bills, got %d", len(all))
	}

	salesID := uint(2)
	filtered, err := svc.ListBills(ctx, &salesID)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].BillNo != "2001" {
		t.Fatalf("unexpected filtered bills: %+v", filtered)
	}
	if filtered[0].DateBilled != "2024-02-15" {
		t.Fatalf("unexpected date_billed %q", filtered[0].DateBilled)
	}
	if !filtered[0].TotalAmount.Equal(decimal.RequireFromString("1500.50")) {
		t.Fatalf("unexpected total_amount %s", filtered[0].TotalAmount)
	}
}

func TestCreateBillMissingFields(t *testing.T) {
	svc := NewBillService(newTestDB(t))
	ctx := context.Background()

	mutators := []func(*CreateBillInput){
		func(in *CreateBillInput) { in.BillNo = "" },
		func(in *CreateBillInput) { in.JobName = "" },
		func(in *CreateBillInput) { in.TotalAmount = decimal.Zero },
		func(in *CreateBillInput) { in.PaymentStatus = "" },
		func(in *CreateBillInput) { in.DateBilled = "" },
		func(in *CreateBillInput) { in.SalesID = 0 },
	}
	for _, mutate := range mutators {
		input := validBillInput(1, "1001")
		mutate(&input)

		_, err := svc.CreateBill(ctx, input)
		expectCode(t, err, apperror.CodeValidation)
		if err.Error() != "All fields are required." {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}
}

func TestUpdatePaymentStatusByBillNo(t *testing.T) {
	svc := NewBillService(newTestDB(t))
	ctx := context.Background()

	id, err := svc.CreateBill(ctx, validBillInput(1, "1001"))
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}

	if err := svc.UpdatePaymentStatus(ctx, "1001", "paid"); err != nil {
		t.Fatalf("update status: %v", err)
	}

	bills, err := svc.ListBills(ctx, nil)
	if err != nil {
		t.Fatalf("list bills: %v", err)
	}
	if len(bills) != 1 || bills[0].ID != id || bills[0].PaymentStatus != "paid" {
		t.Fatalf("expected bill %d to be paid, got %+v", id, bills)
	}

	err = svc.UpdatePaymentStatus(ctx, "9999", "paid")
	expectCode(t, err, apperror.CodeNotFound)
	if err.Error() != "No bill found with ID 9999." {
		t.Fatalf("unexpected message %q", err.Error())
	}

	expectCode(t, svc.UpdatePaymentStatus(ctx, "1001", ""), apperror.CodeValidation)
}

func TestUpdatePaymentStatusIgnoresSurrogateID(t *testing.T) {
	svc := NewBillService(newTestDB(t))
	ctx := context.Background()

	id, err := svc.CreateBill(ctx, validBillInput(1, "5000"))
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}
	if id == 5000 {
		t.Fatalf("test needs surrogate id distinct from bill_no")
	}

	expectCode(t, svc.UpdatePaymentStatus(ctx, "1", "paid"), apperror.CodeNotFound)
}

func TestDeleteBillBySurrogateID(t *testing.T) {
	svc := NewBillService(newTestDB(t))
	ctx := context.Background()

	id, err := svc.CreateBill(ctx, validBillInput(1, "1001"))
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}

	expectCode(t, svc.DeleteBill(ctx, 1001), apperror.CodeNotFound)

	if err := svc.DeleteBill(ctx, id); err != nil {
		t.Fatalf("delete bill: %v", err)
	}
	expectCode(t, svc.DeleteBill(ctx, id), apperror.CodeNotFound)
}
