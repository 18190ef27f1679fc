package service

import (
	"context"
	"strings"
	"testing"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/apperror"
	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/models"
)

func strPtr(value string) *string {
	return &value
}

func int64Ptr(value int64) *int64 {
	return &value
}

func TestEmployees(t *testing.T) {
	database := newTestDB(t)
	svc := NewAttendanceService(database)
	ctx := context.Background()

	if err := database.Create(&[]models.Employee{{FullName: "Asha Rao"}, {FullName: "Vikram Shah"}}).Error; err != nil {
		t.Fatalf("seed employees: %v", err)
	}

	employees, err := svc.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}

	employee, err := svc.GetEmployee(ctx, employees[1].ID)
	if err != nil {
		t.Fatalf("get employee: %v", err)
	}
	if employee.FullName != "Vikram Shah" {
		t.Fatalf("unexpected employee %+v", employee)
	}

	_, err = svc.GetEmployee(ctx, 77)
	expectCode(t, err, apperror.CodeNotFound)
}

func TestSaveAndListAttendance(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))
	ctx := context.Background()

	input := CreateAttendanceInput{
		Employee:     strPtr("Asha Rao"),
		Date:         strPtr("15-07-2025"),
		Status:       strPtr("Present"),
		WorkingHours: strPtr("8"),
		EmployeeID:   int64Ptr(3),
	}
	if err := svc.SaveAttendance(ctx, input); err != nil {
		t.Fatalf("save attendance: %v", err)
	}

	records, err := svc.ListAttendance(ctx, "3")
	if err != nil {
		t.Fatalf("list attendance: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Notes != "" {
		t.Fatalf("expected empty default notes, got %q", records[0].Notes)
	}
	if *records[0].Date != "15-07-2025" || *records[0].EmployeeID != 3 {
		t.Fatalf("unexpected record %+v", records[0])
	}

	none, err := svc.ListAttendance(ctx, "4")
	if err != nil {
		t.Fatalf("list attendance: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no records for employee 4, got %d", len(none))
	}

	all, err := svc.ListAttendance(ctx, "")
	if err != nil {
		t.Fatalf("list all attendance: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record overall, got %d", len(all))
	}
}

func TestSaveAttendanceWithoutEmployeeIDFailsInStorage(t *testing.T) {
	svc := NewAttendanceService(newTestDB(t))

	err := svc.SaveAttendance(context.Background(), CreateAttendanceInput{Employee: strPtr("Asha Rao")})
	expectCode(t, err, apperror.CodeInternal)
	if !strings.Contains(strings.ToLower(err.Error()), "not null") {
		t.Fatalf("expected driver message about NOT NULL, got %q", err.Error())
	}
}
