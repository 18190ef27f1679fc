package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/service"
)

const billsSheet = "Bills"

var billColumns = []string{"ID", "Bill No", "Job Name", "Total Amount", "Payment Status", "Date Billed", "Client ID"}

// handleExportBills serves the bill list as an XLSX workbook. It accepts the
// same sales_id filter as the JSON listing.
func (h *Handler) handleExportBills(w http.ResponseWriter, r *http.Request) {
	var filter *uint
	if salesID, ok := parseOptionalIntQuery(r, "sales_id"); ok {
		if salesID < 0 {
			salesID = 0
		}
		id := uint(salesID)
		filter = &id
	}

	bills, err := h.bills.ListBills(r.Context(), filter)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(filter)))
	if err := writeBillsWorkbook(w, bills); err != nil {
		h.logger.Printf("export bills: %v", err)
	}
}

func writeBillsWorkbook(out io.Writer, bills []service.BillDTO) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", billsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, title := range billColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(billsSheet, cell, title); err != nil {
			return err
		}
	}

	for i, bill := range bills {
		row := i + 2
		values := []interface{}{
			bill.ID,
			bill.BillNo,
			bill.JobName,
			bill.TotalAmount.InexactFloat64(),
			bill.PaymentStatus,
			bill.DateBilled,
			bill.SalesID,
		}
		if err := f.SetSheetRow(billsSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	_ = f.SetColWidth(billsSheet, "B", "C", 20)
	_ = f.SetColWidth(billsSheet, "D", "F", 15)

	return f.Write(out)
}

func exportFilename(salesID *uint) string {
	if salesID == nil {
		return "bills.xlsx"
	}
	return fmt.Sprintf("bills_%d.xlsx", *salesID)
}
