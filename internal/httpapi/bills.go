package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/service"
)

type createBillRequest struct {
	BillNo        looseValue `json:"bill_no"`
	JobName       looseValue `json:"job_name"`
	TotalAmount   looseValue `json:"total_amount"`
	PaymentStatus looseValue `json:"payment_status"`
	DateBilled    looseValue `json:"date_billed"`
	SalesID       looseValue `json:"sales_id"`
}

type updatePaymentStatusRequest struct {
	PaymentStatus looseValue `json:"payment_status"`
}

func (h *Handler) handleListBills(w http.ResponseWriter, r *http.Request) {
	salesID, filtered := parseOptionalIntQuery(r, "sales_id")
	if filtered && salesID < 0 {
		writeJSON(w, http.StatusOK, []service.BillDTO{})
		return
	}

	var filter *uint
	if filtered {
		id := uint(salesID)
		filter = &id
	}

	bills, err := h.bills.ListBills(r.Context(), filter)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

func (h *Handler) handleBillSummary(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseUintID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	summary, err := h.bills.GetBillSummary(r.Context(), clientID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	var req createBillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, err := req.TotalAmount.Decimal("total_amount")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	salesID, err := req.SalesID.Uint("sales_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.bills.CreateBill(r.Context(), service.CreateBillInput{
		BillNo:        req.BillNo.String(),
		JobName:       req.JobName.String(),
		TotalAmount:   amount,
		PaymentStatus: req.PaymentStatus.String(),
		DateBilled:    req.DateBilled.String(),
		SalesID:       salesID,
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{
		Message:    "Bill added successfully!",
		InsertedID: id,
	})
}

// handleUpdatePaymentStatus takes the bill number in the path, while
// handleDeleteBill takes the surrogate id. The dashboard relies on both.
func (h *Handler) handleUpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	billNo, err := parseUintID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bill number")
		return
	}

	var req updatePaymentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := req.PaymentStatus.String()
	if err := h.bills.UpdatePaymentStatus(r.Context(), fmt.Sprint(billNo), status); err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("Payment status updated to '%s' for bill ID %d.", status, billNo))
}

func (h *Handler) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	billID, err := parseUintID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bill id")
		return
	}

	if err := h.bills.DeleteBill(r.Context(), billID); err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("Bill with ID %d deleted successfully", billID))
}
