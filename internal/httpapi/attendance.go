package httpapi

import (
	"net/http"
	"strings"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/apperror"
	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/service"
)

type saveAttendanceRequest struct {
	Employee     looseValue `json:"employee"`
	Date         looseValue `json:"date"`
	Status       looseValue `json:"status"`
	WorkingHours looseValue `json:"workingHours"`
	Notes        looseValue `json:"notes"`
	EmployeeID   looseValue `json:"employee_id"`
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := parseOptionalIntQuery(r, "id")
	if !ok || employeeID == 0 {
		employees, err := h.attendance.ListEmployees(r.Context())
		if err != nil {
			h.respondWithError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, employees)
		return
	}

	if employeeID < 0 {
		h.respondWithError(w, r, apperror.NotFoundf("Employee not found"))
		return
	}

	employee, err := h.attendance.GetEmployee(r.Context(), uint(employeeID))
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *Handler) handleSaveAttendance(w http.ResponseWriter, r *http.Request) {
	var req saveAttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	employeeID, err := req.EmployeeID.Int64Ptr("employee_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.attendance.SaveAttendance(r.Context(), service.CreateAttendanceInput{
		Employee:     req.Employee.Ptr(),
		Date:         req.Date.Ptr(),
		Status:       req.Status.Ptr(),
		WorkingHours: req.WorkingHours.Ptr(),
		Notes:        req.Notes.Text,
		EmployeeID:   employeeID,
	}); err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Attendance record saved successfully")
}

// handleListAttendance answers an empty result with a message object rather
// than an empty array. Dashboard code checks for that shape.
func (h *Handler) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := strings.TrimSpace(r.URL.Query().Get("id"))

	records, err := h.attendance.ListAttendance(r.Context(), employeeID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	if len(records) == 0 {
		writeMessage(w, http.StatusOK, "No records found")
		return
	}
	writeJSON(w, http.StatusOK, records)
}
