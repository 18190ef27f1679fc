package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/apperror"
	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/service"
)

type Handler struct {
	clients    service.ClientManager
	bills      service.BillManager
	attendance service.AttendanceManager
	logger     *log.Logger
	metrics    *metrics
	router     chi.Router
}

func NewHandler(clients service.ClientManager, bills service.BillManager, attendance service.AttendanceManager, logger *log.Logger) *Handler {
	h := &Handler{
		clients:    clients,
		bills:      bills,
		attendance: attendance,
		logger:     logger,
		metrics:    newMetrics(),
	}
	h.router = h.routes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID, loggingMiddleware(h.logger), h.metrics.middleware, middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthcheck", healthcheck)
	r.Method(http.MethodGet, "/metrics", h.metrics.handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/sales", h.handleListClientNames)
		r.Get("/clientdata", h.handleListClientProfiles)
		r.Get("/clientdata/{id}", h.handleGetClientProfile)
		r.Post("/add-client", h.handleCreateClient)
		r.Put("/clients/{id}/edit", h.handleUpdateClient)
		r.Delete("/delete-client/{id}", h.handleDeleteClient)

		r.Get("/clientbills/{id}", h.handleBillSummary)
		r.Get("/bills", h.handleListBills)
		r.Get("/bills/export", h.handleExportBills)
		r.Post("/add-bill", h.handleCreateBill)
		r.Post("/add-bill/", h.handleCreateBill)
		r.Put("/bills/{id}/payment-status", h.handleUpdatePaymentStatus)
		r.Delete("/delete-bill/{id}", h.handleDeleteBill)

		r.Get("/employees", h.handleListEmployees)
		r.Post("/attendance_save", h.handleSaveAttendance)
		r.Get("/employee_attendance", h.handleListAttendance)
	})

	return r
}

func healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// respondWithError writes storage failures with the driver message intact;
// the dashboard shows it as-is.
func (h *Handler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		writeError(w, http.StatusBadRequest, err.Error())
	case apperror.CodeNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Printf("request %s failed: %v (%s)", middleware.GetReqID(r.Context()), err, apperror.GetDetail(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"message": message,
	})
}

type createdResponse struct {
	Message    string `json:"message"`
	InsertedID uint   `json:"inserted_id"`
}
