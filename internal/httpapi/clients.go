package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/service"
)

type createClientRequest struct {
	ClientName  looseValue `json:"client_name"`
	Address     looseValue `json:"address"`
	Email       looseValue `json:"email"`
	PhoneNo     looseValue `json:"phone_no"`
	JoinedDate  looseValue `json:"joined_date"`
	CompanyType looseValue `json:"company_type"`
	GstNo       looseValue `json:"gst_no"`
}

// updateClientRequest lists the editable keys. phone_no and joined_date are
// accepted as spellings of phone and joined.
type updateClientRequest struct {
	ClientName  looseValue `json:"client_name"`
	Address     looseValue `json:"address"`
	Email       looseValue `json:"email"`
	Phone       looseValue `json:"phone"`
	PhoneNo     looseValue `json:"phone_no"`
	GstNo       looseValue `json:"gst_no"`
	CompanyType looseValue `json:"company_type"`
	Joined      looseValue `json:"joined"`
	JoinedDate  looseValue `json:"joined_date"`
}

func (req updateClientRequest) patch() service.ClientPatch {
	phone := req.Phone.Ptr()
	if phone == nil {
		phone = req.PhoneNo.Ptr()
	}
	joined := req.Joined.Ptr()
	if joined == nil {
		joined = req.JoinedDate.Ptr()
	}

	return service.ClientPatch{
		ClientName:  req.ClientName.Ptr(),
		Address:     req.Address.Ptr(),
		Email:       req.Email.Ptr(),
		Phone:       phone,
		GstNo:       req.GstNo.Ptr(),
		CompanyType: req.CompanyType.Ptr(),
		Joined:      joined,
	}
}

func (h *Handler) handleListClientNames(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.ListClientNames(r.Context())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *Handler) handleListClientProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.clients.ListClientProfiles(r.Context())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *Handler) handleGetClientProfile(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseUintID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	profile, err := h.clients.GetClientProfile(r.Context(), clientID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.clients.CreateClient(r.Context(), service.CreateClientInput{
		ClientName:  req.ClientName.String(),
		Address:     req.Address.String(),
		Email:       req.Email.String(),
		PhoneNo:     req.PhoneNo.String(),
		JoinedDate:  req.JoinedDate.String(),
		CompanyType: req.CompanyType.String(),
		GstNo:       req.GstNo.String(),
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{
		Message:    "Client added successfully!",
		InsertedID: id,
	})
}

func (h *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseUintID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	var req updateClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.clients.UpdateClient(r.Context(), clientID, req.patch()); err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Client information updated successfully.")
}

func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseUintID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	if err := h.clients.DeleteClient(r.Context(), clientID); err != nil {
		h.respondWithError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("Client with ID %d deleted successfully", clientID))
}
