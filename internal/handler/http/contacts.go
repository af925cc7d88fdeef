package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/utils"
	"github.com/contactkeeper/go-contact-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ContactService.CreateContact(ctx, contact)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 10)

	contacts, err := h.services.ContactService.ListContacts(ctx, skip, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contactID, err := contactIDParam(r)
	if err != nil {
		utils.WriteError(w, "invalid contact id", http.StatusBadRequest)
		return
	}

	contact, err := h.services.ContactService.GetContact(ctx, contactID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	contactID, err := contactIDParam(r)
	if err != nil {
		utils.WriteError(w, "invalid contact id", http.StatusBadRequest)
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ContactService.UpdateContact(ctx, contactID, contact)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contactID, err := contactIDParam(r)
	if err != nil {
		utils.WriteError(w, "invalid contact id", http.StatusBadRequest)
		return
	}

	deleted, err := h.services.ContactService.DeleteContact(ctx, contactID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, deleted, http.StatusOK)
}

func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("query")

	contacts, err := h.services.ContactService.SearchContacts(ctx, query)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) upcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contacts, err := h.services.ContactService.UpcomingBirthdays(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

// contactIDParam parses the {contactID} URL parameter.
func contactIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return value
}
