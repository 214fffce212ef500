package httpapi

import (
	"encoding/json"
	"net/http"

	gocommand "github.com/goliatone/go-command"

	"github.com/chatstack/botadmin/components/admin/commands"
)

// Handlers exposes the mutation commands as plain net/http endpoints for
// deployments that mount the dashboard behind an existing mux instead of
// go-router.
type Handlers struct {
	CancelBooking  gocommand.Commander[commands.CancelBookingInput]
	LeadStatus     gocommand.Commander[commands.UpdateLeadStatusInput]
	RotateKey      gocommand.Commander[commands.RotateBotKeyInput]
	ClearKnowledge gocommand.Commander[commands.ClearKnowledgeInput]
	UpdateField    gocommand.Commander[commands.UpdateFormFieldInput]
}

func (h *Handlers) HandleCancelBooking(w http.ResponseWriter, r *http.Request) {
	var payload commands.CancelBookingInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.CancelBooking.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleUpdateLeadStatus(w http.ResponseWriter, r *http.Request, leadID string) {
	var payload commands.UpdateLeadStatusInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.LeadID = leadID
	if err := h.LeadStatus.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleRotateKey(w http.ResponseWriter, r *http.Request, botID string) {
	input := commands.RotateBotKeyInput{BotID: botID}
	if err := h.RotateKey.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleClearKnowledge(w http.ResponseWriter, r *http.Request, botID string) {
	input := commands.ClearKnowledgeInput{BotID: botID}
	if err := h.ClearKnowledge.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleUpdateFormField(w http.ResponseWriter, r *http.Request, fieldID string) {
	var payload commands.UpdateFormFieldInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.FieldID = fieldID
	if err := h.UpdateField.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
