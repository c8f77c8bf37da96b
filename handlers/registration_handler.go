package handlers

import (
	"net/http"

	"github.com/passa-a-bola/platform/models"
	"github.com/passa-a-bola/platform/services"
)

type RegistrationHandler struct {
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(rs *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: rs}
}

func (h *RegistrationHandler) SubmitIndividual(w http.ResponseWriter, r *http.Request) {
	var draft services.IndividualDraft
	if err := readJSON(w, r, &draft); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	individual, err := h.registrationService.SubmitIndividual(r.Context(), draft)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"inscricao": individual}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) SubmitTeam(w http.ResponseWriter, r *http.Request) {
	var draft services.TeamDraft
	if err := readJSON(w, r, &draft); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.registrationService.SubmitTeam(r.Context(), draft)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"inscricao": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.registrationService.ListTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"times": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) ListIndividuals(w http.ResponseWriter, r *http.Request) {
	individuals, err := h.registrationService.ListIndividuals(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"jogadoresIndividuais": individuals}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStatistics returns the capacity state recomputed from the records,
// which is what the sign-up page renders as remaining slots.
func (h *RegistrationHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	state, err := h.registrationService.Capacity(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	response := jsonResponse{
		"estatisticas": state,
		"limiteTimes":  h.registrationService.TeamLimit(),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetRemainingSlots reports per-position individual slots. In open mode
// there is no per-position pool, so only the mode is returned. A
// ?posicao= query narrows the report to one position.
func (h *RegistrationHandler) GetRemainingSlots(w http.ResponseWriter, r *http.Request) {
	response := jsonResponse{"modo": h.registrationService.Mode()}
	if h.registrationService.Mode() == services.RosterModeFormation {
		slots, err := h.registrationService.RemainingSlots(r.Context())
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if raw := r.URL.Query().Get("posicao"); raw != "" {
			position, err := models.ParsePosition(raw)
			if err != nil {
				badRequestResponse(w, r, err)
				return
			}
			response["vagas"] = map[models.Position]int{position: slots[position]}
		} else {
			response["vagas"] = slots
		}
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CheckPlayer answers the registration form's incremental question: may
// this candidate join the roster as assembled so far? Nothing is
// persisted either way.
func (h *RegistrationHandler) CheckPlayer(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Responsible models.Responsible   `json:"responsavel"`
		Players     []models.PlayerEntry `json:"jogadores"`
		Candidate   models.PlayerEntry   `json:"candidata"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.registrationService.Rules().CanAddPlayer(input.Players, input.Responsible, input.Candidate); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"ok": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reconcile forces a reconciliation pass. Admin only; the cron job calls
// the same service method on a schedule.
func (h *RegistrationHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	state, err := h.registrationService.Reconcile(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"estatisticas": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
