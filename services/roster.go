package services

import (
	"fmt"

	"github.com/passa-a-bola/platform/cpf"
	"github.com/passa-a-bola/platform/models"
)

// RosterMode selects which composition rule is active for the event.
// "open" only bounds the roster size; "formation" demands an exact eleven
// matching the formation quota table.
type RosterMode string

const (
	RosterModeOpen      RosterMode = "open"
	RosterModeFormation RosterMode = "formation"
)

func ParseRosterMode(raw string) (RosterMode, error) {
	switch RosterMode(raw) {
	case RosterModeOpen, RosterModeFormation:
		return RosterMode(raw), nil
	}
	return "", fmt.Errorf("unknown roster mode %q", raw)
}

// Roster size bounds in open mode.
const (
	MinRosterSize = 11
	MaxRosterSize = 18
)

// RosterRules validates team roster composition under the configured mode.
// All methods are pure; nothing here touches storage.
type RosterRules struct {
	Mode RosterMode
}

// RosterReport is the submit-time verdict on a roster. Reasons are
// user-facing messages, emitted in the fixed position order so the same
// roster always produces the same report.
type RosterReport struct {
	OK      bool     `json:"ok"`
	Reasons []string `json:"motivos,omitempty"`
}

// CanAddPlayer decides whether candidate may join the roster being built.
// It performs no mutation; the caller appends on nil. The responsible
// party's CPF participates in the duplicate check even though they are not
// a player.
func (r RosterRules) CanAddPlayer(roster []models.PlayerEntry, responsible models.Responsible, candidate models.PlayerEntry) error {
	if candidate.Name == "" || candidate.Age <= 0 || candidate.TaxID == "" || candidate.Position == "" {
		return fmt.Errorf("%w: all player fields are required", ErrValidationFailed)
	}
	if !candidate.Position.Valid() {
		return fmt.Errorf("%w: unknown position %q", ErrValidationFailed, candidate.Position)
	}
	if !cpf.Valid(candidate.TaxID) {
		return ErrInvalidTaxID
	}

	candidateID := cpf.Strip(candidate.TaxID)
	if cpf.Strip(responsible.TaxID) == candidateID {
		return ErrDuplicateTaxID
	}
	for _, player := range roster {
		if cpf.Strip(player.TaxID) == candidateID {
			return ErrDuplicateTaxID
		}
	}

	if len(roster) >= MaxRosterSize {
		return ErrRosterFull
	}
	if r.Mode == RosterModeFormation {
		count := 0
		for _, player := range roster {
			if player.Position == candidate.Position {
				count++
			}
		}
		if count >= models.FormationQuota[candidate.Position] {
			return ErrPositionFull
		}
	}
	return nil
}

// Validate is the final submit-time check on a full roster.
func (r RosterRules) Validate(roster []models.PlayerEntry) RosterReport {
	if r.Mode == RosterModeFormation {
		return r.validateFormation(roster)
	}
	return r.validateOpen(roster)
}

func (r RosterRules) validateOpen(roster []models.PlayerEntry) RosterReport {
	n := len(roster)
	if n >= MinRosterSize && n <= MaxRosterSize {
		return RosterReport{OK: true}
	}
	return RosterReport{
		Reasons: []string{
			fmt.Sprintf("o time deve ter entre %d e %d jogadoras (atual: %d)", MinRosterSize, MaxRosterSize, n),
		},
	}
}

func (r RosterRules) validateFormation(roster []models.PlayerEntry) RosterReport {
	var reasons []string
	if len(roster) != models.FormationSize {
		reasons = append(reasons,
			fmt.Sprintf("o time deve ter exatamente %d jogadoras (atual: %d)", models.FormationSize, len(roster)))
	}

	counts := make(map[models.Position]int, len(models.AllPositions))
	for _, player := range roster {
		counts[player.Position]++
	}
	for _, position := range models.AllPositions {
		quota := models.FormationQuota[position]
		switch actual := counts[position]; {
		case actual < quota:
			reasons = append(reasons,
				fmt.Sprintf("%s: %d inscrita(s), %d exigida(s)", position, actual, quota))
		case actual > quota:
			reasons = append(reasons,
				fmt.Sprintf("%s: %d inscrita(s), limite de %d", position, actual, quota))
		}
	}

	if len(reasons) > 0 {
		return RosterReport{Reasons: reasons}
	}
	return RosterReport{OK: true}
}
