package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/passa-a-bola/platform/models"
)

// testCPF returns a distinct valid CPF for each n. Fixtures only; the
// checksum itself is pinned by known vectors in the cpf package tests.
func testCPF(n int) string {
	base := fmt.Sprintf("%09d", 100000000+n)
	d1 := testCheckDigit(base, 10)
	d2 := testCheckDigit(base+strconv.Itoa(d1), 11)
	return fmt.Sprintf("%s%d%d", base, d1, d2)
}

func testCheckDigit(digits string, firstWeight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (firstWeight - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func testResponsible(n int) models.Responsible {
	return models.Responsible{
		Name:  "Responsável Teste",
		TaxID: testCPF(n),
		Email: "responsavel@passabola.com.br",
		Phone: "(11) 99999-0000",
	}
}

func testPlayer(n int, position models.Position) models.PlayerEntry {
	return models.PlayerEntry{
		Name:     fmt.Sprintf("Jogadora %d", n),
		Age:      20,
		TaxID:    testCPF(n),
		Position: position,
	}
}

// formationRoster returns eleven players matching the formation quota
// exactly, with CPFs drawn from offset upward.
func formationRoster(offset int) []models.PlayerEntry {
	var roster []models.PlayerEntry
	n := offset
	for _, position := range models.AllPositions {
		for i := 0; i < models.FormationQuota[position]; i++ {
			roster = append(roster, testPlayer(n, position))
			n++
		}
	}
	return roster
}

// openRoster returns size players with arbitrary positions.
func openRoster(offset, size int) []models.PlayerEntry {
	roster := make([]models.PlayerEntry, 0, size)
	for i := 0; i < size; i++ {
		position := models.AllPositions[i%len(models.AllPositions)]
		roster = append(roster, testPlayer(offset+i, position))
	}
	return roster
}

func TestCanAddPlayerInvalidTaxID(t *testing.T) {
	rules := RosterRules{Mode: RosterModeOpen}
	candidate := testPlayer(1, models.PositionMeia)
	candidate.TaxID = "123.456.789-00"

	err := rules.CanAddPlayer(nil, testResponsible(0), candidate)
	if !errors.Is(err, ErrInvalidTaxID) {
		t.Fatalf("CanAddPlayer() error = %v, want ErrInvalidTaxID", err)
	}
}

func TestCanAddPlayerDuplicateTaxID(t *testing.T) {
	rules := RosterRules{Mode: RosterModeOpen}
	responsible := testResponsible(0)
	existing := models.PlayerEntry{
		Name: "Maria", Age: 22, TaxID: "123.456.789-09", Position: models.PositionMeia,
	}

	t.Run("same id different formatting", func(t *testing.T) {
		candidate := models.PlayerEntry{
			Name: "Joana", Age: 25, TaxID: "12345678909", Position: models.PositionAtacante,
		}
		err := rules.CanAddPlayer([]models.PlayerEntry{existing}, responsible, candidate)
		if !errors.Is(err, ErrDuplicateTaxID) {
			t.Fatalf("CanAddPlayer() error = %v, want ErrDuplicateTaxID", err)
		}
	})

	t.Run("matches responsible", func(t *testing.T) {
		candidate := testPlayer(1, models.PositionAtacante)
		candidate.TaxID = responsible.TaxID
		err := rules.CanAddPlayer(nil, responsible, candidate)
		if !errors.Is(err, ErrDuplicateTaxID) {
			t.Fatalf("CanAddPlayer() error = %v, want ErrDuplicateTaxID", err)
		}
	})
}

func TestCanAddPlayerRosterFull(t *testing.T) {
	rules := RosterRules{Mode: RosterModeOpen}
	roster := openRoster(0, MaxRosterSize)

	err := rules.CanAddPlayer(roster, testResponsible(99), testPlayer(50, models.PositionMeia))
	if !errors.Is(err, ErrRosterFull) {
		t.Fatalf("CanAddPlayer() error = %v, want ErrRosterFull", err)
	}
}

func TestCanAddPlayerPositionFull(t *testing.T) {
	roster := []models.PlayerEntry{testPlayer(0, models.PositionGoleira)}
	responsible := testResponsible(99)
	candidate := testPlayer(1, models.PositionGoleira)

	t.Run("formation mode enforces quota", func(t *testing.T) {
		rules := RosterRules{Mode: RosterModeFormation}
		err := rules.CanAddPlayer(roster, responsible, candidate)
		if !errors.Is(err, ErrPositionFull) {
			t.Fatalf("CanAddPlayer() error = %v, want ErrPositionFull", err)
		}
	})

	t.Run("open mode does not", func(t *testing.T) {
		rules := RosterRules{Mode: RosterModeOpen}
		if err := rules.CanAddPlayer(roster, responsible, candidate); err != nil {
			t.Fatalf("CanAddPlayer() error = %v, want nil", err)
		}
	})
}

func TestValidateOpenBounds(t *testing.T) {
	rules := RosterRules{Mode: RosterModeOpen}
	tests := []struct {
		size int
		ok   bool
	}{
		{10, false},
		{11, true},
		{14, true},
		{18, true},
		{19, false},
		{0, false},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.size), func(t *testing.T) {
			report := rules.Validate(openRoster(0, tt.size))
			if report.OK != tt.ok {
				t.Errorf("Validate(%d players).OK = %v, want %v", tt.size, report.OK, tt.ok)
			}
			if !tt.ok && len(report.Reasons) == 0 {
				t.Error("failing report carries no reasons")
			}
		})
	}
}

func TestValidateFormation(t *testing.T) {
	rules := RosterRules{Mode: RosterModeFormation}

	t.Run("exact quota passes", func(t *testing.T) {
		report := rules.Validate(formationRoster(0))
		if !report.OK {
			t.Fatalf("Validate() = %+v, want OK", report)
		}
	})

	t.Run("shortage and excess are both reported", func(t *testing.T) {
		// Swap one Atacante for an extra Zagueira: still eleven players,
		// but two positions off quota.
		roster := formationRoster(0)
		for i := range roster {
			if roster[i].Position == models.PositionAtacante {
				roster[i].Position = models.PositionZagueira
				break
			}
		}

		report := rules.Validate(roster)
		if report.OK {
			t.Fatal("Validate() passed a roster off quota")
		}
		if len(report.Reasons) != 2 {
			t.Fatalf("Validate() reasons = %v, want exactly 2", report.Reasons)
		}
		// Fixed enumeration order: Zagueira before Atacante.
		if !strings.Contains(report.Reasons[0], string(models.PositionZagueira)) {
			t.Errorf("first reason %q does not mention Zagueira", report.Reasons[0])
		}
		if !strings.Contains(report.Reasons[0], "3") || !strings.Contains(report.Reasons[0], "2") {
			t.Errorf("Zagueira reason %q is missing actual/required counts", report.Reasons[0])
		}
		if !strings.Contains(report.Reasons[1], string(models.PositionAtacante)) {
			t.Errorf("second reason %q does not mention Atacante", report.Reasons[1])
		}
		if !strings.Contains(report.Reasons[1], "2") || !strings.Contains(report.Reasons[1], "3") {
			t.Errorf("Atacante reason %q is missing actual/required counts", report.Reasons[1])
		}
	})

	t.Run("wrong size reported first", func(t *testing.T) {
		report := rules.Validate(formationRoster(0)[:10])
		if report.OK {
			t.Fatal("Validate() passed a ten-player roster")
		}
		if !strings.Contains(report.Reasons[0], "11") {
			t.Errorf("first reason %q does not mention the required size", report.Reasons[0])
		}
	})

	t.Run("deterministic output", func(t *testing.T) {
		roster := formationRoster(0)[:10]
		first := rules.Validate(roster)
		for i := 0; i < 5; i++ {
			again := rules.Validate(roster)
			if len(again.Reasons) != len(first.Reasons) {
				t.Fatalf("reason count changed between runs: %v vs %v", first.Reasons, again.Reasons)
			}
			for j := range again.Reasons {
				if again.Reasons[j] != first.Reasons[j] {
					t.Fatalf("reason order changed between runs: %v vs %v", first.Reasons, again.Reasons)
				}
			}
		}
	})
}

func TestSlotAllocator(t *testing.T) {
	allocator := SlotAllocator{TeamLimit: 8}

	t.Run("full pool when nothing occupied", func(t *testing.T) {
		occupied := map[models.Position]int{}
		if got := allocator.RemainingSlots(models.PositionAtacante, occupied); got != 24 {
			t.Errorf("RemainingSlots(Atacante) = %d, want 24", got)
		}
		if got := allocator.RemainingSlots(models.PositionGoleira, occupied); got != 8 {
			t.Errorf("RemainingSlots(Goleira) = %d, want 8", got)
		}
	})

	t.Run("clamped at zero", func(t *testing.T) {
		occupied := map[models.Position]int{models.PositionGoleira: 12}
		if got := allocator.RemainingSlots(models.PositionGoleira, occupied); got != 0 {
			t.Errorf("RemainingSlots() = %d, want 0", got)
		}
		if allocator.Available(models.PositionGoleira, occupied) {
			t.Error("Available() = true for an exhausted position")
		}
	})

	t.Run("report covers every position", func(t *testing.T) {
		report := allocator.Report(map[models.Position]int{models.PositionMeia: 5})
		if len(report) != len(models.AllPositions) {
			t.Fatalf("Report() has %d entries, want %d", len(report), len(models.AllPositions))
		}
		if report[models.PositionMeia] != 11 { // 2*8 - 5
			t.Errorf("Report()[Meia] = %d, want 11", report[models.PositionMeia])
		}
	})
}
