package repositories

import (
	"context"
	"testing"

	"github.com/passa-a-bola/platform/models"
	"github.com/passa-a-bola/platform/store"
)

func TestListOnEmptyStore(t *testing.T) {
	repo := NewDocumentRegistrationRepository(store.NewMemoryStore())
	ctx := context.Background()

	teams, err := repo.ListTeams(ctx)
	if err != nil {
		t.Fatalf("ListTeams() error = %v", err)
	}
	if len(teams) != 0 {
		t.Errorf("ListTeams() = %d records, want 0", len(teams))
	}

	individuals, err := repo.ListIndividuals(ctx)
	if err != nil {
		t.Fatalf("ListIndividuals() error = %v", err)
	}
	if len(individuals) != 0 {
		t.Errorf("ListIndividuals() = %d records, want 0", len(individuals))
	}

	state, err := repo.GetCapacity(ctx)
	if err != nil {
		t.Fatalf("GetCapacity() error = %v", err)
	}
	if state.TeamCount != 0 || state.IndividualCount != 0 {
		t.Errorf("GetCapacity() = %+v, want zeroed state", state)
	}
	if len(state.PositionsOccupied) != len(models.AllPositions) {
		t.Errorf("zeroed state covers %d positions, want %d", len(state.PositionsOccupied), len(models.AllPositions))
	}
}

func TestAppendAssignsIdentity(t *testing.T) {
	repo := NewDocumentRegistrationRepository(store.NewMemoryStore())
	ctx := context.Background()

	individual := &models.Individual{
		Name:      "Ana",
		TaxID:     "529.982.247-25",
		Email:     "ana@passabola.com.br",
		Phone:     "(11) 98888-0000",
		Age:       19,
		Positions: []models.Position{models.PositionGoleira},
	}
	if err := repo.AppendIndividual(ctx, individual); err != nil {
		t.Fatalf("AppendIndividual() error = %v", err)
	}
	if individual.ID == "" {
		t.Error("AppendIndividual() left ID empty")
	}
	if individual.CreatedAt.IsZero() {
		t.Error("AppendIndividual() left CreatedAt zero")
	}

	team := &models.Team{
		Name: "Estrelas",
		Responsible: models.Responsible{
			Name: "Clara", TaxID: "111.444.777-35",
			Email: "clara@passabola.com.br", Phone: "(11) 97777-0000",
		},
	}
	if err := repo.AppendTeam(ctx, team); err != nil {
		t.Fatalf("AppendTeam() error = %v", err)
	}
	if team.ID == "" || team.CreatedAt.IsZero() {
		t.Errorf("AppendTeam() left identity unset: id=%q createdAt=%v", team.ID, team.CreatedAt)
	}
	if team.ID == individual.ID {
		t.Error("team and individual received the same id")
	}

	individuals, err := repo.ListIndividuals(ctx)
	if err != nil {
		t.Fatalf("ListIndividuals() error = %v", err)
	}
	if len(individuals) != 1 || individuals[0].ID != individual.ID {
		t.Errorf("ListIndividuals() = %+v, want the appended record", individuals)
	}
}

func TestCapacityRoundTrip(t *testing.T) {
	repo := NewDocumentRegistrationRepository(store.NewMemoryStore())
	ctx := context.Background()

	state := models.NewCapacityState()
	state.TeamCount = 3
	state.IndividualCount = 7
	state.PositionsOccupied[models.PositionMeia] = 5

	if err := repo.PutCapacity(ctx, state); err != nil {
		t.Fatalf("PutCapacity() error = %v", err)
	}
	loaded, err := repo.GetCapacity(ctx)
	if err != nil {
		t.Fatalf("GetCapacity() error = %v", err)
	}
	if !loaded.Equal(state) {
		t.Errorf("GetCapacity() = %+v, want %+v", loaded, state)
	}
}
