package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/passa-a-bola/platform/models"
	"github.com/passa-a-bola/platform/store"
)

// RegistrationRepository is the typed access layer over the registration
// collections. Append operations assign the record id and timestamp;
// callers never pick ids themselves.
type RegistrationRepository interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	AppendTeam(ctx context.Context, team *models.Team) error
	ListIndividuals(ctx context.Context) ([]models.Individual, error)
	AppendIndividual(ctx context.Context, individual *models.Individual) error
	GetCapacity(ctx context.Context) (models.CapacityState, error)
	PutCapacity(ctx context.Context, state models.CapacityState) error
}

type documentRegistrationRepository struct {
	store store.DocumentStore
}

func NewDocumentRegistrationRepository(s store.DocumentStore) RegistrationRepository {
	return &documentRegistrationRepository{store: s}
}

func (r *documentRegistrationRepository) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := r.load(ctx, store.CollectionTeams, &teams); err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return teams, nil
}

func (r *documentRegistrationRepository) AppendTeam(ctx context.Context, team *models.Team) error {
	teams, err := r.ListTeams(ctx)
	if err != nil {
		return err
	}
	team.ID = uuid.NewString()
	team.CreatedAt = time.Now().UTC()
	teams = append(teams, *team)
	return r.save(ctx, store.CollectionTeams, teams)
}

func (r *documentRegistrationRepository) ListIndividuals(ctx context.Context) ([]models.Individual, error) {
	var individuals []models.Individual
	if err := r.load(ctx, store.CollectionIndividuals, &individuals); err != nil {
		return nil, err
	}
	if individuals == nil {
		individuals = []models.Individual{}
	}
	return individuals, nil
}

func (r *documentRegistrationRepository) AppendIndividual(ctx context.Context, individual *models.Individual) error {
	individuals, err := r.ListIndividuals(ctx)
	if err != nil {
		return err
	}
	individual.ID = uuid.NewString()
	individual.CreatedAt = time.Now().UTC()
	individuals = append(individuals, *individual)
	return r.save(ctx, store.CollectionIndividuals, individuals)
}

// GetCapacity returns the stored statistics document, or a zeroed state if
// none has been written yet.
func (r *documentRegistrationRepository) GetCapacity(ctx context.Context) (models.CapacityState, error) {
	state := models.NewCapacityState()
	if err := r.load(ctx, store.CollectionStatistics, &state); err != nil {
		return models.CapacityState{}, err
	}
	if state.PositionsOccupied == nil {
		state.PositionsOccupied = models.NewCapacityState().PositionsOccupied
	}
	return state, nil
}

func (r *documentRegistrationRepository) PutCapacity(ctx context.Context, state models.CapacityState) error {
	return r.save(ctx, store.CollectionStatistics, state)
}

func (r *documentRegistrationRepository) load(ctx context.Context, collection string, dst interface{}) error {
	body, err := r.store.Get(ctx, collection)
	if err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", collection, err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", collection, err)
	}
	return nil
}

func (r *documentRegistrationRepository) save(ctx context.Context, collection string, value interface{}) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", collection, err)
	}
	if err := r.store.Put(ctx, collection, body); err != nil {
		return fmt.Errorf("failed to persist %s: %w", collection, err)
	}
	return nil
}
