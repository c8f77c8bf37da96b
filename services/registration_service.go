package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/passa-a-bola/platform/cpf"
	"github.com/passa-a-bola/platform/models"
	"github.com/passa-a-bola/platform/repositories"
)

// MinPlayerAge is the youngest age accepted on any registration form.
const MinPlayerAge = 14

// IndividualDraft is an unvalidated solo sign-up as submitted by the form.
type IndividualDraft struct {
	Name      string            `json:"nome"`
	TaxID     string            `json:"cpf"`
	Email     string            `json:"email"`
	Phone     string            `json:"telefone"`
	Age       int               `json:"idade"`
	Positions []models.Position `json:"posicoes"`
}

// TeamDraft is an unvalidated full-team sign-up.
type TeamDraft struct {
	Name        string               `json:"nomeTime"`
	Responsible models.Responsible   `json:"responsavel"`
	Players     []models.PlayerEntry `json:"jogadores"`
}

// CapacityNotifier receives the fresh capacity state after every accepted
// registration. Implemented by the live feed hub.
type CapacityNotifier interface {
	CapacityUpdated(state models.CapacityState)
}

// RegistrationService is the single authority for accepting registrations
// and for the capacity state derived from them.
//
// Capacity is always recomputed from the teams and individuals collections
// inside the submission critical section; the persisted statistics
// document is written for readers but never trusted as input. A mutex
// serializes the read-modify-write pair so concurrent submissions cannot
// race past the team limit on stale counts.
type RegistrationService struct {
	repo     repositories.RegistrationRepository
	rules    RosterRules
	slots    SlotAllocator
	notifier CapacityNotifier
	logger   *slog.Logger

	mu sync.Mutex
}

func NewRegistrationService(
	repo repositories.RegistrationRepository,
	mode RosterMode,
	teamLimit int,
	notifier CapacityNotifier,
	logger *slog.Logger,
) *RegistrationService {
	return &RegistrationService{
		repo:     repo,
		rules:    RosterRules{Mode: mode},
		slots:    SlotAllocator{TeamLimit: teamLimit},
		notifier: notifier,
		logger:   logger,
	}
}

func (s *RegistrationService) Mode() RosterMode { return s.rules.Mode }

func (s *RegistrationService) TeamLimit() int { return s.slots.TeamLimit }

// Rules exposes the composition checker for per-add validation endpoints.
func (s *RegistrationService) Rules() RosterRules { return s.rules }

// SubmitIndividual validates and records one solo registration. On any
// validation error nothing is written.
func (s *RegistrationService) SubmitIndividual(ctx context.Context, draft IndividualDraft) (*models.Individual, error) {
	if err := validateIndividualDraft(draft); err != nil {
		return nil, err
	}
	if !cpf.Valid(draft.TaxID) {
		return nil, ErrInvalidTaxID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.computeCapacity(ctx)
	if err != nil {
		return nil, err
	}

	primary := draft.Positions[0]
	if s.rules.Mode == RosterModeFormation && !s.slots.Available(primary, state.PositionsOccupied) {
		return nil, ErrPositionUnavailable
	}

	individual := &models.Individual{
		Name:      draft.Name,
		TaxID:     cpf.Format(draft.TaxID),
		Email:     draft.Email,
		Phone:     draft.Phone,
		Age:       draft.Age,
		Positions: draft.Positions,
	}
	if err := s.repo.AppendIndividual(ctx, individual); err != nil {
		return nil, err
	}

	state.IndividualCount++
	state.PositionsOccupied[primary]++
	if err := s.repo.PutCapacity(ctx, state); err != nil {
		// The registration record is durable; the statistics document is
		// stale until the next submission or reconciliation pass rewrites
		// it. Surface the failure rather than swallow it.
		s.logger.Error("capacity write failed after individual registration",
			slog.String("individual_id", individual.ID), slog.Any("error", err))
		return nil, err
	}

	s.notifyCapacity(state)
	return individual, nil
}

// SubmitTeam validates and records one full-team registration.
func (s *RegistrationService) SubmitTeam(ctx context.Context, draft TeamDraft) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.computeCapacity(ctx)
	if err != nil {
		return nil, err
	}
	if state.TeamCount >= s.slots.TeamLimit {
		return nil, ErrTeamLimitReached
	}

	if err := validateTeamDraft(draft); err != nil {
		return nil, err
	}
	if report := s.rules.Validate(draft.Players); !report.OK {
		return nil, &RosterValidationError{Reasons: report.Reasons}
	}

	team := &models.Team{
		Name: draft.Name,
		Responsible: models.Responsible{
			Name:  draft.Responsible.Name,
			TaxID: cpf.Format(draft.Responsible.TaxID),
			Email: draft.Responsible.Email,
			Phone: draft.Responsible.Phone,
		},
		Players: make([]models.PlayerEntry, len(draft.Players)),
	}
	for i, player := range draft.Players {
		player.TaxID = cpf.Format(player.TaxID)
		team.Players[i] = player
	}

	if err := s.repo.AppendTeam(ctx, team); err != nil {
		return nil, err
	}

	state.TeamCount++
	for _, player := range team.Players {
		state.PositionsOccupied[player.Position]++
	}
	if err := s.repo.PutCapacity(ctx, state); err != nil {
		s.logger.Error("capacity write failed after team registration",
			slog.String("team_id", team.ID), slog.Any("error", err))
		return nil, err
	}

	s.notifyCapacity(state)
	return team, nil
}

func (s *RegistrationService) ListTeams(ctx context.Context) ([]models.Team, error) {
	return s.repo.ListTeams(ctx)
}

func (s *RegistrationService) ListIndividuals(ctx context.Context) ([]models.Individual, error) {
	return s.repo.ListIndividuals(ctx)
}

// Capacity recomputes the current state from the registration records.
func (s *RegistrationService) Capacity(ctx context.Context) (models.CapacityState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computeCapacity(ctx)
}

// RemainingSlots reports per-position individual slots. Only meaningful in
// formation mode; open mode has no per-position pool.
func (s *RegistrationService) RemainingSlots(ctx context.Context) (map[models.Position]int, error) {
	state, err := s.Capacity(ctx)
	if err != nil {
		return nil, err
	}
	return s.slots.Report(state.PositionsOccupied), nil
}

// Reconcile recomputes capacity from the registration records and rewrites
// the statistics document, repairing any drift left behind by a failed
// second write. Runs on a schedule and on demand from the admin API.
func (s *RegistrationService) Reconcile(ctx context.Context) (models.CapacityState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	computed, err := s.computeCapacity(ctx)
	if err != nil {
		return models.CapacityState{}, err
	}
	stored, err := s.repo.GetCapacity(ctx)
	if err != nil {
		return models.CapacityState{}, err
	}
	if !stored.Equal(computed) {
		s.logger.Warn("capacity drift detected, repairing statistics document",
			slog.Int("stored_teams", stored.TeamCount),
			slog.Int("computed_teams", computed.TeamCount),
			slog.Int("stored_individuals", stored.IndividualCount),
			slog.Int("computed_individuals", computed.IndividualCount))
	}
	if err := s.repo.PutCapacity(ctx, computed); err != nil {
		return models.CapacityState{}, err
	}
	return computed, nil
}

// computeCapacity folds the authoritative collections into a CapacityState.
// Callers must hold s.mu.
func (s *RegistrationService) computeCapacity(ctx context.Context) (models.CapacityState, error) {
	var (
		teams       []models.Team
		individuals []models.Individual
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.repo.ListTeams(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		individuals, err = s.repo.ListIndividuals(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.CapacityState{}, err
	}

	state := models.NewCapacityState()
	state.TeamCount = len(teams)
	state.IndividualCount = len(individuals)
	for _, team := range teams {
		for _, player := range team.Players {
			state.PositionsOccupied[player.Position]++
		}
	}
	for _, individual := range individuals {
		if len(individual.Positions) > 0 {
			state.PositionsOccupied[individual.Positions[0]]++
		}
	}
	return state, nil
}

func (s *RegistrationService) notifyCapacity(state models.CapacityState) {
	if s.notifier != nil {
		s.notifier.CapacityUpdated(state)
	}
}

func validateIndividualDraft(draft IndividualDraft) error {
	if draft.Name == "" || draft.Email == "" || draft.Phone == "" {
		return fmt.Errorf("%w: nome, email and telefone are required", ErrValidationFailed)
	}
	if draft.Age < MinPlayerAge {
		return fmt.Errorf("%w: minimum age is %d", ErrValidationFailed, MinPlayerAge)
	}
	switch len(draft.Positions) {
	case 1:
	case 2:
		if draft.Positions[0] == draft.Positions[1] {
			return fmt.Errorf("%w: backup position must differ from the primary one", ErrValidationFailed)
		}
	default:
		return fmt.Errorf("%w: choose one position, optionally with one backup", ErrValidationFailed)
	}
	for _, position := range draft.Positions {
		if !position.Valid() {
			return fmt.Errorf("%w: unknown position %q", ErrValidationFailed, position)
		}
	}
	return nil
}

func validateTeamDraft(draft TeamDraft) error {
	if draft.Name == "" {
		return fmt.Errorf("%w: team name is required", ErrValidationFailed)
	}
	resp := draft.Responsible
	if resp.Name == "" || resp.Email == "" || resp.Phone == "" {
		return fmt.Errorf("%w: responsible contact details are required", ErrValidationFailed)
	}
	if !cpf.Valid(resp.TaxID) {
		return ErrInvalidTaxID
	}

	seen := map[string]bool{cpf.Strip(resp.TaxID): true}
	for _, player := range draft.Players {
		if player.Name == "" || player.TaxID == "" || player.Position == "" {
			return fmt.Errorf("%w: all player fields are required", ErrValidationFailed)
		}
		if player.Age < MinPlayerAge {
			return fmt.Errorf("%w: minimum age is %d", ErrValidationFailed, MinPlayerAge)
		}
		if !player.Position.Valid() {
			return fmt.Errorf("%w: unknown position %q", ErrValidationFailed, player.Position)
		}
		if !cpf.Valid(player.TaxID) {
			return ErrInvalidTaxID
		}
		id := cpf.Strip(player.TaxID)
		if seen[id] {
			return ErrDuplicateTaxID
		}
		seen[id] = true
	}
	return nil
}
