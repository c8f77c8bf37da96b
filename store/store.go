// Package store provides the document storage the platform persists its
// state in: whole JSON documents keyed by collection name, replaced
// wholesale on every write.
package store

import (
	"context"
	"errors"
)

// Collection names. The registration ledger owns teams, individuals and
// statistics; the remaining collections back the supplemental surfaces.
const (
	CollectionTeams       = "teams"
	CollectionIndividuals = "individuals"
	CollectionStatistics  = "statistics"
	CollectionJogadoras   = "jogadoras"
	CollectionCopa        = "copa"
	CollectionEncontro    = "encontro"
	CollectionPeneiras    = "peneiras"
	CollectionUsers       = "users"
)

// ErrCollectionNotFound is returned by Get for a collection that has never
// been written. Callers decide what an absent document means (usually an
// empty list or a zeroed aggregate).
var ErrCollectionNotFound = errors.New("collection not found")

// DocumentStore persists whole JSON documents under named collections.
// Put must be durable on return; there is no partial update.
type DocumentStore interface {
	Get(ctx context.Context, collection string) ([]byte, error)
	Put(ctx context.Context, collection string, body []byte) error
	Close() error
}
