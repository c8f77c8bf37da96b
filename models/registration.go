package models

import "time"

// Responsible is the contact accountable for a team registration. Their
// CPF counts toward the team's duplicate check even though they are not
// themselves on the roster.
type Responsible struct {
	Name  string `json:"nome"`
	TaxID string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
}

// PlayerEntry is a single athlete inside a team registration.
type PlayerEntry struct {
	Name     string   `json:"nome"`
	Age      int      `json:"idade"`
	TaxID    string   `json:"cpf"`
	Position Position `json:"posicao"`
}

// Individual is an accepted solo registration. Positions holds one
// required choice plus at most one distinct backup; the first entry is the
// one that consumes a slot in formation mode.
type Individual struct {
	ID        string     `json:"id"`
	Name      string     `json:"nome"`
	TaxID     string     `json:"cpf"`
	Email     string     `json:"email"`
	Phone     string     `json:"telefone"`
	Age       int        `json:"idade"`
	Positions []Position `json:"posicoes"`
	CreatedAt time.Time  `json:"dataInscricao"`
}

// Team is an accepted full-team registration. Records are immutable once
// persisted; there is no edit or withdrawal flow in this subsystem.
type Team struct {
	ID          string        `json:"id"`
	Name        string        `json:"nomeTime"`
	Responsible Responsible   `json:"responsavel"`
	Players     []PlayerEntry `json:"jogadores"`
	CreatedAt   time.Time     `json:"dataInscricao"`
}
