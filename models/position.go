package models

import "fmt"

// Position is one of the seven on-pitch roles used across the platform.
// The Portuguese labels are the wire values: the registration form, the
// jogadora profiles and the statistics document all carry them verbatim.
type Position string

const (
	PositionGoleira         Position = "Goleira"
	PositionZagueira        Position = "Zagueira"
	PositionLateralDireita  Position = "Lateral Direita"
	PositionLateralEsquerda Position = "Lateral Esquerda"
	PositionVolante         Position = "Volante"
	PositionMeia            Position = "Meia"
	PositionAtacante        Position = "Atacante"
)

// AllPositions is the canonical enumeration order. Validation reasons and
// slot reports iterate in this order so their output is deterministic.
var AllPositions = []Position{
	PositionGoleira,
	PositionZagueira,
	PositionLateralDireita,
	PositionLateralEsquerda,
	PositionVolante,
	PositionMeia,
	PositionAtacante,
}

// FormationQuota is the per-position roster requirement enforced in
// formation mode: a 4-3-3 with dedicated full-backs, eleven players total.
var FormationQuota = map[Position]int{
	PositionGoleira:         1,
	PositionZagueira:        2,
	PositionLateralDireita:  1,
	PositionLateralEsquerda: 1,
	PositionVolante:         1,
	PositionMeia:            2,
	PositionAtacante:        3,
}

// FormationSize is the exact roster size required in formation mode.
const FormationSize = 11

func (p Position) Valid() bool {
	_, ok := FormationQuota[p]
	return ok
}

func ParsePosition(raw string) (Position, error) {
	p := Position(raw)
	if !p.Valid() {
		return "", fmt.Errorf("unknown position %q", raw)
	}
	return p, nil
}
