package models

import "time"

// Jogadora is a published player profile, managed by admins and rendered
// on the public site. Unrelated to registration records: a registered
// athlete only gets a profile when the editorial team creates one or an
// admin promotes her account. UserID links the profile to that account
// when one exists.
type Jogadora struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Position  Position  `json:"posicao"`
	Age       int       `json:"idade"`
	Team      string    `json:"time,omitempty"`
	PhotoURL  string    `json:"foto,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"criadaEm"`
}
