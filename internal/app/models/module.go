package models

// Module defines the module model based on the 'module' table.
// Lecturer holds the identifier of the lecturer document teaching the
// module; the reference crosses into the document store and is not
// enforced by any database constraint.
type Module struct {
	MID      string `json:"mid" db:"mid" example:"M101"`
	Name     string `json:"name" db:"name" example:"Distributed Systems"`
	Lecturer string `json:"lecturer" db:"lecturer" example:"L001"`
}
