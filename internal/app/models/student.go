package models

// Student defines the student model based on the 'student' table
type Student struct {
	SID  string `json:"sid" db:"sid" example:"G001"` // Student identifier, G followed by 3 digits, immutable
	Name string `json:"name" db:"name" example:"Alice Byrne"`
	Age  int    `json:"age" db:"age" example:"21"`
}
