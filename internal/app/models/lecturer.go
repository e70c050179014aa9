package models

// Lecturer defines the lecturer document stored in the 'lecturers'
// collection. The identifier is assigned externally and used directly as
// the document key, not generated by the store.
type Lecturer struct {
	ID   string `bson:"_id" json:"lid" example:"L001"`
	Name string `bson:"name" json:"name" example:"Dr. Nora Quinn"`
	DID  string `bson:"did" json:"did" example:"D01"` // Department identifier
}
