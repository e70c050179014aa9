package models

// Grade defines the grade model based on the 'grade' table
type Grade struct {
	SID   string `json:"sid" db:"sid" example:"G001"`
	MID   string `json:"mid" db:"mid" example:"M101"`
	Grade int    `json:"grade" db:"grade" example:"72"`
}

// GradeRow is one row of the joined grades listing. Module and grade can
// be absent because students without grades survive the LEFT JOIN.
type GradeRow struct {
	StudentName string  `json:"studentName"`
	ModuleName  *string `json:"moduleName"`
	Grade       *int    `json:"grade"`
}
