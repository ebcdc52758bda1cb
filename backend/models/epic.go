package models

import "gorm.io/gorm"

// Epic is a literary work available for quizzing. Epics are created and
// edited by the content pipeline; this service only reads them.
type Epic struct {
	gorm.Model
	Title     string `gorm:"not null"`
	Language  string
	// No column default here: the zero value must round-trip, otherwise an
	// unpublished epic could never be stored through this model.
	Available bool
}
