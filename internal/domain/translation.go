package domain

import "time"

// Direction identifies a translation language pair.
type Direction string

const (
	DirectionEnToFr Direction = "en_to_fr"
	DirectionFrToEn Direction = "fr_to_en"
)

// Valid reports whether the direction is one the service supports.
func (d Direction) Valid() bool {
	return d == DirectionEnToFr || d == DirectionFrToEn
}

// Translation is the audit record written after a successful translation.
type Translation struct {
	ID             int64
	Text           string
	TranslatedText string
	Direction      Direction
	CreatedAt      time.Time
}
