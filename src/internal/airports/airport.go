package airports

import (
	"github.com/go-playground/validator/v10"

	"github.com/marthasimmons/airports-endpoint/src/internal/errors"
)

// Fixed messages returned to API callers for each failure kind.
const (
	MsgInvalidSearchParams = "invalid search params"
	MsgRequiredFields      = "airport must have icao, name and city"
	MsgUniqueICAO          = "airport must have unique icao"
	MsgInvalidICAO         = "invalid icao"
	MsgInvalidPayload      = "invalid request payload"
)

// Airport is a single directory record. Every field is always serialized so a
// stored record reads back exactly as it was written.
type Airport struct {
	ICAO      string  `json:"icao" yaml:"icao" validate:"required"`
	IATA      string  `json:"iata" yaml:"iata"`
	Name      string  `json:"name" yaml:"name" validate:"required"`
	City      string  `json:"city" yaml:"city" validate:"required"`
	State     string  `json:"state" yaml:"state"`
	Country   string  `json:"country" yaml:"country"`
	Elevation float64 `json:"elevation" yaml:"elevation"`
	Lat       float64 `json:"lat" yaml:"lat"`
	Lon       float64 `json:"lon" yaml:"lon"`
	TZ        string  `json:"tz" yaml:"tz"`
}

var validate = validator.New()

// Validate checks the fields a record needs before it is accepted by Create.
func (a Airport) Validate() error {
	if err := validate.Struct(a); err != nil {
		return errors.NewValidationError(MsgRequiredFields, err)
	}
	return nil
}
