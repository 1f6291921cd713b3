package airports

import (
	"encoding/json"

	"github.com/marthasimmons/airports-endpoint/src/internal/errors"
)

// Changes is a partial update keyed by JSON field name. Keys that are not
// Airport fields are ignored when applied.
type Changes map[string]json.RawMessage

// knownFields maps every JSON key of Airport to the field it sets.
var knownFields = map[string]func(a *Airport) interface{}{
	"icao":      func(a *Airport) interface{} { return &a.ICAO },
	"iata":      func(a *Airport) interface{} { return &a.IATA },
	"name":      func(a *Airport) interface{} { return &a.Name },
	"city":      func(a *Airport) interface{} { return &a.City },
	"state":     func(a *Airport) interface{} { return &a.State },
	"country":   func(a *Airport) interface{} { return &a.Country },
	"elevation": func(a *Airport) interface{} { return &a.Elevation },
	"lat":       func(a *Airport) interface{} { return &a.Lat },
	"lon":       func(a *Airport) interface{} { return &a.Lon },
	"tz":        func(a *Airport) interface{} { return &a.TZ },
}

// requiredFields may be changed but never emptied.
var requiredFields = []string{"icao", "name", "city"}

// Has reports whether the change set carries key.
func (c Changes) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// ICAO decodes the icao carried by the change set. ok is false when the
// change set does not touch icao.
func (c Changes) ICAO() (icao string, ok bool, err error) {
	raw, ok := c["icao"]
	if !ok {
		return "", false, nil
	}
	if err := json.Unmarshal(raw, &icao); err != nil {
		return "", true, errors.NewValidationError(MsgInvalidPayload, err)
	}
	return icao, true, nil
}

// ApplyTo merges the known keys of c into a. On error a may be partially
// modified, so callers apply to a copy.
func (c Changes) ApplyTo(a *Airport) error {
	for key, raw := range c {
		field, ok := knownFields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, field(a)); err != nil {
			return errors.NewValidationError(MsgInvalidPayload, err)
		}
	}

	for _, key := range requiredFields {
		if !c.Has(key) {
			continue
		}
		if *knownFields[key](a).(*string) == "" {
			return errors.NewValidationError(MsgRequiredFields, nil)
		}
	}
	return nil
}
