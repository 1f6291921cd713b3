// Package airports implements the airport directory: an ordered, in-memory
// collection of Airport records keyed by their unique icao code.
//
// The Directory supports paginated listing, creation, lookup, partial update
// and deletion. Lookups are linear scans by icao. Failures are *errors.Error values carrying one of the codes
// VALIDATION_ERROR, DUPLICATE_KEY, NOT_FOUND or INVALID_RANGE and the fixed
// message the API returns to callers.
//
// # Example Usage
//
//	seed, err := airports.LoadSeed("")
//	if err != nil {
//	    return err
//	}
//	dir, err := airports.NewDirectory(seed.Airports)
//	if err != nil {
//	    return err
//	}
//
//	page, err := dir.List(1, 10)
//	a, err := dir.Get("YJUK")
//	a, err = dir.Update("YJUK", airports.Changes{"name": json.RawMessage(`"Happy Fun Airport"`)})
//	err = dir.Delete("YJUK")
package airports
