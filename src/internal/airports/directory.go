package airports

import (
	"fmt"
	"sync"

	"github.com/marthasimmons/airports-endpoint/src/internal/errors"
)

// Directory is the ordered, in-memory collection of airports. Order follows
// insertion; Delete shifts later records left. All methods are safe for
// concurrent use and each runs atomically.
type Directory struct {
	mu       sync.RWMutex
	airports []Airport
}

// NewDirectory builds a directory from seed records. Seed records are taken
// as-is apart from icao uniqueness, which must hold from the start.
func NewDirectory(seed []Airport) (*Directory, error) {
	d := &Directory{airports: make([]Airport, 0, len(seed))}
	for _, a := range seed {
		if d.indexOf(a.ICAO) != -1 {
			return nil, errors.NewSeedError(fmt.Sprintf("duplicate icao %q in seed", a.ICAO), nil)
		}
		d.airports = append(d.airports, a)
	}
	return d, nil
}

// Len returns the current number of records.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.airports)
}

// List returns the records in [(page-1)*pageSize, page*pageSize). It fails
// with an invalid range error when the upper bound passes the end of the
// directory or the lower bound is negative.
func (d *Directory) List(page, pageSize int) ([]Airport, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := len(d.airports)
	if pageSize < 0 {
		return nil, errors.NewInvalidRangeError(MsgInvalidSearchParams)
	}
	if pageSize == 0 {
		return []Airport{}, nil
	}
	// page*pageSize > n exactly when page > n/pageSize; checked first so the
	// products below cannot overflow.
	if page < 1 || page > n/pageSize {
		return nil, errors.NewInvalidRangeError(MsgInvalidSearchParams)
	}

	lo, hi := (page-1)*pageSize, page*pageSize
	out := make([]Airport, hi-lo)
	copy(out, d.airports[lo:hi])
	return out, nil
}

// Create appends a new record after checking required fields and icao
// uniqueness, in that order.
func (d *Directory) Create(a Airport) (Airport, error) {
	if err := a.Validate(); err != nil {
		return Airport{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.indexOf(a.ICAO) != -1 {
		return Airport{}, errors.NewDuplicateKeyError(MsgUniqueICAO)
	}
	d.airports = append(d.airports, a)
	return a, nil
}

// Get returns the record whose icao matches exactly.
func (d *Directory) Get(icao string) (Airport, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i := d.indexOf(icao)
	if i == -1 {
		return Airport{}, errors.NewNotFoundError(MsgInvalidICAO)
	}
	return d.airports[i], nil
}

// Update merges changes into the record identified by icao. Moving the record
// onto an icao owned by another record is checked before anything else is
// applied and fails with the record untouched. Only known fields are applied.
func (d *Directory) Update(icao string, changes Changes) (Airport, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(icao)
	if i == -1 {
		return Airport{}, errors.NewNotFoundError(MsgInvalidICAO)
	}

	if newICAO, ok, err := changes.ICAO(); err != nil {
		return Airport{}, err
	} else if ok {
		if j := d.indexOf(newICAO); j != -1 && j != i {
			return Airport{}, errors.NewDuplicateKeyError(MsgUniqueICAO)
		}
	}

	updated := d.airports[i]
	if err := changes.ApplyTo(&updated); err != nil {
		return Airport{}, err
	}

	d.airports[i] = updated
	return updated, nil
}

// Delete removes the record identified by icao.
func (d *Directory) Delete(icao string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.indexOf(icao)
	if i == -1 {
		return errors.NewNotFoundError(MsgInvalidICAO)
	}
	d.airports = append(d.airports[:i], d.airports[i+1:]...)
	return nil
}

// indexOf is a linear scan for the first exact match; callers hold d.mu.
func (d *Directory) indexOf(icao string) int {
	for i := range d.airports {
		if d.airports[i].ICAO == icao {
			return i
		}
	}
	return -1
}
