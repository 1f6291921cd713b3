package airports

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/marthasimmons/airports-endpoint/src/internal/errors"
)

// Point returns the airport position in orb's lon/lat order.
func (a Airport) Point() orb.Point {
	return orb.Point{a.Lon, a.Lat}
}

// Distance returns the great-circle distance in kilometres between two
// airports in the directory.
func (d *Directory) Distance(from, to string) (float64, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, j := d.indexOf(from), d.indexOf(to)
	if i == -1 || j == -1 {
		return 0, errors.NewNotFoundError(MsgInvalidICAO)
	}
	return geo.DistanceHaversine(d.airports[i].Point(), d.airports[j].Point()) / 1000, nil
}
