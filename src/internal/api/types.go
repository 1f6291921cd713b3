package api

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Airports int    `json:"airports"`
}

// DistanceResponse is returned by GET /airports/{icao}/distance/{other}.
type DistanceResponse struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	KM   float64 `json:"km"`
}

// DeletedMessage is the body of a successful delete.
const DeletedMessage = "airport has been deleted"
