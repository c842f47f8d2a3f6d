package models

// Location is a routable point in the network. Elevation is nullable: a nil
// value means the elevation is unknown and contributes no slope to edge costs.
type Location struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	State     string   `json:"state"`
	Elevation *float64 `json:"sea_level_m,omitempty"` // meters above sea level
}

// ConnectionRecord is a raw bidirectional-edge row as ingested, before the
// graph derives the two directional travel costs from it.
type ConnectionRecord struct {
	OriginID         string  `json:"src_id"`
	DestID           string  `json:"dst_id"`
	MapDistanceMiles float64 `json:"map_distance_miles"`
}

// RiskRecord is a raw weather-risk row. RiskRaw is kept as a string because
// source files carry values like "7", "3.5" or "4 (storm)"; the risk table
// owns the lenient parsing.
type RiskRecord struct {
	LocationID string `json:"city_id"`
	Date       string `json:"date"`
	RiskRaw    string `json:"risk"`
}

// Float returns a pointer to v, for building Locations with a known elevation.
func Float(v float64) *float64 {
	return &v
}
