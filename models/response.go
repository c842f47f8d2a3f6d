package models

// RouteSegment describes one traversed edge of a computed route.
type RouteSegment struct {
	SrcID    string  `json:"src_id"`
	DstID    string  `json:"dst_id"`
	SrcName  string  `json:"src_name"`
	DstName  string  `json:"dst_name"`
	Distance float64 `json:"real_dist"`
}

// RouteResult is the outcome of evaluating one algorithm (or the best of all)
// for a source/destination pair. OK is false when no route was found; in that
// case only AlgorithmLabel and Message are meaningful.
type RouteResult struct {
	OK             bool           `json:"ok"`
	Algorithm      string         `json:"algorithm,omitempty"` // winning token, set by best-of-all
	AlgorithmLabel string         `json:"algorithm_label,omitempty"`
	Message        string         `json:"message,omitempty"`
	RouteIDs       []string       `json:"route_ids,omitempty"`
	RouteNames     []string       `json:"route_names,omitempty"`
	Segments       []RouteSegment `json:"segments,omitempty"`
	TotalDistance  float64        `json:"total_distance"`
	GasUsed        float64        `json:"gas_used"`
	TotalRisk      float64        `json:"total_risk"`
	BestTravelDate string         `json:"best_travel_date,omitempty"`
	Score          float64        `json:"score"`
}

// CityInfo is the /api/cities list entry.
type CityInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// RouteResponse is the /api/route payload: the evaluation result plus the
// request's resolved endpoints.
type RouteResponse struct {
	RouteResult
	SrcID   string `json:"src_id"`
	DstID   string `json:"dst_id"`
	SrcName string `json:"src_name"`
	DstName string `json:"dst_name"`
}
