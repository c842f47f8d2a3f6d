// Package weather holds the per-city, per-date risk table used to pick a
// travel date for a computed route. Like the graph, the table is populated
// once at startup and read-only afterwards.
package weather

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// RiskTable maps location id -> date -> risk value, and tracks the distinct
// sorted set of dates seen. Dates are opaque labels ordered as strings.
type RiskTable struct {
	risk  map[string]map[string]float64
	dates []string
}

func NewRiskTable() *RiskTable {
	return &RiskTable{risk: make(map[string]map[string]float64)}
}

// ParseRisk parses a raw risk value leniently: a direct numeric parse first,
// then a retry with everything but digits, '.' and '-' stripped (values like
// "4 (storm)" appear in source files), and 0.0 when nothing remains.
func ParseRisk(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	var b strings.Builder
	for _, ch := range raw {
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' {
			b.WriteRune(ch)
		}
	}
	if v, err := strconv.ParseFloat(b.String(), 64); err == nil {
		return v
	}
	return 0.0
}

// Add records one risk observation. Empty dates are stored but never listed,
// so they can not be selected as a travel date.
func (rt *RiskTable) Add(locationID, date, rawRisk string) {
	byDate, ok := rt.risk[locationID]
	if !ok {
		byDate = make(map[string]float64)
		rt.risk[locationID] = byDate
	}
	byDate[date] = ParseRisk(rawRisk)
	if date != "" {
		i := sort.SearchStrings(rt.dates, date)
		if i == len(rt.dates) || rt.dates[i] != date {
			rt.dates = append(rt.dates, "")
			copy(rt.dates[i+1:], rt.dates[i:])
			rt.dates[i] = date
		}
	}
}

// Dates returns all known dates in ascending order.
func (rt *RiskTable) Dates() []string {
	return rt.dates
}

// has reports whether an explicit entry exists for the location on the date.
func (rt *RiskTable) has(locationID, date string) bool {
	_, ok := rt.risk[locationID][date]
	return ok
}

// value returns the recorded risk, defaulting to 0.0 when absent. The default
// applies only to averaging; feasibility checks use has.
func (rt *RiskTable) value(locationID, date string) float64 {
	return rt.risk[locationID][date]
}

// EdgeRisk averages the two endpoints' risks on the date.
func (rt *RiskTable) EdgeRisk(locA, locB, date string) float64 {
	return (rt.value(locA, date) + rt.value(locB, date)) / 2.0
}

// BestDateForRoute scans dates in ascending order and returns the feasible
// date with the minimum summed edge risk over the route, ties going to the
// earliest date. A date is feasible only when every consecutive pair of stops
// has explicit entries for both endpoints; a single missing observation makes
// the whole route infeasible for that date. Routes with fewer than two stops,
// or routes with no feasible date, yield ok == false with risk 0.0.
func (rt *RiskTable) BestDateForRoute(route []string) (date string, risk float64, ok bool) {
	if len(route) < 2 {
		return "", 0.0, false
	}
	bestDate := ""
	bestRisk := math.Inf(1)
	for _, d := range rt.dates {
		feasible := true
		total := 0.0
		for i := 0; i < len(route)-1; i++ {
			a, b := route[i], route[i+1]
			if !rt.has(a, d) || !rt.has(b, d) {
				feasible = false
				break
			}
			total += rt.EdgeRisk(a, b, d)
		}
		if feasible && total < bestRisk {
			bestRisk = total
			bestDate = d
		}
	}
	if bestDate == "" {
		return "", 0.0, false
	}
	return bestDate, bestRisk, true
}
