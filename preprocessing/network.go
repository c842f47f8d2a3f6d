package preprocessing

import (
	"log/slog"

	"github.com/Ruthvikr01/Route-Navigator/models"
	"github.com/Ruthvikr01/Route-Navigator/routing"
	"github.com/Ruthvikr01/Route-Navigator/weather"
)

// BuildNetwork assembles the immutable graph and risk table from ingested
// records. Connection and risk rows referencing unknown city ids are dropped
// and logged at warn level; everything else is fatal-free by construction.
func BuildNetwork(log *slog.Logger, cities []models.Location, conns []models.ConnectionRecord, risks []models.RiskRecord) (*routing.Graph, *weather.RiskTable) {
	g := routing.NewGraph()
	for _, c := range cities {
		g.AddLocation(c)
	}

	for _, c := range conns {
		if !g.HasLocation(c.OriginID) || !g.HasLocation(c.DestID) {
			log.Warn("dropping edge with unknown endpoint", "src", c.OriginID, "dst", c.DestID)
			continue
		}
		g.Connect(c.OriginID, c.DestID, c.MapDistanceMiles)
	}

	rt := weather.NewRiskTable()
	for _, r := range risks {
		if !g.HasLocation(r.LocationID) {
			log.Warn("dropping risk record for unknown city", "city", r.LocationID, "date", r.Date)
			continue
		}
		rt.Add(r.LocationID, r.Date, r.RiskRaw)
	}

	return g, rt
}
