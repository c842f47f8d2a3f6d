package preprocessing

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruthvikr01/Route-Navigator/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadCities(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cities.csv",
		"city_id,city,state,sea_level(in meters(m))\n"+
			"den,Denver,CO,1609.34\n"+
			"mia,Miami,FL,2\n"+
			",Nowhere,XX,0\n"+ // no id: skipped
			"flat,Flatville,KS,not-a-number\n") // malformed elevation -> 0

	cities, err := LoadCities(path)
	require.NoError(t, err)
	require.Len(t, cities, 3)

	assert.Equal(t, "den", cities[0].ID)
	assert.Equal(t, "Denver", cities[0].Name)
	assert.Equal(t, "CO", cities[0].State)
	require.NotNil(t, cities[0].Elevation)
	assert.InDelta(t, 1609.34, *cities[0].Elevation, 1e-9)

	require.NotNil(t, cities[2].Elevation)
	assert.Zero(t, *cities[2].Elevation)
}

func TestLoadCitiesAliasHeaders(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cities.csv",
		"id,name,state,elevation\n"+
			"den,Denver,CO,1609.34\n")

	cities, err := LoadCities(path)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "den", cities[0].ID)
	assert.Equal(t, "Denver", cities[0].Name)
	require.NotNil(t, cities[0].Elevation)
	assert.InDelta(t, 1609.34, *cities[0].Elevation, 1e-9)
}

func TestLoadCitiesNameFallsBackToID(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cities.csv",
		"city_id,state\n"+
			"den,CO\n")

	cities, err := LoadCities(path)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "den", cities[0].Name)
}

func TestLoadConnections(t *testing.T) {
	path := writeFile(t, t.TempDir(), "edges.csv",
		"src_id,dst_id,map_distance_miles\n"+
			"den,mia,2000\n"+
			"den,flat,550.5\n"+
			"den,,10\n"+ // missing endpoint: skipped
			"mia,flat,~1300 mi\n") // malformed: digits-and-dot strip

	conns, err := LoadConnections(path)
	require.NoError(t, err)
	require.Len(t, conns, 3)
	assert.Equal(t, models.ConnectionRecord{OriginID: "den", DestID: "mia", MapDistanceMiles: 2000}, conns[0])
	assert.InDelta(t, 550.5, conns[1].MapDistanceMiles, 1e-9)
	assert.InDelta(t, 1300, conns[2].MapDistanceMiles, 1e-9)
}

func TestLoadConnectionsAliasHeaders(t *testing.T) {
	path := writeFile(t, t.TempDir(), "edges.csv",
		"src,dst,distance\n"+
			"den,mia,2000\n")

	conns, err := LoadConnections(path)
	require.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, "den", conns[0].OriginID)
	assert.InDelta(t, 2000, conns[0].MapDistanceMiles, 1e-9)
}

func TestLoadWeatherRisks(t *testing.T) {
	path := writeFile(t, t.TempDir(), "weather_risk.csv",
		"city_id,date,risk\n"+
			"den,2024-01-01,4\n"+
			"mia,2024-01-01,2 (rain)\n"+
			",2024-01-01,9\n") // no id: skipped

	risks, err := LoadWeatherRisks(path)
	require.NoError(t, err)
	require.Len(t, risks, 2)
	assert.Equal(t, models.RiskRecord{LocationID: "den", Date: "2024-01-01", RiskRaw: "4"}, risks[0])
	assert.Equal(t, "2 (rain)", risks[1].RiskRaw)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadCities(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestBuildNetworkDropsUnknownIDs(t *testing.T) {
	cities := []models.Location{
		{ID: "a", Name: "A", Elevation: models.Float(0)},
		{ID: "b", Name: "B", Elevation: models.Float(0)},
	}
	conns := []models.ConnectionRecord{
		{OriginID: "a", DestID: "b", MapDistanceMiles: 5},
		{OriginID: "a", DestID: "ghost", MapDistanceMiles: 5},
	}
	risks := []models.RiskRecord{
		{LocationID: "a", Date: "day1", RiskRaw: "1"},
		{LocationID: "ghost", Date: "day1", RiskRaw: "9"},
	}

	g, rt := BuildNetwork(discardLogger(), cities, conns, risks)

	assert.Equal(t, 2, g.LocationCount())
	assert.Equal(t, 1, g.ConnectionCount())
	assert.InDelta(t, 5.0, g.CostBetween("a", "b"), 1e-9)
	assert.Equal(t, []string{"day1"}, rt.Dates())
	assert.InDelta(t, 0.5, rt.EdgeRisk("a", "b", "day1"), 1e-9)
}

func TestRoundTripQueryEquivalence(t *testing.T) {
	// ingesting identical records twice yields identical query results
	cities := []models.Location{
		{ID: "a", Name: "A", Elevation: models.Float(0)},
		{ID: "b", Name: "B", Elevation: models.Float(800)},
	}
	conns := []models.ConnectionRecord{{OriginID: "a", DestID: "b", MapDistanceMiles: 12}}
	risks := []models.RiskRecord{
		{LocationID: "a", Date: "day1", RiskRaw: "3"},
		{LocationID: "b", Date: "day1", RiskRaw: "5"},
	}

	g1, rt1 := BuildNetwork(discardLogger(), cities, conns, risks)
	g2, rt2 := BuildNetwork(discardLogger(), cities, conns, risks)

	assert.Equal(t, g1.CostBetween("a", "b"), g2.CostBetween("a", "b"))
	assert.Equal(t, g1.CostBetween("b", "a"), g2.CostBetween("b", "a"))
	d1, r1, ok1 := rt1.BestDateForRoute([]string{"a", "b"})
	d2, r2, ok2 := rt2.BestDateForRoute([]string{"a", "b"})
	assert.Equal(t, d1, d2)
	assert.Equal(t, r1, r2)
	assert.Equal(t, ok1, ok2)
}
