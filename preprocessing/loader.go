// Package preprocessing ingests the tabular city, edge and weather-risk data
// the server is started with. Malformed numeric fields degrade to 0.0 and
// rows referencing unknown cities are dropped; ingestion never aborts over a
// bad row.
package preprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Ruthvikr01/Route-Navigator/models"
)

// readRows parses a headered CSV file into one map per row, keyed by column
// name. Short rows are tolerated; missing cells are simply absent.
func readRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read header of %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, cell := range record {
			if i < len(header) {
				row[header[i]] = cell
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseDistance parses a mileage cell, retrying with everything but digits
// and '.' stripped, and 0.0 when nothing parseable remains.
func parseDistance(raw string) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return v
	}
	var b strings.Builder
	for _, ch := range raw {
		if (ch >= '0' && ch <= '9') || ch == '.' {
			b.WriteRune(ch)
		}
	}
	if v, err := strconv.ParseFloat(b.String(), 64); err == nil {
		return v
	}
	return 0.0
}

// LoadCities reads the city file. Rows without any usable id are skipped;
// a missing name falls back to the id, a malformed elevation to 0.
func LoadCities(path string) ([]models.Location, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	var cities []models.Location
	for _, row := range rows {
		id := cityIDAliases.pick(row)
		if id == "" {
			continue
		}
		name := cityNameAliases.pick(row)
		if name == "" {
			name = id
		}
		elev := 0.0
		if raw := cityElevAliases.pick(row); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				elev = v
			}
		}
		cities = append(cities, models.Location{
			ID:        id,
			Name:      name,
			State:     cityStateAliases.pick(row),
			Elevation: models.Float(elev),
		})
	}
	return cities, nil
}

// LoadConnections reads the edge file. Rows missing either endpoint id are
// skipped; malformed distances degrade to 0.0.
func LoadConnections(path string) ([]models.ConnectionRecord, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	var conns []models.ConnectionRecord
	for _, row := range rows {
		src := edgeSrcAliases.pick(row)
		dst := edgeDstAliases.pick(row)
		if src == "" || dst == "" {
			continue
		}
		conns = append(conns, models.ConnectionRecord{
			OriginID:         src,
			DestID:           dst,
			MapDistanceMiles: parseDistance(edgeDistAliases.pick(row)),
		})
	}
	return conns, nil
}

// LoadWeatherRisks reads the risk file. The raw risk value stays a string;
// the risk table owns its lenient parsing.
func LoadWeatherRisks(path string) ([]models.RiskRecord, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	var risks []models.RiskRecord
	for _, row := range rows {
		id := riskCityAliases.pick(row)
		if id == "" {
			continue
		}
		risks = append(risks, models.RiskRecord{
			LocationID: id,
			Date:       riskDateAliases.pick(row),
			RiskRaw:    riskAliases.pick(row),
		})
	}
	return risks, nil
}
