package preprocessing

import "strings"

// fieldAliases is the ordered list of accepted CSV headers for one logical
// field. Datasets in the wild disagree on column names; pick takes the first
// alias with a non-empty trimmed value, so the priority order is explicit
// rather than scattered through the loaders.
type fieldAliases []string

func (f fieldAliases) pick(row map[string]string) string {
	for _, name := range f {
		if v, ok := row[name]; ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

var (
	cityIDAliases    = fieldAliases{"city_id", "id", "city"}
	cityNameAliases  = fieldAliases{"city", "name"}
	cityStateAliases = fieldAliases{"state"}
	cityElevAliases  = fieldAliases{"sea_level(in meters(m))", "sea", "elevation"}

	edgeSrcAliases  = fieldAliases{"src_id", "src", "from"}
	edgeDstAliases  = fieldAliases{"dst_id", "dst", "to"}
	edgeDistAliases = fieldAliases{"map_distance_miles", "distance", "dist"}

	riskCityAliases = fieldAliases{"city_id", "city", "id"}
	riskDateAliases = fieldAliases{"date"}
	riskAliases     = fieldAliases{"risk"}
)
