package airly

import "time"

// Known index type names accepted by the API.
const (
	IndexAirlyCAQI = "AIRLY_CAQI"
	IndexCAQI      = "CAQI"
	IndexPijp      = "PIJP"
)

// Location is a coordinate pair as reported by the API for an installation.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address is the postal address an installation is registered under.
// The display fields are preformatted lines for presentation.
type Address struct {
	Country         string  `json:"country"`
	City            string  `json:"city"`
	Street          string  `json:"street"`
	Number          string  `json:"number"`
	DisplayAddress1 *string `json:"displayAddress1,omitempty"`
	DisplayAddress2 *string `json:"displayAddress2,omitempty"`
}

// Sponsor describes the entity funding an installation.
type Sponsor struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// Installation is a registered air-quality monitoring station.
type Installation struct {
	ID       int      `json:"id"`
	Location Location `json:"location"`
	Address  Address  `json:"address"`
	// Elevation over sea level in meters.
	Elevation float64 `json:"elevation"`
	// Airly marks first-party sensors as opposed to integrated
	// third-party stations.
	Airly   bool    `json:"airly"`
	Sponsor Sponsor `json:"sponsor"`
}

// Value is a single raw measurement, such as a pollutant concentration or a
// weather reading.
type Value struct {
	Name  *string  `json:"name,omitempty"`
	Value *float64 `json:"value,omitempty"`
}

// Index is an air-quality score computed from raw values per a named
// standard. Description and advice are returned in the language requested,
// English by default.
type Index struct {
	Name        *string  `json:"name,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Level       *string  `json:"level,omitempty"`
	Description *string  `json:"description,omitempty"`
	Advice      *string  `json:"advice,omitempty"`
	// Color representing this index level as a hexadecimal css-style triplet.
	Color *string `json:"color,omitempty"`
}

// Standard compares a measured pollutant against a regulatory limit, with
// the measurement expressed as a percentage of that limit.
type Standard struct {
	Name      *string  `json:"name,omitempty"`
	Pollutant *string  `json:"pollutant,omitempty"`
	Limit     *float64 `json:"limit,omitempty"`
	Percent   *float64 `json:"percent,omitempty"`
}

// AveragedValues bundles measurements averaged over one time window. The
// window is [FromDateTime, TillDateTime), always UTC. Which measurement
// types appear in Values depends on the capabilities of the queried
// installation.
type AveragedValues struct {
	FromDateTime *time.Time `json:"fromDateTime,omitempty"`
	TillDateTime *time.Time `json:"tillDateTime,omitempty"`
	Values       []Value    `json:"values"`
	Indexes      []Index    `json:"indexes"`
	Standards    []Standard `json:"standards"`
}

// Measurements is the full measurement bundle for a place: the current
// reading plus past and forecast windows in chronological order.
type Measurements struct {
	Current  *AveragedValues  `json:"current,omitempty"`
	History  []AveragedValues `json:"history"`
	Forecast []AveragedValues `json:"forecast"`
}

// IndexLevel describes one band of an index scale.
type IndexLevel struct {
	MinValue *int `json:"minValue,omitempty"`
	MaxValue *int `json:"maxValue,omitempty"`
	// Value is the printable range for this level, e.g. "0-25".
	Value       *string `json:"value,omitempty"`
	Level       *string `json:"level,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// IndexType identifies an air-quality index. The same shape serves both
// directions: as a request parameter selecting the index to compute, where
// only the name matters, and as a metadata lookup result.
type IndexType struct {
	Name  *string     `json:"name,omitempty"`
	Level *IndexLevel `json:"level,omitempty"`
}

// NewIndexType returns an IndexType carrying the given name, ready for use
// as a request parameter.
func NewIndexType(name string) IndexType {
	return IndexType{Name: &name}
}

// MeasurementType is metadata describing one measurable quantity. Name and
// label are translated according to the language requested.
type MeasurementType struct {
	Name  *string `json:"name,omitempty"`
	Label *string `json:"label,omitempty"`
	Unit  *string `json:"unit,omitempty"`
}
