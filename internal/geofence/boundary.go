package geofence

import (
	"encoding/json"
	"fmt"

	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

// Boundary is the service-area polygon. The first ring is the outer
// shell, any further rings are holes. It is read-only after parsing.
type Boundary struct {
	name  string
	rings [][]vertex
}

type vertex struct {
	lat float64
	lng float64
}

type geoJSONGeometry struct {
	Type        string           `json:"type"`
	Coordinates [][][2]float64   `json:"coordinates"` // GeoJSON order: [lng, lat]
}

type geoJSONFeature struct {
	Type       string           `json:"type"`
	Properties map[string]any   `json:"properties"`
	Geometry   *geoJSONGeometry `json:"geometry"`
}

// ParseBoundary accepts either a bare GeoJSON Polygon geometry or a
// Feature wrapping one.
func ParseBoundary(data []byte) (*Boundary, error) {
	const op = "geofence.ParseBoundary"

	var feature geoJSONFeature
	if err := json.Unmarshal(data, &feature); err != nil {
		return nil, e.Wrap(op, err)
	}

	geom := feature.Geometry
	if feature.Type != "Feature" {
		var g geoJSONGeometry
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, e.Wrap(op, err)
		}
		geom = &g
	}
	if geom == nil || geom.Type != "Polygon" {
		return nil, fmt.Errorf("%s: expected Polygon geometry: %w", op, e.ErrInvalidInput)
	}
	if len(geom.Coordinates) == 0 || len(geom.Coordinates[0]) < 3 {
		return nil, fmt.Errorf("%s: outer ring needs at least 3 points: %w", op, e.ErrInvalidInput)
	}

	b := &Boundary{}
	if feature.Properties != nil {
		if n, ok := feature.Properties["name"].(string); ok {
			b.name = n
		}
	}
	for _, ring := range geom.Coordinates {
		vs := make([]vertex, 0, len(ring))
		for _, c := range ring {
			vs = append(vs, vertex{lat: c[1], lng: c[0]})
		}
		b.rings = append(b.rings, vs)
	}
	return b, nil
}

func (b *Boundary) Name() string { return b.name }

// Contains reports whether the point falls inside the service area.
// Even-odd ray casting over every ring, so holes subtract from the
// outer shell. The same implementation backs both the interactive
// check and the submission-time check, keeping edge behavior
// consistent between them.
func (b *Boundary) Contains(lat, lng float64) bool {
	inside := false
	for _, ring := range b.rings {
		if rayCast(ring, lat, lng) {
			inside = !inside
		}
	}
	return inside
}

func rayCast(ring []vertex, lat, lng float64) bool {
	hit := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := ring[i], ring[j]
		if (vi.lat > lat) != (vj.lat > lat) &&
			lng < (vj.lng-vi.lng)*(lat-vi.lat)/(vj.lat-vi.lat)+vi.lng {
			hit = !hit
		}
	}
	return hit
}
