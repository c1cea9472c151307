package geofence_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/elpatrico11/incident-app-sub000/internal/geofence"
	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

const cityFeature = `{
  "type": "Feature",
  "properties": {"name": "Bielsko-Biała"},
  "geometry": {
    "type": "Polygon",
    "coordinates": [[
      [18.94, 49.75], [19.16, 49.75], [19.16, 49.88], [18.94, 49.88], [18.94, 49.75]
    ]]
  }
}`

const bareGeometry = `{
  "type": "Polygon",
  "coordinates": [[
    [19.00, 49.80], [19.10, 49.80], [19.10, 49.85], [19.00, 49.85], [19.00, 49.80]
  ]]
}`

// outer square with a square hole cut out of the middle
const withHole = `{
  "type": "Polygon",
  "coordinates": [
    [[0, 0], [10, 0], [10, 10], [0, 10], [0, 0]],
    [[4, 4], [6, 4], [6, 6], [4, 6], [4, 4]]
  ]
}`

func TestParseBoundary_Feature(t *testing.T) {
	t.Parallel()

	b, err := geofence.ParseBoundary([]byte(cityFeature))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b.Name() != "Bielsko-Biała" {
		t.Fatalf("name=%q", b.Name())
	}
	if !b.Contains(49.82, 19.05) {
		t.Fatal("city center should be inside")
	}
	if b.Contains(52.23, 21.01) {
		t.Fatal("Warsaw should be outside")
	}
	if b.Contains(0, 0) {
		t.Fatal("null island should be outside")
	}
}

func TestParseBoundary_BareGeometry(t *testing.T) {
	t.Parallel()

	b, err := geofence.ParseBoundary([]byte(bareGeometry))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b.Name() != "" {
		t.Fatalf("bare geometry has no name, got %q", b.Name())
	}
	if !b.Contains(49.82, 19.05) {
		t.Fatal("point should be inside")
	}
	if b.Contains(49.82, 19.20) {
		t.Fatal("point east of the box should be outside")
	}
}

func TestParseBoundary_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"wrong geometry type", `{"type":"Point","coordinates":[19.05,49.82]}`},
		{"degenerate ring", `{"type":"Polygon","coordinates":[[[0,0],[1,1]]]}`},
		{"empty coordinates", `{"type":"Polygon","coordinates":[]}`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := geofence.ParseBoundary([]byte(tc.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestContains_HoleSubtracts(t *testing.T) {
	t.Parallel()

	b, err := geofence.ParseBoundary([]byte(withHole))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !b.Contains(2, 2) {
		t.Fatal("point in the shell should be inside")
	}
	if b.Contains(5, 5) {
		t.Fatal("point in the hole should be outside")
	}
	if b.Contains(-1, 5) {
		t.Fatal("point outside the shell should be outside")
	}
}

func TestValidator(t *testing.T) {
	t.Parallel()

	b, err := geofence.ParseBoundary([]byte(cityFeature))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	v := geofence.NewValidator(b, slog.Default())

	if err := v.Validate(49.82, 19.05); err != nil {
		t.Fatalf("in-area point rejected: %v", err)
	}
	if err := v.Validate(52.23, 21.01); !errors.Is(err, e.ErrOutsideServiceArea) {
		t.Fatalf("err=%v, want ErrOutsideServiceArea", err)
	}
	// out-of-range coordinates fail before containment is consulted
	if err := v.Validate(91, 19.05); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("err=%v, want ErrInvalidCoordinates", err)
	}
	if err := v.Validate(49.82, 181); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("err=%v, want ErrInvalidCoordinates", err)
	}
}

// The interactive check and the submission-time guard share one
// Contains implementation, so a point approved by one is approved by
// the other.
func TestContains_ConsistentAcrossCalls(t *testing.T) {
	t.Parallel()

	b, err := geofence.ParseBoundary([]byte(cityFeature))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	v := geofence.NewValidator(b, slog.Default())

	points := []struct{ lat, lng float64 }{
		{49.82, 19.05},
		{49.76, 18.95},
		{49.87, 19.15},
		{50.06, 19.94},
		{0, 0},
	}
	for _, p := range points {
		direct := b.Contains(p.lat, p.lng)
		viaValidator := v.Contains(p.lat, p.lng)
		if direct != viaValidator {
			t.Errorf("point (%v,%v): Contains=%v but validator=%v", p.lat, p.lng, direct, viaValidator)
		}
	}
}
