package geofence

import (
	"fmt"
	"log/slog"

	"github.com/elpatrico11/incident-app-sub000/pkg/e"
)

// Validator answers whether submitted coordinates fall inside the
// serviceable area. It is instantiated once with a loaded boundary and
// used by both the interactive location check and the persistence-side
// guard on create/edit.
type Validator struct {
	boundary *Boundary
	logger   *slog.Logger
}

func NewValidator(boundary *Boundary, logger *slog.Logger) *Validator {
	return &Validator{boundary: boundary, logger: logger}
}

func (v *Validator) Contains(lat, lng float64) bool {
	return v.boundary.Contains(lat, lng)
}

// Validate returns nil when the point is serviceable,
// e.ErrInvalidCoordinates for out-of-range input and
// e.ErrOutsideServiceArea otherwise.
func (v *Validator) Validate(lat, lng float64) error {
	const op = "geofence.Validator.Validate"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if !v.boundary.Contains(lat, lng) {
		v.logger.Debug("point rejected by geofence",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
			slog.String("boundary", v.boundary.Name()),
		)
		return fmt.Errorf("%s: %w", op, e.ErrOutsideServiceArea)
	}
	return nil
}
