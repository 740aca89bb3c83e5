package model

import "fmt"

// Location is a sensor placement on the pump/motor train.
type Location string

const (
	MotorDE  Location = "Motor DE"
	MotorNDE Location = "Motor NDE"
	PumpDE   Location = "Pump DE"
	PumpNDE  Location = "Pump NDE"
)

// Axis is the measurement direction at a location.
type Axis string

const (
	Horizontal Axis = "Horizontal"
	Vertical   Axis = "Vertical"
	Axial      Axis = "Axial"
)

var validLocations = map[Location]bool{
	MotorDE:  true,
	MotorNDE: true,
	PumpDE:   true,
	PumpNDE:  true,
}

var validAxes = map[Axis]bool{
	Horizontal: true,
	Vertical:   true,
	Axial:      true,
}

// Reading is one vibration velocity measurement (RMS, mm/s) taken at a
// location along one axis. Readings are created per inspection entry and
// never mutated.
type Reading struct {
	Location Location `json:"location"`
	Axis     Axis     `json:"axis"`
	Value    float64  `json:"value"`
}

// Point returns the short point label used in reports, e.g. "Motor DE H".
func (r Reading) Point() string {
	return string(r.Location) + " " + string(r.Axis)[:1]
}

// Validate checks location, axis and value range.
func (r Reading) Validate() error {
	if !validLocations[r.Location] {
		return fmt.Errorf("unknown location: %q", r.Location)
	}
	if !validAxes[r.Axis] {
		return fmt.Errorf("unknown axis: %q", r.Axis)
	}
	if r.Value < 0 {
		return fmt.Errorf("negative velocity at %s: %.2f", r.Point(), r.Value)
	}
	return nil
}
