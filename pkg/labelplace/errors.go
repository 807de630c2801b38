package labelplace

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel all boundary validation errors unwrap to.
// Use errors.Is(err, labelplace.ErrInvalidInput) to distinguish caller
// mistakes from I/O or other failures.
var ErrInvalidInput = errors.New("invalid input")

// InvalidDimensionsError indicates non-positive chart dimensions.
type InvalidDimensionsError struct {
	Width, Height float64
}

func (e *InvalidDimensionsError) Error() string {
	return fmt.Sprintf("invalid chart dimensions: width=%g height=%g (both must be positive)",
		e.Width, e.Height)
}

func (e *InvalidDimensionsError) Unwrap() error { return ErrInvalidInput }

// InvalidBandHeightError indicates a non-positive band height parameter.
type InvalidBandHeightError struct {
	Name  string
	Value float64
}

func (e *InvalidBandHeightError) Error() string {
	return fmt.Sprintf("invalid band height: %s=%g (must be positive)", e.Name, e.Value)
}

func (e *InvalidBandHeightError) Unwrap() error { return ErrInvalidInput }

// InvalidPaddingError indicates a negative padding band count.
type InvalidPaddingError struct {
	PaddingBands int
}

func (e *InvalidPaddingError) Error() string {
	return fmt.Sprintf("invalid padding: paddingBands=%d (must be >= 0)", e.PaddingBands)
}

func (e *InvalidPaddingError) Unwrap() error { return ErrInvalidInput }

// MisalignedOccupancyError indicates bands and occupancy of differing length
// passed to the resolver.
type MisalignedOccupancyError struct {
	Bands, Occupancy int
}

func (e *MisalignedOccupancyError) Error() string {
	return fmt.Sprintf("occupancy misaligned with bands: %d bands, %d occupancy entries",
		e.Bands, e.Occupancy)
}

func (e *MisalignedOccupancyError) Unwrap() error { return ErrInvalidInput }

// EmptyBandsError indicates a resolve call with no bands to place into.
type EmptyBandsError struct{}

func (e *EmptyBandsError) Error() string {
	return "no bands supplied"
}

func (e *EmptyBandsError) Unwrap() error { return ErrInvalidInput }

// DuplicateIDError indicates two labels sharing an ID.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate label id: %q", e.ID)
}

func (e *DuplicateIDError) Unwrap() error { return ErrInvalidInput }

// NonContiguousBandsError indicates caller-supplied bands that do not tile
// the vertical extent (adjacent bands must share an edge).
type NonContiguousBandsError struct {
	Index          int
	Bottom, NextTop float64
}

func (e *NonContiguousBandsError) Error() string {
	return fmt.Sprintf("bands not contiguous at index %d: bottom=%g, next top=%g",
		e.Index, e.Bottom, e.NextTop)
}

func (e *NonContiguousBandsError) Unwrap() error { return ErrInvalidInput }

// UnknownModeError indicates an unrecognised placement mode, alignment, or
// sweep direction name in a strategy.
type UnknownModeError struct {
	Kind string
	Name string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Name)
}

func (e *UnknownModeError) Unwrap() error { return ErrInvalidInput }

// InvalidStrategyError indicates a strategy parameter outside its legal
// domain after defaults have been applied.
type InvalidStrategyError struct {
	Field  string
	Reason string
}

func (e *InvalidStrategyError) Error() string {
	return fmt.Sprintf("invalid strategy: %s: %s", e.Field, e.Reason)
}

func (e *InvalidStrategyError) Unwrap() error { return ErrInvalidInput }
