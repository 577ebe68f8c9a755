package sim

import "errors"

var (
	// ErrInvalidTemperature indicates a NaN temperature, or a non-positive
	// temperature passed at construction.
	ErrInvalidTemperature = errors.New("sim: temperature must be a positive number")

	// ErrInvalidBurst indicates a negative update count, or a per-tick
	// burst size below 1.
	ErrInvalidBurst = errors.New("sim: burst size must not be negative")

	// ErrUnknownInit indicates an initial configuration other than down, up
	// or random.
	ErrUnknownInit = errors.New("sim: unknown initial configuration")
)
