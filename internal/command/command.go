// Package command maps host input onto simulator operations and runs
// scripted command sequences.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand  = errors.New("command: unknown command")
	ErrMissingArgument = errors.New("command: missing or invalid argument")
)

type Kind string

const (
	Randomise         Kind = "randomise"
	Clear             Kind = "clear"
	Toggle            Kind = "toggle"
	Step              Kind = "step"
	Burst             Kind = "burst"
	Sweep             Kind = "sweep"
	Tick              Kind = "tick"
	Start             Kind = "start"
	Stop              Kind = "stop"
	SetTemperature    Kind = "set_temperature"
	AdjustTemperature Kind = "adjust_temperature"
	IncreaseT         Kind = "+t"
	DecreaseT         Kind = "-t"
)

var aliases = map[string]Kind{
	"random":    Randomise,
	"randomize": Randomise,
	"reset":     Clear,
	"temp":      SetTemperature,
	"adjust":    AdjustTemperature,
}

// Command is a single host request. Index is used by Toggle, Count by Burst
// and Sweep, Value by the temperature commands.
type Command struct {
	Kind  Kind
	Index int
	Count int
	Value float64
}

func (c Command) String() string {
	switch c.Kind {
	case Toggle:
		return fmt.Sprintf("%s %d", c.Kind, c.Index)
	case Burst, Sweep:
		return fmt.Sprintf("%s %d", c.Kind, c.Count)
	case SetTemperature, AdjustTemperature:
		return fmt.Sprintf("%s %g", c.Kind, c.Value)
	}
	return string(c.Kind)
}

// Parse reads a command such as "burst 1000" or "temp 2.1". Sweep takes an
// optional count that defaults to 1.
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	kind := Kind(fields[0])
	if k, ok := aliases[fields[0]]; ok {
		kind = k
	}
	args := fields[1:]
	cmd := Command{Kind: kind}

	switch kind {
	case Randomise, Clear, Step, Tick, Start, Stop, IncreaseT, DecreaseT:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrMissingArgument, kind)
		}
	case Toggle:
		n, err := intArg(kind, args, false)
		if err != nil {
			return Command{}, err
		}
		cmd.Index = n
	case Burst, Sweep:
		n, err := intArg(kind, args, kind == Sweep)
		if err != nil {
			return Command{}, err
		}
		if n < 0 {
			return Command{}, fmt.Errorf("%w: %s count %d is negative", ErrMissingArgument, kind, n)
		}
		cmd.Count = n
	case SetTemperature, AdjustTemperature:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: %s needs one number", ErrMissingArgument, kind)
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %s %q", ErrMissingArgument, kind, args[0])
		}
		cmd.Value = v
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	return cmd, nil
}

func intArg(kind Kind, args []string, optional bool) (int, error) {
	if len(args) == 0 && optional {
		return 1, nil
	}
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s needs one integer", ErrMissingArgument, kind)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMissingArgument, kind, args[0])
	}
	return n, nil
}
