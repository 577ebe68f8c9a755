package command

import "fmt"

// Sink is the command surface of the simulator façade.
type Sink interface {
	Randomise()
	Clear()
	Toggle(idx int) error
	Step()
	Burst(n int) error
	Sweep() error
	Tick() error
	Start()
	Stop()
	SetTemperature(t float64) error
	AdjustTemperature(delta float64) error
	IncreaseTemperature() error
	DecreaseTemperature() error
}

// Apply executes c against s.
func Apply(s Sink, c Command) error {
	switch c.Kind {
	case Randomise:
		s.Randomise()
	case Clear:
		s.Clear()
	case Toggle:
		return s.Toggle(c.Index)
	case Step:
		s.Step()
	case Burst:
		return s.Burst(c.Count)
	case Sweep:
		if c.Count < 0 {
			return fmt.Errorf("%w: sweep count %d is negative", ErrMissingArgument, c.Count)
		}
		for i := 0; i < c.Count; i++ {
			if err := s.Sweep(); err != nil {
				return err
			}
		}
	case Tick:
		return s.Tick()
	case Start:
		s.Start()
	case Stop:
		s.Stop()
	case SetTemperature:
		return s.SetTemperature(c.Value)
	case AdjustTemperature:
		return s.AdjustTemperature(c.Value)
	case IncreaseT:
		return s.IncreaseTemperature()
	case DecreaseT:
		return s.DecreaseTemperature()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, c.Kind)
	}
	return nil
}
