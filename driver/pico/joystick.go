//go:build tinygo

package pico

import (
	"machine"

	"joysnake/sensor"
)

// Joystick wiring.
const (
	PinStickX = machine.ADC0 // GP26
	PinStickY = machine.ADC1 // GP27
)

// Joystick reads the stick from the ADC. machine.ADC returns 16-bit values;
// they are reduced to the sensor's 14 bits.
type Joystick struct {
	x, y machine.ADC
}

// NewJoystick initialises the ADC and both stick channels.
func NewJoystick() (*Joystick, error) {
	machine.InitADC()
	j := &Joystick{
		x: machine.ADC{Pin: PinStickX},
		y: machine.ADC{Pin: PinStickY},
	}
	if err := j.x.Configure(machine.ADCConfig{}); err != nil {
		return nil, err
	}
	if err := j.y.Configure(machine.ADCConfig{}); err != nil {
		return nil, err
	}
	return j, nil
}

// Read implements sensor.Sensor.
func (j *Joystick) Read(ch sensor.Channel) (uint16, error) {
	switch ch {
	case sensor.ChannelY:
		return j.y.Get() >> 2, nil
	case sensor.ChannelX:
		return j.x.Get() >> 2, nil
	default:
		return 0, sensor.ErrUnavailable
	}
}
