//go:build tinygo

// Command joysnake-pico is the firmware image for the RP2040 board.
package main

import (
	"context"
	"machine"
	"time"

	"joysnake/driver/pico"
	"joysnake/game"
	"joysnake/lcd"
	"joysnake/task"
)

func main() {
	display, err := pico.NewDisplay()
	if err != nil {
		println("display init:", err.Error())
		failLoop()
	}
	gate := lcd.NewGate(display)

	stick, err := pico.NewJoystick()
	if err != nil {
		gate.Display(0, "joystick init failed")
		failLoop()
	}

	gate.Display(0, "joysnake")
	time.Sleep(time.Second)

	runner := task.NewRunner(task.Config{
		Engine: game.NewEngine(nil),
		Gate:   gate,
		Sensor: stick,
		OnFault: func(err error) {
			gate.Clear()
			gate.Display(0, "fault")
		},
	})
	if err := runner.Run(context.Background()); err != nil {
		println(err.Error())
	}
	failLoop()
}

// failLoop signals a dead board on the LED.
func failLoop() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(100 * time.Millisecond)
		led.High()
		time.Sleep(100 * time.Millisecond)
	}
}
