// Package evdev reads key presses straight from a Linux input device, for
// devices that run without a window system. Events are translated to the
// virtual buttons the list demo and the input package understand.
package evdev
