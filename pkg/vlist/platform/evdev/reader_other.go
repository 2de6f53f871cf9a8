//go:build !linux

package evdev

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/vlist/pkg/vlist/input"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("evdev input is only available on linux")

// Reader is unavailable on this platform.
type Reader struct{}

func Open(path string) (*Reader, error) {
	return nil, ErrUnsupported
}

func (r *Reader) Run(ctx context.Context, events chan<- input.ButtonEvent) error {
	return ErrUnsupported
}

func (r *Reader) Close() error {
	return nil
}
