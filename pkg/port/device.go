package port

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Device owns a set of ports and tears them down together.
type Device struct {
	name string

	mu     sync.Mutex
	ports  map[uint]Port
	closed bool
}

// NewDevice creates an empty device.
func NewDevice(name string) *Device {
	return &Device{
		name:  name,
		ports: make(map[uint]Port),
	}
}

// Name returns the device name.
func (d *Device) Name() string {
	return d.name
}

// AddPort attaches p to the device. Port IDs must be unique.
func (d *Device) AddPort(p Port) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return fmt.Errorf("%w: %s", ErrDeviceClosed, d.name)
	}
	if _, exists := d.ports[p.ID()]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicatePort, p.ID())
	}
	d.ports[p.ID()] = p
	return nil
}

// Port returns the port with the given ID.
func (d *Device) Port(id uint) (Port, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.ports[id]
	return p, ok
}

// Ports returns the attached ports ordered by ID.
func (d *Device) Ports() []Port {
	d.mu.Lock()
	defer d.mu.Unlock()

	ports := make([]Port, 0, len(d.ports))
	for _, p := range d.ports {
		ports = append(ports, p)
	}
	slices.SortFunc(ports, func(a, b Port) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return ports
}

// Close closes every port and detaches them. It is safe to call Close
// multiple times.
func (d *Device) Close() error {
	d.mu.Lock()
	ports := d.ports
	d.ports = make(map[uint]Port)
	d.closed = true
	d.mu.Unlock()

	var errs []error
	for id, p := range ports {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close port %d: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
