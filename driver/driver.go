// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package driver defines the narrow set of graphics
// interfaces the sea surface is drawn through.
// It covers static geometry upload, shader programs
// with named uniforms and tessellated patch drawing.
// Platform-specific implementations (see driver/gl)
// register themselves from init.
package driver

import (
	"errors"
	"strings"
	"sync"

	"github.com/gviegas/ocean"
)

// Driver is the interface that provides methods for
// loading and unloading an underlying implementation.
type Driver interface {
	// Open initializes the driver.
	// If it succeeds, further calls with the same receiver
	// have no effect and must return the same GPU instance.
	// Open must be called from the thread that owns the
	// graphics context.
	Open() (GPU, error)

	// Name returns the name of the driver.
	// It must not cause the driver to be opened.
	Name() string

	// Close deinitializes the driver.
	// Closing a driver that is not open has no effect.
	Close()
}

// ErrNotInstalled means that a platform-specific library
// required for the driver to work is not present in the
// system.
var ErrNotInstalled = errors.New("driver: missing required library")

// ErrNoDevice means that no suitable device could be
// found (e.g., no current context or no support for
// tessellation).
var ErrNoDevice = errors.New("driver: no suitable device found")

// ErrNoDeviceMemory means that device memory could not
// be allocated.
var ErrNoDeviceMemory = errors.New("driver: out of device memory")

// ErrFatal means that the driver is in an unrecoverable
// state. Upon encountering such an error, the application
// must destroy everything that it created using the
// driver's GPU and then call the Close method.
var ErrFatal = errors.New("driver: fatal error")

// ErrCompile means that a shader stage failed to compile.
var ErrCompile = errors.New("driver: shader compilation failed")

// ErrLink means that a program failed to link.
var ErrLink = errors.New("driver: program link failed")

var errNoDriver = errors.New("driver: driver not found")

// Drivers returns the registered Drivers.
func Drivers() []Driver {
	mu.Lock()
	defer mu.Unlock()
	drv := make([]Driver, len(drivers))
	copy(drv, drivers)
	return drv
}

// Register registers a Driver.
// Driver implementations are expected to call Register
// exactly once, from an init function.
// If a driver with the same name has already been
// registered, it will be replaced by drv.
func Register(drv Driver) {
	mu.Lock()
	defer mu.Unlock()
	for i := range drivers {
		if drivers[i].Name() == drv.Name() {
			drivers[i] = drv
			ocean.Logger().Warn("driver replaced", "name", drv.Name())
			return
		}
	}
	drivers = append(drivers, drv)
	ocean.Logger().Debug("driver registered", "name", drv.Name())
}

// Open opens the first registered driver whose name
// contains name, ignoring case.
// An empty name matches every driver.
// Drivers that fail to open are skipped; if none
// succeeds, the last error is returned.
func Open(name string) (Driver, GPU, error) {
	err := errNoDriver
	name = strings.ToLower(name)
	for _, drv := range Drivers() {
		if !strings.Contains(strings.ToLower(drv.Name()), name) {
			continue
		}
		var gpu GPU
		if gpu, err = drv.Open(); err != nil {
			ocean.Logger().Warn("driver failed to open", "name", drv.Name(), "err", err)
			continue
		}
		ocean.Logger().Info("driver opened", "name", drv.Name())
		return drv, gpu, nil
	}
	return nil, nil, err
}

var (
	mu      sync.Mutex
	drivers = make([]Driver, 0, 1)
)
