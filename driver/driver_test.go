// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gviegas/ocean/driver"
	"github.com/gviegas/ocean/driver/drivertest"
)

type failing struct{ name string }

func (d failing) Open() (driver.GPU, error) { return nil, driver.ErrNoDevice }
func (d failing) Name() string              { return d.name }
func (d failing) Close()                    {}

func TestDrivers(t *testing.T) {
	driver.Register(&drivertest.Driver{})
	driver.Register(&drivertest.Driver{})

	drivers := driver.Drivers()
	for i := range drivers {
		for j := range i {
			require.NotEqual(t, drivers[i].Name(), drivers[j].Name(), "Driver.Name is not unique")
		}
	}

	drivers[0] = nil
	require.NotNil(t, driver.Drivers()[0], "Drivers must return a copy")
}

func TestOpen(t *testing.T) {
	driver.Register(failing{"broken-gl"})
	driver.Register(&drivertest.Driver{})

	_, _, err := driver.Open("broken")
	require.True(t, errors.Is(err, driver.ErrNoDevice))

	_, _, err = driver.Open("vulkan")
	require.Error(t, err)

	drv, gpu, err := driver.Open("DriverTest")
	require.NoError(t, err)
	require.Equal(t, drivertest.Name, drv.Name())
	require.Same(t, drv, gpu.Driver())

	gpu2, err := drv.Open()
	require.NoError(t, err)
	require.Same(t, gpu, gpu2, "Open must return the same GPU")
	drv.Close()
}

func TestStageKind(t *testing.T) {
	for k, s := range map[driver.StageKind]string{
		driver.SVertex:      "vertex",
		driver.STessControl: "tess control",
		driver.STessEval:    "tess eval",
		driver.SFragment:    "fragment",
		-1:                  "unknown",
	} {
		require.Equal(t, s, k.String())
	}
}
