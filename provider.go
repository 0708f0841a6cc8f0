package imdraw

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// HalProvider is implemented by hosts that share their HAL device, such as
// the gogpu app's GPU context provider.
type HalProvider interface {
	HalDevice() any
	HalQueue() any
}

// DeviceFromProvider extracts the HAL device and queue from a host provider.
// The provider must implement HalProvider with values of type hal.Device
// and hal.Queue.
func DeviceFromProvider(provider any) (hal.Device, hal.Queue, error) {
	hp, ok := provider.(HalProvider)
	if !ok {
		return nil, nil, fmt.Errorf("imdraw: provider does not expose HAL types: %w", ErrNilDevice)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("imdraw: provider HalDevice is not hal.Device: %w", ErrNilDevice)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("imdraw: provider HalQueue is not hal.Queue: %w", ErrNilDevice)
	}
	return device, queue, nil
}
