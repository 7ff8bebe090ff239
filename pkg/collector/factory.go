package collector

import (
	"github.com/neurotune/neurotune/pkg/collector/host"
	"github.com/neurotune/neurotune/pkg/collector/neuron"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateHostCollector() HostCollector
	CreateAcceleratorCollector() AcceleratorCollector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct{}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{}
}

// CreateHostCollector creates a procfs-backed host collector.
func (f *DefaultFactory) CreateHostCollector() HostCollector {
	return host.NewCollector()
}

// CreateAcceleratorCollector creates a neuron-ls backed accelerator collector.
func (f *DefaultFactory) CreateAcceleratorCollector() AcceleratorCollector {
	return neuron.NewCollector()
}
