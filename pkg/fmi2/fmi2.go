package fmi2

import (
	"context"

	"github.com/fmiwrap/fmiwrap-go/internal/native"
	"github.com/fmiwrap/fmiwrap-go/pkg/fmi2/logging"
)

// InstanceConfig holds the fmi2Instantiate arguments.
type InstanceConfig struct {
	Name             string
	Type             Type
	GUID             string
	ResourceLocation string
	Visible          bool
	LoggingOn        bool
}

// Bind opens the unit library at path and resolves its entry points.
func Bind(path string, opts ...Option) (*Binding, error) {
	o := buildOptions(opts)
	return bind(path, o)
}

func bind(path string, o options) (*Binding, error) {
	b, err := native.Bind(path, native.Callbacks{
		Log:          o.logSink,
		StepFinished: o.stepFinished,
		Error:        logging.Reporter(o.logger),
	})
	if err != nil {
		return nil, err
	}
	o.logger.Debug(context.Background(), "unit library bound",
		"path", path, "missing", len(b.Missing()))
	return b, nil
}

// Instantiate binds the library at path and creates one component from it.
// On failure nothing stays loaded.
func Instantiate(path string, cfg InstanceConfig, opts ...Option) (*Instance, error) {
	o := buildOptions(opts)
	b, err := bind(path, o)
	if err != nil {
		return nil, err
	}
	inst, err := b.Instantiate(cfg.Name, cfg.Type, cfg.GUID, cfg.ResourceLocation, cfg.Visible, cfg.LoggingOn)
	if err != nil {
		return nil, err
	}
	o.logger.Debug(context.Background(), "unit instantiated",
		"instance", cfg.Name, "type", cfg.Type.String())
	return inst, nil
}
