package runner

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/fmiwrap/fmiwrap-go/internal/config"
	"github.com/fmiwrap/fmiwrap-go/internal/fmu"
	"github.com/fmiwrap/fmiwrap-go/pkg/fmi2"
	"github.com/fmiwrap/fmiwrap-go/pkg/fmi2/logging"
)

// Result holds the sampled outputs of a run. Times[0] is the start time,
// sampled after initialization; every later entry follows one DoStep.
type Result struct {
	Times  []float64            `json:"times"`
	Series map[string][]float64 `json:"series"`
	Final  map[string]any       `json:"final"`
}

// Option configures Run.
type Option func(*runOptions)

type runOptions struct {
	logger  logging.Logger
	fmiOpts []fmi2.Option
}

// WithLogger sets the logger for run progress and the unit's messages.
func WithLogger(l logging.Logger) Option {
	return func(o *runOptions) { o.logger = l }
}

// WithFMIOptions passes extra options to fmi2.Instantiate. They are applied
// after the logger, so a log sink given here wins.
func WithFMIOptions(opts ...fmi2.Option) Option {
	return func(o *runOptions) { o.fmiOpts = append(o.fmiOpts, opts...) }
}

// freeInstance releases the instance at the end of a run.
var freeInstance = (*fmi2.Instance).Free

type output struct {
	fmu.Variable
	series bool
}

// Run executes the co-simulation described by cfg on unit. The instance is
// always freed before Run returns. Cancelling ctx stops the loop between two
// steps. A failed teardown is logged and returned, joined with any earlier
// error.
func Run(ctx context.Context, unit *fmu.Unit, cfg *config.Config, opts ...Option) (res *Result, err error) {
	o := runOptions{logger: logging.New(nil)}
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	md := unit.Description

	starts, err := resolveStarts(md, cfg)
	if err != nil {
		return nil, err
	}
	outputs := make([]output, 0, len(cfg.Outputs))
	for _, name := range cfg.Outputs {
		v, err := md.Variable(name)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output{Variable: v, series: v.Kind() != fmu.KindString})
	}

	lib, err := unit.LibraryPath(true)
	if err != nil {
		return nil, err
	}
	resources, err := unit.ResourceLocation()
	if err != nil {
		return nil, err
	}

	logger := o.logger.With("instance", cfg.Instance)
	inst, err := fmi2.Instantiate(lib, fmi2.InstanceConfig{
		Name:             cfg.Instance,
		Type:             fmi2.CoSimulation,
		GUID:             md.GUID,
		ResourceLocation: resources,
		LoggingOn:        cfg.LoggingOn,
	}, append([]fmi2.Option{fmi2.WithLogger(logger)}, o.fmiOpts...)...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := freeInstance(inst); ferr != nil {
			logger.Error(ctx, "instance teardown failed", "error", ferr)
			res, err = nil, errors.Join(err, fmt.Errorf("runner: free instance: %w", ferr))
		}
	}()

	t := cfg.StartTime
	if len(cfg.DebugCategories) > 0 {
		status, err := inst.SetDebugLogging(cfg.LoggingOn, cfg.DebugCategories)
		if err := check("fmi2SetDebugLogging", t, status, err); err != nil {
			return nil, err
		}
	}

	status, err := inst.SetupExperiment(cfg.Tolerance > 0, cfg.Tolerance, cfg.StartTime, true, cfg.StopTime)
	if err := check("fmi2SetupExperiment", t, status, err); err != nil {
		return nil, err
	}
	status, err = inst.EnterInitializationMode()
	if err := check("fmi2EnterInitializationMode", t, status, err); err != nil {
		return nil, err
	}
	for _, s := range starts {
		status, err := setValue(inst, s.v, s.value)
		if err := check("set start value "+s.v.Name, t, status, err); err != nil {
			return nil, err
		}
	}
	status, err = inst.ExitInitializationMode()
	if err := check("fmi2ExitInitializationMode", t, status, err); err != nil {
		return nil, err
	}

	res = &Result{Series: make(map[string][]float64), Final: make(map[string]any)}
	if err := sample(inst, outputs, t, res); err != nil {
		return nil, err
	}

	steps := cfg.Steps()
	logger.Info(ctx, "simulation started", "start", cfg.StartTime, "stop", cfg.StopTime, "steps", steps)
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h := cfg.StepSize
		if next := cfg.StartTime + float64(i+1)*cfg.StepSize; next > cfg.StopTime {
			h = cfg.StopTime - t
		}
		status, err := inst.DoStep(t, h, true)
		if err := check("fmi2DoStep", t, status, err); err != nil {
			return nil, err
		}
		if status == fmi2.StatusWarning {
			logger.Warn(ctx, "step finished with warning", "time", t)
		}
		t = cfg.StartTime + float64(i+1)*cfg.StepSize
		if t > cfg.StopTime {
			t = cfg.StopTime
		}
		if err := sample(inst, outputs, t, res); err != nil {
			return nil, err
		}
	}

	status, err = inst.Terminate()
	if err := check("fmi2Terminate", t, status, err); err != nil {
		return nil, err
	}
	logger.Info(ctx, "simulation finished", "time", t)
	return res, nil
}

type start struct {
	v     fmu.Variable
	value any
}

// resolveStarts maps the configured start values to variables, in name order.
func resolveStarts(md *fmu.ModelDescription, cfg *config.Config) ([]start, error) {
	names := make([]string, 0, len(cfg.StartValues))
	for name := range cfg.StartValues {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]start, 0, len(names))
	for _, name := range names {
		v, err := md.Variable(name)
		if err != nil {
			return nil, fmt.Errorf("start_values: %w", err)
		}
		out = append(out, start{v: v, value: cfg.StartValues[name]})
	}
	return out, nil
}

func sample(inst *fmi2.Instance, outputs []output, t float64, res *Result) error {
	res.Times = append(res.Times, t)
	for _, out := range outputs {
		value, f, numeric, status, err := getValue(inst, out.Variable)
		if err := check("get "+out.Name, t, status, err); err != nil {
			return err
		}
		if numeric && out.series {
			res.Series[out.Name] = append(res.Series[out.Name], f)
		}
		res.Final[out.Name] = value
	}
	return nil
}
