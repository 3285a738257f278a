package fmi2

import "github.com/fmiwrap/fmiwrap-go/pkg/fmi2/logging"

// Option configures Bind and Instantiate.
type Option func(*options)

type options struct {
	logger       logging.Logger
	logSink      LogFunc
	stepFinished StepFinishedFunc
}

// WithLogger sets the logger used for wrapper diagnostics and, unless
// WithLogSink is given, for the unit's own messages.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLogSink receives the unit's log messages instead of the logger.
func WithLogSink(fn LogFunc) Option {
	return func(o *options) { o.logSink = fn }
}

// WithStepFinished receives the completion status of asynchronous DoStep
// calls.
func WithStepFinished(fn StepFinishedFunc) Option {
	return func(o *options) { o.stepFinished = fn }
}

func buildOptions(opts []Option) options {
	o := options{logger: logging.New(nil)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logSink == nil {
		o.logSink = logging.Sink(o.logger)
	}
	return o
}
