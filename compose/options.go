package compose

import (
	"errors"

	metrics "github.com/armon/go-metrics"
	"github.com/hashicorp/go-hclog"
)

// getOpts - iterate the inbound Options and return a struct
func getOpts(opt ...Option) (*options, error) {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			if err := o(&opts); err != nil {
				return nil, err
			}
		}
	}
	return &opts, nil
}

// Option - how Options are passed as arguments
type Option func(*options) error

// options = how options are represented
type options struct {
	withLogger     hclog.Logger
	withStrict     bool
	withMetricSink metrics.MetricSink
}

func getDefaultOptions() options {
	return options{
		withLogger:     hclog.NewNullLogger(),
		withMetricSink: &metrics.BlackholeSink{},
	}
}

// WithLogger provides a logger that records, at trace level, each candidate
// dropped because it cannot be called
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("nil logger passed into option")
		}
		o.withLogger = logger
		return nil
	}
}

// WithStrict makes Compose fail on any candidate that cannot be called
// instead of dropping it
func WithStrict(strict bool) Option {
	return func(o *options) error {
		o.withStrict = strict
		return nil
	}
}

// WithMetricSink provides a sink receiving counts of kept and dropped
// candidates each time Compose runs
func WithMetricSink(sink metrics.MetricSink) Option {
	return func(o *options) error {
		if sink == nil {
			return errors.New("nil metric sink passed into option")
		}
		o.withMetricSink = sink
		return nil
	}
}
