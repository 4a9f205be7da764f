package compose

import (
	"errors"
	"fmt"
	"reflect"

	metrics "github.com/armon/go-metrics"
	"github.com/hashicorp/errwrap"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// ErrNotCallable is wrapped by the errors a strict Composer reports for
// candidates that are not non-nil functions.
var ErrNotCallable = errors.New("candidate is not a function")

// defaultComposer is a zero Composer: lenient, with no logging or metrics.
var defaultComposer Composer

// Identity is the composite of zero functions. It returns its first argument,
// or nil when called without any.
func Identity(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// Any composes candidates from right to left, silently dropping every
// candidate that is not a non-nil function.
//
// With no function left Any returns Identity, and with exactly one it returns
// that function unchanged. Otherwise the result is a function whose
// parameters are those of the rightmost function and whose results are those
// of the leftmost one, so callers assert it to the type they expect:
//
//	inc := func(n int) int { return n + 1 }
//	double := func(n int) int { return n * 2 }
//	fn := compose.Any(double, nil, inc, 42).(func(int) int)
//	fn(3) // 8
//
// Every function but the rightmost is called with exactly one argument, the
// first result of the function to its right, except that a function taking no
// parameters is called with none. A mismatch between adjacent
// functions panics when the composite is called.
func Any(candidates ...any) any {
	// The default composer is lenient and cannot fail.
	fn, _ := defaultComposer.Compose(candidates...)
	return fn
}

// Composer composes untyped candidates according to its options. It is
// immutable and safe for concurrent use. The zero value is a lenient Composer
// that neither logs nor emits metrics.
type Composer struct {
	logger hclog.Logger
	strict bool
	sink   metrics.MetricSink
}

// NewComposer returns a Composer.
//
// Supported options: WithLogger, WithStrict, WithMetricSink
func NewComposer(opt ...Option) (*Composer, error) {
	opts, err := getOpts(opt...)
	if err != nil {
		return nil, fmt.Errorf("error reading options in NewComposer: %w", err)
	}
	return &Composer{
		logger: opts.withLogger,
		strict: opts.withStrict,
		sink:   opts.withMetricSink,
	}, nil
}

// Compose behaves like Any. A strict Composer instead returns an error naming
// every candidate that is not a function, and no composite.
func (c *Composer) Compose(candidates ...any) (any, error) {
	var merr *multierror.Error
	fns := make([]reflect.Value, 0, len(candidates))
	for i, candidate := range candidates {
		v := reflect.ValueOf(candidate)
		if v.Kind() == reflect.Func && !v.IsNil() {
			fns = append(fns, v)
			continue
		}
		if c.strict {
			merr = multierror.Append(merr, multierror.Prefix(fmt.Errorf("%w: got %T", ErrNotCallable, candidate), fmt.Sprintf("candidates.%d:", i)))
			continue
		}
		c.getLogger().Trace("dropping candidate that is not a function", "index", i, "type", fmt.Sprintf("%T", candidate))
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, errwrap.Wrapf("error composing candidates: {{err}}", err)
	}

	sink := c.getSink()
	sink.IncrCounter([]string{"compose", "candidates", "kept"}, float32(len(fns)))
	sink.IncrCounter([]string{"compose", "candidates", "dropped"}, float32(len(candidates)-len(fns)))

	switch len(fns) {
	case 0:
		return Identity, nil
	case 1:
		return fns[0].Interface(), nil
	}
	return composite(fns[len(fns)-1], fns[:len(fns)-1]).Interface(), nil
}

func (c *Composer) getLogger() hclog.Logger {
	if c.logger == nil {
		return getDefaultOptions().withLogger
	}
	return c.logger
}

func (c *Composer) getSink() metrics.MetricSink {
	if c.sink == nil {
		return getDefaultOptions().withMetricSink
	}
	return c.sink
}

// composite builds a function taking last's parameters and returning the
// results of rest[0].
func composite(last reflect.Value, rest []reflect.Value) reflect.Value {
	lastType, firstType := last.Type(), rest[0].Type()

	in := make([]reflect.Type, lastType.NumIn())
	for i := range in {
		in[i] = lastType.In(i)
	}
	out := make([]reflect.Type, firstType.NumOut())
	for i := range out {
		out[i] = firstType.Out(i)
	}

	variadic := lastType.IsVariadic()
	return reflect.MakeFunc(reflect.FuncOf(in, out, variadic), func(args []reflect.Value) []reflect.Value {
		var results []reflect.Value
		if variadic {
			results = last.CallSlice(args)
		} else {
			results = last.Call(args)
		}
		for i := len(rest) - 1; i >= 0; i-- {
			results = rest[i].Call(stageArgs(results, rest[i].Type()))
		}
		return results
	})
}

// stageArgs picks the arguments handed to a stage from the results of the
// stage before it: none for a stage without parameters, otherwise one.
func stageArgs(results []reflect.Value, stage reflect.Type) []reflect.Value {
	if stage.NumIn() == 0 {
		return nil
	}
	param := stage.In(0)
	if stage.IsVariadic() && stage.NumIn() == 1 {
		param = param.Elem()
	}

	if len(results) == 0 {
		return []reflect.Value{reflect.Zero(param)}
	}
	v := results[0]
	if v.Type().AssignableTo(param) || v.Kind() != reflect.Interface {
		return []reflect.Value{v}
	}
	// Unbox values that went through an interface typed result.
	if v.IsNil() {
		return []reflect.Value{reflect.Zero(param)}
	}
	return []reflect.Value{v.Elem()}
}
