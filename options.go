package glud

// DefaultFinalState is the name of the synthesized accepting state of grammar NFAs.
const DefaultFinalState = "qf"

// ReverseInitialState is the name of the fresh initial state introduced by Reverse.
const ReverseInitialState = "R"

type options struct {
	tracer     Tracer
	workLimit  int
	finalState string
}

// Option configures NFAFromGrammar, Determinize and Reverse.
type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		tracer:     nopTracer{},
		finalState: DefaultFinalState,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTracer Receive construction events. A nil tracer disables tracing.
func WithTracer(t Tracer) Option {
	return func(o *options) {
		if t == nil {
			t = nopTracer{}
		}
		o.tracer = t
	}
}

// WithWorkLimit Maximum number of composite states determinization may discover before giving up
// with ErrTooComplex. Zero or negative means no limit.
func WithWorkLimit(limit int) Option {
	return func(o *options) {
		o.workLimit = limit
	}
}

// WithFinalState Name of the synthesized final state added by NFAFromGrammar.
func WithFinalState(name string) Option {
	return func(o *options) {
		o.finalState = name
	}
}
