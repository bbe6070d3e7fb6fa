package swiftmt

import "go.uber.org/zap"

// Option configures Parse/Emit/Validate behavior. Functional options match
// the teacher's server.New(cfg, logger, ...opts) construction style.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	metrics *Metrics
	config  *RuleConfig
}

func defaultOptions() *options {
	return &options{logger: zap.NewNop(), metrics: nopMetrics(), config: Default()}
}

// WithLogger attaches a zap logger; Parse and Validate log at Debug for
// successful calls, and Parse/Validate/Emit log at Warn for failed or
// rejected ones. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics attaches Prometheus instrumentation. Nil is ignored.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithRuleConfig overrides the network-validation rule configuration.
func WithRuleConfig(c *RuleConfig) Option {
	return func(o *options) {
		if c != nil {
			o.config = c
		}
	}
}
