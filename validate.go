package swiftmt

import (
	"fmt"

	"go.uber.org/zap"
)

// Validator is implemented by any Body that carries SR2025 network-
// validation rules beyond what the field codec already enforces.
// Messages with no additional relation/business rules (the codec's
// per-field format/content checks already cover them) need not implement
// it; Validate treats a non-implementing Body as always rule-clean.
type Validator interface {
	Validate(cfg *RuleConfig) ValidationErrors
}

// Validate runs the network-validation layer (C7) against an already
// parsed Message.
func Validate(m *Message, opts ...Option) (ValidationErrors, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	mt := m.MessageType()

	var errs ValidationErrors
	if v, ok := m.Body.(Validator); ok {
		errs = v.Validate(o.config)
	}
	if o.config.Limits.MaxValidationErrors > 0 && len(errs) > o.config.Limits.MaxValidationErrors {
		errs = errs[:o.config.Limits.MaxValidationErrors]
	}
	if o.config.Limits.StopOnFirstError && len(errs) > 1 {
		errs = errs[:1]
	}

	outcome := "ok"
	if len(errs) > 0 {
		outcome = "rejected"
	}
	o.metrics.ValidationTotal.WithLabelValues(mt, outcome).Inc()
	for _, e := range errs {
		o.metrics.ValidationErrors.WithLabelValues(e.ID, e.Kind.String()).Inc()
	}
	if len(errs) > 0 {
		o.logger.Warn("validation rejected message",
			zap.String("message_type", mt), zap.Int("error_count", len(errs)))
	} else {
		o.logger.Debug("validation passed", zap.String("message_type", mt))
	}
	return errs, nil
}

// ParseAndValidate is a convenience wrapper combining Parse and Validate,
// matching the single-call shape most integrations want.
func ParseAndValidate(raw []byte, opts ...Option) (*Message, ValidationErrors, error) {
	m, err := Parse(raw, opts...)
	if err != nil {
		return nil, nil, err
	}
	errs, err := Validate(m, opts...)
	if err != nil {
		return m, nil, fmt.Errorf("swiftmt: validate: %w", err)
	}
	return m, errs, nil
}
