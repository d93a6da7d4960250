package models

import (
	"fmt"
	"slices"
)

// OperationType identifies the kind of processing applied to a signal
type OperationType string

const (
	OperationLowPass  OperationType = "low_pass"
	OperationHighPass OperationType = "high_pass"
	OperationBandPass OperationType = "band_pass"
	OperationGain     OperationType = "gain"
)

// OperationTypes lists every supported operation kind
var OperationTypes = []OperationType{
	OperationLowPass,
	OperationHighPass,
	OperationBandPass,
	OperationGain,
}

// Valid reports whether t is a known operation kind
func (t OperationType) Valid() bool {
	return slices.Contains(OperationTypes, t)
}

const (
	// DefaultFilterOrder is used when a filter operation omits Order
	DefaultFilterOrder = 2
	// MaxFilterOrder bounds the accepted filter order
	MaxFilterOrder = 8
)

// ProcessingParams is the flat interchange shape of a processing operation.
// Which optional fields are meaningful depends on Operation; frequencies are in Hz.
type ProcessingParams struct {
	Operation       OperationType `json:"operation" enum:"low_pass,high_pass,band_pass,gain" required:"true" doc:"Processing operation kind"`
	CutoffFrequency *float64      `json:"cutoff_frequency,omitempty" doc:"Cutoff frequency in Hz for low/high pass filters"`
	LowCutoff       *float64      `json:"low_cutoff,omitempty" doc:"Lower band edge in Hz for band pass filters"`
	HighCutoff      *float64      `json:"high_cutoff,omitempty" doc:"Upper band edge in Hz for band pass filters"`
	Gain            *float64      `json:"gain,omitempty" doc:"Gain multiplier"`
	Order           *int          `json:"order,omitempty" doc:"Filter order"`
}

// ParamOption sets one optional field of ProcessingParams
type ParamOption func(*ProcessingParams)

// WithCutoffFrequency sets the single cutoff frequency
func WithCutoffFrequency(hz float64) ParamOption {
	return func(p *ProcessingParams) { p.CutoffFrequency = &hz }
}

// WithLowCutoff sets the lower band edge
func WithLowCutoff(hz float64) ParamOption {
	return func(p *ProcessingParams) { p.LowCutoff = &hz }
}

// WithHighCutoff sets the upper band edge
func WithHighCutoff(hz float64) ParamOption {
	return func(p *ProcessingParams) { p.HighCutoff = &hz }
}

// WithGain sets the gain multiplier
func WithGain(gain float64) ParamOption {
	return func(p *ProcessingParams) { p.Gain = &gain }
}

// WithOrder sets the filter order
func WithOrder(order int) ParamOption {
	return func(p *ProcessingParams) { p.Order = &order }
}

// NewProcessingParams creates params for op. Fields not set by an option stay absent.
// No consistency checks happen here; see Resolve.
func NewProcessingParams(op OperationType, opts ...ParamOption) ProcessingParams {
	p := ProcessingParams{Operation: op}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// CutoffHz returns the single cutoff frequency if present
func (p ProcessingParams) CutoffHz() (float64, bool) { return derefFloat(p.CutoffFrequency) }

// LowCutoffHz returns the lower band edge if present
func (p ProcessingParams) LowCutoffHz() (float64, bool) { return derefFloat(p.LowCutoff) }

// HighCutoffHz returns the upper band edge if present
func (p ProcessingParams) HighCutoffHz() (float64, bool) { return derefFloat(p.HighCutoff) }

// GainValue returns the gain multiplier if present
func (p ProcessingParams) GainValue() (float64, bool) { return derefFloat(p.Gain) }

// FilterOrder returns the filter order if present
func (p ProcessingParams) FilterOrder() (int, bool) {
	if p.Order == nil {
		return 0, false
	}
	return *p.Order, true
}

// Clone returns a copy that shares no storage with p
func (p ProcessingParams) Clone() ProcessingParams {
	c := ProcessingParams{Operation: p.Operation}
	c.CutoffFrequency = cloneFloat(p.CutoffFrequency)
	c.LowCutoff = cloneFloat(p.LowCutoff)
	c.HighCutoff = cloneFloat(p.HighCutoff)
	c.Gain = cloneFloat(p.Gain)
	if p.Order != nil {
		o := *p.Order
		c.Order = &o
	}
	return c
}

// Equal compares by value. Two absent fields are equal; pointer identity is ignored.
func (p ProcessingParams) Equal(o ProcessingParams) bool {
	if p.Operation != o.Operation {
		return false
	}
	if !equalFloat(p.CutoffFrequency, o.CutoffFrequency) ||
		!equalFloat(p.LowCutoff, o.LowCutoff) ||
		!equalFloat(p.HighCutoff, o.HighCutoff) ||
		!equalFloat(p.Gain, o.Gain) {
		return false
	}
	if (p.Order == nil) != (o.Order == nil) {
		return false
	}
	return p.Order == nil || *p.Order == *o.Order
}

// Operation is the validated form of ProcessingParams. Each variant carries only
// the fields its kind uses.
type Operation interface {
	Type() OperationType
	isOperation()
}

// LowPass attenuates content above CutoffHz
type LowPass struct {
	CutoffHz float64
	Order    int
}

// HighPass attenuates content below CutoffHz
type HighPass struct {
	CutoffHz float64
	Order    int
}

// BandPass keeps content between LowCutoffHz and HighCutoffHz
type BandPass struct {
	LowCutoffHz  float64
	HighCutoffHz float64
	Order        int
}

// GainAdjust scales the signal by Gain
type GainAdjust struct {
	Gain float64
}

func (LowPass) Type() OperationType    { return OperationLowPass }
func (HighPass) Type() OperationType   { return OperationHighPass }
func (BandPass) Type() OperationType   { return OperationBandPass }
func (GainAdjust) Type() OperationType { return OperationGain }

func (LowPass) isOperation()    {}
func (HighPass) isOperation()   {}
func (BandPass) isOperation()   {}
func (GainAdjust) isOperation() {}

// Resolve checks that the populated fields match Operation and returns the
// corresponding variant. Every problem is reported in a single *ValidationError.
func (p ProcessingParams) Resolve() (Operation, error) {
	verr := &ValidationError{}

	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"cutoff_frequency", p.CutoffFrequency},
		{"low_cutoff", p.LowCutoff},
		{"high_cutoff", p.HighCutoff},
		{"gain", p.Gain},
	} {
		if f.v != nil && !isFinite(*f.v) {
			verr.add(f.name, "must be finite")
		}
	}

	if !p.Operation.Valid() {
		verr.add("operation", fmt.Sprintf("unknown operation %q", p.Operation))
		return nil, verr
	}

	switch p.Operation {
	case OperationLowPass, OperationHighPass:
		requirePositive(verr, "cutoff_frequency", p.CutoffFrequency)
		forbid(verr, "low_cutoff", p.LowCutoff != nil, p.Operation)
		forbid(verr, "high_cutoff", p.HighCutoff != nil, p.Operation)
		forbid(verr, "gain", p.Gain != nil, p.Operation)
		order := checkOrder(verr, p.Order)
		if len(verr.Fields) > 0 {
			return nil, verr
		}
		if p.Operation == OperationLowPass {
			return LowPass{CutoffHz: *p.CutoffFrequency, Order: order}, nil
		}
		return HighPass{CutoffHz: *p.CutoffFrequency, Order: order}, nil

	case OperationBandPass:
		requirePositive(verr, "low_cutoff", p.LowCutoff)
		requirePositive(verr, "high_cutoff", p.HighCutoff)
		if p.LowCutoff != nil && p.HighCutoff != nil && *p.LowCutoff >= *p.HighCutoff {
			verr.add("low_cutoff", "must be lower than high_cutoff")
		}
		forbid(verr, "cutoff_frequency", p.CutoffFrequency != nil, p.Operation)
		forbid(verr, "gain", p.Gain != nil, p.Operation)
		order := checkOrder(verr, p.Order)
		if len(verr.Fields) > 0 {
			return nil, verr
		}
		return BandPass{LowCutoffHz: *p.LowCutoff, HighCutoffHz: *p.HighCutoff, Order: order}, nil
	}

	// OperationGain
	if p.Gain == nil {
		verr.add("gain", "is required")
	}
	forbid(verr, "cutoff_frequency", p.CutoffFrequency != nil, p.Operation)
	forbid(verr, "low_cutoff", p.LowCutoff != nil, p.Operation)
	forbid(verr, "high_cutoff", p.HighCutoff != nil, p.Operation)
	forbid(verr, "order", p.Order != nil, p.Operation)
	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return GainAdjust{Gain: *p.Gain}, nil
}

// ParamsFor converts a validated operation back to its interchange shape
func ParamsFor(op Operation) ProcessingParams {
	switch o := op.(type) {
	case LowPass:
		return NewProcessingParams(OperationLowPass, WithCutoffFrequency(o.CutoffHz), WithOrder(o.Order))
	case HighPass:
		return NewProcessingParams(OperationHighPass, WithCutoffFrequency(o.CutoffHz), WithOrder(o.Order))
	case BandPass:
		return NewProcessingParams(OperationBandPass,
			WithLowCutoff(o.LowCutoffHz), WithHighCutoff(o.HighCutoffHz), WithOrder(o.Order))
	case GainAdjust:
		return NewProcessingParams(OperationGain, WithGain(o.Gain))
	}
	return ProcessingParams{}
}

func requirePositive(verr *ValidationError, field string, v *float64) {
	if v == nil {
		verr.add(field, "is required")
		return
	}
	if *v <= 0 {
		verr.add(field, "must be greater than 0")
	}
}

func forbid(verr *ValidationError, field string, set bool, op OperationType) {
	if set {
		verr.add(field, fmt.Sprintf("is not used by %s", op))
	}
}

func checkOrder(verr *ValidationError, order *int) int {
	if order == nil {
		return DefaultFilterOrder
	}
	if *order < 1 || *order > MaxFilterOrder {
		verr.add("order", fmt.Sprintf("must be between 1 and %d", MaxFilterOrder))
	}
	return *order
}

func derefFloat(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
