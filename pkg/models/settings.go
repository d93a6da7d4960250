package models

import (
	"math"
)

// ChartPan is the 2D offset of the signal chart viewport
type ChartPan struct {
	X float64 `json:"x" doc:"Horizontal pan offset"`
	Y float64 `json:"y" doc:"Vertical pan offset"`
}

// NewChartPan creates a pan offset
func NewChartPan(x, y float64) ChartPan {
	return ChartPan{X: x, Y: y}
}

// UiPreferences holds chart display preferences for a profile
type UiPreferences struct {
	ChartZoom float64  `json:"chart_zoom" exclusiveMinimum:"0" doc:"Chart zoom scale factor"`
	ChartPan  ChartPan `json:"chart_pan" doc:"Chart pan offset"`
}

// NewUiPreferences creates UI preferences from a zoom factor and pan offset
func NewUiPreferences(zoom float64, pan ChartPan) UiPreferences {
	return UiPreferences{ChartZoom: zoom, ChartPan: pan}
}

// DefaultUiPreferences returns an unzoomed, centered chart
func DefaultUiPreferences() UiPreferences {
	return NewUiPreferences(1, NewChartPan(0, 0))
}

// Validate checks the preferences before they are stored
func (p UiPreferences) Validate() error {
	verr := &ValidationError{}
	if !isFinite(p.ChartZoom) || p.ChartZoom <= 0 {
		verr.add("chart_zoom", "must be a finite value greater than 0")
	}
	if !isFinite(p.ChartPan.X) {
		verr.add("chart_pan.x", "must be finite")
	}
	if !isFinite(p.ChartPan.Y) {
		verr.add("chart_pan.y", "must be finite")
	}
	return verr.orNil()
}

// TriggerConfig holds the threshold used for event detection
type TriggerConfig struct {
	Threshold float64 `json:"threshold" doc:"Trigger level"`
	Enabled   bool    `json:"enabled" doc:"Whether the trigger is armed"`
}

// NewTriggerConfig creates a trigger configuration
func NewTriggerConfig(threshold float64, enabled bool) TriggerConfig {
	return TriggerConfig{Threshold: threshold, Enabled: enabled}
}

// DefaultTriggerConfig returns a disarmed trigger at 0.5
func DefaultTriggerConfig() TriggerConfig {
	return NewTriggerConfig(0.5, false)
}

// Validate checks the trigger before it is stored
func (c TriggerConfig) Validate() error {
	verr := &ValidationError{}
	if !isFinite(c.Threshold) {
		verr.add("threshold", "must be finite")
	}
	return verr.orNil()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
