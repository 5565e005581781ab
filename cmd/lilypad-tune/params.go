package main

import (
	"github.com/pthm-cable/lilypad/components"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable movement constants,
// with defaults taken from base.
func NewParamVector(base components.ActorTuning) *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "accel", Path: "actor.accel", Min: 0.1, Max: 0.8, Default: base.Accel},
			{Name: "max_run", Path: "actor.max_run", Min: 1.0, Max: 4.0, Default: base.MaxRun},
			{Name: "gravity", Path: "actor.gravity", Min: 0.15, Max: 0.5, Default: base.Gravity},
			{Name: "jump_impulse", Path: "actor.jump_impulse", Min: -10, Max: -4, Default: base.JumpImpulse},
			{Name: "friction_ground", Path: "actor.friction_ground", Min: 0.75, Max: 0.98, Default: base.FrictionGround},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = max(spec.Min, min(v[i], spec.Max))
	}
	return clamped
}

// Apply returns base with the clamped values written over the tuned fields.
// Order must match Specs order.
func (pv *ParamVector) Apply(base components.ActorTuning, values []float64) components.ActorTuning {
	c := pv.Clamp(values)
	t := base
	t.Accel = c[0]
	t.MaxRun = c[1]
	t.Gravity = c[2]
	t.JumpImpulse = c[3]
	t.FrictionGround = c[4]
	return t
}
