// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

// Tuning collects the engine's animation constants. The values are feel
// defaults, not contracts; the one relationship callers can rely on is that
// a larger positional delta always converges at least as fast as a smaller
// one. The host exposes a subset through its config file.
type Tuning struct {
	// BaseFrameMs is the reference frame duration the smoothing exponents
	// are normalized against (60fps).
	BaseFrameMs float64

	// ConvergeEpsilon is the per-dimension distance below which the rendered
	// rectangle snaps exactly to the target.
	ConvergeEpsilon float64

	// Position smoothing rates per travel-distance band. Rates are the
	// fraction of remaining distance covered per reference frame.
	PosRateNear float64 // below PosMidDistance
	PosRateMid  float64 // PosMidDistance..PosFarDistance
	PosRateFar  float64 // PosFarDistance..PosLeapDistance
	PosRateLeap float64 // beyond PosLeapDistance

	PosMidDistance  float64
	PosFarDistance  float64
	PosLeapDistance float64

	// Size smoothing, keyed off the larger of the width/height deltas.
	SizeRateNear    float64
	SizeRateFar     float64
	SizeFarDistance float64

	// Dynamics derivation.
	DynamicsMinDistance   float64 // commits moving less than this derive nothing
	DynamicsRefreshMs     float64 // minimum interval between dynamics refreshes
	DynamicsLargeDistance float64 // deltas this large bypass the interval gate
	DynamicsDecayMs       float64 // time until dynamics return to baseline

	TiltPerPixel       float64
	MaxTiltDeg         float64
	TrailOpacityPerPx  float64
	MaxTrailOpacity    float64
	TrailOffsetPerPx   float64
	MaxTrailOffset     float64
	TrailScalePerPx    float64
	MaxTrailScaleBoost float64
	ShadowPerPixel     float64
	MaxShadowOffset    float64
	MorphFullDistance  float64 // distance at which morph stretch saturates
	HighlightPerPixel  float64 // percent of surface per pixel moved

	// Selection glow.
	GlowDurationMs    float64
	GlowExponent      float64 // power-law ease-out exponent
	GlowReducedHoldMs float64 // reduced motion: constant hold before instant fade
}

// DefaultTuning returns the stock animation constants.
func DefaultTuning() Tuning {
	return Tuning{
		BaseFrameMs:     1000.0 / 60.0,
		ConvergeEpsilon: 0.25,

		PosRateNear: 0.18,
		PosRateMid:  0.26,
		PosRateFar:  0.34,
		PosRateLeap: 0.44,

		PosMidDistance:  16,
		PosFarDistance:  64,
		PosLeapDistance: 160,

		SizeRateNear:    0.22,
		SizeRateFar:     0.38,
		SizeFarDistance: 48,

		DynamicsMinDistance:   0.6,
		DynamicsRefreshMs:     70,
		DynamicsLargeDistance: 24,
		DynamicsDecayMs:       240,

		TiltPerPixel:       0.18,
		MaxTiltDeg:         6,
		TrailOpacityPerPx:  0.012,
		MaxTrailOpacity:    0.35,
		TrailOffsetPerPx:   0.22,
		MaxTrailOffset:     12,
		TrailScalePerPx:    0.0008,
		MaxTrailScaleBoost: 0.06,
		ShadowPerPixel:     0.16,
		MaxShadowOffset:    10,
		MorphFullDistance:  220,
		HighlightPerPixel:  0.35,

		GlowDurationMs:    700,
		GlowExponent:      2.2,
		GlowReducedHoldMs: 120,
	}
}

// posRate picks the position smoothing rate for a travel distance.
// Larger deltas converge faster, which reads as ease-out without overshoot.
func (t Tuning) posRate(distance float64) float64 {
	switch {
	case distance >= t.PosLeapDistance:
		return t.PosRateLeap
	case distance >= t.PosFarDistance:
		return t.PosRateFar
	case distance >= t.PosMidDistance:
		return t.PosRateMid
	default:
		return t.PosRateNear
	}
}

// sizeRate picks the size smoothing rate for a dimension delta.
func (t Tuning) sizeRate(delta float64) float64 {
	if delta >= t.SizeFarDistance {
		return t.SizeRateFar
	}
	return t.SizeRateNear
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
