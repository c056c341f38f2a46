package core

import "context"

type OptionKey string

const (
	DepthOptionKey    OptionKey = "depth_options"
	PivotOptionKey    OptionKey = "pivot_options"
	FallbackOptionKey OptionKey = "fallback_options"
)

const (
	// DefaultDepthLimit bounds the fork fan-out of a parallel sort to at
	// most 2^DefaultDepthLimit live workers.
	DefaultDepthLimit = 5
	// DefaultFallbackSize disables the small-range insertion fallback.
	DefaultFallbackSize = 0
)

// PivotStrategy selects how partition pivots are chosen.
type PivotStrategy int

const (
	RandomPivot PivotStrategy = iota
	MidpointPivot
)

type MaxLimitOption struct {
	Value int
}

type DepthOptions struct {
	MaxDepth MaxLimitOption
}

type PivotOptions struct {
	Strategy PivotStrategy
}

type FallbackOptions struct {
	Size int
}

func WithDepthLimit(ctx context.Context, maxDepth int) context.Context {
	return context.WithValue(ctx, DepthOptionKey, DepthOptions{MaxLimitOption{Value: maxDepth}})
}

func WithPivot(ctx context.Context, strategy PivotStrategy) context.Context {
	return context.WithValue(ctx, PivotOptionKey, PivotOptions{Strategy: strategy})
}

// WithFallbackSize enables the insertion-sort fallback for ranges of at most
// size elements. Size <= 1 keeps it disabled.
func WithFallbackSize(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, FallbackOptionKey, FallbackOptions{Size: size})
}

func GetDepthLimit(ctx context.Context, defaultMaxDepth int) int {
	options, ok := ctx.Value(DepthOptionKey).(DepthOptions)
	if ok {
		return options.MaxDepth.Value
	}
	return defaultMaxDepth
}

func GetPivotStrategy(ctx context.Context, defaultStrategy PivotStrategy) PivotStrategy {
	options, ok := ctx.Value(PivotOptionKey).(PivotOptions)
	if ok {
		return options.Strategy
	}
	return defaultStrategy
}

func GetFallbackSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(FallbackOptionKey).(FallbackOptions)
	if ok {
		return options.Size
	}
	return defaultSize
}
