// Package shapeshift provides a library-first API for mapping one JSON-like
// value onto the shape of another by semantic similarity of their field
// names.
package shapeshift

import (
	"context"

	"github.com/HumanAssisted/shapeshift-go/internal/apptype"
	"github.com/HumanAssisted/shapeshift-go/internal/matcher"
)

// Result is the outcome of a Shapeshift call.
type Result = apptype.TransformResult

// Diagnostics describes how a Result was derived.
type Diagnostics = apptype.Diagnostics

// Engine maps source values onto target templates. Safe for concurrent use.
type Engine struct {
	m *matcher.Engine
}

// NewEngine constructs an Engine with the provided config.
func NewEngine(cfg *Config) (*Engine, error) {
	m, err := matcher.NewEngine(cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return &Engine{m: m}, nil
}

// Close releases resources (the embedding cache, when configured).
func (e *Engine) Close() error { return e.m.Close() }

// Shapeshift produces a value shaped like target, populated with values from
// source wherever a sufficiently similar key exists and null elsewhere.
func (e *Engine) Shapeshift(ctx context.Context, source, target any) (*Result, error) {
	return e.m.Shapeshift(ctx, source, target)
}
