package channel

// ============================================================================
// COMPUTED CHANNEL — A template applied to one loaded log
// ============================================================================
// The template stores the formula; this type stores everything per-file:
// the resolved bindings, the cached sample vector, and the failure text
// when the formula cannot run against this particular log. A failed
// channel stays visible with its error instead of crashing the viewer.
// ============================================================================

import (
	"github.com/ClassicMiniDIY/UltraLog-sub000/formula"
	"github.com/ClassicMiniDIY/UltraLog-sub000/library"
	"github.com/ClassicMiniDIY/UltraLog-sub000/logdata"
)

// Computed is a computed channel instantiated against one log.
type Computed struct {
	Template library.Template
	// Bindings maps reference names to log column indices, resolved by
	// the last successful Apply.
	Bindings map[string]int
	// Data is the cached sample vector, nil until evaluated or after
	// Invalidate.
	Data []float64
	// Err holds the failure message when the last evaluation could not
	// run; empty means healthy.
	Err string
}

var _ logdata.Channel = (*Computed)(nil)

// FromTemplate wraps a template for evaluation. Nothing is computed yet.
func FromTemplate(t library.Template) *Computed {
	return &Computed{Template: t}
}

// Apply resolves the template's references against lg and evaluates it
// over every record. On success the samples are cached and any previous
// failure is cleared; on failure the bindings and cache are dropped and
// Err records what went wrong. The error is also returned for immediate
// callers.
func (c *Computed) Apply(lg *logdata.Log, opts ...formula.Option) error {
	refs := formula.Extract(c.Template.Formula, opts...)
	bindings, err := formula.BuildBindings(refs, lg.Channels)
	if err != nil {
		return c.fail(err)
	}
	data, err := formula.Evaluate(c.Template.Formula, bindings, lg.Data, lg.Times, opts...)
	if err != nil {
		return c.fail(err)
	}
	c.Bindings = bindings
	c.Data = data
	c.Err = ""
	return nil
}

// EnsureEvaluated computes the channel only when no cached result exists.
// Bindings from the last successful Apply are reused; a never-applied or
// failed channel takes the full Apply path. Cheap to call from render
// loops.
func (c *Computed) EnsureEvaluated(lg *logdata.Log, opts ...formula.Option) error {
	if c.Data != nil {
		return nil
	}
	if c.Bindings == nil {
		return c.Apply(lg, opts...)
	}
	data, err := formula.Evaluate(c.Template.Formula, c.Bindings, lg.Data, lg.Times, opts...)
	if err != nil {
		return c.fail(err)
	}
	c.Data = data
	c.Err = ""
	return nil
}

// Invalidate drops the cached samples so the next EnsureEvaluated
// recomputes. Bindings and any recorded failure stay put; the next
// evaluation outcome replaces them. Use Apply instead when the log itself
// changed, since column positions may have moved.
func (c *Computed) Invalidate() {
	c.Data = nil
}

// Valid reports whether the channel holds a clean evaluation result.
func (c *Computed) Valid() bool {
	return c.Err == "" && c.Data != nil
}

// fail records a failed evaluation outcome. Bindings go too: they may
// describe a previous log's columns, and EnsureEvaluated must not serve
// data read through them.
func (c *Computed) fail(err error) error {
	c.Bindings = nil
	c.Data = nil
	c.Err = err.Error()
	return err
}

// Kind reports KindComputed.
func (c *Computed) Kind() logdata.ChannelKind { return logdata.KindComputed }

// Name returns the template's display name.
func (c *Computed) Name() string { return c.Template.Name }

// Unit returns the template's unit label.
func (c *Computed) Unit() string { return c.Template.Unit }

// Len returns the number of cached samples, 0 when unevaluated.
func (c *Computed) Len() int { return len(c.Data) }

// ValueAt returns the cached sample at row, or 0 when out of range or
// unevaluated.
func (c *Computed) ValueAt(row int) float64 {
	if row < 0 || row >= len(c.Data) {
		return 0
	}
	return c.Data[row]
}
