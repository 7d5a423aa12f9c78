package logdata

// ============================================================================
// CHANNEL — Uniform read access to recorded and derived series
// ============================================================================
// UI layers iterate channels without caring where the numbers come from.
// Real wraps a column of a Log; computed channels live in the channel
// package and satisfy the same interface.
// ============================================================================

import "fmt"

// ChannelKind tags the origin of a channel.
type ChannelKind int

const (
	// KindReal is a channel recorded in the log file itself.
	KindReal ChannelKind = iota
	// KindComputed is a channel derived from a formula over real channels.
	KindComputed
)

// String returns a short human-readable tag.
func (k ChannelKind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindComputed:
		return "computed"
	default:
		return "unknown"
	}
}

// Channel is a read-only series of samples aligned to a log's time base.
type Channel interface {
	Kind() ChannelKind
	Name() string
	Unit() string
	Len() int
	// ValueAt returns the sample at row. Out-of-range rows yield 0.
	ValueAt(row int) float64
}

// Real exposes one column of a Log as a Channel.
type Real struct {
	log *Log
	col int
}

// NewReal wraps column col of lg. The column must exist.
func NewReal(lg *Log, col int) (*Real, error) {
	if lg == nil {
		return nil, fmt.Errorf("nil log")
	}
	if col < 0 || col >= len(lg.Channels) {
		return nil, fmt.Errorf("channel column %d out of range (log has %d)", col, len(lg.Channels))
	}
	return &Real{log: lg, col: col}, nil
}

// Kind reports KindReal.
func (r *Real) Kind() ChannelKind { return KindReal }

// Name returns the logged channel name.
func (r *Real) Name() string { return r.log.Channels[r.col] }

// Unit returns the logged unit, or "" when the file had none.
func (r *Real) Unit() string { return r.log.UnitOf(r.col) }

// Len returns the number of samples.
func (r *Real) Len() int { return r.log.Rows() }

// ValueAt returns the sample at row, or 0 when row or the underlying
// column is out of range for that row.
func (r *Real) ValueAt(row int) float64 {
	if row < 0 || row >= len(r.log.Data) {
		return 0
	}
	rec := r.log.Data[row]
	if r.col >= len(rec) {
		return 0
	}
	return rec[r.col]
}
