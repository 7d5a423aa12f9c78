// Package ultralog provides computed (virtual) channels for engine-log
// analysis. A computed channel is defined once as a formula over logged
// channel names and evaluates against any log that carries them.
//
// Usage:
//
//	import (
//	    "github.com/ClassicMiniDIY/UltraLog-sub000/formula"
//	    "github.com/ClassicMiniDIY/UltraLog-sub000/library"
//	)
//
//	err := formula.Validate(`("Manifold Pressure" + 14.7) / 14.7`, log.Channels)
//	refs := formula.Extract(`RPM - RPM[-1]`)
//	bindings, _ := formula.BuildBindings(refs, log.Channels)
//	samples, _ := formula.Evaluate(`RPM - RPM[-1]`, bindings, log.Data, log.Times)
//
// Formulas reference channels by name, bare (RPM) or quoted ("Manifold
// Pressure"), optionally displaced in time by whole records (RPM[-1]) or
// by seconds (RPM@-0.1s). The library package persists formulas as
// versioned templates; the channel package instantiates them per log.
// Everything computes locally — no log data ever leaves the process.
package ultralog
