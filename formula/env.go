package formula

// ============================================================================
// MATH ENVIRONMENT — Builtins exposed to the expression engine
// ============================================================================
// One environment map serves both compilation and execution. Builtins are
// lowercase; extraction filters them case-insensitively, so "SIN(x)" is
// neither a channel nor a function and fails validation up front rather
// than at plot time.
// ============================================================================

import "math"

// baseEnv returns a fresh environment with every builtin function and
// constant. Callers layer reference identifiers on top.
func baseEnv() map[string]interface{} {
	return map[string]interface{}{
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"atan2": math.Atan2,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"asinh": math.Asinh,
		"acosh": math.Acosh,
		"atanh": math.Atanh,
		"sqrt":  math.Sqrt,
		"abs":   math.Abs,
		"exp":   math.Exp,
		"ln":    math.Log,
		"log":   math.Log,
		"log2":  math.Log2,
		"log10": math.Log10,
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"round": math.Round,
		"trunc": math.Trunc,
		"fract": fract,
		"signum": func(x float64) float64 {
			switch {
			case x > 0:
				return 1
			case x < 0:
				return -1
			default:
				return x // preserves 0, -0 and NaN
			}
		},
		"min": minOf,
		"max": maxOf,

		"pi":  math.Pi,
		"e":   math.E,
		"tau": 2 * math.Pi,
		"phi": math.Phi,
	}
}

// fract returns the fractional part of x with x's sign.
func fract(x float64) float64 {
	return x - math.Trunc(x)
}

func minOf(xs ...float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		m = math.Min(m, x)
	}
	return m
}

func maxOf(xs ...float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		m = math.Max(m, x)
	}
	return m
}
