package geom

import "log/slog"

// Engine computes crossings, winding numbers and boolean combinations of paths. An Engine is not modified by its methods and may be used concurrently.
type Engine struct {
	Tolerance Tolerance

	// Logger receives debug events such as approximated intersections and dropped tangential hits. It may be nil.
	Logger *slog.Logger
}

// DefaultEngine is used by the package level functions.
var DefaultEngine = &Engine{Tolerance: DefaultTolerance}

// NewEngine returns an engine with the given tolerance. Zero fields of tol are taken from DefaultTolerance.
func NewEngine(tol Tolerance, logger *slog.Logger) *Engine {
	return &Engine{
		Tolerance: tol.withDefaults(),
		Logger:    logger,
	}
}

func (e *Engine) tolerance() Tolerance {
	return e.Tolerance.withDefaults()
}

var discardLogger = slog.New(slog.DiscardHandler)

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return discardLogger
	}
	return e.Logger
}
