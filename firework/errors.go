package firework

import "errors"

// Scene construction errors. A malformed scene is a programming error in the
// authoring code, so construction aborts instead of degrading.
var (
	ErrNoTemplates = errors.New("firework has no particle templates")
	ErrTrailLength = errors.New("trail length must be positive")
	ErrLifeTime    = errors.New("particle life time must be positive")
	ErrDelay       = errors.New("activation delay must not be negative")
	ErrForm        = errors.New("invalid explosion form")
)
