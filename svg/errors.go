package svg

import "errors"

// ErrNoGeometry is returned when a view has no SVG representation,
// such as a glyph-weight view meant for text rendering.
var ErrNoGeometry = errors.New("view has no svg geometry")
