package render

import "errors"

var (
	ErrThicknessRange = errors.New("glyph thickness outside [0.04, 1.0]")
)
