// SPDX-License-Identifier: EPL-2.0

package svg

import (
	"sync"
	"sync/atomic"
)

// animationStyles is the shared stylesheet for hosts that animate their
// waveforms: a gentle amplitude pulse applied to geometry inside an
// element carrying the "ampviz-animated" class.
const animationStyles = `<style id="ampviz-animation-styles">
@keyframes ampviz-pulse {
  0%, 100% { transform: scaleY(1); }
  50% { transform: scaleY(0.9); }
}
.ampviz-animated rect,
.ampviz-animated path {
  animation: ampviz-pulse 2.4s ease-in-out infinite;
  transform-origin: 0 50px;
}
</style>
`

var styleRegistry struct {
	once       sync.Once
	registered atomic.Bool
}

// EnsureAnimationStyles returns the animation stylesheet on the first
// call in the process and the empty string afterwards, so a host
// embedding many waveforms injects the shared <style> block exactly
// once per document.
func EnsureAnimationStyles() string {
	out := ""
	styleRegistry.once.Do(func() {
		styleRegistry.registered.Store(true)
		out = animationStyles
	})

	return out
}

// AnimationStylesRegistered reports whether EnsureAnimationStyles has
// already handed out the stylesheet.
func AnimationStylesRegistered() bool {
	return styleRegistry.registered.Load()
}
