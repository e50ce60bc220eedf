// SPDX-License-Identifier: EPL-2.0

package ampviz

import "errors"

var (
	// ErrNotRendered reports imperative handle access before the
	// container's first render pass.
	ErrNotRendered = errors.New("waveform has not rendered yet")

	// ErrNoProgressOverlay reports a progress update on a container
	// without a progress overlay.
	ErrNoProgressOverlay = errors.New("no progress overlay enabled")

	// ErrClosed reports use of a closed container.
	ErrClosed = errors.New("waveform is closed")
)
