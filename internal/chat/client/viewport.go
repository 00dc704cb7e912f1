package client

import "sync"

// bottomThresholdPx is how close to the end of the scrollback still counts
// as "at the bottom" for scroll-follow purposes.
const bottomThresholdPx = 60

// Viewport models the scrollable message pane: total content height, the
// visible window height, and the current scroll offset. The embedding UI
// reports geometry changes; the controller asks AtBottom to decide whether
// a poll result should pull the view down or leave the reader where they are.
type Viewport struct {
	mu            sync.Mutex
	scrollTop     int
	clientHeight  int
	contentHeight int
	atBottom      bool
}

func NewViewport(clientHeight int) *Viewport {
	// An empty conversation starts pinned to the bottom.
	return &Viewport{clientHeight: clientHeight, atBottom: true}
}

// Scroll records a new scroll offset and recomputes the at-bottom flag,
// mirroring the scroll handler that runs on every scroll event.
func (v *Viewport) Scroll(top int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if top < 0 {
		top = 0
	}
	if max := v.maxScroll(); top > max {
		top = max
	}
	v.scrollTop = top
	v.atBottom = v.contentHeight-v.scrollTop-v.clientHeight < bottomThresholdPx
}

// SetContentHeight is called when rendered content grows or shrinks. The
// scroll offset is preserved so history the reader is looking at does not
// move; only an explicit ScrollToBottom follows new content.
func (v *Viewport) SetContentHeight(height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if height < 0 {
		height = 0
	}
	v.contentHeight = height
	if max := v.maxScroll(); v.scrollTop > max {
		v.scrollTop = max
	}
}

func (v *Viewport) ScrollToBottom() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrollTop = v.maxScroll()
	v.atBottom = true
}

func (v *Viewport) AtBottom() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.atBottom
}

func (v *Viewport) ScrollTop() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollTop
}

func (v *Viewport) maxScroll() int {
	max := v.contentHeight - v.clientHeight
	if max < 0 {
		return 0
	}
	return max
}
