package tui

import "github.com/MKhiriev/rate-keeper/internal/controller"

// resultMsg carries a finished controller command back to the event loop.
type resultMsg struct {
	result controller.Result
}

// noticeExpiredMsg fires when the notice with seq has been shown long enough.
type noticeExpiredMsg struct {
	seq uint64
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
