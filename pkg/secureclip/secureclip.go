// Package secureclip copies generated passwords to the system clipboard and
// clears them again after a timeout, so a password does not linger in the
// clipboard long after the user has pasted it.
package secureclip

import (
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
)

var (
	lastClip    int64
	clipTimeout = 30 * time.Second
)

// Clip copies text to the clipboard. The clipboard is cleared once the
// timeout has elapsed since the most recent Clip call, so back-to-back
// copies keep the latest value available for the full window.
func Clip(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	atomic.StoreInt64(&lastClip, time.Now().UnixNano())
	go func() {
		time.Sleep(clipTimeout)
		lc := atomic.LoadInt64(&lastClip)
		if time.Since(time.Unix(0, lc)) >= clipTimeout {
			clipboard.WriteAll("")
		}
	}()
	return nil
}

// Clear clears the clipboard immediately.
func Clear() error {
	return clipboard.WriteAll("")
}
