// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import "github.com/pdiddy/degree-certify/pkg/types"

// pendingBuffer is the one-slot special-topics buffer: either empty or
// holding exactly one provisional record awaiting a possible continuation
// line. The flush-on-next-event rule lives in the parser; the buffer only
// makes the Empty/Holding distinction explicit.
type pendingBuffer struct {
	holding bool
	record  types.CourseRecord
}

// Hold places a provisional record into the buffer. The caller must have
// flushed any previous record first; a buffer is never carried across two
// course lines.
func (b *pendingBuffer) Hold(rec types.CourseRecord) {
	b.record = rec
	b.holding = true
}

// Take removes and returns the held record. The second return value is
// false when the buffer is empty.
func (b *pendingBuffer) Take() (types.CourseRecord, bool) {
	if !b.holding {
		return types.CourseRecord{}, false
	}
	b.holding = false
	rec := b.record
	b.record = types.CourseRecord{}
	return rec, true
}

// Holding reports whether a record is pending.
func (b *pendingBuffer) Holding() bool {
	return b.holding
}
