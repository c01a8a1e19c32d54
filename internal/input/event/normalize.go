package event

// Normalize collapses backend-specific duplication in one frame's batch
// so every backend exposes the same canonical stream: a KeyEvent whose
// code is printable is dropped when a TextEvent in the same batch begins
// with that character. Event-driven hosts report both a key event and a
// text event for the same printable keystroke; after this pass printable
// characters appear only as TextEvent and special keys only as KeyEvent.
//
// The pass is pure, batch-local, and idempotent. All other events pass
// through unchanged, in order.
func Normalize(batch []Event) []Event {
	// First pass: collect the leading code points of the batch's text
	// events. Batches are small, so a tiny map per frame is fine.
	var text map[rune]bool
	for _, ev := range batch {
		if te, ok := ev.(TextEvent); ok && te.Text != "" {
			if text == nil {
				text = make(map[rune]bool, 4)
			}
			text[te.FirstRune()] = true
		}
	}
	if text == nil {
		return batch
	}

	drop := func(ev Event) bool {
		ke, ok := ev.(KeyEvent)
		return ok && ke.Code.IsPrintable() && text[rune(ke.Code)]
	}

	// Common case: nothing to drop, return the batch as-is.
	dirty := false
	for _, ev := range batch {
		if drop(ev) {
			dirty = true
			break
		}
	}
	if !dirty {
		return batch
	}

	out := make([]Event, 0, len(batch))
	for _, ev := range batch {
		if drop(ev) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
