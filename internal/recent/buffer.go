// Bounded most-recent-entry buffer with caption-aware deduplication
package recent

import (
	"strings"

	"telemetrycap/internal/global"
)

const captionDelimiter = ":"

// Ordered list of the most recent distinct log lines
type Buffer struct {
	capacity int
	entries  []string
}

// Buffer constructor. Non-positive capacity falls back to the default.
func NewBuffer(capacity int) (buf *Buffer) {
	if capacity <= 0 {
		capacity = global.DefaultMaxRecentEntries
	}

	buf = &Buffer{
		capacity: capacity,
		entries:  make([]string, 0, capacity),
	}
	return
}

// Records text in the buffer. Returns false when text is an exact repeat of a
// buffered entry; repeats are moved to the most recent position and callers
// should not re-emit them to sinks.
func (buf *Buffer) Record(text string) (fresh bool) {
	// Exact repeat moves to the most recent spot without duplicating
	for i, entry := range buf.entries {
		if entry == text {
			buf.entries = append(buf.entries[:i], buf.entries[i+1:]...)
			buf.entries = append(buf.entries, text)
			return
		}
	}

	// A changing value under one caption replaces the first older entry with
	// that caption, so bouncing between values still logs the back-and-forth
	if strings.Contains(text, captionDelimiter) {
		caption := captionOf(text)
		for i, entry := range buf.entries {
			if strings.Contains(entry, captionDelimiter) && captionOf(entry) == caption {
				buf.entries = append(buf.entries[:i], buf.entries[i+1:]...)
				break
			}
		}
	}

	buf.entries = append(buf.entries, text)

	// Evict the oldest entry past capacity
	if len(buf.entries) > buf.capacity {
		buf.entries = buf.entries[1:]
	}

	fresh = true
	return
}

// Number of buffered entries
func (buf *Buffer) Len() (count int) {
	count = len(buf.entries)
	return
}

// Copy of the buffered entries, oldest first
func (buf *Buffer) Entries() (entries []string) {
	entries = append([]string(nil), buf.entries...)
	return
}

// Drops all buffered entries
func (buf *Buffer) Reset() {
	buf.entries = buf.entries[:0]
}

// Substring before the first delimiter
func captionOf(text string) (caption string) {
	caption = text[:strings.Index(text, captionDelimiter)]
	return
}
