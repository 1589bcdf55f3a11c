package watcher

import (
	"regexp"
	"strings"
)

// StreamWatcher incrementally scans the output of a long running process for a pattern.
//
// Invariant: the scan cursor only moves forward, and only when the unseen
// region produced at least one match. When a scan finds nothing the cursor
// stays put, so the next Submit rescans the same (now longer) region. A match
// that straddles two chunks is therefore never lost, and bytes that already
// produced matches are never scanned again.
type StreamWatcher struct {
	pattern *regexp.Regexp
	buffer  strings.Builder
	cursor  int
	matches []string
}

// New compiles pattern with dot-matches-newline semantics and returns a watcher for it.
// If the pattern declares a capture group, the text of the first group is reported
// instead of the whole match.
func New(pattern string) (*StreamWatcher, error) {
	re, err := regexp.Compile("(?s)" + pattern)
	if err != nil {
		return nil, err
	}
	return &StreamWatcher{pattern: re}, nil
}

// MustNew is like New but panics if the pattern cannot be compiled.
func MustNew(pattern string) *StreamWatcher {
	w, err := New(pattern)
	if err != nil {
		panic("watcher: " + err.Error())
	}
	return w
}

// Submit appends chunk to the buffer and returns the matches found in the unseen region.
func (w *StreamWatcher) Submit(chunk string) []string {
	w.buffer.WriteString(chunk)
	buf := w.buffer.String()

	found := Scan(w.pattern, buf[w.cursor:])
	if len(found) == 0 {
		return nil
	}
	w.cursor = len(buf)
	w.matches = append(w.matches, found...)
	return found
}

// Write implements io.Writer so a watcher can be attached to any stream.
func (w *StreamWatcher) Write(p []byte) (int, error) {
	w.Submit(string(p))
	return len(p), nil
}

// Matches returns every match accumulated so far, in discovery order.
func (w *StreamWatcher) Matches() []string {
	out := make([]string, len(w.matches))
	copy(out, w.matches)
	return out
}

// Cursor returns the offset where the next scan starts.
func (w *StreamWatcher) Cursor() int {
	return w.cursor
}

// Len returns the number of bytes accumulated so far.
func (w *StreamWatcher) Len() int {
	return w.buffer.Len()
}

// Scan returns all non-overlapping matches of re in unseen.
func Scan(re *regexp.Regexp, unseen string) []string {
	if unseen == "" {
		return nil
	}
	if re.NumSubexp() == 0 {
		return re.FindAllString(unseen, -1)
	}
	var out []string
	for _, sub := range re.FindAllStringSubmatch(unseen, -1) {
		out = append(out, sub[1])
	}
	return out
}
