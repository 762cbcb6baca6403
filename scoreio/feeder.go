package scoreio

// lineFeeder hands out the input lines one at a time. States that consume
// a fixed or pattern-terminated run of lines (start hands, rankings,
// action history) read ahead through Next/Peek; Unread pushes lines back
// to the front for re-dispatch.
type lineFeeder struct {
	pending []string
	lines   []string
	pos     int
}

func newLineFeeder(lines []string) *lineFeeder {
	return &lineFeeder{lines: lines}
}

// Next returns the next line, preferring pushed-back lines.
func (f *lineFeeder) Next() (string, bool) {
	if n := len(f.pending); n > 0 {
		line := f.pending[n-1]
		f.pending = f.pending[:n-1]
		return line, true
	}
	if f.pos >= len(f.lines) {
		return "", false
	}
	line := f.lines[f.pos]
	f.pos++
	return line, true
}

// Peek returns the next line without consuming it.
func (f *lineFeeder) Peek() (string, bool) {
	if n := len(f.pending); n > 0 {
		return f.pending[n-1], true
	}
	if f.pos >= len(f.lines) {
		return "", false
	}
	return f.lines[f.pos], true
}

// Unread pushes lines back so that lines[0] is returned by the next call
// to Next.
func (f *lineFeeder) Unread(lines ...string) {
	for i := len(lines) - 1; i >= 0; i-- {
		f.pending = append(f.pending, lines[i])
	}
}
