// Package scoreio implements a parser for mjscore.txt, the line-oriented
// game log written by the mahjong client. It drives a small state machine
// over the trimmed lines of the log and builds up score.Game records.
package scoreio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/showa-yojyo/mjstat/score"
)

// Options controls a single parse.
type Options struct {
	// Encoding of the input bytes. The empty string and "utf-8" mean no
	// transformation; "sjis", "shift_jis" and "cp932" decode Shift-JIS.
	Encoding string
	// Since and Until restrict parsing to games whose 開始 timestamp t
	// satisfies Since <= t < Until. Either may be empty. Comparison is
	// lexicographic, which is exact for the fixed-width
	// "YYYY/MM/DD HH:MM" format.
	Since string
	Until string
	// Strict turns unmatched non-blank lines into a ParseError instead of
	// skipping them.
	Strict bool
}

// ParseError is returned in strict mode when a line matches no pattern of
// the current state.
type ParseError struct {
	State string
	Line  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scoreio: no pattern in state %s matches line %q", e.State, e.Line)
}

// ParseScore parses the named mjscore.txt file.
func ParseScore(filename string, opts *Options) ([]*score.Game, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseScoreFromReader(f, opts)
}

// ParseScoreFromReader parses an mjscore log from r. Each parse uses a
// fresh context; the same Options value may be shared across parses.
func ParseScoreFromReader(r io.Reader, opts *Options) ([]*score.Game, error) {
	if opts == nil {
		opts = &Options{}
	}
	decoded, err := decodingReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(decoded)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	ctx := &context{
		feeder: newLineFeeder(lines),
		since:  opts.Since,
		until:  opts.Until,
		strict: opts.Strict,
	}
	if err := run(ctx); err != nil {
		return nil, err
	}
	return ctx.games, nil
}

func decodingReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "sjis", "shift_jis", "shift-jis", "cp932":
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder()), nil
	}
	return nil, errors.New("scoreio: unhandled character encoding " + encoding)
}
