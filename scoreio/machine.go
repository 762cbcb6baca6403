package scoreio

import (
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/showa-yojyo/mjstat/score"
)

// stateName identifies one state of the parser.
type stateName string

const (
	stateGameOpening          stateName = "GameOpening"
	stateGameInitialCondition stateName = "GameInitialCondition"
	stateHandState            stateName = "HandState"
	stateHandClosing          stateName = "HandClosing"
	stateHandStartHands       stateName = "HandStartHands"
	stateHandDoraSet          stateName = "HandDoraSet"
	stateHandActionHistory    stateName = "HandActionHistory"
	stateGamePlayerPlace      stateName = "GamePlayerPlace"
	stateGameClosing          stateName = "GameClosing"
)

// match wraps a successful submatch so handlers can read capture groups by
// name.
type match struct {
	re     *regexp.Regexp
	groups []string
}

func (m *match) group(name string) string {
	i := m.re.SubexpIndex(name)
	if i < 0 || i >= len(m.groups) {
		return ""
	}
	return m.groups[i]
}

// handlerFunc mutates the shared context and returns the next state, plus
// any read-ahead lines that should be re-dispatched.
type handlerFunc func(m *match, c *context) (stateName, []string, error)

// rule is one named pattern of a state. Rules are tried in declaration
// order and the first match wins.
type rule struct {
	name string
	re   *regexp.Regexp
	fn   handlerFunc
}

// stateTable is the full state machine, built once in init and read-only
// afterwards; it is shared between concurrent parses.
var stateTable map[stateName][]rule

// context is the mutable state of one parse call. It must not be shared
// between parses.
type context struct {
	feeder *lineFeeder
	games  []*score.Game
	since  string
	until  string
	strict bool

	// game and hand track the records under construction. When the game's
	// start timestamp falls outside [since, until) the game is still
	// parsed, into a record that is never appended to games.
	game *score.Game
	hand *score.Hand
}

// run drives the state machine until the input is exhausted. The initial
// state is GameOpening; a well-formed log returns there after every
// GameClosing, so any number of games parse in one pass.
func run(c *context) error {
	current := stateGameOpening
	for {
		line, ok := c.feeder.Next()
		if !ok {
			return nil
		}
		matched := false
		for _, r := range stateTable[current] {
			groups := r.re.FindStringSubmatch(line)
			if groups == nil {
				continue
			}
			matched = true
			next, requeue, err := r.fn(&match{re: r.re, groups: groups}, c)
			if err != nil {
				return err
			}
			if len(requeue) > 0 {
				c.feeder.Unread(requeue...)
			}
			current = next
			break
		}
		if !matched {
			// Blank lines and separators between records are expected
			// noise, even in strict mode.
			if line == "" {
				continue
			}
			if c.strict {
				return &ParseError{State: string(current), Line: line}
			}
			log.Debug().Str("state", string(current)).Str("line", line).
				Msg("skipping unmatched line")
		}
	}
}
