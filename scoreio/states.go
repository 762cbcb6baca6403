package scoreio

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/showa-yojyo/mjstat/score"
)

// Line patterns of the mjscore format, one per rule. The timestamp format
// is fixed-width and zero-padded, so date filtering compares the raw
// strings.
const (
	GameOpeningRegex = `^=+.*開始\s+(?P<timestamp>\d{4}/\d{2}/\d{2} \d{2}:\d{2})\s*=+$`

	GameInitialConditionRegex = `^持点\d+\s+` +
		`\[1\](?P<p1>\S+)\s+R\d+\s+\[2\](?P<p2>\S+)\s+R\d+\s+` +
		`\[3\](?P<p3>\S+)\s+R\d+\s+\[4\](?P<p4>\S+)\s+R\d+$`

	// The balance group is optional; abortive draws that move no points
	// leave it empty.
	HandHeaderRegex = `^(?P<title>[東南西北][1-4]局\s*\d+本場\(リーチ\d+\))\s*(?P<balance>.*)$`

	GameResultRegex = `^-+\s*試合結果\s*-+$`

	HandWinRegex  = `^(?P<value>.*?)(?P<decl>ロン|ツモ)\s*(?P<yaku>.*)$`
	HandDrawRegex = `^(?P<draw>流局|四風連打|九種九牌|四家立直|三家和了|四槓流れ)$`

	StartHandRegex = `^\[(?P<seat>[1-4])(?P<wind>[東南西北])\](?P<tiles>\S+)$`

	DoraSetRegex = `^\[表ドラ\](?P<dora>\S+)(?:\s+\[裏ドラ\](?P<ura>\S+))?$`

	ActionRegex = `^\*\s*(?P<actions>.+)$`

	PlayerPlaceRegex = `^(?P<rank>[1-4])位\s+(?P<player>\S+)\s+(?P<points>[+-]?\d+)$`

	GameClosingRegex = `^-+.*終了\s+(?P<timestamp>\d{4}/\d{2}/\d{2} \d{2}:\d{2})\s*-+$`
)

var (
	reGameOpening          = regexp.MustCompile(GameOpeningRegex)
	reGameInitialCondition = regexp.MustCompile(GameInitialConditionRegex)
	reHandHeader           = regexp.MustCompile(HandHeaderRegex)
	reGameResult           = regexp.MustCompile(GameResultRegex)
	reHandWin              = regexp.MustCompile(HandWinRegex)
	reHandDraw             = regexp.MustCompile(HandDrawRegex)
	reStartHand            = regexp.MustCompile(StartHandRegex)
	reDoraSet              = regexp.MustCompile(DoraSetRegex)
	reAction               = regexp.MustCompile(ActionRegex)
	rePlayerPlace          = regexp.MustCompile(PlayerPlaceRegex)
	reGameClosing          = regexp.MustCompile(GameClosingRegex)

	reBalancePair = regexp.MustCompile(`(\S+)\s+([+-]?\d+)`)
)

func init() {
	// Important note: the draw rule is declared BEFORE the win rule. The
	// win pattern is broad enough to match almost anything containing
	// ロン or ツモ, so the fixed draw literals must get the first try.
	stateTable = map[stateName][]rule{
		stateGameOpening: {
			{"opening", reGameOpening, handleGameOpening},
		},
		stateGameInitialCondition: {
			{"initial", reGameInitialCondition, handleGameInitialCondition},
		},
		stateHandState: {
			{"header", reHandHeader, handleHandHeader},
			{"result", reGameResult, handleGameResult},
		},
		stateHandClosing: {
			{"draw", reHandDraw, handleHandDraw},
			{"win", reHandWin, handleHandWin},
		},
		stateHandStartHands: {
			{"starthand", reStartHand, handleStartHands},
		},
		stateHandDoraSet: {
			{"dora", reDoraSet, handleDoraSet},
		},
		stateHandActionHistory: {
			{"actions", reAction, handleActionHistory},
		},
		stateGamePlayerPlace: {
			{"place", rePlayerPlace, handlePlayerPlace},
		},
		stateGameClosing: {
			{"closing", reGameClosing, handleGameClosing},
		},
	}
}

func inDateRange(ts, since, until string) bool {
	if since != "" && ts < since {
		return false
	}
	if until != "" && ts >= until {
		return false
	}
	return true
}

func handleGameOpening(m *match, c *context) (stateName, []string, error) {
	ts := m.group("timestamp")
	g := &score.Game{StartedAt: ts}
	c.game = g
	c.hand = nil
	if inDateRange(ts, c.since, c.until) {
		c.games = append(c.games, g)
	} else {
		// Keep the machine in sync by parsing the game into a record that
		// is never published.
		log.Debug().Str("started_at", ts).Msg("game outside date range")
	}
	return stateGameInitialCondition, nil, nil
}

func handleGameInitialCondition(m *match, c *context) (stateName, []string, error) {
	c.game.Players = []string{
		m.group("p1"), m.group("p2"), m.group("p3"), m.group("p4"),
	}
	return stateHandState, nil, nil
}

func handleHandHeader(m *match, c *context) (stateName, []string, error) {
	hand := &score.Hand{
		Title:   m.group("title"),
		Balance: parseBalance(m.group("balance")),
	}
	c.game.Hands = append(c.game.Hands, hand)
	c.hand = hand
	return stateHandClosing, nil, nil
}

func handleGameResult(_ *match, c *context) (stateName, []string, error) {
	c.game.Result = make([]score.Placing, 4)
	return stateGamePlayerPlace, nil, nil
}

func handleHandWin(m *match, c *context) (stateName, []string, error) {
	h := c.hand
	h.Ending = m.group("decl")
	h.WinningValue = strings.TrimSpace(m.group("value"))
	yaku, dora, unknown := parseYakuList(m.group("yaku"))
	if len(unknown) > 0 {
		if c.strict {
			return "", nil, &ParseError{
				State: string(stateHandClosing),
				Line:  strings.Join(unknown, " "),
			}
		}
		log.Warn().Strs("names", unknown).Msg("unrecognized yaku names")
	}
	h.WinningYakuList = yaku
	h.WinningDora = dora
	// The win line carries no player name; the winner is the sole net
	// gainer of the hand settlement.
	h.Winner = winnerFromBalance(h.Balance)
	return stateHandStartHands, nil, nil
}

func handleHandDraw(m *match, c *context) (stateName, []string, error) {
	c.hand.Ending = m.group("draw")
	return stateHandStartHands, nil, nil
}

func handleStartHands(m *match, c *context) (stateName, []string, error) {
	applyStartHand(c.hand, m)
	// One line per seat, four seats. Line order is not guaranteed; the
	// seat digit comes from the line itself.
	for i := 0; i < 3; i++ {
		line, ok := c.feeder.Next()
		if !ok {
			return stateHandDoraSet, nil, nil
		}
		groups := reStartHand.FindStringSubmatch(line)
		if groups == nil {
			if c.strict {
				return "", nil, &ParseError{State: string(stateHandStartHands), Line: line}
			}
			return stateHandDoraSet, []string{line}, nil
		}
		applyStartHand(c.hand, &match{re: reStartHand, groups: groups})
	}
	return stateHandDoraSet, nil, nil
}

func applyStartHand(h *score.Hand, m *match) {
	seat := int(m.group("seat")[0] - '1')
	h.SeatTable[seat] = m.group("wind")
	h.StartHandTable[seat] = m.group("tiles")
}

func handleDoraSet(m *match, c *context) (stateName, []string, error) {
	c.hand.DoraTable = []string{m.group("dora")}
	if ura := m.group("ura"); ura != "" {
		c.hand.DoraTable = append(c.hand.DoraTable, ura)
	}
	return stateHandActionHistory, nil, nil
}

func handleActionHistory(m *match, c *context) (stateName, []string, error) {
	applyActions(c.hand, m.group("actions"))
	// Keep consuming action lines; the first line that is not one belongs
	// to the next hand header or the result section.
	for {
		line, ok := c.feeder.Peek()
		if !ok {
			break
		}
		groups := reAction.FindStringSubmatch(line)
		if groups == nil {
			break
		}
		c.feeder.Next()
		applyActions(c.hand, groups[reAction.SubexpIndex("actions")])
	}
	return stateHandState, nil, nil
}

// applyActions appends the whitespace-separated tokens of one action line.
// A token is {seat digit}{kind letter}{tiles}; riichi declarations and
// meld calls update the per-seat tables as a side effect.
func applyActions(h *score.Hand, actions string) {
	for _, tok := range strings.Fields(actions) {
		h.ActionTable = append(h.ActionTable, tok)
		if len(tok) < 2 || tok[0] < '1' || tok[0] > '4' {
			continue
		}
		seat := int(tok[0] - '1')
		switch tok[1] {
		case 'R':
			h.RiichiTable[seat] = true
		case 'C':
			h.Chows[seat] = append(h.Chows[seat], tok[2:])
		case 'N':
			h.Pungs[seat] = append(h.Pungs[seat], tok[2:])
		case 'K':
			h.Kongs[seat] = append(h.Kongs[seat], tok[2:])
		}
	}
}

func handlePlayerPlace(m *match, c *context) (stateName, []string, error) {
	applyPlace(c.game, m)
	for i := 0; i < 3; i++ {
		line, ok := c.feeder.Next()
		if !ok {
			return stateGameClosing, nil, nil
		}
		groups := rePlayerPlace.FindStringSubmatch(line)
		if groups == nil {
			if c.strict {
				return "", nil, &ParseError{State: string(stateGamePlayerPlace), Line: line}
			}
			return stateGameClosing, []string{line}, nil
		}
		applyPlace(c.game, &match{re: rePlayerPlace, groups: groups})
	}
	return stateGameClosing, nil, nil
}

func applyPlace(g *score.Game, m *match) {
	rank := int(m.group("rank")[0] - '1')
	points, err := strconv.Atoi(m.group("points"))
	if err != nil {
		return
	}
	g.Result[rank] = score.Placing{Player: m.group("player"), Points: points}
}

func handleGameClosing(m *match, c *context) (stateName, []string, error) {
	c.game.FinishedAt = m.group("timestamp")
	return stateGameOpening, nil, nil
}

func parseBalance(s string) map[string]int {
	balance := map[string]int{}
	for _, m := range reBalancePair.FindAllStringSubmatch(s, -1) {
		v, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		balance[m[1]] = v
	}
	return balance
}

func winnerFromBalance(balance map[string]int) string {
	winner := ""
	best := 0
	for player, delta := range balance {
		if delta > best {
			best = delta
			winner = player
		}
	}
	return winner
}
