// Package score defines the record model built while parsing an mjscore.txt
// game log: a list of games, each holding the hands played and the final
// placing of the four players.
package score

import "fmt"

// Hand endings. A hand either ends with a win declaration or one of the
// draw reasons that appear verbatim in the log.
const (
	EndingRon   = "ロン"
	EndingTsumo = "ツモ"

	DrawExhaustive  = "流局"
	DrawFourWinds   = "四風連打"
	DrawNineTiles   = "九種九牌"
	DrawFourRiichi  = "四家立直"
	DrawTripleRon   = "三家和了"
	DrawFourKongs   = "四槓流れ"
)

// Placing is one row of a game's final ranking.
type Placing struct {
	Player string `json:"player"`
	Points int    `json:"points"`
}

// Game is one complete game record, from the 開始 banner to the 終了 banner.
type Game struct {
	StartedAt  string    `json:"started_at"`
	FinishedAt string    `json:"finished_at"`
	Players    []string  `json:"players"`
	Hands      []*Hand   `json:"hands"`
	Result     []Placing `json:"result"`
}

// Hand is one hand within a game. The per-seat tables are indexed by the
// player's position in Game.Players (the fixed turn-order slot), which is
// the same 1..4 numbering the log uses for seat digits in action tokens.
type Hand struct {
	Title           string         `json:"title"`
	Balance         map[string]int `json:"balance"`
	Ending          string         `json:"ending"`
	Winner          string         `json:"winner,omitempty"`
	WinningValue    string         `json:"winning_value,omitempty"`
	WinningDora     int            `json:"winning_dora"`
	WinningYakuList []Yaku         `json:"winning_yaku_list,omitempty"`

	SeatTable      [4]string `json:"seat_table"`
	StartHandTable [4]string `json:"start_hand_table"`
	DoraTable      []string  `json:"dora_table"`
	ActionTable    []string  `json:"action_table"`
	RiichiTable    [4]bool   `json:"riichi_table"`

	Chows [4][]string `json:"chows"`
	Pungs [4][]string `json:"pungs"`
	Kongs [4][]string `json:"kongs"`
}

// IsWin reports whether the hand ended with a win declaration rather than
// a draw.
func (h *Hand) IsWin() bool {
	return h.Ending == EndingRon || h.Ending == EndingTsumo
}

// DataIntegrityError signals a structurally broken record, e.g. a winner
// with no balance entry, so callers can report the offending game and move
// on instead of crashing on a map lookup.
type DataIntegrityError struct {
	Msg string
}

func (e *DataIntegrityError) Error() string {
	return "score: data integrity: " + e.Msg
}

func integrityErrorf(format string, args ...any) *DataIntegrityError {
	return &DataIntegrityError{Msg: fmt.Sprintf(format, args...)}
}

// Validate checks the structural invariants of a completed game record.
func (g *Game) Validate() error {
	if len(g.Players) != 4 {
		return integrityErrorf("game %q has %d players, want 4", g.StartedAt, len(g.Players))
	}
	if len(g.Result) != 0 {
		if len(g.Result) != 4 {
			return integrityErrorf("game %q has %d placings, want 4", g.StartedAt, len(g.Result))
		}
		seen := map[string]bool{}
		for rank, p := range g.Result {
			if p.Player == "" {
				return integrityErrorf("game %q rank %d has no player", g.StartedAt, rank+1)
			}
			if seen[p.Player] {
				return integrityErrorf("game %q ranks player %q twice", g.StartedAt, p.Player)
			}
			seen[p.Player] = true
		}
	}
	for i, h := range g.Hands {
		if h.IsWin() && h.Winner == "" {
			return integrityErrorf("game %q hand %d won with no winner", g.StartedAt, i)
		}
		if h.Winner != "" {
			if _, ok := h.Balance[h.Winner]; !ok {
				return integrityErrorf("game %q hand %d winner %q has no balance entry",
					g.StartedAt, i, h.Winner)
			}
		}
	}
	return nil
}
