// Package stats computes per-player aggregates over parsed game records.
// Evaluate is a pure function of the record list; it holds no state and
// never writes back into its input.
package stats

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/showa-yojyo/mjstat/score"
)

// Options selects which statistic groups Evaluate computes.
type Options struct {
	Fundamental   bool
	YakuFrequency bool
}

// PlayerStats is the derived, read-only view of one player's results. All
// rates are 0 when their denominator is 0.
type PlayerStats struct {
	Name       string
	CountGames int
	CountHands int

	PlacingDistr     [4]int
	MeanPlacing      float64
	FirstPlacingRate float64
	LastPlacingRate  float64

	WinningCount     int
	WinningRate      float64
	WinningMean      float64
	WinningMeanHan   float64
	WinningMeanTurns float64

	// LOD: losing on discard, i.e. dealing into another player's ron.
	LODCount int
	LODRate  float64
	LODMean  float64

	RiichiCount int
	RiichiRate  float64

	MeldingCount int
	MeldingRate  float64

	YakuFreq map[score.Yaku]int
}

// Evaluate computes statistics for target over the games it appears in.
func Evaluate(games []*score.Game, target string, opts Options) (*PlayerStats, error) {
	relevant := lo.Filter(games, func(g *score.Game, _ int) bool {
		return lo.Contains(g.Players, target)
	})
	ps := &PlayerStats{
		Name:       target,
		CountGames: len(relevant),
		CountHands: lo.SumBy(relevant, func(g *score.Game) int { return len(g.Hands) }),
	}
	if opts.Fundamental {
		if err := ps.evalFundamental(relevant, target); err != nil {
			return nil, err
		}
	}
	if opts.YakuFrequency {
		ps.evalYakuFrequency(relevant, target)
	}
	return ps, nil
}

func (ps *PlayerStats) evalFundamental(games []*score.Game, target string) error {
	var ranks []float64
	var winning, winningHan, winningTurns, losing Statistic

	for _, g := range games {
		rank := -1
		for i, p := range g.Result {
			if p.Player == target {
				rank = i
				break
			}
		}
		if rank < 0 {
			return &score.DataIntegrityError{
				Msg: "game " + g.StartedAt + " has no ranking for " + target,
			}
		}
		ps.PlacingDistr[rank]++
		ranks = append(ranks, float64(rank+1))

		seat := lo.IndexOf(g.Players, target)
		seatDigit := byte('1' + seat)
		for _, h := range g.Hands {
			if h.Winner == target {
				delta, ok := h.Balance[target]
				if !ok {
					return &score.DataIntegrityError{
						Msg: "hand " + h.Title + " winner " + target + " has no balance entry",
					}
				}
				winning.Push(float64(delta))
				winningTurns.Push(float64(countDraws(h, seatDigit)))
				han, err := handHan(h, seat)
				if err != nil {
					return err
				}
				winningHan.Push(float64(han))
			}
			if h.Ending == score.EndingRon && dealtIn(h, seatDigit) {
				delta, ok := h.Balance[target]
				if !ok {
					return &score.DataIntegrityError{
						Msg: "hand " + h.Title + " discarder " + target + " has no balance entry",
					}
				}
				losing.Push(float64(delta))
			}
			if h.RiichiTable[seat] {
				ps.RiichiCount++
			}
			ps.MeldingCount += len(h.Chows[seat]) + len(h.Pungs[seat]) + len(h.Kongs[seat])
		}
	}

	if n := len(ranks); n > 0 {
		ps.MeanPlacing = stat.Mean(ranks, nil)
		ps.FirstPlacingRate = float64(ps.PlacingDistr[0]) / float64(n)
		ps.LastPlacingRate = float64(ps.PlacingDistr[3]) / float64(n)
	}
	ps.WinningCount = winning.Iterations()
	ps.WinningMean = winning.Mean()
	ps.WinningMeanHan = winningHan.Mean()
	ps.WinningMeanTurns = winningTurns.Mean()
	ps.LODCount = losing.Iterations()
	ps.LODMean = losing.Mean()
	if ps.CountHands > 0 {
		hands := float64(ps.CountHands)
		ps.WinningRate = float64(ps.WinningCount) / hands
		ps.LODRate = float64(ps.LODCount) / hands
		ps.RiichiRate = float64(ps.RiichiCount) / hands
		ps.MeldingRate = float64(ps.MeldingCount) / hands
	}
	return nil
}

// countDraws counts the self-draw actions of the given seat in a hand.
func countDraws(h *score.Hand, seatDigit byte) int {
	n := 0
	for _, tok := range h.ActionTable {
		if len(tok) >= 2 && tok[0] == seatDigit && tok[1] == 'G' {
			n++
		}
	}
	return n
}

// dealtIn reports whether the seat discarded the winning tile of a ron
// hand. The last action token is the win declaration; the one before it
// is the fatal discard.
func dealtIn(h *score.Hand, seatDigit byte) bool {
	if len(h.ActionTable) < 2 {
		return false
	}
	prev := h.ActionTable[len(h.ActionTable)-2]
	return len(prev) > 0 && prev[0] == seatDigit
}

func (ps *PlayerStats) evalYakuFrequency(games []*score.Game, target string) {
	freq := make(map[score.Yaku]int)
	for _, y := range score.AllYaku() {
		freq[y] = 0
	}
	for _, g := range games {
		for _, h := range g.Hands {
			if h.Winner != target {
				continue
			}
			for _, y := range h.WinningYakuList {
				freq[y]++
			}
		}
	}
	ps.YakuFreq = freq
}
