package stats

import (
	"regexp"
	"strings"

	"github.com/showa-yojyo/mjstat/score"
)

// UnknownScoreFormatError reports a winning-value string the evaluator's
// grammar does not understand. It signals a grammar gap, distinct from
// "no data".
type UnknownScoreFormatError struct {
	Value string
}

func (e *UnknownScoreFormatError) Error() string {
	return "stats: unknown winning value format " + strings.TrimSpace(e.Value)
}

// reFuHan matches the regular winning values up to four han, e.g.
// "40符 二飜". Five han and up are written as limit tiers instead.
var reFuHan = regexp.MustCompile(`^(\d+)符\s*([一二三四])飜$`)

var kanjiNumerals = map[string]int{
	"一": 1,
	"二": 2,
	"三": 3,
	"四": 4,
}

// yakumanTiers maps the prefix of a combined limit hand to its multiplier.
var yakumanTiers = map[string]int{
	"ダブル":  2,
	"トリプル": 3,
}

const yakumanHan = 13

// handHan derives the han count of a winning hand from its raw winning
// value. Three formats exist, tried in order: "{fu}符 {kanji}飜"; a manken
// tier containing 満貫, whose han is recomputed from the yaku list and the
// dora count; and a 役満 tier with an optional multiplier prefix. Anything
// else is an UnknownScoreFormatError.
func handHan(h *score.Hand, seat int) (int, error) {
	v := h.WinningValue
	if m := reFuHan.FindStringSubmatch(v); m != nil {
		return kanjiNumerals[m[2]], nil
	}
	if strings.Contains(v, "満貫") {
		// The hand is closed when the seat called no melds.
		closed := len(h.Chows[seat])+len(h.Pungs[seat])+len(h.Kongs[seat]) == 0
		han := h.WinningDora
		for _, y := range h.WinningYakuList {
			han += y.HanValue(closed)
		}
		return han, nil
	}
	if i := strings.Index(v, "役満"); i >= 0 {
		if i == 0 {
			return yakumanHan, nil
		}
		mult, ok := yakumanTiers[v[:i]]
		if !ok {
			return 0, &UnknownScoreFormatError{Value: v}
		}
		return yakumanHan * mult, nil
	}
	return 0, &UnknownScoreFormatError{Value: v}
}
