package scoreio

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/showa-yojyo/mjstat/score"
)

// reDoraToken matches the bonus-tile tokens that may appear inside the
// yaku list of a win line: ドラ2, 裏ドラ1, 赤ドラ1, or a bare ドラ.
var reDoraToken = regexp.MustCompile(`^(?:裏|赤)?ドラ(\d*)$`)

// parseYakuList splits the yaku section of a win line into yaku ids and a
// total dora count. Dora tokens contribute to the count and never to the
// yaku list. Unrecognized names are returned for the caller to report.
func parseYakuList(s string) (yaku []score.Yaku, dora int, unknown []string) {
	for _, tok := range strings.Fields(s) {
		if m := reDoraToken.FindStringSubmatch(tok); m != nil {
			n := 1
			if m[1] != "" {
				n, _ = strconv.Atoi(m[1])
			}
			dora += n
			continue
		}
		y, ok := score.YakuByName(tok)
		if !ok {
			unknown = append(unknown, tok)
			continue
		}
		yaku = append(yaku, y)
	}
	return yaku, dora, unknown
}
