package scoreio

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/japanese"

	"github.com/showa-yojyo/mjstat/score"
)

func parseSample(t *testing.T, opts *Options) []*score.Game {
	t.Helper()
	games, err := ParseScoreFromReader(strings.NewReader(SampleLog), opts)
	assert.Nil(t, err)
	return games
}

func TestParseSampleGame(t *testing.T) {
	games := parseSample(t, nil)
	assert.Equal(t, 1, len(games))

	g := games[0]
	assert.Equal(t, "2016/01/01 00:43", g.StartedAt)
	assert.Equal(t, "2016/01/01 00:47", g.FinishedAt)
	assert.Equal(t, []string{"あなた", "下家", "対面", "上家"}, g.Players)
	assert.Nil(t, g.Validate())

	assert.Equal(t, []score.Placing{
		{Player: "上家", Points: 54},
		{Player: "あなた", Points: 7},
		{Player: "下家", Points: -18},
		{Player: "対面", Points: -43},
	}, g.Result)

	assert.Equal(t, 5, len(g.Hands))
}

func TestParseWinningHand(t *testing.T) {
	g := parseSample(t, nil)[0]
	h := g.Hands[0]

	assert.Equal(t, "東1局 0本場(リーチ0)", h.Title)
	assert.Equal(t, score.EndingRon, h.Ending)
	assert.Equal(t, "あなた", h.Winner)
	assert.Equal(t, "40符 二飜", h.WinningValue)
	assert.Equal(t, 0, h.WinningDora)
	assert.Equal(t, []score.Yaku{score.YakuTanyao, score.YakuRiichi}, h.WinningYakuList)
	assert.Equal(t, map[string]int{"あなた": 2600, "対面": -2600}, h.Balance)

	assert.Equal(t, [4]string{"東", "南", "西", "北"}, h.SeatTable)
	for seat := 0; seat < 4; seat++ {
		assert.NotEmpty(t, h.StartHandTable[seat])
	}
	assert.Equal(t, []string{"8p", "2s"}, h.DoraTable)
	assert.True(t, h.RiichiTable[0])
	assert.False(t, h.RiichiTable[1])
	assert.Equal(t, "1A", h.ActionTable[len(h.ActionTable)-1])
	assert.Equal(t, "3d2m", h.ActionTable[len(h.ActionTable)-2])
}

func TestParseDrawHands(t *testing.T) {
	g := parseSample(t, nil)[0]

	exhaustive := g.Hands[1]
	assert.Equal(t, score.DrawExhaustive, exhaustive.Ending)
	assert.Equal(t, "", exhaustive.Winner)
	assert.Equal(t, 4, len(exhaustive.Balance))
	assert.Equal(t, []string{"白白白"}, exhaustive.Pungs[0])
	assert.Equal(t, []string{"5m"}, exhaustive.DoraTable)

	abortive := g.Hands[2]
	assert.Equal(t, score.DrawFourWinds, abortive.Ending)
	assert.Equal(t, 0, len(abortive.Balance))
}

func TestParseMangan(t *testing.T) {
	g := parseSample(t, nil)[0]
	h := g.Hands[4]

	assert.Equal(t, score.EndingTsumo, h.Ending)
	assert.Equal(t, "上家", h.Winner)
	assert.Equal(t, "満貫", h.WinningValue)
	assert.Equal(t, 2, h.WinningDora)
	assert.Equal(t, []score.Yaku{score.YakuTanyao, score.YakuSanshokuDoujun}, h.WinningYakuList)
}

func TestParseMultipleGames(t *testing.T) {
	second := strings.ReplaceAll(SampleLog, "2016/01/01", "2016/02/01")
	games, err := ParseScoreFromReader(strings.NewReader(SampleLog+second), nil)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(games))
	for _, g := range games {
		assert.NotEmpty(t, g.StartedAt)
		assert.NotEmpty(t, g.FinishedAt)
		assert.Equal(t, 5, len(g.Hands))
	}
}

func TestDateFilter(t *testing.T) {
	second := strings.ReplaceAll(SampleLog, "2016/01/01", "2016/02/01")
	input := SampleLog + second

	games, err := ParseScoreFromReader(strings.NewReader(input), &Options{
		Until: "2016/02/01",
	})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(games))
	assert.Equal(t, "2016/01/01 00:43", games[0].StartedAt)

	games, err = ParseScoreFromReader(strings.NewReader(input), &Options{
		Since: "2016/02/01",
	})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(games))
	assert.Equal(t, "2016/02/01 00:43", games[0].StartedAt)

	games, err = ParseScoreFromReader(strings.NewReader(input), &Options{
		Since: "2017/01/01",
	})
	assert.Nil(t, err)
	assert.Equal(t, 0, len(games))
}

const shuffledStartHands = `===== 開始 2016/01/01 10:00 =====
持点25000 [1]A R1500 [2]B R1500 [3]C R1500 [4]D R1500
東1局 0本場(リーチ0) A +1000 B -1000
30符 一飜ロン 役牌
[3西]1p2p3p4p5p6p7p8p9p1m2m3m4m
[1東]1m2m3m4m5m6m7m8m9m1p2p3p4p
[4北]1s2s3s4s5s6s7s8s9s1p2p3p4p
[2南]2m3m4m5m6m7m8m9m1s2s3s4s5s
[表ドラ]5p
* 1G4s 2G5s 2d5s 1A
--- 試合結果 ---
1位 A +30
2位 B +10
3位 C -10
4位 D -30
----- 終了 2016/01/01 10:05 -----
`

func TestStartHandsOutOfOrder(t *testing.T) {
	games, err := ParseScoreFromReader(strings.NewReader(shuffledStartHands), nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(games))

	h := games[0].Hands[0]
	// Seats come from the line content, not the line order.
	assert.Equal(t, [4]string{"東", "南", "西", "北"}, h.SeatTable)
	assert.True(t, strings.HasPrefix(h.StartHandTable[0], "1m"))
	assert.True(t, strings.HasPrefix(h.StartHandTable[2], "1p"))
}

func TestStrictMode(t *testing.T) {
	corrupted := strings.Replace(SampleLog,
		"東1局 0本場(リーチ0) あなた +2600 対面 -2600",
		"?!corrupted!?\n東1局 0本場(リーチ0) あなた +2600 対面 -2600", 1)

	// Permissive parsing skips the noise.
	games, err := ParseScoreFromReader(strings.NewReader(corrupted), nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(games))
	assert.Equal(t, 5, len(games[0].Hands))

	_, err = ParseScoreFromReader(strings.NewReader(corrupted), &Options{Strict: true})
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "HandState", perr.State)
	assert.Equal(t, "?!corrupted!?", perr.Line)
}

func TestShiftJISInput(t *testing.T) {
	encoded, err := japanese.ShiftJIS.NewEncoder().String(shuffledStartHands)
	assert.Nil(t, err)

	games, err := ParseScoreFromReader(strings.NewReader(encoded), &Options{Encoding: "sjis"})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(games))
	assert.Equal(t, "A", games[0].Hands[0].Winner)
}

func TestUnsupportedEncoding(t *testing.T) {
	_, err := ParseScoreFromReader(strings.NewReader(SampleLog), &Options{Encoding: "latin1"})
	assert.NotNil(t, err)
}
