package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validGame() *Game {
	return &Game{
		StartedAt:  "2016/01/01 00:43",
		FinishedAt: "2016/01/01 00:47",
		Players:    []string{"a", "b", "c", "d"},
		Hands: []*Hand{
			{
				Title:   "東1局 0本場(リーチ0)",
				Ending:  EndingRon,
				Winner:  "a",
				Balance: map[string]int{"a": 2600, "c": -2600},
			},
		},
		Result: []Placing{
			{Player: "a", Points: 30},
			{Player: "b", Points: 10},
			{Player: "c", Points: -10},
			{Player: "d", Points: -30},
		},
	}
}

func TestValidate(t *testing.T) {
	assert.Nil(t, validGame().Validate())
}

func TestValidatePlayerCount(t *testing.T) {
	g := validGame()
	g.Players = g.Players[:3]
	err := g.Validate()
	var ierr *DataIntegrityError
	assert.ErrorAs(t, err, &ierr)
}

func TestValidateDuplicateRanking(t *testing.T) {
	g := validGame()
	g.Result[1].Player = "a"
	assert.NotNil(t, g.Validate())
}

func TestValidateWinnerWithoutBalance(t *testing.T) {
	g := validGame()
	g.Hands[0].Balance = map[string]int{"c": -2600}
	err := g.Validate()
	var ierr *DataIntegrityError
	assert.ErrorAs(t, err, &ierr)
}

func TestValidateWinWithoutWinner(t *testing.T) {
	g := validGame()
	g.Hands[0].Winner = ""
	assert.NotNil(t, g.Validate())
}

func TestIsWin(t *testing.T) {
	assert.True(t, (&Hand{Ending: EndingRon}).IsWin())
	assert.True(t, (&Hand{Ending: EndingTsumo}).IsWin())
	assert.False(t, (&Hand{Ending: DrawExhaustive}).IsWin())
	assert.False(t, (&Hand{Ending: DrawFourWinds}).IsWin())
}
