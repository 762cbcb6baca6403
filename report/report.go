// Package report renders a PlayerStats value as human-readable text in a
// requested language. The language is an explicit parameter of every call;
// nothing is cached per language at module level.
package report

import (
	"fmt"
	"io"
	"text/template"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/showa-yojyo/mjstat/score"
	"github.com/showa-yojyo/mjstat/stats"
)

var funcs = template.FuncMap{
	"pct": func(r float64) string { return fmt.Sprintf("%.2f%%", r*100) },
	"f2":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

const textEN = `Player: {{.Name}}
Games: {{.CountGames}}
Hands: {{.CountHands}}
Placings (1st/2nd/3rd/4th): {{index .PlacingDistr 0}}-{{index .PlacingDistr 1}}-{{index .PlacingDistr 2}}-{{index .PlacingDistr 3}}
Mean placing: {{f2 .MeanPlacing}}
First placing rate: {{pct .FirstPlacingRate}}
Last placing rate: {{pct .LastPlacingRate}}
Winning rate: {{pct .WinningRate}} ({{.WinningCount}} wins)
Winning mean: {{f2 .WinningMean}} pts / {{f2 .WinningMeanHan}} han / {{f2 .WinningMeanTurns}} turns
Deal-in rate: {{pct .LODRate}} ({{.LODCount}} times, mean {{f2 .LODMean}} pts)
Riichi rate: {{pct .RiichiRate}} ({{.RiichiCount}} times)
Melding rate: {{pct .MeldingRate}} ({{.MeldingCount}} calls)
`

const textJA = `プレイヤー: {{.Name}}
対戦数: {{.CountGames}}
局数: {{.CountHands}}
順位 (1着-2着-3着-4着): {{index .PlacingDistr 0}}-{{index .PlacingDistr 1}}-{{index .PlacingDistr 2}}-{{index .PlacingDistr 3}}
平均順位: {{f2 .MeanPlacing}}
トップ率: {{pct .FirstPlacingRate}}
ラス率: {{pct .LastPlacingRate}}
和了率: {{pct .WinningRate}} ({{.WinningCount}}回)
平均和了点: {{f2 .WinningMean}}点 / 平均{{f2 .WinningMeanHan}}飜 / 平均{{f2 .WinningMeanTurns}}巡
放銃率: {{pct .LODRate}} ({{.LODCount}}回, 平均{{f2 .LODMean}}点)
立直率: {{pct .RiichiRate}} ({{.RiichiCount}}回)
副露率: {{pct .MeldingRate}} ({{.MeldingCount}}回)
`

var templates = map[string]*template.Template{
	"en": template.Must(template.New("en").Funcs(funcs).Parse(textEN)),
	"ja": template.Must(template.New("ja").Funcs(funcs).Parse(textJA)),
}

var yakuHeaders = map[string]table.Row{
	"en": {"Yaku", "Count"},
	"ja": {"役", "回数"},
}

// Render writes the statistics report for ps to w. The yaku frequency
// table is included only when ps carries one; rows with a zero count are
// left out.
func Render(w io.Writer, ps *stats.PlayerStats, lang string) error {
	tmpl, ok := templates[lang]
	if !ok {
		return fmt.Errorf("report: unsupported language %q", lang)
	}
	if err := tmpl.Execute(w, ps); err != nil {
		return err
	}
	if ps.YakuFreq == nil {
		return nil
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(yakuHeaders[lang])
	for _, y := range score.AllYaku() {
		if n := ps.YakuFreq[y]; n > 0 {
			t.AppendRow(table.Row{y.String(), n})
		}
	}
	t.Render()
	return nil
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "ja"}
}
