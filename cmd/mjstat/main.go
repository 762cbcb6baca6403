package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/showa-yojyo/mjstat/config"
	"github.com/showa-yojyo/mjstat/report"
	"github.com/showa-yojyo/mjstat/score"
	"github.com/showa-yojyo/mjstat/scoreio"
	"github.com/showa-yojyo/mjstat/stats"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "mjstat",
	Short:        "Summarize mahjong results recorded in an mjscore.txt log",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	f := rootCmd.Flags()
	f.String("input", "mjscore.txt", "path of the score log")
	f.String("encoding", "utf-8", "input encoding (utf-8 or sjis)")
	f.String("target", config.TargetAll, `player to evaluate, or "all"`)
	f.String("since", "", "skip games started before this date (YYYY/MM/DD)")
	f.String("until", "", "skip games started on or after this date")
	f.Bool("fundamental", true, "compute fundamental statistics")
	f.Bool("yaku", false, "compute yaku frequencies")
	f.String("lang", "en", "report language ("+strings.Join(report.Languages(), ", ")+")")
	f.Bool("strict", false, "fail on unrecognized log lines")
	f.Bool("dump", false, "print the parsed records as JSON and exit")
	f.BoolP("verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	games, err := scoreio.ParseScore(cfg.Input, &scoreio.Options{
		Encoding: cfg.Encoding,
		Since:    cfg.Since,
		Until:    cfg.Until,
		Strict:   cfg.Strict,
	})
	if err != nil {
		log.Error().Err(err).Str("input", cfg.Input).Msg("parse failed")
		return err
	}
	for i, g := range games {
		if err := g.Validate(); err != nil {
			log.Error().Err(err).Int("game", i).Msg("broken game record")
			return err
		}
	}

	if cfg.Dump {
		out, err := json.MarshalIndent(games, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	targets := []string{cfg.Target}
	if cfg.Target == config.TargetAll {
		targets = lo.Uniq(lo.FlatMap(games, func(g *score.Game, _ int) []string {
			return g.Players
		}))
	}
	opts := stats.Options{
		Fundamental:   cfg.Fundamental,
		YakuFrequency: cfg.YakuFrequency,
	}
	for _, target := range targets {
		ps, err := stats.Evaluate(games, target, opts)
		if err != nil {
			log.Error().Err(err).Str("player", target).Msg("evaluation failed")
			return err
		}
		if err := report.Render(cmd.OutOrStdout(), ps, cfg.Language); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
