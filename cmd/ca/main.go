//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"eca-density/internal/app"
	"eca-density/internal/automaton"
	"eca-density/internal/config"
	"eca-density/internal/core"
	"eca-density/internal/logging"
	_ "eca-density/internal/rules/constant"
	_ "eca-density/internal/rules/elementary"
	_ "eca-density/internal/rules/gkl"
	_ "eca-density/internal/rules/majority"
	_ "eca-density/internal/rules/parity"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	exp, err := config.Load(cfg.Config)
	if err != nil {
		log.Fatal(err)
	}
	if err := exp.Validate(); err != nil {
		log.Fatal(err)
	}
	logger := logging.NewLogger(exp.Logging.Level, os.Stderr)

	r, err := core.NewRule(cfg.Rule, exp.Experiment.Arity, nil)
	if err != nil {
		log.Fatal(err)
	}
	eca, err := automaton.New(exp.Experiment.Size, exp.Experiment.Arity)
	if err != nil {
		log.Fatal(err)
	}
	if err := eca.BindRule(r); err != nil {
		log.Fatal(err)
	}

	game := app.New(eca, cfg.Rows, cfg.Scale, cfg.SPS, cfg.Seed, logger)

	ebiten.SetWindowTitle("eca-density: " + cfg.Rule)
	ebiten.SetWindowSize(eca.Size()*cfg.Scale, cfg.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
