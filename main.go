package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"hearts/config"
	"hearts/meta"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type output struct {
	Config config.Config     `json:"config"`
	Heads  []string          `json:"heads"`
	Shapes map[string]string `json:"shapes"`
}

func main() {
	envFile := flag.String("env", "", "Dotenv file to load before reading DECK_* variables")
	quiet := flag.Bool("quiet", false, "Do not log overridden variables")
	asJSON := flag.Bool("json", false, "Print the configuration as JSON")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	if err := run(os.Stdout, *envFile, *asJSON); err != nil {
		log.Error().Err(err).Msg("failed to resolve configuration")
		os.Exit(1)
	}
}

func run(w io.Writer, envFile string, asJSON bool) error {
	// godotenv.Load does not override variables already set in the environment
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log.Debug().Object("config", cfg).Msg("configuration resolved")

	out := output{
		Config: cfg,
		Heads:  cfg.Heads(),
		Shapes: map[string]string{
			"deck":             meta.DeckShape().String(),
			meta.MainData:      meta.MainInputShape().String(),
			"suits_ranks":      meta.SuitsRanksShape().String(),
			"points_so_far":    meta.PointsSoFarShape().String(),
			meta.ExpectedScore: meta.ScoresShape().String(),
			meta.WinTrickProb:  meta.WinTrickProbsShape().String(),
			meta.MoonProb:      meta.MoonProbsShape().String(),
		},
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(w, "batch:  %d\n", cfg.Batch)
	fmt.Fprintf(w, "epochs: %d\n", cfg.Epochs)
	fmt.Fprintf(w, "heads:  %v\n", out.Heads)
	fmt.Fprintf(w, "main input features: %d\n", meta.TotalScalarFeatures)
	for _, name := range []string{"deck", meta.MainData, "suits_ranks", "points_so_far", meta.ExpectedScore, meta.WinTrickProb, meta.MoonProb} {
		fmt.Fprintf(w, "%-16s %s\n", name, out.Shapes[name])
	}
	return nil
}
