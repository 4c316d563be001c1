package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/dynosim/dynosim"
	"github.com/dynosim/dynosim/types"
)

var opts struct {
	ConfigPath string
	Verbose    bool
}

func main() {
	app := &cli.App{
		Name:   "dynosim",
		Usage:  "simulated key-value table engine with query optimization advisors",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to a YAML file overriding costs and advisory thresholds",
				EnvVars:     []string{"DYNOSIM_CONFIG"},
				Destination: &opts.ConfigPath,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "log every operation charge",
				EnvVars:     []string{"DYNOSIM_VERBOSE"},
				Destination: &opts.Verbose,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx *cli.Context) error {
	logger := zerolog.New(os.Stderr).With().
		Str("service", "dynosim").
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)
	if opts.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	cfg := dynosim.DefaultConfig()
	if opts.ConfigPath != "" {
		loaded, err := dynosim.LoadConfig(opts.ConfigPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	client := dynosim.New(dynosim.WithConfig(cfg), dynosim.WithLogger(logger))
	client.Seed()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	put := client.PutItem("users", types.Item{
		"user_id": "u004",
		"name":    "Dana Lee",
		"email":   "dana@example.com",
		"age":     31,
		"city":    "New York",
	})
	if err := enc.Encode(put); err != nil {
		return err
	}

	if err := enc.Encode(client.Query("users", "age > 30")); err != nil {
		return err
	}

	if err := enc.Encode(client.Scan("users", "city = 'New York'")); err != nil {
		return err
	}

	if analysis := client.LatestIndexAnalysis(); analysis != nil {
		if err := enc.Encode(analysis); err != nil {
			return err
		}
	}

	return enc.Encode(client.Stats())
}
