package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordfreq/internal/count"
	"github.com/dtnitsch/wordfreq/internal/history"
	"github.com/dtnitsch/wordfreq/models"
)

func main() {
	app := &cli.App{
		Name:           "wordfreq",
		Usage:          "concurrent word-frequency analysis of remote texts",
		DefaultCommand: "count",
		Commands: []*cli.Command{
			{
				Name:   "count",
				Usage:  "fetch a text, count word frequencies in parallel, and show the top words",
				Action: count.CountAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "URL to fetch text from",
						Value: models.DefaultURL,
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "number of parallel counting workers",
						Value:   models.DefaultWorkers,
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"n"},
						Usage:   "number of top words to display",
						Value:   models.DefaultTopN,
					},
					&cli.BoolFlag{
						Name:  "skip-common",
						Usage: "drop common stopwords before counting",
					},
					&cli.StringFlag{
						Name:  "log-level",
						Usage: "log level: debug, info, warn, error",
						Value: "info",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "directory for run summary artifacts",
						Value: models.DefaultOutDir,
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "directory for cached source texts",
						Value: models.DefaultCacheDir,
					},
					&cli.StringFlag{
						Name:  "max-age",
						Usage: "reuse cached text younger than this duration",
						Value: "24h",
					},
					&cli.BoolFlag{
						Name:  "force-fetch",
						Usage: "ignore the cache and fetch fresh text",
					},
					&cli.BoolFlag{
						Name:  "no-chart",
						Usage: "skip the terminal bar chart",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "optional YAML config file; explicit flags win",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "list recorded runs",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of runs to show",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
