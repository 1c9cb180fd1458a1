// Package history implements the wordfreq history command.
package history

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordfreq/pkg/db"
)

// HistoryAction lists past runs from the run-history database.
func HistoryAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open run history database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("#%d  %s  %s\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), run.URL)
		fmt.Printf("     language=%s workers=%d tokens=%d distinct=%d duration=%v\n",
			run.Language, run.WorkerCount, run.TotalTokens, run.DistinctWords, run.Duration)
		if len(run.TopWords) > 0 {
			fmt.Printf("     top: %s\n", strings.Join(run.TopWords, ", "))
		}
	}
	return nil
}
