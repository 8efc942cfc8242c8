/*
Copyright © 2026 Jesse Redmond
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsredmond/grue/internal/persistence"
	"github.com/jsredmond/grue/internal/session"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <transcript> [world_dir]",
	Short: "Replay a transcript of commands into a save file",
	Long: `Reads a transcript file with one command per line, runs each command in
order and journals the resulting events to the save file. Lines starting
with '#' and blank lines are skipped.

Useful for regression-checking a game after editing its world files, or
for fast-forwarding a fresh save to a known position. With --output the
full command/response exchange is written to a file, which can be diffed
against a known-good transcript.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		transcriptPath := args[0]
		savePath, _ := cmd.Flags().GetString("save")
		verbose, _ := cmd.Flags().GetBool("verbose")
		outputPath, _ := cmd.Flags().GetString("output")

		var dataDirs []string
		if len(args) == 2 {
			worldDir := args[1]
			dataDirs = []string{filepath.Join(worldDir, "data"), worldDir}
		}
		if savePath == "" {
			savePath = "save.jsonl"
		}

		lines, err := readTranscript(transcriptPath)
		if err != nil {
			fmt.Printf("Failed to read transcript: %v\n", err)
			os.Exit(1)
		}

		store, err := persistence.NewStore(savePath)
		if err != nil {
			fmt.Printf("Failed to open save file: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		app, err := session.NewSession(dataDirs, store, sessionOptions())
		if err != nil {
			fmt.Printf("Failed to bootstrap game session: %v\n", err)
			os.Exit(1)
		}

		var output *os.File
		if outputPath != "" {
			output, err = os.Create(outputPath)
			if err != nil {
				fmt.Printf("Failed to create output file: %v\n", err)
				os.Exit(1)
			}
			defer output.Close()
		}

		bar := progressbar.Default(int64(len(lines)), "Replaying")

		for i, line := range lines {
			text, err := app.Execute(line)
			if err == session.ErrQuit {
				bar.Add(1)
				break
			}
			if err != nil {
				fmt.Printf("\nCommand %d (%q) failed: %v\n", i+1, line, err)
				os.Exit(1)
			}
			if verbose {
				fmt.Printf("\n> %s\n%s\n", line, text)
			}
			if output != nil {
				fmt.Fprintf(output, "> %s\n%s\n\n", line, text)
			}
			bar.Add(1)
		}

		state := app.State()
		fmt.Printf("\nReplay complete: %d moves, score %d, in %s.\n",
			state.Moves, state.Score, state.Location)
	},
}

func readTranscript(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringP("save", "s", "", "Path of the save file to journal into")
	replayCmd.Flags().BoolP("verbose", "v", false, "Print each command's response while replaying")
	replayCmd.Flags().StringP("output", "o", "", "Write the command/response exchange to a file")
}
