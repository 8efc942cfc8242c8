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

	"github.com/jsredmond/grue/internal/parser"
	"github.com/jsredmond/grue/internal/persistence"
	"github.com/jsredmond/grue/internal/session"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var playCmd = &cobra.Command{
	Use:   "play [world_dir]",
	Short: "Start an interactive game",
	Long: `Starts an interactive game session. With a world directory argument the
game definitions (world.yaml, vocabulary.yaml, syntax.yaml) are loaded
from it; without one the game_dir config value is used, and failing
that the built-in starter world.

Progress is journaled to the save file after every turn, so quitting
and resuming with the same --save path continues the same game.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		savePath, _ := cmd.Flags().GetString("save")
		plain, _ := cmd.Flags().GetBool("plain")

		worldDir := viper.GetString("game_dir")
		if len(args) == 1 {
			worldDir = args[0]
		}

		var dataDirs []string
		worldName := "builtin"
		if worldDir != "" {
			worldName = filepath.Base(worldDir)
			dataDirs = []string{filepath.Join(worldDir, "data"), worldDir}
			if savePath == "" {
				savePath = filepath.Join(worldDir, "save.jsonl")
			}
		}
		if savePath == "" {
			savePath = "save.jsonl"
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

		if plain {
			if err := runPlain(app); err != nil {
				fmt.Printf("Fatal error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := RunTUI(app, worldName); err != nil {
			fmt.Printf("Fatal TUI Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// sessionOptions resolves parser behavior from viper configuration.
func sessionOptions() session.Options {
	return session.Options{
		DropOrder:   parser.DropOrder(viper.GetString("drop_order")),
		Suggestions: viper.GetBool("suggestions"),
	}
}

// runPlain runs a line-oriented read-eval-print loop on stdin, for terminals
// and scripts that cannot host the full-screen interface.
func runPlain(app *session.Session) error {
	fmt.Println(app.Look())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		text, err := app.Execute(input)
		if err == session.ErrQuit {
			fmt.Println("Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(text)
	}
	return scanner.Err()
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("save", "s", "", "Path of the save file (default is save.jsonl next to the world)")
	playCmd.Flags().Bool("plain", false, "Use a plain line-based prompt instead of the full-screen interface")
}
