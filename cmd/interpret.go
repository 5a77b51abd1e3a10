package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lcereceda/accessnav/internal/command"
	"github.com/lcereceda/accessnav/internal/output"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret [text]",
	Short: "Map a voice transcript or key name to a navigation action",
	Long: `Interpret an input the way a live session would: key names resolve
through the keyboard map, anything else goes through the phrase table with
substring and synonym fallbacks.

Examples:
  accessnav interpret "por favor, siguiente elemento"
  accessnav interpret --key shift+tab
  accessnav interpret "go to form" --locale en`,
	Args: cobra.ArbitraryArgs,
	RunE: runInterpret,
}

func init() {
	rootCmd.AddCommand(interpretCmd)
	interpretCmd.Flags().String("locale", "es-ES", "Vocabulary locale")
	interpretCmd.Flags().String("key", "", "Interpret a key name instead of a phrase")
	addPhrasesFlag(interpretCmd)
}

func runInterpret(cmd *cobra.Command, args []string) error {
	if key, _ := cmd.Flags().GetString("key"); key != "" {
		action, ok := command.MapKey(key)
		if !ok {
			action = command.Unrecognized(key)
		}
		return printAction(key, action)
	}

	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to interpret: pass text or --key")
	}

	locale, _ := cmd.Flags().GetString("locale")
	table, err := newPhraseTable(cmd, locale)
	if err != nil {
		return err
	}
	action := command.NewInterpreter(table).Interpret(text)
	return printAction(text, action)
}

func printAction(input string, a command.Action) error {
	res := output.InterpretResult{Input: input, Action: a.Kind.String()}
	if a.Kind == command.KindGoTo {
		res.Category = string(a.Category)
	}
	return output.Print(res)
}
