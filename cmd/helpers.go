package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lcereceda/accessnav/internal/command"
	"github.com/lcereceda/accessnav/internal/cursor"
	"github.com/lcereceda/accessnav/internal/feedback"
	"github.com/lcereceda/accessnav/internal/platform"
	"github.com/lcereceda/accessnav/internal/settings"
)

// addSnapshotFlag adds the --snapshot flag shared by every command that
// reads a container.
func addSnapshotFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("snapshot", "s", "", "Container snapshot file (YAML or JSON), or '-' for stdin")
	cmd.MarkFlagRequired("snapshot")
}

// loadSnapshot reads and parses the snapshot named by --snapshot.
func loadSnapshot(cmd *cobra.Command) (*platform.Snapshot, error) {
	path, _ := cmd.Flags().GetString("snapshot")
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return platform.ParseSnapshot(data)
}

// newReader builds the container reader for --snapshot. A file path gets a
// re-reading FileReader so --watch rescans see fresh content.
func newReader(cmd *cobra.Command) (platform.Reader, string, error) {
	path, _ := cmd.Flags().GetString("snapshot")
	if path == "" {
		return nil, "", fmt.Errorf("--snapshot is required")
	}
	if path == "-" {
		return &platform.StreamReader{R: os.Stdin}, "", nil
	}
	return &platform.FileReader{Path: path}, path, nil
}

// newStore opens the settings store. --config overrides the default file
// location; an unreachable file degrades to in-memory defaults.
func newStore(cmd *cobra.Command) *settings.Store {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			logger.Warn("no config dir, settings will not persist")
			return settings.NewStore(nil, logger)
		}
	}
	return settings.NewStore(&settings.FileStorage{Path: path}, logger)
}

// addConfigFlag adds the --config override shared by settings-aware commands.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Settings file (default: user config dir)")
}

// newPhraseTable builds the phrase table for a locale, merging extra
// phrases from --phrases when given.
func newPhraseTable(cmd *cobra.Command, locale string) (*command.PhraseTable, error) {
	path, _ := cmd.Flags().GetString("phrases")
	if path == "" {
		return command.NewPhraseTable(locale), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open phrases file: %w", err)
	}
	defer f.Close()
	table, err := command.LoadPhrases(f, locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load phrases from %s: %w", path, err)
	}
	return table, nil
}

// addPhrasesFlag adds the --phrases vocabulary override.
func addPhrasesFlag(cmd *cobra.Command) {
	cmd.Flags().String("phrases", "", "Extra phrase vocabulary file (YAML, phrase: action)")
}

// applyAction routes one interpreted action to a navigation session.
// Help is answered with the phrase listing, since the cursor does not
// own the vocabulary; everything else goes to the cursor.
func applyAction(cur *cursor.Cursor, fb *feedback.Channel, table *command.PhraseTable, a command.Action) {
	if a.Kind == command.KindHelp {
		fb.Say(feedback.MessagesFor(fb.Settings.Get().Locale).Help(table.Phrases()))
		return
	}
	cur.Apply(a)
}

func nowUnix() int64 { return time.Now().Unix() }
