package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lcereceda/accessnav/internal/command"
	"github.com/lcereceda/accessnav/internal/engine"
	"github.com/lcereceda/accessnav/internal/platform"
	"github.com/lcereceda/accessnav/internal/settings"
	"github.com/lcereceda/accessnav/internal/speech"
)

var navigateCmd = &cobra.Command{
	Use:   "navigate",
	Short: "Run an interactive navigation session over a snapshot",
	Long: `Start a navigation session. Each stdin line is an input: known key
names (down, up, enter, escape, ...) act as keystrokes, anything else is
treated as a voice transcript. Announcements print to stdout; add --speak
to also hear them through the platform synthesizer.

With --watch the snapshot file is monitored and the index rebuilt when it
changes. With --voice-script a file of transcript lines drives the session
through the recognition pipeline instead of stdin heuristics.

Examples:
  accessnav navigate --snapshot page.yaml
  accessnav navigate --snapshot page.yaml --watch --speak
  accessnav navigate --snapshot page.yaml --voice-script session.txt`,
	RunE: runNavigate,
}

func init() {
	rootCmd.AddCommand(navigateCmd)
	addSnapshotFlag(navigateCmd)
	addConfigFlag(navigateCmd)
	addPhrasesFlag(navigateCmd)
	navigateCmd.Flags().Bool("watch", false, "Rebuild the index when the snapshot file changes")
	navigateCmd.Flags().Bool("speak", false, "Speak announcements through the platform synthesizer")
	navigateCmd.Flags().String("voice-script", "", "Transcript file driving the session via the recognition pipeline")
}

func runNavigate(cmd *cobra.Command, args []string) error {
	reader, path, err := newReader(cmd)
	if err != nil {
		return err
	}
	// Runtime toggles below are session state, not user preference
	// mutations, so the persisted values seed a memory-only store.
	store := settings.NewSessionStore(newStore(cmd).Get(), logger)

	provider := &platform.Provider{
		Reader:     reader,
		Permission: speech.GrantedPermission{},
	}
	if speak, _ := cmd.Flags().GetBool("speak"); speak {
		synth, ok := platform.NewSynthesizer()
		if ok {
			provider.Synth = synth
			on := true
			store.Update(settings.Partial{VoiceOutputEnabled: &on})
		}
	}

	var scriptFile *os.File
	if script, _ := cmd.Flags().GetString("voice-script"); script != "" {
		scriptFile, err = os.Open(script)
		if err != nil {
			return fmt.Errorf("failed to open voice script: %w", err)
		}
		defer scriptFile.Close()
		provider.Recognizer = &speech.ScriptRecognizer{R: scriptFile}
		on := true
		store.Update(settings.Partial{
			VoiceControlEnabled:         &on,
			MicrophonePermissionGranted: &on,
		})
	}

	table, err := newPhraseTable(cmd, store.Get().Locale)
	if err != nil {
		return err
	}

	e := engine.New(provider, store, logger, engine.WithPhraseTable(table))
	e.Feedback.OnText = func(s string) { fmt.Println(s) }
	on := true
	store.Update(settings.Partial{ScreenReaderEnabled: &on})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		if path == "" {
			return fmt.Errorf("--watch needs a snapshot file, not stdin")
		}
		if werr := platform.WatchFile(ctx, path, logger, e.Rescan); werr != nil {
			return fmt.Errorf("failed to watch snapshot: %w", werr)
		}
	}

	// Keys and transcripts arrive through the same engine channel the live
	// recognizer uses.
	if scriptFile == nil {
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				if _, ok := command.MapKey(line); ok {
					e.Submit(engine.Event{Key: line})
				} else {
					e.Submit(engine.Event{Transcript: line})
				}
			}
			cancel()
		}()
	}

	return e.Run(ctx)
}
