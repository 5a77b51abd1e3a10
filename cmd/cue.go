package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcereceda/accessnav/internal/audio"
	"github.com/lcereceda/accessnav/internal/feedback"
)

var cueCmd = &cobra.Command{
	Use:   "cue",
	Short: "Render a spatial audio cue to a WAV file",
	Long: `Render the audio cue a navigation step would play: a position tone whose
pitch rises with list position and whose stereo pan follows the movement
direction, or the two-tone activation chord.

Examples:
  accessnav cue --position 2 --total 7 --direction right --out cue.wav
  accessnav cue --activation --out chord.wav`,
	RunE: runCue,
}

func init() {
	rootCmd.AddCommand(cueCmd)
	cueCmd.Flags().Int("position", 0, "0-based element position")
	cueCmd.Flags().Int("total", 1, "Total navigable elements")
	cueCmd.Flags().String("direction", "center", "Movement direction: left, right, center")
	cueCmd.Flags().Bool("activation", false, "Render the activation chord instead of a position tone")
	cueCmd.Flags().StringP("out", "o", "", "Output WAV file (default: stdout)")
	cueCmd.Flags().Int("sample-rate", audio.DefaultSampleRate, "WAV sample rate in Hz")
}

func runCue(cmd *cobra.Command, args []string) error {
	cfg := feedback.DefaultToneConfig()

	var tones []audio.ToneSpec
	if activation, _ := cmd.Flags().GetBool("activation"); activation {
		tones = cfg.ActivationChord()
	} else {
		pos, _ := cmd.Flags().GetInt("position")
		total, _ := cmd.Flags().GetInt("total")
		if total < 1 {
			return fmt.Errorf("--total must be at least 1")
		}
		if pos < 0 || pos >= total {
			return fmt.Errorf("position %d out of range [0, %d]", pos, total-1)
		}
		dir, err := parseDirection(cmd)
		if err != nil {
			return err
		}
		tones = []audio.ToneSpec{cfg.PositionTone(pos, total, dir)}
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	rate, _ := cmd.Flags().GetInt("sample-rate")
	return audio.WriteWAV(out, rate, tones...)
}

func parseDirection(cmd *cobra.Command) (feedback.Direction, error) {
	s, _ := cmd.Flags().GetString("direction")
	switch s {
	case "left":
		return feedback.Left, nil
	case "right":
		return feedback.Right, nil
	case "center", "":
		return feedback.Center, nil
	default:
		return feedback.Center, fmt.Errorf("unknown direction: %s (use left, right, center)", s)
	}
}
