package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lcereceda/accessnav/internal/output"
	"github.com/lcereceda/accessnav/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change accessibility preferences",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore(cmd)
		if apply, _ := cmd.Flags().GetBool("apply"); apply {
			return output.Print(store.Get().Apply())
		}
		return output.Print(store.Get())
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set key=value [key=value ...]",
	Short: "Update one or more settings",
	Long: `Update settings by key. Boolean keys take true/false; font_size takes
small, medium, large, or extra-large.

Keys: font_size, high_contrast, reduced_motion, screen_reader_enabled,
keyboard_navigation_enabled, voice_output_enabled, voice_control_enabled,
locale

Example:
  accessnav settings set font_size=large screen_reader_enabled=true`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		partial, err := parseSettingsArgs(args)
		if err != nil {
			return err
		}
		store := newStore(cmd)
		return output.Print(store.Update(partial))
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newStore(cmd)
		return output.Print(store.Reset())
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd, settingsResetCmd)
	addConfigFlag(settingsGetCmd)
	addConfigFlag(settingsSetCmd)
	addConfigFlag(settingsResetCmd)
	settingsGetCmd.Flags().Bool("apply", false, "Print the derived presentation flags instead")
}

// parseSettingsArgs converts key=value pairs into a settings delta.
func parseSettingsArgs(args []string) (settings.Partial, error) {
	var p settings.Partial
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return p, fmt.Errorf("expected key=value, got %q", arg)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "font_size":
			fs, err := settings.ParseFontSize(value)
			if err != nil {
				return p, err
			}
			p.FontSize = &fs
		case "locale":
			if value == "" {
				return p, fmt.Errorf("locale cannot be empty")
			}
			p.Locale = &value
		case "high_contrast", "reduced_motion", "screen_reader_enabled",
			"keyboard_navigation_enabled", "voice_output_enabled",
			"voice_control_enabled":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return p, fmt.Errorf("%s: expected true or false, got %q", key, value)
			}
			switch key {
			case "high_contrast":
				p.HighContrast = &b
			case "reduced_motion":
				p.ReducedMotion = &b
			case "screen_reader_enabled":
				p.ScreenReaderEnabled = &b
			case "keyboard_navigation_enabled":
				p.KeyboardNavigationEnabled = &b
			case "voice_output_enabled":
				p.VoiceOutputEnabled = &b
			case "voice_control_enabled":
				p.VoiceControlEnabled = &b
			}
		default:
			return p, fmt.Errorf("unknown setting: %s", key)
		}
	}
	return p, nil
}
