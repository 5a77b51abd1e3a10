package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcereceda/accessnav/internal/feedback"
	"github.com/lcereceda/accessnav/internal/index"
	"github.com/lcereceda/accessnav/internal/output"
)

var announceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Render the announcement for one element of a snapshot",
	Long: `Build the index from a snapshot and print the announcement text for the
element at a position, exactly as a navigation session would speak it.

Examples:
  accessnav announce --snapshot page.yaml --position 2
  accessnav announce --snapshot page.yaml --position 0 --locale en`,
	RunE: runAnnounce,
}

func init() {
	rootCmd.AddCommand(announceCmd)
	addSnapshotFlag(announceCmd)
	announceCmd.Flags().Int("position", 0, "0-based index position to announce")
	announceCmd.Flags().String("locale", "es-ES", "Announcement locale")
}

func runAnnounce(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}
	ix := index.Build(snap.Elements)
	if ix.Len() == 0 {
		return fmt.Errorf("snapshot has no navigable elements")
	}
	pos, _ := cmd.Flags().GetInt("position")
	if pos < 0 || pos >= ix.Len() {
		return fmt.Errorf("position %d out of range [0, %d]", pos, ix.Len()-1)
	}

	locale, _ := cmd.Flags().GetString("locale")
	entry := ix.At(pos)
	return output.Print(output.StepResult{
		Position:     pos,
		Total:        ix.Len(),
		ID:           entry.ID,
		Role:         string(entry.Role),
		Label:        entry.Label,
		Announcement: feedback.Announce(entry, pos, ix.Len(), locale),
	})
}
