package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lcereceda/accessnav/internal/index"
	"github.com/lcereceda/accessnav/internal/output"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Build the navigation index from a container snapshot",
	Long: `Scan a container snapshot and output the ordered index of navigable
elements: enabled, interactive elements in document order. This is the
sequence the navigation cursor moves through.

Examples:
  accessnav scan --snapshot page.yaml
  cat page.json | accessnav scan --snapshot - --format json`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	addSnapshotFlag(scanCmd)
	scanCmd.Flags().Bool("tree", false, "Output the raw element tree instead of the index")
}

func runScan(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}

	if tree, _ := cmd.Flags().GetBool("tree"); tree {
		return output.Print(output.TreeResult{
			App:      snap.App,
			Window:   snap.Window,
			TS:       nowUnix(),
			Elements: snap.Elements,
		})
	}

	ix := index.Build(snap.Elements)
	return output.Print(output.ScanResult{
		App:      snap.App,
		Window:   snap.Window,
		TS:       nowUnix(),
		Total:    ix.Len(),
		Elements: ix.Entries(),
	})
}
