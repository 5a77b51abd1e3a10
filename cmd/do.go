package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lcereceda/accessnav/internal/command"
	"github.com/lcereceda/accessnav/internal/cursor"
	"github.com/lcereceda/accessnav/internal/feedback"
	"github.com/lcereceda/accessnav/internal/index"
	"github.com/lcereceda/accessnav/internal/output"
	"github.com/lcereceda/accessnav/internal/settings"
)

// DoResult is the output of a batch navigation run.
type DoResult struct {
	OK        bool           `yaml:"ok"              json:"ok"`
	Steps     int            `yaml:"steps"           json:"steps"`
	Completed int            `yaml:"completed"       json:"completed"`
	Error     string         `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []DoStepResult `yaml:"results"         json:"results"`
}

// DoStepResult is the outcome of one batch step.
type DoStepResult struct {
	Step          int      `yaml:"step"               json:"step"`
	OK            bool     `yaml:"ok"                 json:"ok"`
	Input         string   `yaml:"input"              json:"input"`
	Action        string   `yaml:"action"             json:"action"`
	Position      int      `yaml:"position"           json:"position"`
	Announcements []string `yaml:"announcements"      json:"announcements"`
	Error         string   `yaml:"error,omitempty"    json:"error,omitempty"`
}

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Run a scripted navigation sequence over a snapshot",
	Long: `Execute a sequence of navigation inputs from a YAML list on stdin.

Each step is either a voice phrase or a key press. Steps run sequentially
through the full pipeline (interpreter, cursor, feedback) and the output
records the action and announcements of every step.

Example:
  accessnav do --snapshot page.yaml <<'EOF'
  - say: ir al formulario
  - key: down
  - say: activar
  - key: escape
  EOF`,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	addSnapshotFlag(doCmd)
	addPhrasesFlag(doCmd)
	doCmd.Flags().String("locale", "es-ES", "Vocabulary and announcement locale")
	doCmd.Flags().Bool("stop-on-error", true, "Stop on the first unrecognized input")
	doCmd.Flags().String("steps", "", "Steps file (default: stdin)")
}

type doStep struct {
	Say string `yaml:"say,omitempty"`
	Key string `yaml:"key,omitempty"`
}

func runDo(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd)
	if err != nil {
		return err
	}

	var data []byte
	if path, _ := cmd.Flags().GetString("steps"); path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read steps: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("no steps provided — pipe a YAML list of inputs")
	}

	var steps []doStep
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(steps) == 0 {
		return fmt.Errorf("no steps provided — expected a YAML list of inputs")
	}

	locale, _ := cmd.Flags().GetString("locale")
	table, err := newPhraseTable(cmd, locale)
	if err != nil {
		return err
	}
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	store := settings.NewStore(nil, logger)
	on := true
	store.Update(settings.Partial{ScreenReaderEnabled: &on, Locale: &locale})

	fb := feedback.NewChannel(store, nil, nil, logger)
	var announced []string
	fb.OnText = func(s string) { announced = append(announced, s) }

	cur := cursor.New(fb, nil, logger)
	cur.Start(index.Build(snap.Elements))
	interp := command.NewInterpreter(table)

	result := DoResult{OK: true, Steps: len(steps)}
	for i, step := range steps {
		announced = nil
		res := DoStepResult{Step: i + 1, OK: true}

		var action command.Action
		switch {
		case step.Key != "":
			res.Input = step.Key
			var ok bool
			if action, ok = command.MapKey(step.Key); !ok {
				action = command.Unrecognized(step.Key)
			}
		case step.Say != "":
			res.Input = step.Say
			action = interp.Interpret(step.Say)
		default:
			res.OK = false
			res.Error = "step needs 'say' or 'key'"
		}

		if res.Error == "" {
			applyAction(cur, fb, table, action)
			res.Action = action.Kind.String()
			res.Position = cur.Position()
			res.Announcements = announced
			if action.Kind == command.KindUnrecognized {
				res.OK = false
				res.Error = fmt.Sprintf("unrecognized input: %s", res.Input)
			}
		}

		result.Results = append(result.Results, res)
		if !res.OK {
			result.OK = false
			result.Error = res.Error
			if stopOnError {
				break
			}
			continue
		}
		result.Completed++
		if cur.State() == cursor.Idle {
			break
		}
	}

	return output.Print(result)
}
