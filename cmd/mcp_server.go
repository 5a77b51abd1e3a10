package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/lcereceda/accessnav/internal/audio"
	"github.com/lcereceda/accessnav/internal/command"
	"github.com/lcereceda/accessnav/internal/cursor"
	"github.com/lcereceda/accessnav/internal/feedback"
	"github.com/lcereceda/accessnav/internal/index"
	"github.com/lcereceda/accessnav/internal/model"
	"github.com/lcereceda/accessnav/internal/output"
	"github.com/lcereceda/accessnav/internal/settings"
	"github.com/lcereceda/accessnav/internal/version"
)

// mcpServer wraps the MCP server with the snapshot cache, the settings
// store, and per-snapshot navigation sessions.
type mcpServer struct {
	cache    *snapshotCache
	store    *settings.Store
	mcp      *mcpserver.MCPServer
	mu       sync.Mutex
	sessions map[string]*mcpSession
}

// mcpSession is one stateful cursor over a snapshot path.
type mcpSession struct {
	cursor *cursor.Cursor
	fb     *feedback.Channel
	table  *command.PhraseTable
	interp *command.Interpreter
	texts  []string
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all accessnav tools.
func newMCPServer(cfg MCPConfig, store *settings.Store) (*mcpServer, error) {
	s := &mcpServer{
		cache:    newSnapshotCache(cfg.CacheTTL),
		store:    store,
		sessions: make(map[string]*mcpSession),
	}

	s.mcp = mcpserver.NewMCPServer(
		"accessnav",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// scan
	s.mcp.AddTool(
		mcp.NewTool("scan",
			mcp.WithDescription("Build the navigation index from a container snapshot: enabled interactive elements in document order, with IDs, roles, labels, and positions"),
			mcp.WithString("snapshot", mcp.Description("Snapshot file path (YAML or JSON)"), mcp.Required()),
			mcp.WithBoolean("tree", mcp.Description("Return the raw element tree instead of the index")),
		),
		s.handleScan,
	)

	// interpret
	s.mcp.AddTool(
		mcp.NewTool("interpret",
			mcp.WithDescription("Map a voice phrase or key name to a navigation action (next, previous, first, last, activate, repeat, help, cancel, goto)"),
			mcp.WithString("text", mcp.Description("Voice phrase to interpret")),
			mcp.WithString("key", mcp.Description("Key name to interpret instead (e.g. 'down', 'shift+tab')")),
			mcp.WithString("locale", mcp.Description("Vocabulary locale (default: es-ES)")),
		),
		s.handleInterpret,
	)

	// navigate
	s.mcp.AddTool(
		mcp.NewTool("navigate",
			mcp.WithDescription("Step a navigation session over a snapshot. The first call starts the session at the first element; each call applies one input (phrase or key) and returns the announcements, position, and audio cue"),
			mcp.WithString("snapshot", mcp.Description("Snapshot file path"), mcp.Required()),
			mcp.WithString("input", mcp.Description("Voice phrase or key name to apply")),
			mcp.WithBoolean("reset", mcp.Description("Discard the session and start over")),
		),
		s.handleNavigate,
	)

	// announce
	s.mcp.AddTool(
		mcp.NewTool("announce",
			mcp.WithDescription("Render the announcement text for an element at a given index position, as the screen reader would speak it"),
			mcp.WithString("snapshot", mcp.Description("Snapshot file path"), mcp.Required()),
			mcp.WithNumber("position", mcp.Description("0-based index position (default: 0)")),
			mcp.WithString("locale", mcp.Description("Announcement locale (default: es-ES)")),
		),
		s.handleAnnounce,
	)

	// cue
	s.mcp.AddTool(
		mcp.NewTool("cue",
			mcp.WithDescription("Compute the spatial audio cue for a position: frequency rising with list position, stereo pan following movement direction"),
			mcp.WithNumber("position", mcp.Description("0-based element position")),
			mcp.WithNumber("total", mcp.Description("Total navigable elements (default: 1)")),
			mcp.WithString("direction", mcp.Description("Movement direction: left, right, center")),
			mcp.WithBoolean("activation", mcp.Description("Return the activation chord instead")),
		),
		s.handleCue,
	)

	// settings_get
	s.mcp.AddTool(
		mcp.NewTool("settings_get",
			mcp.WithDescription("Read the current accessibility settings"),
		),
		s.handleSettingsGet,
	)

	// settings_set
	s.mcp.AddTool(
		mcp.NewTool("settings_set",
			mcp.WithDescription("Update accessibility settings; only the provided fields change"),
			mcp.WithString("font_size", mcp.Description("small, medium, large, extra-large")),
			mcp.WithBoolean("high_contrast", mcp.Description("High contrast mode")),
			mcp.WithBoolean("reduced_motion", mcp.Description("Reduced motion")),
			mcp.WithBoolean("screen_reader_enabled", mcp.Description("Screen reader announcements")),
			mcp.WithBoolean("keyboard_navigation_enabled", mcp.Description("Keyboard navigation")),
			mcp.WithBoolean("voice_output_enabled", mcp.Description("Spoken output")),
			mcp.WithBoolean("voice_control_enabled", mcp.Description("Voice command input")),
			mcp.WithString("locale", mcp.Description("Locale, e.g. es-ES")),
		),
		s.handleSettingsSet,
	)

	// settings_reset
	s.mcp.AddTool(
		mcp.NewTool("settings_reset",
			mcp.WithDescription("Restore default accessibility settings"),
		),
		s.handleSettingsReset,
	)
}

// stringParam reads a string argument with a default.
func stringParam(args map[string]any, key, def string) string {
	if v, ok := args[key]; ok {
		return cast.ToString(v)
	}
	return def
}

// intParam reads a numeric argument with a default.
func intParam(args map[string]any, key string, def int) int {
	if v, ok := args[key]; ok {
		return cast.ToInt(v)
	}
	return def
}

// boolParam reads a boolean argument with a default.
func boolParam(args map[string]any, key string, def bool) bool {
	if v, ok := args[key]; ok {
		return cast.ToBool(v)
	}
	return def
}

// yamlResult marshals v and wraps it as a text tool result.
func yamlResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *mcpServer) handleScan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	path := stringParam(args, "snapshot", "")
	if path == "" {
		return mcp.NewToolResultError("snapshot is required"), nil
	}
	snap, err := s.cache.load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if boolParam(args, "tree", false) {
		return yamlResult(output.TreeResult{
			App:      snap.App,
			Window:   snap.Window,
			TS:       nowUnix(),
			Elements: snap.Elements,
		})
	}
	ix := index.Build(snap.Elements)
	return yamlResult(output.ScanResult{
		App:      snap.App,
		Window:   snap.Window,
		TS:       nowUnix(),
		Total:    ix.Len(),
		Elements: ix.Entries(),
	})
}

func (s *mcpServer) handleInterpret(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	if key := stringParam(args, "key", ""); key != "" {
		action, ok := command.MapKey(key)
		if !ok {
			action = command.Unrecognized(key)
		}
		return yamlResult(interpretResult(key, action))
	}

	text := stringParam(args, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text or key is required"), nil
	}
	locale := stringParam(args, "locale", "es-ES")
	action := command.NewInterpreter(command.NewPhraseTable(locale)).Interpret(text)
	return yamlResult(interpretResult(text, action))
}

func interpretResult(input string, a command.Action) output.InterpretResult {
	res := output.InterpretResult{Input: input, Action: a.Kind.String()}
	if a.Kind == command.KindGoTo {
		res.Category = string(a.Category)
	}
	return res
}

// navigateResult is the per-step output of the navigate tool.
type navigateResult struct {
	Input         string   `yaml:"input,omitempty"`
	Action        string   `yaml:"action,omitempty"`
	Position      int      `yaml:"position"`
	Total         int      `yaml:"total"`
	Active        bool     `yaml:"active"`
	Announcements []string `yaml:"announcements"`
}

func (s *mcpServer) handleNavigate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	path := stringParam(args, "snapshot", "")
	if path == "" {
		return mcp.NewToolResultError("snapshot is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if boolParam(args, "reset", false) {
		delete(s.sessions, path)
		s.cache.invalidate(path)
	}

	sess, ok := s.sessions[path]
	if !ok {
		snap, err := s.cache.load(path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sess = s.newSession(snap.Elements)
		s.sessions[path] = sess
	}

	sess.texts = nil
	res := navigateResult{}
	if input := stringParam(args, "input", ""); input != "" {
		action, ok := command.MapKey(input)
		if !ok {
			action = sess.interp.Interpret(input)
		}
		applyAction(sess.cursor, sess.fb, sess.table, action)
		res.Input = input
		res.Action = action.Kind.String()
	}

	res.Position = sess.cursor.Position()
	res.Total = sess.cursor.Len()
	res.Active = sess.cursor.State() == cursor.Active
	res.Announcements = sess.texts
	if !res.Active {
		delete(s.sessions, path)
	}
	return yamlResult(res)
}

// newSession starts a cursor over the elements, capturing announcements.
// Callers hold s.mu.
func (s *mcpServer) newSession(elements []model.Element) *mcpSession {
	store := settings.NewStore(nil, logger)
	on := true
	locale := s.store.Get().Locale
	store.Update(settings.Partial{ScreenReaderEnabled: &on, Locale: &locale})

	fb := feedback.NewChannel(store, nil, nil, logger)
	table := command.NewPhraseTable(locale)
	sess := &mcpSession{fb: fb, table: table, interp: command.NewInterpreter(table)}
	fb.OnText = func(t string) { sess.texts = append(sess.texts, t) }

	sess.cursor = cursor.New(fb, nil, logger)
	sess.cursor.Start(index.Build(elements))
	return sess
}

func (s *mcpServer) handleAnnounce(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	path := stringParam(args, "snapshot", "")
	if path == "" {
		return mcp.NewToolResultError("snapshot is required"), nil
	}
	snap, err := s.cache.load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ix := index.Build(snap.Elements)
	if ix.Len() == 0 {
		return mcp.NewToolResultError("snapshot has no navigable elements"), nil
	}
	pos := intParam(args, "position", 0)
	if pos < 0 || pos >= ix.Len() {
		return mcp.NewToolResultError(fmt.Sprintf("position %d out of range [0, %d]", pos, ix.Len()-1)), nil
	}
	locale := stringParam(args, "locale", "es-ES")
	entry := ix.At(pos)
	return yamlResult(output.StepResult{
		Position:     pos,
		Total:        ix.Len(),
		ID:           entry.ID,
		Role:         string(entry.Role),
		Label:        entry.Label,
		Announcement: feedback.Announce(entry, pos, ix.Len(), locale),
	})
}

// cueResult describes the computed tones of an audio cue.
type cueResult struct {
	Tones []audio.ToneSpec `yaml:"tones"`
}

func (s *mcpServer) handleCue(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	cfg := feedback.DefaultToneConfig()

	if boolParam(args, "activation", false) {
		return yamlResult(cueResult{Tones: cfg.ActivationChord()})
	}

	total := intParam(args, "total", 1)
	if total < 1 {
		return mcp.NewToolResultError("total must be at least 1"), nil
	}
	pos := intParam(args, "position", 0)
	if pos < 0 || pos >= total {
		return mcp.NewToolResultError(fmt.Sprintf("position %d out of range [0, %d]", pos, total-1)), nil
	}
	var dir feedback.Direction
	switch stringParam(args, "direction", "center") {
	case "left":
		dir = feedback.Left
	case "right":
		dir = feedback.Right
	case "center":
		dir = feedback.Center
	default:
		return mcp.NewToolResultError("unknown direction (use left, right, center)"), nil
	}
	return yamlResult(cueResult{Tones: []audio.ToneSpec{cfg.PositionTone(pos, total, dir)}})
}

func (s *mcpServer) handleSettingsGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return yamlResult(s.store.Get())
}

func (s *mcpServer) handleSettingsSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	var p settings.Partial

	if v, ok := args["font_size"]; ok {
		fs, err := settings.ParseFontSize(cast.ToString(v))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		p.FontSize = &fs
	}
	if v, ok := args["locale"]; ok {
		locale := cast.ToString(v)
		if locale == "" {
			return mcp.NewToolResultError("locale cannot be empty"), nil
		}
		p.Locale = &locale
	}
	boolFields := map[string]**bool{
		"high_contrast":               &p.HighContrast,
		"reduced_motion":              &p.ReducedMotion,
		"screen_reader_enabled":       &p.ScreenReaderEnabled,
		"keyboard_navigation_enabled": &p.KeyboardNavigationEnabled,
		"voice_output_enabled":        &p.VoiceOutputEnabled,
		"voice_control_enabled":       &p.VoiceControlEnabled,
	}
	for key, field := range boolFields {
		if v, ok := args[key]; ok {
			b := cast.ToBool(v)
			*field = &b
		}
	}

	return yamlResult(s.store.Update(p))
}

func (s *mcpServer) handleSettingsReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return yamlResult(s.store.Reset())
}
