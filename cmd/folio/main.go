// Package main provides the CLI entrypoint for folio.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/folio/internal/appstate"
	"github.com/verte-zerg/folio/internal/config"
	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/logs"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/store"
	"github.com/verte-zerg/folio/internal/tui"
)

const (
	defaultPrintWidth    = 80
	defaultMessagesLimit = 20
)

var (
	flagLang      string
	flagTheme     string
	flagContent   string
	flagLogLevel  string
	flagTolerance int
	flagSettleMs  int
	flagPadding   int

	printWidth int

	messagesLimit int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := tui.DefaultConfig()
	rootCmd := &cobra.Command{
		Use:               "folio",
		Short:             "Terminal portfolio",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: loadEnv,
		RunE:              runPortfolioCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagLang, "lang", defaults.Lang, "default language when none is stored")
	flags.StringVar(&flagTheme, "theme", "", "default theme when none is stored (dark or light; unset follows the terminal background)")
	flags.StringVar(&flagContent, "content", "", "path to a content TOML file")
	flags.StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().IntVar(&flagTolerance, "tolerance", defaults.Navigation.Tolerance, "rows of slack when matching a section to the scroll position")
	rootCmd.Flags().IntVar(&flagSettleMs, "settle-ms", defaults.Navigation.SettleMs, "delay before the section cursor re-reads the scroll position")
	rootCmd.Flags().IntVar(&flagPadding, "scroll-padding", 0, "rows kept above a section after Enter (default: nav bar height)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPrintCmd())
	rootCmd.AddCommand(newPrefsCmd())
	rootCmd.AddCommand(newMessagesCmd())

	return rootCmd
}

func loadEnv(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &flagLang, fileCfg.UI.Lang)
	applyStringConfig(cmd, "theme", &flagTheme, fileCfg.UI.Theme)
	applyStringConfig(cmd, "content", &flagContent, fileCfg.UI.Content)
	applyStringConfig(cmd, "log-level", &flagLogLevel, fileCfg.UI.LogLevel)
	applyIntConfig(cmd, "tolerance", &flagTolerance, fileCfg.Navigation.Tolerance)
	applyIntConfig(cmd, "settle-ms", &flagSettleMs, fileCfg.Navigation.SettleMs)

	cfg := tui.DefaultConfig()
	cfg.Lang = flagLang
	cfg.Theme = flagTheme
	if cfg.Theme == "" {
		cfg.Theme = systemTheme()
	}
	cfg.ContentPath = flagContent
	cfg.LogLevel = flagLogLevel
	cfg.Navigation.Tolerance = flagTolerance
	cfg.Navigation.SettleMs = flagSettleMs
	cfg.Navigation.ExtraOffset = fileCfg.Navigation.ExtraOffset
	if flag := cmd.Flags().Lookup("scroll-padding"); flag != nil && flag.Changed {
		padding := flagPadding
		cfg.Navigation.ScrollPadding = &padding
	} else if fileCfg.Navigation.ScrollPadding != nil {
		padding := *fileCfg.Navigation.ScrollPadding
		cfg.Navigation.ScrollPadding = &padding
	}
	applyMillis(&cfg.Typing.FastMs, fileCfg.Typing.FastMs)
	applyMillis(&cfg.Typing.StandardMs, fileCfg.Typing.StandardMs)
	applyMillis(&cfg.Typing.PulseMs, fileCfg.Typing.PulseMs)
	applyMillis(&cfg.Typing.CompleteDelayMs, fileCfg.Typing.CompleteDelayMs)
	if fileCfg.Typing.FastCount != nil {
		cfg.Typing.FastCount = *fileCfg.Typing.FastCount
	}

	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runPortfolioCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	// The TUI owns the terminal, so records only go to the log file.
	logger, err := logs.New(logs.Options{Path: config.DefaultLogPath(), Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() {
		if cerr := logger.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	c, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	state := appstate.New(context.Background(), st, cfg.Lang, cfg.Theme, logger.Logger)
	defer state.Close()
	logger.Info("starting", "lang", state.Lang(), "theme", state.Theme())

	m := tui.NewModel(tui.Options{
		Config:   cfg,
		Content:  c,
		State:    state,
		Messages: st,
		Logger:   logger.Logger,
	})
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the portfolio without animation (--lang overrides the stored language)",
		Args:  cobra.NoArgs,
		RunE:  runPrintCmd,
	}
	cmd.Flags().IntVar(&printWidth, "width", 0, "output width (default: terminal width)")
	return cmd
}

func runPrintCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logs.New(logs.Options{Path: config.DefaultLogPath(), Console: cmd.ErrOrStderr(), Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() {
		_ = logger.Close()
	}()

	c, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	lang, theme := cfg.Lang, cfg.Theme
	if st, err := store.Open(config.DefaultDBPath()); err != nil {
		logger.Warn("preferences unavailable", "err", err)
	} else {
		state := appstate.New(cmd.Context(), st, cfg.Lang, cfg.Theme, logger.Logger)
		lang, theme = state.Lang(), state.Theme()
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}
	if cmd.Flags().Changed("lang") {
		if !c.Has(flagLang) {
			return fmt.Errorf("unknown language %q (available: %s)", flagLang, strings.Join(c.Languages(), ", "))
		}
		lang = flagLang
	}

	width := printWidth
	if width <= 0 {
		width = terminalWidth(os.Stdout)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), tui.Render(c, lang, theme, width)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultPrintWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultPrintWidth
	}
	return width
}

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show stored preferences",
		Args:  cobra.NoArgs,
		RunE:  runPrefsCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a preference (lang or theme)",
		Args:  cobra.ExactArgs(2),
		RunE:  runPrefsSetCmd,
	})
	return cmd
}

func runPrefsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	prefs, err := st.ListPrefs(cmd.Context())
	if err != nil {
		return err
	}
	if len(prefs) == 0 {
		logErrln("No preferences stored.")
		return nil
	}
	keys := make([]string, 0, len(prefs))
	for key := range prefs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, prefs[key]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runPrefsSetCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	c, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	key, value := args[0], strings.TrimSpace(args[1])
	if err := validatePref(c, key, value); err != nil {
		return err
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return st.SetPref(cmd.Context(), key, value)
}

func validatePref(c *content.Content, key, value string) error {
	switch key {
	case model.PrefLang:
		if !c.Has(value) {
			return fmt.Errorf("unknown language %q (available: %s)", value, strings.Join(c.Languages(), ", "))
		}
	case model.PrefTheme:
		if value != model.ThemeDark && value != model.ThemeLight {
			return fmt.Errorf("theme must be %q or %q", model.ThemeDark, model.ThemeLight)
		}
	default:
		return fmt.Errorf("unknown preference %q (use %s or %s)", key, model.PrefLang, model.PrefTheme)
	}
	return nil
}

func newMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List contact form messages",
		Args:  cobra.NoArgs,
		RunE:  runMessagesCmd,
	}
	cmd.Flags().IntVar(&messagesLimit, "limit", defaultMessagesLimit, "maximum number of messages (0 for all)")
	return cmd
}

func runMessagesCmd(cmd *cobra.Command, _ []string) error {
	if messagesLimit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	msgs, err := st.ListMessages(cmd.Context(), messagesLimit)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		logErrln("No messages yet.")
		return nil
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), renderMessages(msgs)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

var headerCellStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderMessages(msgs []model.Message) string {
	rows := make([][]string, 0, len(msgs))
	for _, msg := range msgs {
		rows = append(rows, []string{
			strconv.FormatInt(msg.ID, 10),
			msg.CreatedAt.Local().Format("2006-01-02 15:04"),
			msg.Name,
			msg.Email,
			msg.Lang,
			msg.Body,
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "Received", "Name", "Email", "Lang", "Message").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			return cellStyle
		})
	return t.String()
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyMillis(target, value *int) {
	if value == nil {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	defaults := tui.DefaultConfig()
	return fmt.Sprintf(`# folio configuration
# Uncomment a value to enable it. CLI flags override config values.

[ui]
# lang = %q               # Language used until one is stored
# theme = %q            # dark or light, used until one is stored; unset follows the terminal
# content = ""              # Path to a content TOML file
# log-level = %q          # debug, info, warn or error

[navigation]
# tolerance = %d            # Rows of slack when matching a section
# settle-ms = %d          # Delay before the cursor re-reads the scroll position
# scroll-padding = 1        # Rows kept above a section (default: nav bar height)

[navigation.extra-offset]
# skills = 0                # Per-section adjustment in rows

[typing]
# fast-ms = %d             # Interval for the first characters
# standard-ms = %d         # Interval for the rest
# fast-count = %d           # Characters typed at the fast interval
# pulse-ms = %d           # Key highlight duration
# complete-delay-ms = %d  # Pause after the last character
`,
		defaults.Lang,
		defaults.Theme,
		defaults.LogLevel,
		defaults.Navigation.Tolerance,
		defaults.Navigation.SettleMs,
		defaults.Typing.FastMs,
		defaults.Typing.StandardMs,
		defaults.Typing.FastCount,
		defaults.Typing.PulseMs,
		defaults.Typing.CompleteDelayMs,
	)
}

var hasDarkBackground = lipgloss.HasDarkBackground

// systemTheme picks the theme matching the terminal background.
func systemTheme() string {
	if hasDarkBackground() {
		return model.ThemeDark
	}
	return model.ThemeLight
}

func validateConfig(cfg model.Config) error {
	if cfg.Theme != model.ThemeDark && cfg.Theme != model.ThemeLight {
		return fmt.Errorf("--theme must be %q or %q", model.ThemeDark, model.ThemeLight)
	}
	if _, err := logs.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if cfg.Navigation.Tolerance < 0 {
		return fmt.Errorf("--tolerance must be >= 0")
	}
	if cfg.Navigation.SettleMs <= 0 {
		return fmt.Errorf("--settle-ms must be > 0")
	}
	if p := cfg.Navigation.ScrollPadding; p != nil && *p < 0 {
		return fmt.Errorf("--scroll-padding must be >= 0")
	}
	t := cfg.Typing
	if t.FastMs <= 0 || t.StandardMs <= 0 || t.PulseMs <= 0 || t.CompleteDelayMs < 0 || t.FastCount < 0 {
		return fmt.Errorf("typing intervals must be positive")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
