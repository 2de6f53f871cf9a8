package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/vlist/internal/config"
	"github.com/BrandonKowalski/vlist/internal/i18n"
	"github.com/BrandonKowalski/vlist/pkg/vlist"
	"github.com/BrandonKowalski/vlist/pkg/vlist/input"
	"github.com/BrandonKowalski/vlist/pkg/vlist/platform/evdev"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type options struct {
	configPath string
	themePath  string
	preset     string
	backend    string
	device     string
	lang       string
	logLevel   string
	logPath    string
	fullscreen bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	help := "up/down scroll, enter select, esc quit"
	if tr, err := i18n.New(i18n.Detect()); err == nil {
		help = tr.T(i18n.MsgHelp, nil)
	}

	cmd := &cobra.Command{
		Use:   "vlistdemo [file]",
		Short: "Pick a line from a scrolling list",
		Long: `Show the lines of a file, or of stdin, in a kinetic scrolling list and
print the chosen line to stdout.

Hold up or down to scroll, the list eases to a stop on the nearest item
when the key is released.

Keys: ` + help + `

Example:
  # Pick a ROM on the device screen
  ls /mnt/SDCARD/Roms/GBA | vlistdemo --preset cannoli --fullscreen

  # Try it in a terminal
  vlistdemo --backend term /etc/services

Exit codes:
  0: A line was chosen, or the list was closed
  1: Error (unreadable input, backend failed to start)`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			chosen, err := pick(cmd, args, cfg)
			if err != nil {
				return err
			}
			if chosen != nil {
				fmt.Fprintln(cmd.OutOrStdout(), chosen.Text)
			}
			return nil
		},
	}

	bindFlags(cmd, opts)
	return cmd
}

func bindFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	f.StringVarP(&opts.themePath, "theme", "t", "", "theme file, overrides $VLIST_THEME")
	f.StringVar(&opts.preset, "preset", "", "built-in theme: cannoli")
	f.StringVarP(&opts.backend, "backend", "b", config.BackendSDL, "renderer: sdl or term")
	f.StringVar(&opts.device, "device", "", "evdev input device, e.g. /dev/input/event1")
	f.StringVar(&opts.lang, "lang", "", "message language, overrides $VLIST_LANG and $LANG")
	f.StringVar(&opts.logLevel, "log-level", "error", "debug, info, warn or error")
	f.StringVar(&opts.logPath, "log-path", "", "write logs to this file instead of stderr")
	f.BoolVarP(&opts.fullscreen, "fullscreen", "f", false, "fill the display")
}

// resolve loads the config file and applies the flags that were set on top.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("theme") {
		cfg.ThemePath = o.themePath
	}
	if f.Changed("preset") {
		cfg.Preset = o.preset
	}
	if f.Changed("backend") {
		cfg.Backend = o.backend
	}
	if f.Changed("device") {
		cfg.Device = o.device
	}
	if f.Changed("lang") {
		cfg.Language = o.lang
	}
	if f.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if f.Changed("log-path") {
		cfg.LogPath = o.logPath
	}
	if f.Changed("fullscreen") {
		cfg.Fullscreen = o.fullscreen
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func setupLogging(cfg config.Config) {
	if cfg.LogPath != "" {
		vlist.SetLogPath(cfg.LogPath)
	}
	level := vlist.ParseLogLevel(cfg.LogLevel)
	vlist.SetLogLevel(level)
	vlist.SetInternalLogLevel(level)
}

// pick shows the list and returns the chosen item, nil if none was chosen.
// Every resource is released before it returns so the caller can write to
// the terminal.
func pick(cmd *cobra.Command, args []string, cfg config.Config) (*vlist.Selection, error) {
	setupLogging(cfg)
	defer vlist.CloseLogger()
	logger := vlist.GetLogger()

	tr, err := i18n.New(cmp.Or(cfg.Language, i18n.Detect()))
	if err != nil {
		return nil, err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	items, err := loadItems(path)
	if err != nil {
		source := cmp.Or(path, "stdin")
		return nil, fmt.Errorf("%s: %w", tr.T(i18n.MsgReadInputError, map[string]any{"Source": source}), err)
	}
	if len(items) == 0 {
		cmd.PrintErrln(tr.T(i18n.MsgEmpty, nil))
		return nil, nil
	}
	logger.Debug("Items loaded", "count", len(items))

	theme, err := loadTheme(cfg)
	if err != nil {
		return nil, err
	}
	vlist.SetTheme(theme)

	title := tr.T(i18n.MsgTitle, nil) + " - " + tr.N(i18n.MsgItemCount, len(items), nil)
	chosen, err := show(cmd.Context(), cfg, title, items)
	if err != nil {
		if errors.Is(err, errBackend) {
			return nil, fmt.Errorf("%s: %w", tr.T(i18n.MsgBackendError, map[string]any{"Backend": cfg.Backend}), err)
		}
		return nil, err
	}

	if chosen != nil {
		logger.Info("Item chosen", "index", chosen.Index)
		cmd.PrintErrln(tr.T(i18n.MsgSelected, map[string]any{"Index": chosen.Index, "Text": chosen.Text}))
	}
	return chosen, nil
}

var errBackend = errors.New("backend unavailable")

// show runs the list until it is closed. The backend is released before it
// returns.
func show(ctx context.Context, cfg config.Config, title string, items []string) (*vlist.Selection, error) {
	canvas, release, err := openBackend(cfg, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBackend, err)
	}
	defer release()

	a, err := newApp(canvas, items, cfg, vlist.GetLogger())
	if err != nil {
		return nil, err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Device != "" {
		reader, err := evdev.Open(cfg.Device)
		if err != nil {
			return nil, err
		}
		defer reader.Close()

		events := make(chan input.ButtonEvent, 16)
		a.events = events
		g.Go(func() error {
			return reader.Run(gctx, events)
		})
	}

	chosen := a.run(gctx)
	cancel()

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	return chosen, nil
}

func loadItems(path string) ([]string, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return readItems(src)
}
