package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/grindlemire/webedit"
	"github.com/grindlemire/webedit/internal/debug"
	"github.com/grindlemire/webedit/internal/host"
	"github.com/grindlemire/webedit/internal/scene"
	"github.com/grindlemire/webedit/internal/term"
)

type editOptions struct {
	out         string
	fps         int
	multiSelect string
	idleTimeout time.Duration
	debugPath   string
}

func newEditCmd() *cobra.Command {
	var opts editOptions
	cmd := &cobra.Command{
		Use:   "edit <scene.yaml>",
		Short: "Edit a scene interactively",
		Long: `Edit opens the scene full screen. Drag a box to move it, drag near an
edge or corner to resize it, and shift-click to select several boxes.
Arrow keys nudge the selection by one px. Press q to quit.

The geometry of every box changed by a drag or nudge is printed when the
editor exits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "", "also append geometry reports to this file")
	f.IntVar(&opts.fps, "fps", 60, "frames per second")
	f.StringVar(&opts.multiSelect, "multi-select", "shift", "modifier that extends the selection (shift, alt, ctrl, none)")
	f.DurationVar(&opts.idleTimeout, "idle-timeout", webedit.DefaultGestureIdleTimeout, "end a touch drag that stops moving for this long (0 disables)")
	f.StringVar(&opts.debugPath, "debug", "", "write debug logs to this file (default $"+debug.EnvVar+")")
	return cmd
}

func (o editOptions) validate() (webedit.Modifier, error) {
	mod, ok := webedit.ParseModifier(o.multiSelect)
	if !ok {
		return webedit.ModNone, fmt.Errorf("invalid --multi-select %q", o.multiSelect)
	}
	if o.fps <= 0 {
		return webedit.ModNone, fmt.Errorf("invalid --fps %d", o.fps)
	}
	if o.idleTimeout < 0 {
		return webedit.ModNone, fmt.Errorf("invalid --idle-timeout %s", o.idleTimeout)
	}
	return mod, nil
}

func runEdit(cmd *cobra.Command, path string, opts editOptions) (err error) {
	mod, err := opts.validate()
	if err != nil {
		return err
	}
	sc, err := scene.LoadFile(path)
	if err != nil {
		return err
	}

	if opts.debugPath != "" {
		err = debug.Init(opts.debugPath)
	} else {
		err = debug.InitFromEnv()
	}
	if err != nil {
		return err
	}
	defer debug.Close()
	logger := slog.New(slog.NewTextHandler(debug.Writer(), &slog.HandlerOptions{Level: slog.LevelDebug}))

	var reports bytes.Buffer
	sink := io.Writer(&reports)
	if opts.out != "" {
		f, err := os.OpenFile(opts.out, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open report file: %w", err)
		}
		defer f.Close()
		sink = io.MultiWriter(&reports, f)
	}

	t, err := term.Open(os.Stdin, os.Stdout)
	if err != nil {
		if errors.Is(err, term.ErrNotTerminal) {
			return fmt.Errorf("edit needs an interactive terminal: %w", err)
		}
		return err
	}
	defer func() {
		err = errors.Join(err, t.Close())
		// The screen is restored; reports go to the normal output now.
		cmd.OutOrStdout().Write(reports.Bytes())
	}()

	sc.ResizeCells(t.Size())
	h := host.New(sc, t, host.Config{
		FrameDuration: time.Second / time.Duration(opts.fps),
		MultiSelect:   mod,
		IdleTimeout:   opts.idleTimeout,
		Report:        sink,
		Logger:        logger,
	})

	reader := term.NewReader(t.Input(), os.Stdout)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("editing scene", "path", path, "elements", len(sc.Elements()))
	return h.Run(ctx, reader)
}
