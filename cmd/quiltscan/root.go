package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esimov/quiltscan"
	"github.com/esimov/quiltscan/camera"
	qlog "github.com/esimov/quiltscan/internal/log"
	"github.com/esimov/quiltscan/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐ ┬ ┬┬┬ ┌┬┐┌─┐┌─┐┌─┐┌┐┌
│─┼┐│ ││││  │ └─┐│  ├─┤│││
└─┘└└─┘┴┴─┘┴ └─┘└─┘┴ ┴┘└┘

Scan items with a webcam, crop them, measure their color (HLS) and record it to CSV.
`

// options collects the command line flags.
type options struct {
	cfg         quiltscan.Config
	cameraIndex int
	warmup      int
	settle      time.Duration
	logLevel    string
}

func newRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "quiltscan",
		Short:         "Catalogue items by color with a webcam",
		Long:          helpBanner,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.cfg.XCrop, "xcrop", 1.0, "Fraction of width to keep in the center")
	flags.Float64Var(&opts.cfg.YCrop, "ycrop", 1.0, "Fraction of height to keep in the center")
	flags.IntVar(&opts.cameraIndex, "camera-index", 0, "Index of the webcam to use")
	flags.StringVar(&opts.cfg.Dir, "dir", ".", "Output directory of the images and of the ledger")
	flags.StringVar(&opts.cfg.Ledger, "ledger", quiltscan.DefaultLedger, "Name of the CSV ledger, relative to --dir")
	flags.IntVar(&opts.cfg.Quality, "quality", quiltscan.DefaultQuality, "JPEG quality of the saved images (1-100)")
	flags.IntVar(&opts.warmup, "warmup", camera.DefaultWarmup, "Number of frames discarded before the capture")
	flags.DurationVar(&opts.settle, "settle", camera.DefaultSettle, "Pause after the warm-up frames")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Diagnostics level: debug, info, warn or error")

	return cmd
}

func (o *options) validate() error {
	if o.cameraIndex < 0 {
		return fmt.Errorf("camera index should be non-negative, got %d", o.cameraIndex)
	}
	if o.warmup < 0 {
		return fmt.Errorf("warm-up frames should be non-negative, got %d", o.warmup)
	}
	if o.settle < 0 {
		return fmt.Errorf("settle time should be non-negative, got %s", o.settle)
	}
	if _, err := qlog.ParseLevel(o.logLevel); err != nil {
		return err
	}
	return o.cfg.Validate()
}

// run prompts for the start index and drives the capture loop on the controlling terminal.
func run(opts *options) error {
	if err := qlog.Init(os.Stderr, opts.logLevel); err != nil {
		return err
	}

	in := bufio.NewReader(os.Stdin)
	index, err := quiltscan.PromptIndex(in, os.Stdout)
	if err != nil {
		return err
	}

	s, err := quiltscan.NewSession(opts.cfg, index)
	if err != nil {
		return err
	}
	s.Keys = quiltscan.NewKeyReader(os.Stdin, in)
	s.Source = &camera.Webcam{
		Index:  opts.cameraIndex,
		Warmup: opts.warmup,
		Settle: opts.settle,
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg := fmt.Sprintf("%s %s",
			utils.DecorateText("📷 QUILTSCAN", utils.StatusMessage),
			utils.DecorateText("⇢ capturing image...", utils.DefaultMessage),
		)
		s.Spinner = utils.NewSpinner(os.Stderr, msg, time.Millisecond*80, true)
	}

	restore := restoreOnSignal(s.Spinner)
	defer restore()

	return s.Run(context.Background())
}

// restoreOnSignal puts the terminal back into its initial state and restores the cursor
// visibility when the process is interrupted, e.g. while the keys are read in raw mode.
func restoreOnSignal(spinner *utils.Spinner) (stop func()) {
	fd := int(os.Stdin.Fd())
	var state *term.State
	if term.IsTerminal(fd) {
		state, _ = term.GetState(fd)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case <-done:
			return
		case sig := <-signalChan:
			if state != nil {
				if err := term.Restore(fd, state); err != nil {
					qlog.Error("could not restore the terminal", "err", err)
				}
			}
			if spinner != nil {
				spinner.RestoreCursor()
			}
			qlog.Debug("interrupted", "signal", sig.String())
			os.Exit(1)
		}
	}()

	return func() {
		signal.Stop(signalChan)
		close(done)
	}
}
