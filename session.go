package quiltscan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/quiltscan/internal/log"
	"github.com/esimov/quiltscan/utils"
	"github.com/google/uuid"
)

// FrameSource acquires a single still frame, e.g. from a webcam.
// A capture always runs to completion once started.
type FrameSource interface {
	Capture() (image.Image, error)
}

// Config holds the options of a capture session. It is not changed once the session started.
type Config struct {
	// XCrop and YCrop are the fractions of the frame width and height kept around the center.
	XCrop, YCrop float64
	// Dir is the output root of the image directories and of the ledger.
	Dir string
	// Ledger is the name of the CSV file, relative to Dir.
	Ledger string
	// Quality is the JPEG quality of the saved images.
	Quality int
}

// Validate checks the configuration and fills in the defaults.
func (c *Config) Validate() error {
	for _, v := range []float64{c.XCrop, c.YCrop} {
		if math.IsNaN(v) || v <= 0 {
			return fmt.Errorf("%w: got %v", ErrInvalidCrop, v)
		}
	}
	if c.Quality < 0 || c.Quality > 100 {
		return fmt.Errorf("jpeg quality should be between 1 and 100, got %d", c.Quality)
	}
	if c.Quality == 0 {
		c.Quality = DefaultQuality
	}
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Ledger == "" {
		c.Ledger = DefaultLedger
	}
	return nil
}

// Session is the interactive capture loop. Index is the index the next capture is recorded with.
type Session struct {
	Index int

	Keys    KeyReader
	Source  FrameSource
	Out     io.Writer
	Spinner *utils.Spinner

	cfg    Config
	store  *Store
	ledger *Ledger
	log    *slog.Logger
}

// NewSession validates cfg, creates the output directories and opens the ledger.
// The keys and the frame source have to be set before calling Run.
func NewSession(cfg Config, index int) (*Session, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStartIndex, index)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		Index: index,
		Out:   os.Stdout,
		cfg:   cfg,
		store: &Store{Dir: cfg.Dir, Quality: cfg.Quality},
		log:   log.With("session", uuid.NewString()),
	}
	if cfg.XCrop > 1 || cfg.YCrop > 1 {
		s.log.Warn("crop fractions above 1 are clamped to the frame", "xcrop", cfg.XCrop, "ycrop", cfg.YCrop)
	}

	if err := s.store.Prepare(); err != nil {
		return nil, err
	}
	ledger, err := OpenLedger(filepath.Join(cfg.Dir, cfg.Ledger))
	if err != nil {
		return nil, err
	}
	s.ledger = ledger

	return s, nil
}

// Run reads the keys one by one until ESC is pressed or a capture fails.
// SPACE triggers a capture, any other key is ignored. The context is only
// checked between two key presses, never in the middle of a capture.
func (s *Session) Run(ctx context.Context) error {
	if s.Keys == nil || s.Source == nil {
		return errors.New("session needs a key reader and a frame source")
	}
	fmt.Fprintln(s.Out, "Press SPACE to capture the image, or ESC to quit.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(s.Out, "Current index: %s\n", utils.DecorateText(strconv.Itoa(s.Index), utils.StatusMessage))

		key, err := s.Keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("input closed")
				return nil
			}
			return err
		}

		switch key {
		case KeyEscape:
			fmt.Fprintln(s.Out, "ESC pressed. Exiting...")
			return nil
		case KeySpace:
			if err := s.Capture(); err != nil {
				return err
			}
		default:
			s.log.Debug("key ignored", "key", key)
		}
	}
}

// Capture grabs a frame, saves it together with its centered crop, and records
// the average color of the crop in the ledger. The index is advanced only when
// the ledger row has been written.
func (s *Session) Capture() error {
	start := time.Now()

	if s.Spinner != nil {
		s.Spinner.Start()
	}
	frame, err := s.Source.Capture()
	if s.Spinner != nil {
		s.Spinner.Stop()
	}
	if err != nil {
		return err
	}

	scanPath := s.store.ScanPath(s.Index)
	if err := s.store.Save(scanPath, frame); err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "Saved image to %s\n", utils.DecorateText(scanPath, utils.SuccessMessage))

	cropped := Crop(frame, s.cfg.XCrop, s.cfg.YCrop)
	if cropped.Bounds().Empty() {
		return fmt.Errorf("%w: the crop of a %dx%d frame is empty",
			ErrInvalidCrop, frame.Bounds().Dx(), frame.Bounds().Dy())
	}
	cropPath := s.store.CropPath(s.Index)
	if err := s.store.Save(cropPath, cropped); err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "Saved cropped image to %s\n", utils.DecorateText(cropPath, utils.SuccessMessage))

	avg := Summarize(cropped)
	rec := Record{
		Index:      s.Index,
		ScanPath:   scanPath,
		CropPath:   cropPath,
		Hue:        avg.Hue,
		Saturation: avg.Saturation,
		Lightness:  avg.Lightness,
	}
	if err := s.ledger.Append(rec); err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "Appended data to %s\n", utils.DecorateText(s.ledger.Path(), utils.SuccessMessage))

	s.log.Info("capture recorded",
		"index", s.Index,
		"hue", avg.Hue,
		"saturation", avg.Saturation,
		"lightness", avg.Lightness,
		"color", avg.Hex(),
		"elapsed", utils.FormatTime(time.Since(start)),
	)
	s.Index++

	return nil
}

// ParseIndex converts the operator's answer to the start index prompt.
func ParseIndex(s string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStartIndex, strings.TrimSpace(s))
	}
	return index, nil
}

// PromptIndex asks for the start index on w and reads the answer from r.
func PromptIndex(r *bufio.Reader, w io.Writer) (int, error) {
	fmt.Fprint(w, "Enter the current index: ")

	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("%w: %v", ErrInvalidStartIndex, err)
	}
	return ParseIndex(line)
}
