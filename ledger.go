package quiltscan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultLedger is the name of the CSV file the captures are recorded into.
const DefaultLedger = "scandata.csv"

// ledgerHeader is written once, when the ledger file is created.
var ledgerHeader = []string{"index", "scan path", "cropped path", "hue", "saturation", "lightness"}

// Record is a single ledger row describing one capture.
type Record struct {
	Index      int
	ScanPath   string
	CropPath   string
	Hue        float64
	Saturation float64
	Lightness  float64
}

func (r Record) fields() []string {
	return []string{
		strconv.Itoa(r.Index),
		r.ScanPath,
		r.CropPath,
		formatFloat(r.Hue),
		formatFloat(r.Saturation),
		formatFloat(r.Lightness),
	}
}

// formatFloat writes v in the shortest form that reads back to the same value,
// always with a decimal point or an exponent, e.g. 128.0, 127.5 or 5e-07.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Ledger is an append-only CSV log of the captures.
type Ledger struct {
	path       string
	headerDone bool
}

// OpenLedger prepares the ledger stored at path. The header row is written
// with the first record only if the file does not exist at this point.
func OpenLedger(path string) (*Ledger, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return &Ledger{path: path, headerDone: true}, nil
	case errors.Is(err, fs.ErrNotExist):
		return &Ledger{path: path}, nil
	default:
		return nil, fmt.Errorf("unable to stat the ledger file: %w", err)
	}
}

// Path returns the location of the ledger file.
func (l *Ledger) Path() string {
	return l.path
}

// Append writes rec as a new row at the end of the ledger.
// The file is opened and closed on every call.
func (l *Ledger) Append(rec Record) (err error) {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("unable to open the ledger file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			if err == nil {
				err = fmt.Errorf("unable to close the ledger file: %w", cerr)
				return
			}
			log.Printf("could not close the ledger file: %v", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if !l.headerDone {
		if err := w.Write(ledgerHeader); err != nil {
			return fmt.Errorf("unable to write the ledger header: %w", err)
		}
	}
	if err := w.Write(rec.fields()); err != nil {
		return fmt.Errorf("unable to write the ledger row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("unable to write the ledger row: %w", err)
	}
	l.headerDone = true

	return nil
}
