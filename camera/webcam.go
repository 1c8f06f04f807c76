// Package camera acquires still frames from a webcam through OpenCV.
package camera

import (
	"fmt"
	"image"
	"time"

	"github.com/esimov/quiltscan"
	"github.com/esimov/quiltscan/internal/log"
	"gocv.io/x/gocv"
)

// Defaults used by the capture command.
const (
	DefaultWarmup = 10
	DefaultSettle = 100 * time.Millisecond
)

var _ quiltscan.FrameSource = (*Webcam)(nil)

// Webcam grabs one frame per Capture call. The device is opened and released on every call.
type Webcam struct {
	// Index of the video device.
	Index int
	// Warmup is the number of frames discarded to let auto exposure and white balance settle.
	Warmup int
	// Settle is the pause between the warm-up frames and the frame actually used.
	Settle time.Duration
}

// Capture opens the device, discards the warm-up frames, waits Settle and returns the next frame.
// The device is always released before returning. A started capture is not interruptible.
func (w *Webcam) Capture() (image.Image, error) {
	webcam, err := gocv.VideoCaptureDevice(w.Index)
	if err != nil {
		if webcam != nil {
			webcam.Close()
		}
		return nil, fmt.Errorf("%w: device %d: %v", quiltscan.ErrDeviceUnavailable, w.Index, err)
	}
	defer webcam.Close()

	if !webcam.IsOpened() {
		return nil, fmt.Errorf("%w: device %d", quiltscan.ErrDeviceUnavailable, w.Index)
	}

	img := gocv.NewMat()
	defer img.Close()

	for i := 0; i < w.Warmup; i++ {
		if ok := webcam.Read(&img); !ok {
			log.Debug("warm-up frame dropped", "device", w.Index, "frame", i)
		}
	}

	time.Sleep(w.Settle)

	if ok := webcam.Read(&img); !ok || img.Empty() {
		return nil, fmt.Errorf("%w: device %d", quiltscan.ErrCaptureFailed, w.Index)
	}
	log.Debug("frame captured", "device", w.Index, "width", img.Cols(), "height", img.Rows())

	// ToImage copies the BGR pixels of the Mat into a Go image, so the Mat can be released.
	frame, err := img.ToImage()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", quiltscan.ErrCaptureFailed, err)
	}
	return frame, nil
}
