package quiltscan

import "errors"

var (
	// ErrInvalidStartIndex is returned when the seed index is not a non-negative number.
	ErrInvalidStartIndex = errors.New("invalid index")

	// ErrDeviceUnavailable is returned when the camera device could not be opened.
	ErrDeviceUnavailable = errors.New("could not open webcam")

	// ErrCaptureFailed is returned when the camera was opened but no frame could be read.
	ErrCaptureFailed = errors.New("failed to capture image from webcam")

	// ErrTerminalMode is returned when the terminal cannot be switched into or out of raw mode.
	ErrTerminalMode = errors.New("terminal mode")

	// ErrInvalidCrop is returned for crop fractions which are not strictly positive.
	ErrInvalidCrop = errors.New("crop fraction should be greater than zero")
)
