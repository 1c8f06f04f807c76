package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/esimov/quiltscan"
	"github.com/esimov/quiltscan/utils"
)

// Version indicates the current build version.
var Version string

func main() {
	log.SetFlags(0)

	err := newRootCmd(Version).Execute()
	code, msg := exitStatus(err)
	if msg != "" {
		if code == 0 {
			fmt.Println(msg)
		} else {
			fmt.Fprintln(os.Stderr, utils.DecorateText(msg, utils.ErrorMessage))
		}
	}
	os.Exit(code)
}

// exitStatus maps the error returned by the capture session to the process exit code
// and the message shown to the operator. Camera failures end the session but are not
// reported as a failed run.
func exitStatus(err error) (int, string) {
	switch {
	case err == nil:
		return 0, ""
	case errors.Is(err, quiltscan.ErrDeviceUnavailable):
		return 0, "Error: Could not open webcam."
	case errors.Is(err, quiltscan.ErrCaptureFailed):
		return 0, "Failed to capture image from webcam."
	case errors.Is(err, quiltscan.ErrInvalidStartIndex):
		return 1, "Invalid index. Please enter a number."
	case errors.Is(err, quiltscan.ErrTerminalMode):
		return 1, fmt.Sprintf("Unable to read the keyboard: %v", err)
	default:
		return 1, fmt.Sprintf("Error: %v", err)
	}
}
