package export

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Clipboard receives the copied report text.
type Clipboard interface {
	WriteAll(text string) error
}

// ErrClipboardUnavailable is returned when no system clipboard utility is installed.
var ErrClipboardUnavailable = errors.New("system clipboard unavailable")

// SystemClipboard writes to the OS clipboard (xclip/xsel/wl-copy, pbcopy, or the Windows API).
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}
