package manager

import (
	"fmt"

	"github.com/gonutz/w32/v2"
)

// WarnNotElevated surfaces the missing-admin warning once at startup. From
// an interactive desktop it pops a message box; otherwise it prints to the
// console.
func WarnNotElevated(version string) {
	msg := "This program needs administrator rights to control the license services."

	window := w32.GetForegroundWindow()
	if window != 0 {
		_, consoleProcID := w32.GetWindowThreadProcessId(window)
		if w32.GetCurrentProcessId() == consoleProcID {
			var handle w32.HWND
			w32.MessageBox(handle, msg, fmt.Sprintf("License Service Manager v%s", version), w32.MB_OK|w32.MB_ICONWARNING)
			return
		}
	}
	fmt.Println("[warn]", msg)
}
