package ipc

import (
	"os"
	"path/filepath"
)

const socketName = "pagefx.sock"

// SocketPath is $XDG_RUNTIME_DIR/pagefx.sock, or the same name in the
// temp directory when XDG_RUNTIME_DIR is unset.
func SocketPath() string {
	sockDir := os.Getenv("XDG_RUNTIME_DIR")
	if sockDir == "" {
		sockDir = os.TempDir()
	}
	return filepath.Join(sockDir, socketName)
}
