package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx"
	"github.com/tidwall/pretty"
	"golang.org/x/term"
)

func CanonicalPath(path string) string {
	if path == "" {
		return ""
	}

	if path == "~" {
		return os.Getenv("HOME")
	}

	if strings.HasPrefix(path, "~/") {
		homeDir := os.Getenv("HOME")
		return strings.Replace(path, "~", homeDir, 1)
	}

	return path
}

// FormatJSON indents data, coloring it when color is set.
func FormatJSON(data any, color bool) ([]byte, error) {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	if color {
		return pretty.Color(j, nil), nil
	}
	return pretty.Pretty(j), nil
}

// PrintJSONColored logs data as JSON, colored only when stdout is a
// terminal.
func PrintJSONColored(data any) {
	j, err := FormatJSON(data, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		log.Errorf("Error marshalling JSON: %v", err)
		return
	}
	log.Info(string(j))
}

// DefaultConfigPath is where --install-config writes to.
func DefaultConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "pagefx", "pagefx.toml")
}

// InstallDefaultConfig writes the embedded default config unless a file
// is already there. It returns the path written.
func InstallDefaultConfig() (string, error) {
	configPath := DefaultConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		log.Warnf("Config file already exists at %v", configPath)
		return configPath, nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(configPath, []byte(pagefx.DefaultConfig), 0644); err != nil {
		return "", err
	}

	log.Infof("Installed default config file at %v", configPath)
	return configPath, nil
}
