package vault2pdf

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// BrowserEnvVar overrides engine discovery with an explicit executable
// path. The override is ignored when the path does not exist.
const BrowserEnvVar = "VAULT2PDF_BROWSER"

// Host abstracts the platform surface the engine locator touches, so
// discovery is testable without querying the real OS.
type Host interface {
	// Getenv returns the value of an environment variable.
	Getenv(key string) string
	// FileExists reports whether path exists on disk.
	FileExists(path string) bool
	// LookPath resolves an executable name against the search path.
	LookPath(name string) (string, error)
	// Candidates returns the platform's well-known engine install
	// locations in priority order.
	Candidates() []string
}

// pathNames are the executable names probed on the search path, in
// priority order.
var pathNames = []string{
	"msedge",
	"microsoft-edge",
	"chrome",
	"google-chrome-stable",
	"google-chrome",
	"chromium-browser",
	"chromium",
	"brave-browser",
}

// hostBase supplies the real-OS primitives shared by all host variants.
type hostBase struct{}

func (hostBase) Getenv(key string) string { return os.Getenv(key) }

func (hostBase) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (hostBase) LookPath(name string) (string, error) { return exec.LookPath(name) }

// WindowsHost locates engines under the Windows install roots.
type WindowsHost struct{ hostBase }

// windowsSuffixes are the vendor/app/binary combinations checked under
// each install root, in priority order.
var windowsSuffixes = [][]string{
	{"Microsoft", "Edge", "Application", "msedge.exe"},
	{"Microsoft", "Edge SxS", "Application", "msedge.exe"},
	{"Google", "Chrome", "Application", "chrome.exe"},
	{"Chromium", "Application", "chrome.exe"},
}

// windowsRootVars name the install roots, in priority order.
var windowsRootVars = []string{"PROGRAMFILES", "PROGRAMFILES(X86)", "LOCALAPPDATA"}

func (h WindowsHost) Candidates() []string {
	var roots []string
	seen := make(map[string]bool)
	for _, key := range windowsRootVars {
		root := h.Getenv(key)
		if root == "" || seen[root] {
			continue
		}
		seen[root] = true
		roots = append(roots, root)
	}

	var candidates []string
	for _, root := range roots {
		for _, suffix := range windowsSuffixes {
			candidates = append(candidates, filepath.Join(append([]string{root}, suffix...)...))
		}
	}
	return candidates
}

// MacHost locates engines in the fixed application bundle paths.
type MacHost struct{ hostBase }

func (MacHost) Candidates() []string {
	return []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Google Chrome Canary.app/Contents/MacOS/Google Chrome Canary",
		"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/Applications/Brave Browser.app/Contents/MacOS/Brave Browser",
	}
}

// UnixHost locates engines in conventional Linux and BSD install paths.
type UnixHost struct{ hostBase }

func (UnixHost) Candidates() []string {
	return []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/microsoft-edge",
		"/snap/bin/chromium",
		"/usr/bin/brave-browser",
	}
}

// DetectHost returns the Host variant for the current platform.
func DetectHost() Host {
	switch runtime.GOOS {
	case "windows":
		return WindowsHost{}
	case "darwin":
		return MacHost{}
	default:
		return UnixHost{}
	}
}

// FindBrowser returns the first usable engine executable. Search order:
// the BrowserEnvVar override (with a leading ~ expanded to the home
// directory), the host's well-known locations, then the search-path
// names. The binary is never executed or validated here; existence on
// disk is sufficient.
func FindBrowser(host Host) (string, error) {
	if override := host.Getenv(BrowserEnvVar); override != "" {
		if expanded := expandHome(override, host); host.FileExists(expanded) {
			return expanded, nil
		}
	}

	for _, candidate := range host.Candidates() {
		if host.FileExists(candidate) {
			return candidate, nil
		}
	}

	for _, name := range pathNames {
		if path, err := host.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: install Edge, Chrome, or Chromium, or set %s to a custom binary", ErrEngineNotFound, BrowserEnvVar)
}

// expandHome resolves a leading ~ in path against the home directory,
// for override values set without shell expansion.
func expandHome(path string, host Host) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home := host.Getenv("HOME")
	if home == "" {
		home = host.Getenv("USERPROFILE")
	}
	if home == "" {
		return path
	}
	return filepath.Join(home, path[1:])
}
