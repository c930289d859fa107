package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// AssetsDir is an extra directory searched after the local assets folder.
var AssetsDir string

const appName = "clock3d"

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ResolveAssetPath finds relPath as given, then under ./assets, the user
// config directory and AssetsDir. The first candidate is returned when
// nothing matches so callers report the path the user typed.
func ResolveAssetPath(relPath string) string {
	if relPath == "" {
		return ""
	}
	if strings.HasPrefix(relPath, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			relPath = filepath.Join(home, relPath[2:])
		}
	}
	if filepath.IsAbs(relPath) || exists(relPath) {
		return relPath
	}

	searchDirs := []string{"assets"}
	if dir, err := os.UserConfigDir(); err == nil {
		searchDirs = append(searchDirs, filepath.Join(dir, appName))
	}
	if AssetsDir != "" {
		searchDirs = append(searchDirs, AssetsDir)
	}

	for _, dir := range searchDirs {
		p := filepath.Join(dir, relPath)
		if exists(p) {
			return p
		}
	}

	return relPath
}

// DefaultConfigPath returns the per-user settings file if it exists.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, appName, appName+".toml")
	if exists(p) {
		return p
	}
	return ""
}

// FindFont picks a TTF for labels: local assets first, then common system paths.
func FindFont() string {
	if files, _ := filepath.Glob("assets/fonts/*.ttf"); len(files) > 0 {
		return files[0]
	}

	fontPaths := []string{
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/ttf-dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	}
	for _, p := range fontPaths {
		if exists(p) {
			return p
		}
	}

	Debug("No TTF font found, labels use the raylib default font")
	return ""
}
