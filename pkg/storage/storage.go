// Package storage persists uploaded assets and reclaims them once no record
// references them. Every backend exposes stored files under PublicPrefix.
package storage

import (
	"fmt"
	"path"
	"strings"
	"time"
)

const (
	PublicPrefix = "/uploads"

	// maxNameAttempts bounds the retries after a same-millisecond collision.
	maxNameAttempts = 16
)

// UniqueName returns "<unix-ms>-<base name of original>".
func UniqueName(now time.Time, original string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), baseName(original))
}

// PublicPath maps a stored file name onto its served path.
func PublicPath(name string) string {
	return PublicPrefix + "/" + name
}

// NameFromPath extracts the stored file name from a public path. It rejects
// anything outside PublicPrefix or containing further path segments.
func NameFromPath(publicPath string) (string, bool) {
	name, ok := strings.CutPrefix(publicPath, PublicPrefix+"/")
	if !ok || name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	return name, true
}

func baseName(original string) string {
	name := path.Base(strings.ReplaceAll(original, `\`, "/"))
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || name == "/" {
		return "upload"
	}
	return name
}
