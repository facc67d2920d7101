package domain

import "strings"

// NormalizeExt lower-cases ext and ensures a leading dot. "" stays "".
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
