package storage

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// videoExtensions is the fixed extension set that classifies a post as a
// video. Matching is a case-insensitive suffix check.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".webm": true,
	".mkv":  true,
}

// IsVideoFilename reports whether the filename's extension is in the video
// set. A name with no extension is not a video.
func IsVideoFilename(name string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(name))]
}

// Sanitize reduces an untrusted original filename to a safe flat name:
// path components are dropped and everything outside [A-Za-z0-9._-] is
// replaced with an underscore. Leading dots are stripped so a stored name
// can never be hidden or traverse upward.
func Sanitize(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	prevUnderscore := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.' || r == '-':
			b.WriteRune(r)
			prevUnderscore = false
		default:
			// runs of replaced characters collapse to one underscore
			if !prevUnderscore {
				b.WriteRune('_')
				prevUnderscore = true
			}
		}
	}

	return strings.TrimLeft(b.String(), "._")
}

// PostFilename derives the stored name for a post upload. The timestamp
// component keeps two uploads of the same original name from colliding.
func PostFilename(username, original string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%s", Sanitize(username), now.UnixNano(), Sanitize(original))
}

// AvatarFilename derives the stored name for a profile picture. It is
// deterministic: re-uploading the same original name overwrites the file.
func AvatarFilename(username, original string) string {
	return fmt.Sprintf("avatar_%s_%s", Sanitize(username), Sanitize(original))
}
