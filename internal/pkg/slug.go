package pkg

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// nonAlnumRun matches every run of characters that cannot appear in a slug.
var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a display name: lowercase, every
// run of non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnumRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// DisambiguateSlug appends the current millisecond epoch to a colliding slug.
// This is a best-effort uniqueness strategy; the schema-level unique index
// remains the authoritative guard.
func DisambiguateSlug(slug string) string {
	return slug + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
