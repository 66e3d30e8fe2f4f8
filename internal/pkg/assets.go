package pkg

import "strings"

// legacyPrefixes are path segments that historical writes sometimes stored in
// front of the filename; they are stripped before re-basing.
var legacyPrefixes = []string{"uploads/", "public/uploads/"}

// AssetURL re-bases a stored upload path under the configured public base URL.
//
// Already-absolute values pass through untouched. Leading slashes and known
// legacy prefix segments are stripped. The literal strings "null" and
// "undefined" are treated as absent, guarding against historical bad writes,
// as is an empty value; both yield "".
func AssetURL(baseURL, stored string) string {
	stored = strings.TrimSpace(stored)
	if stored == "" || stored == "null" || stored == "undefined" {
		return ""
	}
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}

	stored = strings.TrimLeft(stored, "/")
	for _, prefix := range legacyPrefixes {
		stored = strings.TrimPrefix(stored, prefix)
	}

	return strings.TrimRight(baseURL, "/") + "/" + stored
}
