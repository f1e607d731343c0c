package models

import "strings"

// DeriveSlug maps a display title or name to a URL-safe identifier: lowercase,
// every run of characters outside [a-z0-9] collapsed to a single hyphen, and
// leading/trailing hyphens stripped. It performs no uniqueness check; the
// database's unique indexes on slug columns catch collisions at save time.
func DeriveSlug(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
