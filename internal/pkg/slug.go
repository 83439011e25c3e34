package pkg

import "strings"

// Slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single dash, trimming leading and trailing dashes.
// "Pintu Kayu Solid" becomes "pintu-kayu-solid".
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
