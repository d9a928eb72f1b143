package content

import "strings"

// Slugify normalizes a name into lowercase, hyphen-separated tokens suitable
// for use in an output path. Runs of non-alphanumeric characters collapse to
// a single hyphen; leading and trailing hyphens are dropped.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
