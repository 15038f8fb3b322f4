package repoid

import (
	"regexp"
	"strings"
	"unicode"
)

// space is the Unicode whitespace class: ASCII controls \t-\r and \x1c-\x1f,
// NEL and every separator category.
const space = `\x09-\x0d\x1c-\x1f\x{85}\p{Z}`

var (
	// githubURL finds "github.com" followed by ':' or '/' and captures owner and name.
	githubURL = regexp.MustCompile(`(?i)github\.com[:/]+([^/]+)/([^/` + space + `?#]+)`)
	// ownerName matches a whole "owner/name" string. Trailing slashes are tolerated.
	ownerName = regexp.MustCompile(`^([^/` + space + `]+)/([^/` + space + `]+)/*$`)
	// urlNameSuffix is removed from the name captured by githubURL.
	urlNameSuffix = regexp.MustCompile(`(\.git$|/+$)`)
)

// ID is a canonical repository identifier. Both fields are lowercase.
type ID struct {
	Owner string
	Name  string
}

// String returns the "owner/name" form.
func (id ID) String() string {
	return id.Owner + "/" + id.Name
}

// Normalize converts a raw repository reference into an ID.
// It returns false when the reference is not recognized.
func Normalize(raw string) (ID, bool) {
	if raw == "" {
		return ID{}, false
	}
	s := strings.TrimFunc(raw, isSpace)

	if m := githubURL.FindStringSubmatch(s); m != nil {
		owner := strings.ToLower(m[1])
		name := strings.ToLower(m[2])
		name = urlNameSuffix.ReplaceAllString(name, "")
		if i := strings.IndexAny(name, "?#@"); i >= 0 {
			name = name[:i]
		}
		return ID{Owner: owner, Name: name}, true
	}

	if m := ownerName.FindStringSubmatch(s); m != nil {
		owner := strings.ToLower(m[1])
		name := strings.ToLower(m[2])
		name = strings.TrimRight(name, "/")
		name = strings.ReplaceAll(name, ".git", "")
		return ID{Owner: owner, Name: name}, true
	}

	return ID{}, false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// NormalizeString is Normalize rendered as a string; unrecognized input
// yields the empty string.
func NormalizeString(raw string) string {
	id, ok := Normalize(raw)
	if !ok {
		return ""
	}
	return id.String()
}

// Parse splits an already normalized "owner/name" string.
// It returns false unless s contains exactly one '/'.
func Parse(s string) (ID, bool) {
	if strings.Count(s, "/") != 1 {
		return ID{}, false
	}
	owner, name, _ := strings.Cut(s, "/")
	return ID{Owner: owner, Name: name}, true
}
