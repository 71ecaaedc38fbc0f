package api

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodeProject returns the form of a project identifier used in request
// paths. Purely numeric IDs pass through unchanged; namespaced paths such
// as group/project are percent-encoded.
func EncodeProject(project string) string {
	if isNumeric(project) {
		return project
	}
	return Escape(project)
}

// Escape percent-encodes every byte of s except the unreserved characters
// [_.~a-zA-Z0-9-].
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
