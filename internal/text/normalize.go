package text

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	nonAlnumSpace = regexp.MustCompile(`[^\p{L}\p{N} ]+`)
	multiSpace    = regexp.MustCompile(`\s+`)
)

// NormalizeTopic trims, collapses runs of whitespace (including newlines) to a
// single space and swaps double quotes for single ones so the topic can be
// quoted inside a prompt.
func NormalizeTopic(s string) string {
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, `"`, "'")
	return strings.TrimSpace(s)
}

// TopicKey lowercases and strips punctuation, leaving letters, digits and
// single spaces. Two topics that differ only in case or punctuation share a key.
func TopicKey(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumSpace.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
