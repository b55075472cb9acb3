package domish

import (
	"regexp"
	"strconv"
	"strings"
)

// The named entities understood by the decoder.  Anything else is left
// verbatim, delimiters included.
var entityMap = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": "\"",
	"apos": "'",
}

var reEntity = regexp.MustCompile(`&(#?)([A-Za-z0-9]+);`)

// expandEntities decodes &name; and &#NNN; references in text, returning the
// result as a sequence of chunks so that long runs without entities are not
// re-allocated.  Malformed or out-of-range references stay verbatim.
func expandEntities(text string) []string {
	// shortest possible reference is "&x;"
	if len(text) < 3 {
		return []string{text}
	}

	chunks := make([]string, 0, 4)
	for span := range iterMatches(reEntity, text) {
		if span.match == nil {
			chunks = append(chunks, span.frag.Text())
			continue
		}
		chunks = append(chunks, decodeEntity(span.frag.Text()))
	}
	return chunks
}

// decodeEntity expands a single "&name;" or "&#digits;" reference, returning
// the raw text unchanged when the reference is unknown or out of range.
func decodeEntity(raw string) string {
	body := raw[1 : len(raw)-1]
	if strings.HasPrefix(body, "#") {
		code, err := strconv.Atoi(body[1:])
		if err != nil || code < 0 || code > 0x10FFFF {
			return raw
		}
		return string(rune(code))
	}
	if exp, ok := entityMap[body]; ok {
		return exp
	}
	return raw
}

// expand is the eager form of expandEntities.
func expand(text string) string {
	if len(text) < 3 {
		return text
	}
	return strings.Join(expandEntities(text), "")
}
