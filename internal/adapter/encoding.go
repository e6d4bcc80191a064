package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

const declarationLines = 2

// ErrEncoding is returned when a declared source encoding is unknown or the
// bytes cannot be decoded with it.
var ErrEncoding = errors.New("source encoding error")

// codingPattern matches a PEP 263 declaration, e.g. `# -*- coding: latin-1 -*-`.
var codingPattern = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*([-\w.]+)`)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DeclaredEncoding returns the encoding named in the first two lines of src,
// or "utf-8" when there is none.
func DeclaredEncoding(src []byte) string {
	rest := src

	for i := 0; i < declarationLines && len(rest) > 0; i++ {
		line := rest
		if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
			line, rest = rest[:idx], rest[idx+1:]
		} else {
			rest = nil
		}

		if found := codingPattern.FindSubmatch(line); found != nil {
			return string(found[1])
		}
	}

	return "utf-8"
}

// DecodeSource converts src to UTF-8 according to its declared encoding.
func DecodeSource(src []byte) ([]byte, error) {
	src = bytes.TrimPrefix(src, utf8BOM)
	name := DeclaredEncoding(src)

	if isUTF8Name(name) {
		if !utf8.Valid(src) {
			return nil, fmt.Errorf("%w: content is not valid %s", ErrEncoding, name)
		}

		return src, nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}

	decoded, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrEncoding, name, err)
	}

	return decoded, nil
}

func isUTF8Name(name string) bool {
	switch normalizeEncodingName(name) {
	case "utf-8", "utf8", "utf-8-sig", "utf8-sig":
		return true
	default:
		return false
	}
}

func normalizeEncodingName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// lookupEncoding resolves Python codec names through the IANA registry first
// and falls back to the WHATWG labels, which cover aliases such as "latin1".
func lookupEncoding(name string) (encoding.Encoding, error) {
	normalized := normalizeEncodingName(name)

	for _, candidate := range []string{normalized, strings.ReplaceAll(normalized, "-", "")} {
		if enc, err := ianaindex.IANA.Encoding(candidate); err == nil && enc != nil {
			return enc, nil
		}

		if enc, err := htmlindex.Get(candidate); err == nil {
			return enc, nil
		}
	}

	return nil, fmt.Errorf("%w: unknown encoding %q", ErrEncoding, name)
}
