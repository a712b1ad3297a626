package pattern

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format is one of the supported pattern file formats.
type Format int

const (
	Life105 Format = iota
	Life106
	Plaintext
	RLE
)

// detectOrder is the order in which formats are sniffed. RLE cannot identify
// itself and is the fallback.
var detectOrder = []Format{Life105, Life106, Plaintext}

func (f Format) String() string {
	switch f {
	case Life105:
		return "Life 1.05"
	case Life106:
		return "Life 1.06"
	case Plaintext:
		return "Plaintext"
	case RLE:
		return "RLE"
	default:
		return "unknown format"
	}
}

// IsType reports whether text looks like this format without parsing it.
// RLE always reports false.
func (f Format) IsType(text string) bool {
	switch f {
	case Life105:
		return isLife105(text)
	case Life106:
		return isLife106(text)
	case Plaintext:
		return isPlaintext(text)
	default:
		return false
	}
}

// Parse parses text as this format.
func (f Format) Parse(text string) (*Pattern, error) {
	switch f {
	case Life105:
		return parseLife105(text)
	case Life106:
		return parseLife106(text)
	case Plaintext:
		return parsePlaintext(text)
	case RLE:
		return parseRLE(text)
	default:
		return nil, errors.Wrapf(ErrUnsupported, "[Parse] unknown format %d", int(f))
	}
}

// Serialise renders the pattern in this format.
func (f Format) Serialise(p *Pattern) (string, error) {
	switch f {
	case Life106:
		return serialiseLife106(p), nil
	case Plaintext:
		return serialisePlaintext(p), nil
	case RLE:
		return serialiseRLE(p), nil
	default:
		return "", errors.Wrapf(ErrUnsupported, "[Serialise] cannot serialise %s", f)
	}
}

// Detect returns the first format whose sniff matches text, or RLE.
func Detect(text string) Format {
	for _, f := range detectOrder {
		if f.IsType(text) {
			return f
		}
	}
	return RLE
}

// FormatForPath maps a file extension to the format conventionally stored
// under it.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".life":
		return Life105, true
	case ".lif":
		return Life106, true
	case ".cells":
		return Plaintext, true
	case ".rle":
		return RLE, true
	default:
		return 0, false
	}
}

// ParseFormat looks a format up by a short name such as "rle" or "life106".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "life105", "life 1.05", "life":
		return Life105, nil
	case "life106", "life 1.06", "lif":
		return Life106, nil
	case "plaintext", "cells":
		return Plaintext, nil
	case "rle":
		return RLE, nil
	default:
		return 0, errors.Errorf("[ParseFormat] unknown format name: %+v", name)
	}
}
