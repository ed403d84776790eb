package core

// decode.go turns uploaded bytes into text.
//
// Bank exports in the region are rarely UTF-8, so the decoder tries a fixed
// list of encodings and keeps the first one that decodes every byte. The
// Windows code pages reject bytes they leave undefined; ISO-8859-2 maps
// 0x80-0x9F to the C1 controls, so it accepts any input.

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decoded is upload text plus the encoding that produced it.
type Decoded struct {
	Text     string
	Encoding string
}

type textEncoding struct {
	name   string
	decode func([]byte) (string, bool)
}

// importEncodings is tried in order; the first full decode wins.
var importEncodings = []textEncoding{
	{"utf-8", decodeUTF8},
	{"cp1250", decodeCharmap(charmap.Windows1250, false)},
	{"iso-8859-2", decodeCharmap(charmap.ISO8859_2, true)},
	{"windows-1252", decodeCharmap(charmap.Windows1252, false)},
}

// SupportedEncodings lists encoding names in the order Decode tries them.
func SupportedEncodings() []string {
	names := make([]string, len(importEncodings))
	for i, enc := range importEncodings {
		names[i] = enc.name
	}
	return names
}

// Decode returns the text of data under the first supported encoding that
// accepts every byte, or ErrDecode. A leading UTF-8 byte order mark is dropped.
func Decode(data []byte) (Decoded, error) {
	for _, enc := range importEncodings {
		if text, ok := enc.decode(data); ok {
			return Decoded{Text: text, Encoding: enc.name}, nil
		}
	}
	return Decoded{}, ErrDecode
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(bytes.TrimPrefix(data, utf8BOM)), true
}

// decodeCharmap decodes byte by byte, failing on any byte the code page
// does not define. With c1 set, bytes 0x80-0x9F decode to the C1 control
// of the same value, which x/text leaves unmapped for ISO-8859 pages.
func decodeCharmap(cm *charmap.Charmap, c1 bool) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		var b strings.Builder
		b.Grow(len(data))
		for _, c := range data {
			if c1 && c >= 0x80 && c <= 0x9f {
				b.WriteRune(rune(c))
				continue
			}
			r := cm.DecodeByte(c)
			if r == utf8.RuneError {
				return "", false
			}
			b.WriteRune(r)
		}
		return b.String(), true
	}
}
