// Package field decodes wire-format field elements into native values.
//
// The calling circuit passes every value as a "0x"-prefixed hex string with
// no type tag; the positional role of each element decides whether it is
// read as a byte, a 64-bit integer, or a Unicode code point. Decoding never
// fails: a malformed element degrades to a sentinel (zero for numeric
// types, NUL for characters) so that one garbage element cannot take down
// the whole call. Validation of the decoded value is the consumer's job.
package field

import (
	"strconv"
	"strings"
)

const prefix = "0x"

// Byte reads a wire scalar as an 8-bit value. The numeric decoders skip
// the two-character prefix without inspecting it; anything left that is not
// hex, including an unprefixed or too-short scalar, decodes to 0.
func Byte(v any) uint8 {
	s, ok := v.(string)
	if !ok || len(s) < len(prefix) {
		return 0
	}
	n, err := strconv.ParseUint(s[len(prefix):], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(n)
}

// Uint64 reads a wire scalar as a 64-bit value, with the same fallback
// policy as Byte.
func Uint64(v any) uint64 {
	s, ok := v.(string)
	if !ok || len(s) < len(prefix) {
		return 0
	}
	n, err := strconv.ParseUint(s[len(prefix):], 16, 64)
	if err != nil {
		return 0
	}
	return n
}

// Char reads a wire scalar as a single Unicode code point. Unlike the
// numeric decoders it insists on the literal "0x" prefix; anything else,
// including a code point outside the valid range, decodes to NUL.
func Char(v any) rune {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	if !strings.HasPrefix(s, prefix) {
		return 0
	}
	n, err := strconv.ParseUint(s[len(prefix):], 16, 32)
	if err != nil {
		return 0
	}
	if !validCodePoint(n) {
		return 0
	}
	return rune(n)
}

// String decodes a sequence of wire scalars into a string, one code point
// per element. The output always has exactly len(vs) runes; malformed
// elements appear as embedded NULs rather than being dropped.
func String(vs []any) string {
	var b strings.Builder
	b.Grow(len(vs))
	for _, v := range vs {
		b.WriteRune(Char(v))
	}
	return b.String()
}

// Bytes decodes a sequence of wire scalars with Byte.
func Bytes(vs []any) []uint8 {
	out := make([]uint8, len(vs))
	for i, v := range vs {
		out[i] = Byte(v)
	}
	return out
}

// Uint64s decodes a sequence of wire scalars with Uint64.
func Uint64s(vs []any) []uint64 {
	out := make([]uint64, len(vs))
	for i, v := range vs {
		out[i] = Uint64(v)
	}
	return out
}

// validCodePoint reports whether n is an assignable code point: not a
// surrogate and not beyond the Unicode range. The check runs on the raw
// parsed value, before any rune conversion, so 32-bit values above
// 0x7FFFFFFF cannot wrap into negative runes.
func validCodePoint(n uint64) bool {
	if n >= 0xD800 && n <= 0xDFFF {
		return false
	}
	return n <= 0x10FFFF
}
