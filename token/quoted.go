package token

import (
	"strings"
	"unicode/utf8"
)

// Quote returns v in double quotes.  Only the quote, backslash, newline,
// carriage return and tab are escaped; everything else is written as is,
// which is exactly what Unescape undoes.
func Quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// QuoteKey returns k bare when it reads back as the same key, i.e. when it
// is a symbol or a canonical integer, and quoted otherwise.
func QuoteKey(k string) string {
	if IsSymbol(k) || IsInteger(k) {
		return k
	}
	return Quote(k)
}

// Unescape resolves the escapes of a string body (the text between the
// delimiters).  \n, \r and \t map to control characters; any other
// escaped character stands for itself.
func Unescape(body string) string {
	i := strings.IndexByte(body, '\\')
	if i == -1 {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	b.WriteString(body[:i])
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 == len(body) {
			b.WriteByte(c)
			break
		}
		r, sz := utf8.DecodeRuneInString(body[i+1:])
		switch r {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteString(body[i+1 : i+1+sz])
		}
		i += 1 + sz
	}
	return b.String()
}
