package token

import (
	"unicode"
	"unicode/utf8"
)

// IsSymbolStart reports whether r may begin a symbol.
//
// Go's unicode tables carry no XID_Start property; letters plus letter
// numbers (Nl) is the same set minus a handful of compatibility characters.
func IsSymbolStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

// IsSymbolContinue reports whether r may continue a symbol.
func IsSymbolContinue(r rune) bool {
	if IsSymbolStart(r) {
		return true
	}
	return unicode.In(r, unicode.Nd, unicode.Mn, unicode.Mc, unicode.Pc)
}

// IsSpaceSeparator reports whether r is in Unicode category Zs.
func IsSpaceSeparator(r rune) bool {
	return unicode.Is(unicode.Zs, r)
}

// IsSymbol reports whether all of v forms a single symbol.
func IsSymbol(v string) bool {
	if v == "" {
		return false
	}
	for i, r := range v {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if !IsSymbolStart(r) {
				return false
			}
			continue
		}
		if !IsSymbolContinue(r) {
			return false
		}
	}
	return true
}

// IsInteger reports whether v is an integer in canonical form: "0" or a
// non-zero digit followed by digits, without separators or sign.
func IsInteger(v string) bool {
	if v == "" {
		return false
	}
	if v == "0" {
		return true
	}
	if v[0] < '1' || v[0] > '9' {
		return false
	}
	for i := 1; i < len(v); i++ {
		if !IsDigit(v[i]) {
			return false
		}
	}
	return true
}

func IsDigit(c byte) bool    { return '0' <= c && c <= '9' }
func IsBinDigit(c byte) bool { return c == '0' || c == '1' }
func IsOctDigit(c byte) bool { return '0' <= c && c <= '7' }
func IsHexDigit(c byte) bool {
	return IsDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
