// Package token holds the lexical helpers shared by the arc grammar, the
// document builder and the encoder: byte positions with line/column
// lookup, the character classes of symbols and whitespace, and the string
// quoting and escape rules.
package token
