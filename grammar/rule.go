package grammar

import "fmt"

// Rule identifies a grammar rule.  Every node of a parse tree carries the
// rule that produced it.
type Rule int

const (
	Program Rule = iota
	Statement
	EOI
	EmptyLine
	RestOfLine
	IncludeStatement
	ImportStatement
	DictScope
	DictHead
	DictPair
	ListScope
	ListHead
	ListPair
	Insert
	Append
	DictLiteral
	ListLiteral
	Data
	Special
	CiteValue
	Byte
	ByteBin
	ByteOct
	ByteHex
	Number
	SignedNumber
	Decimal
	DecimalBad
	Integer
	Exponent
	String
	StringNormal
	StringApostrophe
	StringQuotation
	InlineString
	Apostrophe
	Quotation
	Namespace
	Key
	Symbol
	Comment
	Whitespace
	LineComment
	MultiLineComment
	Dot
	Underline
	Separator
	Set
	Sign
)

var ruleNames = map[Rule]string{
	Program:          "program",
	Statement:        "statement",
	EOI:              "EOI",
	EmptyLine:        "EmptyLine",
	RestOfLine:       "RestOfLine",
	IncludeStatement: "include_statement",
	ImportStatement:  "import_statement",
	DictScope:        "dict_scope",
	DictHead:         "dict_head",
	DictPair:         "dict_pair",
	ListScope:        "list_scope",
	ListHead:         "list_head",
	ListPair:         "list_pair",
	Insert:           "Insert",
	Append:           "Append",
	DictLiteral:      "dict_literal",
	ListLiteral:      "list_literal",
	Data:             "data",
	Special:          "Special",
	CiteValue:        "cite_value",
	Byte:             "Byte",
	ByteBin:          "Byte_BIN",
	ByteOct:          "Byte_OCT",
	ByteHex:          "Byte_HEX",
	Number:           "Number",
	SignedNumber:     "SignedNumber",
	Decimal:          "Decimal",
	DecimalBad:       "DecimalBad",
	Integer:          "Integer",
	Exponent:         "Exponent",
	String:           "String",
	StringNormal:     "StringNormal",
	StringApostrophe: "StringApostrophe",
	StringQuotation:  "StringQuotation",
	InlineString:     "InlineString",
	Apostrophe:       "Apostrophe",
	Quotation:        "Quotation",
	Namespace:        "namespace",
	Key:              "Key",
	Symbol:           "SYMBOL",
	Comment:          "COMMENT",
	Whitespace:       "WHITESPACE",
	LineComment:      "LineComment",
	MultiLineComment: "MultiLineComment",
	Dot:              "Dot",
	Underline:        "Underline",
	Separator:        "SEPARATOR",
	Set:              "Set",
	Sign:             "Sign",
}

func (r Rule) String() string {
	if s, ok := ruleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// Rules returns all rules in declaration order.
func Rules() []Rule {
	res := make([]Rule, 0, len(ruleNames))
	for r := Program; r <= Sign; r++ {
		res = append(res, r)
	}
	return res
}

// silent rules match without producing nodes or error entries.
func (r Rule) silent() bool {
	switch r {
	case Program, Statement, Whitespace, Comment:
		return true
	}
	return false
}
