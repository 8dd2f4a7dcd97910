package grammar

import (
	"fmt"

	"github.com/signadot/arc-format/arc/token"
)

// Parse matches src as an arc program and returns its parse tree, rooted
// at a Program node whose children are the statements and comments.
func Parse(src []byte, options ...Option) (*Node, error) {
	return ParseRule(Program, src, options...)
}

// ParseRule matches all of src against rule r.
func ParseRule(r Rule, src []byte, options ...Option) (*Node, error) {
	p := newParser(src, newOpts(options))
	f := p.entry(r)
	if f == nil {
		return nil, fmt.Errorf("%w: no entry point for rule %s", ErrSyntax, r)
	}
	ok := f()
	if ok && p.pos != len(src) {
		p.track(EOI, p.pos, p.attemptsAt(p.pos), p.attemptsAt(p.pos))
		ok = false
	}
	doc := token.NewPosDoc(src)
	if p.tooDeep {
		return nil, &SyntaxError{Pos: doc.Pos(p.deepPos), Err: ErrTooDeep}
	}
	if !ok {
		return nil, &SyntaxError{Pos: doc.Pos(p.attemptPos), Expected: p.expected()}
	}
	if r.silent() || len(p.stack) != 1 {
		return &Node{Rule: r, Start: 0, End: p.pos, Children: p.stack}, nil
	}
	return p.stack[0], nil
}

func (p *parser) entry(r Rule) func() bool {
	return map[Rule]func() bool{
		Program:          p.program,
		Statement:        p.statement,
		EOI:              p.eoi,
		EmptyLine:        p.emptyLine,
		RestOfLine:       p.restOfLine,
		IncludeStatement: p.includeStatement,
		ImportStatement:  p.importStatement,
		DictScope:        p.dictScope,
		DictHead:         p.dictHead,
		DictPair:         p.dictPair,
		ListScope:        p.listScope,
		ListHead:         p.listHead,
		ListPair:         p.listPair,
		Insert:           p.insert,
		Append:           p.appendMark,
		DictLiteral:      p.dictLiteral,
		ListLiteral:      p.listLiteral,
		Data:             p.data,
		Special:          p.special,
		CiteValue:        p.citeValue,
		Byte:             p.byteLit,
		ByteBin:          p.byteBin,
		ByteOct:          p.byteOct,
		ByteHex:          p.byteHex,
		Number:           p.number,
		SignedNumber:     p.signedNumber,
		Decimal:          p.decimal,
		DecimalBad:       p.decimalBad,
		Integer:          p.integer,
		Exponent:         p.exponent,
		String:           p.stringLit,
		StringNormal:     p.stringNormal,
		StringApostrophe: p.stringApostrophe,
		StringQuotation:  p.stringQuotation,
		InlineString:     p.inlineString,
		Apostrophe:       p.apostrophe,
		Quotation:        p.quotation,
		Namespace:        p.namespace,
		Key:              p.key,
		Symbol:           p.symbol,
		Comment:          p.comment,
		Whitespace:       p.whitespace,
		LineComment:      p.lineComment,
		MultiLineComment: p.multiLineComment,
		Dot:              p.dot,
		Underline:        p.underline,
		Separator:        p.separator,
		Set:              p.set,
		Sign:             p.sign,
	}[r]
}
