package grammar

import "github.com/signadot/arc-format/arc/token"

// skip consumes whitespace and comments between tokens, except inside
// atomic rules.
func (p *parser) skip() bool {
	if p.atom != nonAtomic {
		return true
	}
	was := p.skipping
	p.skipping = true
	p.rep(p.whitespace)
	p.rep(func() bool {
		return p.seq(p.comment, func() bool { return p.rep(p.whitespace) })
	})
	p.skipping = was
	return true
}

func (p *parser) program() bool {
	return p.rule(Program, func() bool {
		return p.seq(
			p.skip,
			func() bool {
				return p.opt(func() bool {
					return p.seq(p.statement, func() bool {
						return p.rep(func() bool { return p.seq(p.skip, p.statement) })
					})
				})
			},
			p.skip,
			p.eoi,
		)
	})
}

func (p *parser) eoi() bool {
	return p.rule(EOI, func() bool { return p.pos == len(p.src) })
}

func (p *parser) statement() bool {
	return p.rule(Statement, func() bool {
		return p.alt(
			p.separator,
			p.emptyLines,
			p.dictLiteral,
			p.dictScope,
			p.dictPair,
			p.listScope,
			p.includeStatement,
		)
	})
}

func (p *parser) emptyLines() bool {
	return p.seq(p.emptyLine, p.skip, func() bool {
		return p.opt(func() bool {
			return p.seq(p.emptyLine, func() bool {
				return p.rep(func() bool { return p.seq(p.skip, p.emptyLine) })
			})
		})
	})
}

// emptyLine is blanks up to a line end.  The implicit skip before every
// statement consumes blank lines first, so within a program this only
// matches when reached directly.
func (p *parser) emptyLine() bool {
	return p.rule(EmptyLine, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.seq(
				func() bool {
					return p.rep(func() bool { return p.seq(func() bool { return p.not(p.newline) }, p.whitespace) })
				},
				p.newline,
			)
		})
	})
}

func (p *parser) restOfLine() bool {
	return p.rule(RestOfLine, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.rep(func() bool { return p.seq(func() bool { return p.not(p.newline) }, p.anyChar) })
		})
	})
}

func (p *parser) directive(r Rule, kw string) bool {
	return p.rule(r, func() bool {
		return p.seq(
			func() bool { return p.lit(kw) }, p.skip,
			func() bool { return p.lit("(") }, p.skip,
			p.stringNormal, p.skip,
			func() bool { return p.lit(",") }, p.skip,
			p.symbol, p.skip,
			func() bool { return p.lit(")") },
		)
	})
}

func (p *parser) includeStatement() bool { return p.directive(IncludeStatement, "@include") }
func (p *parser) importStatement() bool  { return p.directive(ImportStatement, "@import") }

// scope matches a header followed by its optionally separated items.
func (p *parser) scope(r Rule, head, item func() bool) bool {
	sepItem := func() bool {
		return p.seq(func() bool { return p.opt(p.separator) }, p.skip, item)
	}
	return p.rule(r, func() bool {
		return p.seq(head, p.skip, func() bool {
			return p.opt(func() bool {
				return p.seq(sepItem, func() bool {
					return p.rep(func() bool { return p.seq(p.skip, sepItem) })
				})
			})
		})
	})
}

func (p *parser) head(r Rule, open, close string) bool {
	return p.rule(r, func() bool {
		return p.seq(
			func() bool { return p.lit(open) }, p.skip,
			func() bool {
				return p.opt(func() bool {
					return p.seq(p.dot, func() bool {
						return p.rep(func() bool { return p.seq(p.skip, p.dot) })
					})
				})
			},
			p.skip,
			p.namespace, p.skip,
			func() bool { return p.lit(close) },
		)
	})
}

func (p *parser) dictScope() bool { return p.scope(DictScope, p.dictHead, p.dictPair) }
func (p *parser) dictHead() bool  { return p.head(DictHead, "{", "}") }
func (p *parser) listScope() bool { return p.scope(ListScope, p.listHead, p.listPair) }
func (p *parser) listHead() bool  { return p.head(ListHead, "[", "]") }

func (p *parser) dictPair() bool {
	return p.rule(DictPair, func() bool {
		return p.seq(p.namespace, p.skip, p.set, p.skip, p.data)
	})
}

// listPair is an insert ('*' pairs...) or an append ('&' values...).
// Items after the first must not begin another list pair or a header, so
// that "& 1\n& 2" is two appends rather than 1 and the bare word "& 2".
// Append items must not begin a pair either, so "& 1\nk = 2" leaves the
// pair to its own statement.
func (p *parser) listPair() bool {
	pairStart := func() bool { return p.seq(p.namespace, p.skip, p.set) }
	more := func(f func() bool, stops ...func() bool) func() bool {
		stops = append([]func() bool{p.insert, p.appendMark, p.dictHead, p.listHead}, stops...)
		return func() bool {
			return p.seq(func() bool {
				return p.not(func() bool { return p.alt(stops...) })
			}, f)
		}
	}
	form := func(mark, item func() bool, stops ...func() bool) func() bool {
		next := more(item, stops...)
		return func() bool {
			return p.seq(mark, p.skip, item, p.skip, func() bool {
				return p.opt(func() bool {
					return p.seq(next, func() bool {
						return p.rep(func() bool { return p.seq(p.skip, next) })
					})
				})
			})
		}
	}
	return p.rule(ListPair, func() bool {
		return p.alt(form(p.insert, p.dictPair), form(p.appendMark, p.data, pairStart))
	})
}

func (p *parser) insert() bool     { return p.atomLit(Insert, "*") }
func (p *parser) appendMark() bool { return p.atomLit(Append, "&") }

// literal matches an inline dict or list: empty, or items with optional
// leading separators and an optional trailing one.
func (p *parser) literal(r Rule, open, close string, item func() bool) bool {
	sepItem := func() bool {
		return p.seq(func() bool { return p.opt(p.separator) }, p.skip, item)
	}
	closer := func() bool { return p.lit(close) }
	return p.rule(r, func() bool {
		return p.nest(func() bool {
			return p.seq(
				func() bool { return p.lit(open) },
				p.skip,
				func() bool {
					return p.alt(closer, func() bool {
						return p.seq(
							sepItem, p.skip,
							func() bool {
								return p.opt(func() bool {
									return p.seq(sepItem, func() bool {
										return p.rep(func() bool { return p.seq(p.skip, sepItem) })
									})
								})
							},
							p.skip,
							func() bool { return p.opt(p.separator) },
							p.skip,
							closer,
						)
					})
				},
			)
		})
	})
}

func (p *parser) dictLiteral() bool { return p.literal(DictLiteral, "{", "}", p.dictPair) }
func (p *parser) listLiteral() bool { return p.literal(ListLiteral, "[", "]", p.data) }

func (p *parser) data() bool {
	return p.rule(Data, func() bool {
		return p.alt(
			p.byteLit,
			p.number,
			p.special,
			p.stringLit,
			p.citeValue,
			p.dictLiteral,
			p.listLiteral,
			p.importStatement,
			p.inlineString,
		)
	})
}

func (p *parser) special() bool {
	return p.rule(Special, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.alt(
				func() bool { return p.lit("true") },
				func() bool { return p.lit("false") },
				func() bool { return p.lit("null") },
			)
		})
	})
}

func (p *parser) citeValue() bool {
	return p.rule(CiteValue, func() bool {
		return p.withAtomicity(compoundAtomic, func() bool {
			return p.seq(func() bool { return p.lit("$") }, p.namespace)
		})
	})
}

func (p *parser) byteLit() bool {
	return p.rule(Byte, func() bool {
		return p.withAtomicity(compoundAtomic, func() bool {
			return p.seq(
				func() bool { return p.alt(p.byteBin, p.byteOct, p.byteHex) },
				func() bool { return p.opt(func() bool { return p.seq(p.underline, p.symbol) }) },
			)
		})
	})
}

func (p *parser) radix(r Rule, lower, upper string, digit func(byte) bool) bool {
	return p.rule(r, func() bool {
		return p.withAtomicity(atomic, func() bool {
			d := p.byteIf(digit)
			return p.seq(
				func() bool { return p.lit("0") },
				func() bool { return p.alt(func() bool { return p.lit(lower) }, func() bool { return p.lit(upper) }) },
				d,
				func() bool { return p.rep(d) },
			)
		})
	})
}

func (p *parser) byteBin() bool { return p.radix(ByteBin, "b", "B", token.IsBinDigit) }
func (p *parser) byteOct() bool { return p.radix(ByteOct, "o", "O", token.IsOctDigit) }
func (p *parser) byteHex() bool { return p.radix(ByteHex, "x", "X", token.IsHexDigit) }

func (p *parser) number() bool {
	return p.rule(Number, func() bool {
		return p.withAtomicity(compoundAtomic, func() bool {
			return p.seq(
				func() bool { return p.alt(p.exponent, p.signedNumber) },
				func() bool { return p.opt(p.symbol) },
			)
		})
	})
}

func (p *parser) signedNumber() bool {
	return p.rule(SignedNumber, func() bool {
		return p.withAtomicity(compoundAtomic, func() bool {
			return p.seq(
				func() bool { return p.opt(p.sign) },
				func() bool { return p.alt(p.decimal, p.decimalBad, p.integer) },
			)
		})
	})
}

// fraction is one or more digits, each optionally preceded by '_'.
func (p *parser) fraction() bool {
	d := func() bool {
		return p.seq(func() bool { return p.opt(p.underline) }, p.byteIf(token.IsDigit))
	}
	return p.seq(d, func() bool { return p.rep(d) })
}

func (p *parser) decimal() bool {
	return p.rule(Decimal, func() bool {
		return p.withAtomicity(compoundAtomic, func() bool {
			return p.seq(p.integer, p.dot, p.fraction)
		})
	})
}

// decimalBad is "1." or ".5": a decimal missing one of its halves.
func (p *parser) decimalBad() bool {
	return p.rule(DecimalBad, func() bool {
		return p.withAtomicity(compoundAtomic, func() bool {
			return p.alt(
				func() bool { return p.seq(p.integer, p.dot) },
				func() bool { return p.seq(p.dot, p.fraction) },
			)
		})
	})
}

func (p *parser) integer() bool {
	return p.rule(Integer, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.alt(
				func() bool { return p.lit("0") },
				func() bool {
					return p.seq(p.byteIf(func(c byte) bool { return '1' <= c && c <= '9' }), func() bool {
						return p.rep(func() bool {
							return p.seq(func() bool { return p.opt(p.underline) }, p.byteIf(token.IsDigit))
						})
					})
				},
			)
		})
	})
}

func (p *parser) exponent() bool {
	return p.rule(Exponent, func() bool {
		return p.withAtomicity(compoundAtomic, func() bool {
			digit := p.byteIf(token.IsDigit)
			return p.seq(
				p.signedNumber,
				func() bool {
					return p.alt(
						func() bool { return p.lit("e") },
						func() bool { return p.lit("E") },
						func() bool { return p.lit("**") },
					)
				},
				func() bool { return p.opt(p.sign) },
				digit,
				func() bool { return p.rep(digit) },
			)
		})
	})
}

// stringLit is an optionally tagged quoted string.  The tag may be
// separated from the quote by whitespace.
func (p *parser) stringLit() bool {
	return p.rule(String, func() bool {
		return p.withAtomicity(nonAtomic, func() bool {
			return p.seq(func() bool { return p.opt(p.symbol) }, p.skip, p.stringNormal)
		})
	})
}

func (p *parser) stringNormal() bool {
	return p.rule(StringNormal, func() bool {
		return p.alt(
			func() bool { return p.seq(p.quotation, p.stringQuotation, p.quotation) },
			func() bool { return p.seq(p.apostrophe, p.stringApostrophe, p.apostrophe) },
		)
	})
}

func (p *parser) body(r Rule, delim func() bool) bool {
	return p.rule(r, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.rep(func() bool {
				return p.alt(
					func() bool { return p.seq(func() bool { return p.lit(`\`) }, p.anyChar) },
					func() bool { return p.seq(func() bool { return p.not(delim) }, p.anyChar) },
				)
			})
		})
	})
}

func (p *parser) stringQuotation() bool  { return p.body(StringQuotation, p.quotation) }
func (p *parser) stringApostrophe() bool { return p.body(StringApostrophe, p.apostrophe) }
func (p *parser) quotation() bool        { return p.atomLit(Quotation, `"`) }
func (p *parser) apostrophe() bool       { return p.atomLit(Apostrophe, `'`) }

// inlineString is a bare word: everything up to a separator, a line end,
// or a closing bracket.
func (p *parser) inlineString() bool {
	c := func() bool {
		return p.seq(func() bool {
			return p.not(func() bool {
				return p.alt(p.separator, p.newline, func() bool { return p.lit("]") }, func() bool { return p.lit("}") })
			})
		}, p.anyChar)
	}
	return p.rule(InlineString, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.seq(c, func() bool { return p.rep(c) })
		})
	})
}

func (p *parser) namespace() bool {
	dotKey := func() bool { return p.seq(p.dot, p.skip, p.key) }
	return p.rule(Namespace, func() bool {
		return p.seq(p.key, p.skip, func() bool {
			return p.opt(func() bool {
				return p.seq(dotKey, func() bool {
					return p.rep(func() bool { return p.seq(p.skip, dotKey) })
				})
			})
		})
	})
}

func (p *parser) key() bool {
	return p.rule(Key, func() bool {
		return p.alt(p.stringNormal, p.symbol, p.integer)
	})
}

func (p *parser) symbol() bool {
	return p.rule(Symbol, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.seq(
				func() bool { return p.char(token.IsSymbolStart) },
				func() bool { return p.rep(func() bool { return p.char(token.IsSymbolContinue) }) },
			)
		})
	})
}

func (p *parser) comment() bool {
	return p.rule(Comment, func() bool {
		return p.alt(p.multiLineComment, p.lineComment)
	})
}

func (p *parser) whitespace() bool {
	return p.rule(Whitespace, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.alt(
				p.newline,
				func() bool { return p.char(token.IsSpaceSeparator) },
				func() bool { return p.lit("\t") },
			)
		})
	})
}

func (p *parser) lineComment() bool {
	return p.rule(LineComment, func() bool {
		return p.withAtomicity(compoundAtomic, func() bool {
			return p.seq(func() bool { return p.lit("//") }, p.restOfLine)
		})
	})
}

// multiLineComment nests: "/* a /* b */ c */" is a single comment.
func (p *parser) multiLineComment() bool {
	return p.rule(MultiLineComment, func() bool {
		return p.withAtomicity(compoundAtomic, func() bool {
			return p.nest(func() bool {
				end := func() bool { return p.lit("*/") }
				return p.seq(
					func() bool { return p.lit("/*") },
					func() bool {
						return p.rep(func() bool {
							return p.alt(p.multiLineComment, func() bool {
								return p.seq(func() bool { return p.not(end) }, p.anyChar)
							})
						})
					},
					end,
				)
			})
		})
	})
}

func (p *parser) newline() bool {
	return p.alt(
		func() bool { return p.lit("\n") },
		func() bool { return p.lit("\r\n") },
		func() bool { return p.lit("\r") },
	)
}

func (p *parser) atomLit(r Rule, s string) bool {
	return p.rule(r, func() bool {
		return p.withAtomicity(atomic, func() bool { return p.lit(s) })
	})
}

func (p *parser) dot() bool       { return p.atomLit(Dot, ".") }
func (p *parser) underline() bool { return p.atomLit(Underline, "_") }

func (p *parser) separator() bool {
	return p.rule(Separator, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.alt(func() bool { return p.lit(",") }, func() bool { return p.lit(";") })
		})
	})
}

func (p *parser) set() bool {
	return p.rule(Set, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.alt(func() bool { return p.lit("=") }, func() bool { return p.lit(":") })
		})
	})
}

func (p *parser) sign() bool {
	return p.rule(Sign, func() bool {
		return p.withAtomicity(atomic, func() bool {
			return p.alt(func() bool { return p.lit("+") }, func() bool { return p.lit("-") })
		})
	})
}
