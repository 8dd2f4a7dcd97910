package ir

import (
	"fmt"
)

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	CharType
	StringType
	CiteType
	ListType
	DictType
	FreeDictType
	RecordType
	KeyType
	HandlerStringType
	HandlerNumberType
	CommentType
	EmptyLineType
)

var typeNames = map[Type]string{
	NullType:          "Null",
	BoolType:          "Bool",
	NumberType:        "Number",
	CharType:          "Char",
	StringType:        "String",
	CiteType:          "Cite",
	ListType:          "List",
	DictType:          "Dict",
	FreeDictType:      "FreeDict",
	RecordType:        "Record",
	KeyType:           "Key",
	HandlerStringType: "HandlerString",
	HandlerNumberType: "HandlerNumber",
	CommentType:       "Comment",
	EmptyLineType:     "EmptyLine",
}

func (t Type) String() string {
	d, err := t.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (t Type) MarshalText() ([]byte, error) {
	s, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown type %d", t)
	}
	return []byte(s), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for k, v := range typeNames {
		if v == string(d) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown type %q", string(d))
}

func Types() []Type {
	return []Type{
		NullType, BoolType, NumberType, CharType, StringType, CiteType,
		ListType, DictType, FreeDictType, RecordType, KeyType,
		HandlerStringType, HandlerNumberType, CommentType, EmptyLineType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, DictType, FreeDictType, RecordType, KeyType:
		return false
	}
	return true
}

// IsDict reports whether t is one of the keyed container types.
func (t Type) IsDict() bool {
	return t == DictType || t == FreeDictType
}

// IsJSON reports whether values of type t have a direct JSON counterpart.
func (t Type) IsJSON() bool {
	switch t {
	case NullType, BoolType, NumberType, StringType, ListType, DictType:
		return true
	}
	return false
}

// CommentKind distinguishes line comments from block comments.
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)
