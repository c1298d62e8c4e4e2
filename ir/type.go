package ir

import "fmt"

type Type int

const (
	TextType Type = iota
	ItalicType
	BoldType
	LinkType
	SentenceType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TextType:     "Text",
		ItalicType:   "Italic",
		BoldType:     "Bold",
		LinkType:     "Link",
		SentenceType: "Sentence",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Text":     TextType,
		"Italic":   ItalicType,
		"Bold":     BoldType,
		"Link":     LinkType,
		"Sentence": SentenceType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		TextType,
		ItalicType,
		BoldType,
		LinkType,
		SentenceType,
	}
}

func (t Type) IsLeaf() bool {
	return t == TextType
}
