package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case TextType:
		return strings.Compare(a.String, b.String)
	case LinkType:
		if c := strings.Compare(a.Target, b.Target); c != 0 {
			return c
		}
		return compareChildren(a, b)
	case ItalicType, BoldType, SentenceType:
		return compareChildren(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally identical: same kind,
// same text or target, and pairwise equal children.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Text < Italic < Bold < Link < Sentence
func rank(t Type) int {
	switch t {
	case TextType:
		return 0
	case ItalicType:
		return 1
	case BoldType:
		return 2
	case LinkType:
		return 3
	case SentenceType:
		return 4
	}
	return 100
}

func compareChildren(a, b *Node) int {
	lenA := len(a.Children)
	lenB := len(b.Children)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
