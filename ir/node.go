package ir

import (
	"strings"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	Children    []*Node

	String string // TextType only
	Target string // LinkType only
}

func Text(v string) *Node {
	return TextAt(&Node{}, v)
}

func TextAt(p *Node, v string) *Node {
	p.Type = TextType
	p.String = v
	return p
}

func Sentence(children ...*Node) *Node {
	return fromChildren(SentenceType, children)
}

func Bold(children ...*Node) *Node {
	return fromChildren(BoldType, children)
}

func Italic(children ...*Node) *Node {
	return fromChildren(ItalicType, children)
}

func Link(target string, display ...*Node) *Node {
	res := fromChildren(LinkType, display)
	res.Target = target
	return res
}

func fromChildren(t Type, children []*Node) *Node {
	res := &Node{
		Type: t,
	}
	res.Children = make([]*Node, len(children))
	for i, c := range children {
		res.Children[i] = c
		c.Parent = res
		c.ParentIndex = i
	}
	return res
}

// Append adds children to y, maintaining parent bookkeeping.
func (y *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = y
		c.ParentIndex = len(y.Children)
		y.Children = append(y.Children, c)
	}
	return y
}

// Reindex restores the ParentIndex of y's children after the Children
// slice has been rearranged directly.
func (y *Node) Reindex() {
	for i, c := range y.Children {
		c.Parent = y
		c.ParentIndex = i
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Type = y.Type
	dst.String = y.String
	dst.Target = y.Target
	dst.Children = make([]*Node, len(y.Children))
	for i, c := range y.Children {
		dstI := &Node{}
		c.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Children[i] = dstI
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Children {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Matching returns, in document order, every node in the tree rooted at
// y for which pred holds. A match does not prune the walk: the search
// continues into the matching node's children.
func (y *Node) Matching(pred func(*Node) bool) []*Node {
	var res []*Node
	y.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost && pred(n) {
			res = append(res, n)
		}
		return true, nil
	})
	return res
}

// Text renders the plain text of the tree rooted at y: literal text
// for TextType, the concatenated text of the children otherwise. For
// links this is the display text, never the target.
func (y *Node) Text() string {
	return y.TextJoin("")
}

func (y *Node) TextJoin(sep string) string {
	if y.Type == TextType {
		return y.String
	}
	parts := make([]string, len(y.Children))
	for i, c := range y.Children {
		parts[i] = c.TextJoin(sep)
	}
	return strings.Join(parts, sep)
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
