package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Kind     Type    `json:"kind"`
	Text     string  `json:"text,omitempty"`
	Target   string  `json:"target,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Kind:     y.Type,
		Text:     y.String,
		Target:   y.Target,
		Children: y.Children,
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Kind
	y.String = tmp.Text
	y.Target = tmp.Target
	y.Children = tmp.Children

	if y.Type.IsLeaf() && len(y.Children) != 0 {
		return fmt.Errorf("%s node with %d children", y.Type, len(y.Children))
	}
	for i, c := range y.Children {
		c.Parent = y
		c.ParentIndex = i
	}
	return nil
}
