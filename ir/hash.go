package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// hashSeed is shared so that equal trees hash equal for the lifetime
// of the process. Hashes are not stable across runs.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))

	switch n.Type {
	case TextType:
		h.WriteString(n.String)
	case LinkType:
		h.WriteString(n.Target)
		h.WriteByte(0)
	}

	var b [8]byte
	for _, c := range n.Children {
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}
