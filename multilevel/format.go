// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package multilevel

import (
	"encoding/binary"
	"hash"
	"strings"

	"cloudeng.io/algo/digests"
)

// String returns an indented representation of the tree rooted at n, one
// node per line with folder names suffixed by a '/', eg:
//
//	root/
//	  Hello
//	  bookmarks/
//	    Buy milk!
func (n *Node) String() string {
	out := &strings.Builder{}
	for depth, node := range n.Walk() {
		out.WriteString(strings.Repeat("  ", depth))
		out.WriteString(node.name)
		if node.kind == Folder {
			out.WriteByte('/')
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// Digest returns a digest of the structure and contents of the tree rooted
// at n computed using the specified algorithm, one of those supported by
// cloudeng.io/algo/digests. Structurally equal trees have equal digests
// and hence digests can be used to cheaply rule out equality between
// large trees that have been stored or transmitted.
func (n *Node) Digest(algo string) ([]byte, error) {
	h, err := digests.New(algo, nil)
	if err != nil {
		return nil, err
	}
	n.digest(h.Hash)
	return h.Sum(nil), nil
}

// digest writes the kind, the length prefixed name and number of children
// of every node so that distinct trees cannot produce the same byte stream.
func (n *Node) digest(h hash.Hash) {
	var buf [binary.MaxVarintLen64]byte
	writeInt := func(v int) {
		l := binary.PutUvarint(buf[:], uint64(v))
		h.Write(buf[:l])
	}
	writeInt(int(n.kind))
	writeInt(len(n.name))
	h.Write([]byte(n.name))
	writeInt(len(n.children))
	for _, c := range n.children {
		c.digest(h)
	}
}
