// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package multilevel provides a simple recursive tree, a 'multilevel list',
// of files and folders. Folders contain an ordered list of files and
// other folders. Trees are compared structurally and the children of a
// folder may be used as the input to the cloudeng.io/editdistance
// functions, eg:
//
//	a, _ := treeA.Children()
//	b, _ := treeB.Children()
//	d := editdistance.TabulatedFunc(a, b, (*multilevel.Node).Equal)
package multilevel

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
)

// Kind represents the type of a node, ie. File or Folder.
type Kind int

// Values for Kind.
const (
	File Kind = iota
	Folder
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Folder:
		return "folder"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrNotFolder is returned when attempting to add a child to a file.
var ErrNotFolder = errors.New("not a folder")

// Node represents a file or a folder. A node owns its children, there are
// no shared or parent references and hence no cycles.
type Node struct {
	kind     Kind
	name     string
	children []*Node
}

// RootName is the name of the folder returned by New.
const RootName = "root"

// New returns a new, empty, folder named RootName.
func New() *Node {
	return NewFolder(RootName)
}

// NewFile returns a new file with the specified content.
func NewFile(content string) *Node {
	return &Node{kind: File, name: content}
}

// NewFolder returns a new, empty, folder with the specified name.
func NewFolder(name string) *Node {
	return &Node{kind: Folder, name: name}
}

// Kind returns the kind of the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Name returns the content of a file or the name of a folder.
func (n *Node) Name() string {
	return n.name
}

// IsFile returns true if the node is a file.
func (n *Node) IsFile() bool {
	return n.kind == File
}

// IsFolder returns true if the node is a folder.
func (n *Node) IsFolder() bool {
	return n.kind == Folder
}

// Children returns the children of a folder and true, or nil and false
// for a file. The returned slice is that used by the node and hence
// its elements may be modified. Callers must not append to it, since
// the appended nodes are not added to n and may be overwritten by a
// subsequent AddFile or AddFolder; use those methods instead.
func (n *Node) Children() ([]*Node, bool) {
	if n.kind != Folder {
		return nil, false
	}
	return n.children, true
}

func (n *Node) add(child *Node) (*Node, error) {
	if n.kind != Folder {
		return nil, fmt.Errorf("cannot add %v %q to file %q: %w", child.kind, child.name, n.name, ErrNotFolder)
	}
	n.children = append(n.children, child)
	return child, nil
}

// AddFile appends a new file with the specified content to a folder
// and returns it. An error wrapping ErrNotFolder is returned if n is
// a file, in which case n is unchanged.
func (n *Node) AddFile(content string) (*Node, error) {
	return n.add(NewFile(content))
}

// AddFolder appends a new, empty, folder with the specified name to a
// folder and returns it. An error wrapping ErrNotFolder is returned if
// n is a file, in which case n is unchanged.
func (n *Node) AddFolder(name string) (*Node, error) {
	return n.add(NewFolder(name))
}

// Equal returns true if n and o are structurally identical: files are
// equal if their contents are equal, folders if their names are equal
// and their children are pairwise equal in order. A file is never equal
// to a folder. A nil node is equal only to another nil node.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.kind != o.kind || n.name != o.name {
		return false
	}
	if len(n.children) != len(o.children) {
		return false
	}
	for i, c := range n.children {
		if !c.Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// Walk returns an iterator over the tree rooted at n in depth first
// pre-order. The depth of each node relative to n is also returned.
func (n *Node) Walk() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		n.walk(0, yield)
	}
}

func (n *Node) walk(depth int, yield func(int, *Node) bool) bool {
	if !yield(depth, n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(depth+1, yield) {
			return false
		}
	}
	return true
}
