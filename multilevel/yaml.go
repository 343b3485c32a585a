// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package multilevel

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
)

// ErrInvalidSpec is returned for YAML tree specifications that are
// well formed YAML but do not describe a valid tree.
var ErrInvalidSpec = errors.New("invalid tree specification")

// Spec is the YAML representation of a node. Exactly one of File or
// Folder must be set and only folders may have children, eg:
//
//	folder: root
//	children:
//	  - file: Hello
//	  - folder: bookmarks
//	    children:
//	      - file: Buy milk!
type Spec struct {
	File     *string `yaml:"file,omitempty"`
	Folder   *string `yaml:"folder,omitempty"`
	Children []Spec  `yaml:"children,omitempty"`
}

// Parse parses a YAML tree specification. The top level node must be
// a folder. All of the errors found in the specification are returned.
func Parse(spec []byte) (*Node, error) {
	var s Spec
	if err := cmdyaml.ParseConfigStrict(spec, &s); err != nil {
		return nil, err
	}
	return s.Node()
}

// ParseFile is like Parse but reads the specification from the named file
// using cloudeng.io/file.FSReadFile.
func ParseFile(ctx context.Context, filename string) (*Node, error) {
	var s Spec
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &s); err != nil {
		return nil, err
	}
	node, err := s.Node()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return node, nil
}

// Node returns the tree described by s.
func (s Spec) Node() (*Node, error) {
	if s.Folder == nil {
		return nil, fmt.Errorf("the top level node must be a folder: %w", ErrInvalidSpec)
	}
	errs := &errors.M{}
	n := s.build(*s.Folder, errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return n, nil
}

func (s Spec) build(path string, errs *errors.M) *Node {
	invalid := func(format string, args ...any) {
		err := fmt.Errorf("%w: "+format, append([]any{ErrInvalidSpec}, args...)...)
		errs.Append(errors.Annotate(path, err))
	}
	switch {
	case s.File != nil && s.Folder != nil:
		invalid("only one of file (%q) or folder (%q) may be specified", *s.File, *s.Folder)
		return nil
	case s.File != nil:
		if len(s.Children) > 0 {
			invalid("file %q cannot have children", *s.File)
		}
		return NewFile(*s.File)
	case s.Folder == nil:
		invalid("one of file or folder must be specified")
		return nil
	}
	folder := NewFolder(*s.Folder)
	for i, c := range s.Children {
		child := c.build(fmt.Sprintf("%v[%v]", path, i), errs)
		if child != nil {
			folder.children = append(folder.children, child)
		}
	}
	return folder
}

// Spec returns the YAML representation of the tree rooted at n.
func (n *Node) Spec() Spec {
	name := n.name
	if n.kind == File {
		return Spec{File: &name}
	}
	s := Spec{Folder: &name}
	if len(n.children) > 0 {
		s.Children = make([]Spec, len(n.children))
		for i, c := range n.children {
			s.Children[i] = c.Spec()
		}
	}
	return s
}

// MarshalYAML implements yaml.Marshaler.
func (n *Node) MarshalYAML() (any, error) {
	return n.Spec(), nil
}
