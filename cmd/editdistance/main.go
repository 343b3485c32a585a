// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command editdistance computes the edit distance between strings, files
// and multilevel trees using any of the strategies provided by
// cloudeng.io/editdistance.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	cmds := &commands{out: os.Stdout}

	compareCmd := subcmd.NewCommand("compare",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		cmds.compare, subcmd.ExactlyNumArguments(2))
	compareCmd.Document(`compute the edit distance between two strings.`, "<a> <b>")

	filesCmd := subcmd.NewCommand("files",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		cmds.files, subcmd.ExactlyNumArguments(2))
	filesCmd.Document(`compute the edit distance between the contents of two files, --units=lines is generally the most useful for text files.`, "<file-a> <file-b>")

	treesCmd := subcmd.NewCommand("trees",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		cmds.trees, subcmd.ExactlyNumArguments(2))
	treesCmd.Document(`compare two multilevel trees (files and folders) described in YAML and compute the edit distance between the children of their top level folders.`, "<tree-a.yaml> <tree-b.yaml>")

	demoCmd := subcmd.NewCommand("demo",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		cmds.demo, subcmd.WithoutArguments())
	demoCmd.Document(`print the edit distance between NOHELLO and HELLGO.`)

	cmdSet = subcmd.NewCommandSet(compareCmd, filesCmd, treesCmd, demoCmd)
	cmdSet.Document(`compute edit distances.

The edit distance, or Levenshtein distance, is the minimum number of single
element insertions, deletions and substitutions required to transform one
sequence into another. Three strategies are available, naive, tabulated
and memoized, which always produce the same distance but differ greatly
in their running time; naive is exponential in the length of its inputs
and is refused for inputs whose combined length exceeds --naive-limit.

Strings and files may be compared as sequences of bytes, runes or lines,
multilevel trees are compared as sequences of their top level children.
A YAML configuration file may be used to provide defaults for all flags,
for example:

  strategy: tabulated
  units: lines
  naive_limit: 20
  logging:
    level: 3
    format: text
`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
