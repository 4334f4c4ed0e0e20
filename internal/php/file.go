// Package php adapts the tree-sitter PHP grammar into the syntax units the
// rules and fixers operate on: function-like units and class declarations.
package php

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// File is a parsed PHP source file. It owns the underlying syntax tree.
type File struct {
	Path   string
	Source []byte

	tree *sitter.Tree
}

// Root returns the root node of the syntax tree.
func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}

// HasErrors reports whether the parser had to recover from syntax errors.
func (f *File) HasErrors() bool {
	return f.Root().HasError()
}

// Text returns the source text covered by node.
func (f *File) Text(node *sitter.Node) string {
	return extractNodeText(node, f.Source)
}

// Close releases the syntax tree. Nodes obtained from the file are invalid afterwards.
func (f *File) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// FunctionLikes returns every function-like unit in source order, including
// units nested inside other units.
func (f *File) FunctionLikes() []FunctionLike {
	var units []FunctionLike
	walkTree(f.Root(), func(n *sitter.Node) bool {
		if unit, ok := newFunctionLike(n, f.Source); ok {
			units = append(units, unit)
		}
		return true
	})
	return units
}

// Classes returns every class declaration in source order, including
// anonymous classes.
func (f *File) Classes() []ClassDeclaration {
	var classes []ClassDeclaration
	walkTree(f.Root(), func(n *sitter.Node) bool {
		switch n.Kind() {
		case "class_declaration", "anonymous_class":
			classes = append(classes, newClassDeclaration(n, f.Source))
		}
		return true
	})
	return classes
}
