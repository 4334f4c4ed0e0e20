package php

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ClassDeclaration describes a class and the types it extends or implements.
type ClassDeclaration struct {
	// Name is empty for anonymous classes.
	Name string

	// NameStart and NameEnd delimit the name token in bytes.
	NameStart uint
	NameEnd   uint

	// NameLine and NameColumn are 1-based.
	NameLine   int
	NameColumn int

	// Parent is the extended class as written in source, empty when none.
	Parent string

	// Interfaces are the implemented interfaces in declared order.
	Interfaces []string

	StartLine int
	EndLine   int
}

// IsAnonymous reports whether the class has no name token.
func (c ClassDeclaration) IsAnonymous() bool {
	return c.Name == ""
}

// HasSupertypes reports whether the class extends or implements anything.
func (c ClassDeclaration) HasSupertypes() bool {
	return c.Parent != "" || len(c.Interfaces) > 0
}

func newClassDeclaration(node *sitter.Node, source []byte) ClassDeclaration {
	decl := ClassDeclaration{
		StartLine: int(node.StartPosition().Row) + 1,
		EndLine:   int(node.EndPosition().Row) + 1,
	}

	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		decl.Name = extractNodeText(nameNode, source)
		decl.NameStart = nameNode.StartByte()
		decl.NameEnd = nameNode.EndByte()
		decl.NameLine = int(nameNode.StartPosition().Row) + 1
		decl.NameColumn = int(nameNode.StartPosition().Column) + 1
	}

	if base := findChildByType(node, "base_clause"); base != nil {
		if names := typeNames(base, source); len(names) > 0 {
			decl.Parent = names[0]
		}
	}

	if impl := findChildByType(node, "class_interface_clause"); impl != nil {
		decl.Interfaces = typeNames(impl, source)
	}

	return decl
}

// typeNames returns the names listed in an extends or implements clause.
func typeNames(clause *sitter.Node, source []byte) []string {
	var names []string
	for i := 0; i < int(clause.ChildCount()); i++ {
		child := clause.Child(uint(i))
		if child == nil || !child.IsNamed() {
			continue
		}
		switch child.Kind() {
		case "name", "qualified_name", "relative_name":
			names = append(names, extractNodeText(child, source))
		}
	}
	return names
}
