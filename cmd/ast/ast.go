package main

import (
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

var exprTypes = []string{
	"Binary: Left Expr, Operator Token, Right Expr",
	"Grouping: Expression Expr",
	"Literal: Value Value",
	"Unary: Operator Token, Right Expr",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast /path/to/expr.go")
		return
	}

	out, err := generateAst("Expr", exprTypes)
	if err != nil {
		log.Fatal(err)
	}

	if err := ioutil.WriteFile(os.Args[1], out, 0644); err != nil {
		log.Fatal(err)
	}
}

type field struct {
	name     string
	typeName string
}

type nodeType struct {
	name   string
	fields []field
}

func parseTypes(types []string) []nodeType {
	nodes := make([]nodeType, 0, len(types))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		node := nodeType{name: strings.TrimSpace(typeDef[0])}
		for _, f := range strings.Split(typeDef[1], ",") {
			parts := strings.Fields(f)
			node.fields = append(node.fields, field{name: parts[0], typeName: parts[1]})
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func generateAst(baseName string, types []string) ([]byte, error) {
	nodes := parseTypes(types)
	dispatcher := strings.ToLower(baseName) + "Dispatcher"

	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += fmt.Sprintf("// %s is implemented by every node of the syntax tree.\n", baseName)
	out += "type " + baseName + " interface {\n"
	out += "\taccept(" + dispatcher + ")\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += "// Visitor is one operation over the syntax tree. Each method receives\n"
	out += "// the payload of the node it handles.\n"
	out += "type Visitor[T any] interface {\n"
	for _, n := range nodes {
		params := make([]string, len(n.fields))
		for i, f := range n.fields {
			params[i] = lowerFirst(f.name) + " " + f.typeName
		}
		out += "\tVisit" + n.name + baseName + "(" + strings.Join(params, ", ") + ") T\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start dispatcher interface
	out += "type " + dispatcher + " interface {\n"
	for _, n := range nodes {
		out += "\tdispatch" + n.name + "(" + lowerFirst(baseName) + " *" + n.name + ")\n"
	}
	out += "}\n\n"
	// End dispatcher interface

	// Start structs
	for _, n := range nodes {
		out += generateType(dispatcher, n)
	}
	// End structs

	// Start walker
	out += "type walker[T any] struct {\n"
	out += "\tvisitor Visitor[T]\n"
	out += "\tresult T\n"
	out += "}\n\n"
	for _, n := range nodes {
		args := make([]string, len(n.fields))
		for i, f := range n.fields {
			args[i] = lowerFirst(baseName) + "." + f.name
		}
		out += "func (w *walker[T]) dispatch" + n.name + "(" + lowerFirst(baseName) + " *" + n.name + ") {\n"
		out += "\tw.result = w.visitor.Visit" + n.name + baseName + "(" + strings.Join(args, ", ") + ")\n"
		out += "}\n\n"
	}
	// End walker

	return format.Source([]byte(out))
}

func generateType(dispatcher string, n nodeType) string {
	// Start Structure Definition
	out := "type " + n.name + " struct {\n"
	for _, f := range n.fields {
		out += "\t" + f.name + " " + f.typeName + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + n.name + ") accept(d " + dispatcher + ") {\n"
	out += "\td.dispatch" + n.name + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}

func lowerFirst(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}
