// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLikeExtractorSimpleFunction(t *testing.T) {
	src := "int add(int a, int b) {\n  return a + b;\n}\n"

	fns := NewCLikeExtractor().Extract(src)
	require.Len(t, fns, 1)

	fn := fns[0]
	assert.Equal(t, "int add(int a, int b) {", fn.Declaration)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"int a", "int b"}, fn.Parameters)
	assert.Equal(t, "\n  return a + b;\n", fn.Body)
	assert.Equal(t, 0, fn.Offset)
	assert.Equal(t, 1, fn.Line)
}

func TestCLikeExtractorScanOrderAndLines(t *testing.T) {
	src := "#include <stdio.h>\n\n" +
		"void first() {\n  a();\n}\n\n" +
		"static int second(void) {\n  return 0;\n}\n"

	fns := NewCLikeExtractor().Extract(src)
	require.Len(t, fns, 2)

	assert.Equal(t, "first", fns[0].Name)
	assert.Equal(t, 3, fns[0].Line)
	assert.Equal(t, "second", fns[1].Name)
	assert.Equal(t, 7, fns[1].Line)
	assert.Empty(t, fns[1].Parameters, "a lone 'void' is not a type/name pair")
}

func TestCLikeExtractorDuplicateDeclarationsKeepOwnBodies(t *testing.T) {
	src := "void f() {\n  a();\n}\nvoid f() {\n  b();\n}\n"

	fns := NewCLikeExtractor().Extract(src)
	require.Len(t, fns, 2)

	assert.Equal(t, fns[0].Declaration, fns[1].Declaration)
	assert.Equal(t, "\n  a();\n", fns[0].Body)
	assert.Equal(t, "\n  b();\n", fns[1].Body)
	assert.Equal(t, 4, fns[1].Line)
}

func TestCLikeExtractorNestedBraces(t *testing.T) {
	src := "int loop(int n) {\n  for (;;) { if (n) { break; } }\n  return n;\n}\nint after() {}"

	fns := NewCLikeExtractor().Extract(src)
	require.Len(t, fns, 2)

	assert.Equal(t, "\n  for (;;) { if (n) { break; } }\n  return n;\n", fns[0].Body)
	assert.Equal(t, "after", fns[1].Name)
	assert.Equal(t, "", fns[1].Body)
}

func TestCLikeExtractorNameBeforeSpacedParen(t *testing.T) {
	fns := NewCLikeExtractor().Extract("int foo (int x) {}")
	require.Len(t, fns, 1)
	assert.Equal(t, "foo", fns[0].Name)
	assert.Equal(t, []string{"int x"}, fns[0].Parameters)
}

func TestCLikeExtractorDropsIrregularParameters(t *testing.T) {
	fns := NewCLikeExtractor().Extract("int h(int* p, const char *s, int n = 3) {}")
	require.Len(t, fns, 1)
	assert.Equal(t, []string{"const char", "int n"}, fns[0].Parameters)
}

func TestCLikeExtractorUnterminatedBody(t *testing.T) {
	fns := NewCLikeExtractor().Extract("void g() { if")
	require.Len(t, fns, 1)
	assert.Equal(t, " i", fns[0].Body)
}

func TestCLikeExtractorControlFlowFalsePositive(t *testing.T) {
	src := "void run() {\n  if (a) {\n  }\n  else if (x) {\n  }\n}\n"

	fns := NewCLikeExtractor().Extract(src)
	require.Len(t, fns, 2)
	assert.Equal(t, "run", fns[0].Name)
	assert.Equal(t, "if", fns[1].Name)
	assert.Equal(t, 4, fns[1].Line)
}

func TestCLikeExtractorMissesMultiLineSignature(t *testing.T) {
	fns := NewCLikeExtractor().Extract("int f(int a,\n      int b) {\n  return a;\n}\n")
	assert.Empty(t, fns)
}

func TestCLikeExtractorNoFunctions(t *testing.T) {
	assert.Empty(t, NewCLikeExtractor().Extract(""))
	assert.Empty(t, NewCLikeExtractor().Extract("int x = 3;\n"))
}

func TestCLikeExtractorSupportsFile(t *testing.T) {
	p := NewCLikeExtractor()
	for _, path := range []string{"a.c", "b.H", "src/c.cpp", "d.hpp", "e.cc", "f.java", "g.cs"} {
		assert.True(t, p.SupportsFile(path), path)
	}
	for _, path := range []string{"a.go", "b.py", "README"} {
		assert.False(t, p.SupportsFile(path), path)
	}
}
