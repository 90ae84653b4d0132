/*
 * Copyright 2019 The Kythe Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package command

import (
	"testing"

	"github.com/cmakeparser/cmakelists/decode"
	"github.com/cmakeparser/cmakelists/token"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func decodeOrFatal(t *testing.T, identifier string, args []token.Token) Command {
	t.Helper()
	cmd, err := Decode(identifier, args)
	if err != nil {
		t.Fatalf("Decode(%q, %v): %v", identifier, args, err)
	}
	return cmd
}

func diff(t *testing.T, got, want interface{}) {
	t.Helper()
	if d := cmp.Diff(want, got, cmpopts.EquateEmpty()); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

// add_compile_options( -foo -bar )
func TestAddCompileOptions(t *testing.T) {
	got := decodeOrFatal(t, "add_compile_options", token.List("-foo", "-bar"))
	diff(t, got, AddCompileOptions{CompileOptions: token.List("-foo", "-bar")})
}

// add_dependencies, both the optional-absent and
// optional-present forms.
func TestAddDependencies(t *testing.T) {
	got := decodeOrFatal(t, "add_dependencies", token.List("target1"))
	diff(t, got, AddDependencies{Target: token.New("target1")})

	got = decodeOrFatal(t, "add_dependencies", token.List("target2", "target-dep1", "target-dep2"))
	diff(t, got, AddDependencies{
		Target:             token.New("target2"),
		TargetDependencies: token.List("target-dep1", "target-dep2"),
	})
}

// add_library( MyProgram STATIC EXCLUDE_FROM_ALL my_program.cpp )
func TestAddLibraryNormalForm(t *testing.T) {
	got := decodeOrFatal(t, "add_library", token.List("MyProgram", "STATIC", "EXCLUDE_FROM_ALL", "my_program.cpp"))
	diff(t, got, AddLibrary{
		Name: token.New("MyProgram"),
		Library: NormalLibrary{
			LibraryType:    LibraryStatic,
			ExcludeFromAll: true,
			Sources:        token.List("my_program.cpp"),
		},
	})
}

// add_custom_target( tgt ALL COMMAND cmd1 arg1 arg2 COMMAND cmd2
// DEPENDS d1 d2 VERBATIM USES_TERMINAL )
func TestAddCustomTarget(t *testing.T) {
	args := token.List("tgt", "ALL", "COMMAND", "cmd1", "arg1", "arg2", "COMMAND", "cmd2",
		"DEPENDS", "d1", "d2", "VERBATIM", "USES_TERMINAL")
	got := decodeOrFatal(t, "add_custom_target", args)
	diff(t, got, AddCustomTarget{
		Name: token.New("tgt"),
		All:  true,
		Commands: []Invocation{
			{Name: token.New("cmd1"), Arguments: token.List("arg1", "arg2")},
			{Name: token.New("cmd2")},
		},
		Depends:      token.List("d1", "d2"),
		Verbatim:     true,
		UsesTerminal: true,
	})
}

// file( READ file1 out_var OFFSET 10 LIMIT 20 HEX )
func TestFileRead(t *testing.T) {
	args := token.List("READ", "file1", "out_var", "OFFSET", "10", "LIMIT", "20", "HEX")
	got := decodeOrFatal(t, "file", args)
	offset := token.New("10")
	limit := token.New("20")
	diff(t, got, FileCommand{File: FileRead{
		Filename: token.New("file1"),
		Variable: token.New("out_var"),
		Offset:   &offset,
		Limit:    &limit,
		Hex:      true,
	}})
}

// set( MY_VAR "hello world" CACHE STRING "docstring" FORCE )
func TestSetCache(t *testing.T) {
	args := []token.Token{
		token.New("MY_VAR"),
		token.Quote("hello world"),
		token.New("CACHE"),
		token.New("STRING"),
		token.Quote("docstring"),
		token.New("FORCE"),
	}
	got := decodeOrFatal(t, "set", args)
	diff(t, got, SetCommand{Set: CacheSet{
		Variable:  token.New("MY_VAR"),
		Value:     []token.Token{token.Quote("hello world")},
		Cache:     CacheString,
		Docstring: token.Quote("docstring"),
		Force:     true,
	}})
}

// Boundary: empty argument list only succeeds for allow_empty-shaped
// records (here, any record whose fields are all optional/sequence).
func TestBoundaryEmptyArgumentList(t *testing.T) {
	got, err := Decode("add_compile_options", nil)
	if err != nil {
		t.Fatalf("add_compile_options(): %v", err)
	}
	diff(t, got, AddCompileOptions{})

	if _, err := Decode("add_dependencies", nil); err == nil {
		t.Fatalf("add_dependencies() with no tokens: want error, got none")
	}
}

// Boundary: a single positional token succeeds against a record whose
// first field is positional, but a keyword-only record fails against it.
func TestBoundarySingleTokenPositionalVsKeyword(t *testing.T) {
	got := decodeOrFatal(t, "add_dependencies", token.List("onlytarget"))
	diff(t, got, AddDependencies{Target: token.New("onlytarget")})

	_, err := Decode("add_test", token.List("onlytoken"))
	if err == nil {
		t.Fatalf("add_test(onlytoken): want UnknownOption/MissingToken, got success")
	}
}

// Boundary: a keyword appearing twice concatenates for a sequence field
// and overwrites (last-wins) for a non-sequence field.
func TestBoundaryRepeatedKeyword(t *testing.T) {
	got := decodeOrFatal(t, "add_custom_target", token.List(
		"tgt", "DEPENDS", "a", "DEPENDS", "b", "c"))
	diff(t, got, AddCustomTarget{
		Name:    token.New("tgt"),
		Depends: token.List("a", "b", "c"),
	})

	got = decodeOrFatal(t, "file", token.List("READ", "f", "v", "OFFSET", "1", "OFFSET", "2"))
	two := token.New("2")
	diff(t, got, FileCommand{File: FileRead{
		Filename: token.New("f"),
		Variable: token.New("v"),
		Offset:   &two,
	}})
}

func TestUnknownCommandIsRecoverable(t *testing.T) {
	_, err := Decode("frobnicate_the_widget", token.List("x"))
	if err == nil {
		t.Fatalf("want UnknownCommandError, got nil")
	}
	var unknown *decode.UnknownCommandError
	if !errorsAs(err, &unknown) {
		t.Fatalf("got %v (%T), want *decode.UnknownCommandError", err, err)
	}
	if unknown.Identifier != "frobnicate_the_widget" {
		t.Fatalf("got identifier %q", unknown.Identifier)
	}
}

// CMake command identifiers are case-insensitive: ADD_LIBRARY and
// add_library name the same command.
func TestDecodeIsCaseInsensitive(t *testing.T) {
	got := decodeOrFatal(t, "ADD_COMPILE_OPTIONS", token.List("-foo"))
	diff(t, got, AddCompileOptions{CompileOptions: token.List("-foo")})

	got = decodeOrFatal(t, "Add_Compile_Options", token.List("-foo"))
	diff(t, got, AddCompileOptions{CompileOptions: token.List("-foo")})

	if !Registered("ADD_LIBRARY") {
		t.Fatal("Registered should be case-insensitive")
	}
}

// errorsAs is a tiny local shim so this file does not need to import
// "errors" solely for one call with an unexported target type.
func errorsAs(err error, target **decode.UnknownCommandError) bool {
	type unwrapper interface{ Unwrap() error }
	for err != nil {
		if u, ok := err.(*decode.UnknownCommandError); ok {
			*target = u
			return true
		}
		uw, ok := err.(unwrapper)
		if !ok {
			return false
		}
		err = uw.Unwrap()
	}
	return false
}
