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
)

// ctest_sleep's untagged sum: a bare seconds form and a time1/duration/
// time2 triple form.
func TestCTestSleepBothArms(t *testing.T) {
	got := decodeOrFatal(t, "ctest_sleep", token.List("100"))
	diff(t, got, CTestSleepCommand{Sleep: CTestSleepSeconds{Seconds: token.New("100")}})

	got = decodeOrFatal(t, "ctest_sleep", token.List("100", "200", "300"))
	diff(t, got, CTestSleepCommand{Sleep: CTestSleepTime{
		Time1:    token.New("100"),
		Duration: token.New("200"),
		Time2:    token.New("300"),
	}})
}

// A trailing token neither arm can claim surfaces as the residue error
// from the last arm tried, not a silent truncation.
func TestCTestSleepResidueIsNotEmpty(t *testing.T) {
	_, err := Decode("ctest_sleep", token.List("1", "2", "3", "4"))
	if err == nil {
		t.Fatal("ctest_sleep with four tokens: want error, got none")
	}
	var notEmpty *decode.NotEmptyError
	if !errorsAsNotEmpty(err, &notEmpty) {
		t.Fatalf("got %v (%T), want *decode.NotEmptyError", err, err)
	}
}

func errorsAsNotEmpty(err error, target **decode.NotEmptyError) bool {
	type unwrapper interface{ Unwrap() error }
	for err != nil {
		if ne, ok := err.(*decode.NotEmptyError); ok {
			*target = ne
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

func TestCTestReadCustomFilesRequiresAtLeastOneDirectory(t *testing.T) {
	if _, err := Decode("ctest_read_custom_files", nil); err == nil {
		t.Fatalf("ctest_read_custom_files(): want error, got none")
	}
	got := decodeOrFatal(t, "ctest_read_custom_files", token.List("dir1", "dir2"))
	diff(t, got, CTestReadCustomFiles{Directories: token.List("dir1", "dir2")})
}

// deprecated.go's qt_wrap_cpp(<lib> <sources-var> <header>...).
func TestQtWrapCpp(t *testing.T) {
	got := decodeOrFatal(t, "qt_wrap_cpp", token.List("mylib", "SRCS", "a.h", "b.h"))
	diff(t, got, QtWrapCpp{
		ResultingLibraryName: token.New("mylib"),
		SourceListVariable:   token.New("SRCS"),
		Headers:              token.List("a.h", "b.h"),
	})
}

// cmake_policy's transparent sum over VERSION/SET/GET/PUSH/POP.
func TestCMakePolicyModes(t *testing.T) {
	got := decodeOrFatal(t, "cmake_policy", token.List("VERSION", "3.20"))
	diff(t, got, CMakePolicyCommand{Policy: VersionPolicy{Version: token.New("3.20")}})

	got = decodeOrFatal(t, "cmake_policy", token.List("SET", "CMP0042", "NEW"))
	diff(t, got, CMakePolicyCommand{Policy: SetPolicy{
		Policy: token.New("CMP0042"),
		Value:  token.New("NEW"),
	}})

	got = decodeOrFatal(t, "cmake_policy", token.List("PUSH"))
	diff(t, got, CMakePolicyCommand{Policy: PushPolicy{}})

	if _, err := Decode("cmake_policy", token.List("BOGUS")); err == nil {
		t.Fatalf("cmake_policy(BOGUS): want error, got none")
	}
}

// get_property's scope-argument window ends at PROPERTY, consistent with
// set()'s CACHE window (TestSetCache).
func TestGetPropertyTargetScope(t *testing.T) {
	got := decodeOrFatal(t, "get_property", token.List(
		"out", "TARGET", "mytarget", "PROPERTY", "TYPE"))
	diff(t, got, GetProperty{
		Variable:      token.New("out"),
		Scope:         token.New("TARGET"),
		ScopeArgument: token.List("mytarget"),
		Property:      tokenPtr(token.New("TYPE")),
	})
}

// target_precompile_headers' untagged sum between its scoped-header and
// REUSE_FROM forms.
func TestTargetPrecompileHeadersBothArms(t *testing.T) {
	got := decodeOrFatal(t, "target_precompile_headers", token.List(
		"mytarget", "PRIVATE", "pch.h"))
	diff(t, got, TargetPrecompileHeadersCommand{
		Target:  token.New("mytarget"),
		Headers: ScopedPrecompileHeaders{Private: token.List("pch.h")},
	})

	got = decodeOrFatal(t, "target_precompile_headers", token.List(
		"mytarget", "REUSE_FROM", "othertarget"))
	diff(t, got, TargetPrecompileHeadersCommand{
		Target:  token.New("mytarget"),
		Headers: ReuseFromPrecompileHeaders{OtherTarget: token.New("othertarget")},
	})
}

// source_group's untagged sum between its named and TREE forms.
func TestSourceGroupBothArms(t *testing.T) {
	got := decodeOrFatal(t, "source_group", token.List("mygroup", "FILES", "a.cpp", "b.cpp"))
	diff(t, got, SourceGroupCommand{Group: NamedSourceGroup{
		Name:  token.New("mygroup"),
		Files: token.List("a.cpp", "b.cpp"),
	}})

	got = decodeOrFatal(t, "source_group", token.List("TREE", "${CMAKE_SOURCE_DIR}", "PREFIX", "Sources"))
	diff(t, got, SourceGroupCommand{Group: TreeSourceGroup{
		Root:   token.New("${CMAKE_SOURCE_DIR}"),
		Prefix: tokenPtr(token.New("Sources")),
	}})
}

// set_target_properties(<target>... PROPERTIES <k> <v>...).
func TestSetTargetProperties(t *testing.T) {
	got := decodeOrFatal(t, "set_target_properties", token.List(
		"t1", "t2", "PROPERTIES", "CXX_STANDARD", "20"))
	diff(t, got, SetTargetProperties{
		Targets:    token.List("t1", "t2"),
		Properties: token.List("CXX_STANDARD", "20"),
	})

	if _, err := Decode("set_target_properties", token.List("t1")); err == nil {
		t.Fatalf("set_target_properties without PROPERTIES: want error, got none")
	}
}

func tokenPtr(t token.Token) *token.Token { return &t }

// file()'s subcommands that aren't modeled field-by-field fall back to the
// common-shape FileGeneric form instead of failing to decode, the same
// treatment list()/string()/cmake_path() get.
func TestFileGenericSubcommands(t *testing.T) {
	got := decodeOrFatal(t, "file", token.List("DOWNLOAD", "https://example.com/x", "x.tar.gz"))
	diff(t, got, FileCommand{File: FileGeneric{
		Subcommand: token.New("DOWNLOAD"),
		Arguments:  token.List("https://example.com/x", "x.tar.gz"),
	}})

	got = decodeOrFatal(t, "file", token.List("STRINGS", "file1", "out_var"))
	diff(t, got, FileCommand{File: FileGeneric{
		Subcommand: token.New("STRINGS"),
		Arguments:  token.List("file1", "out_var"),
	}})

	got = decodeOrFatal(t, "file", token.List("RELATIVE_PATH", "out_var", "/a", "/a/b"))
	diff(t, got, FileCommand{File: FileGeneric{
		Subcommand: token.New("RELATIVE_PATH"),
		Arguments:  token.List("out_var", "/a", "/a/b"),
	}})

	got = decodeOrFatal(t, "file", token.List("SIZE", "file1", "out_var"))
	diff(t, got, FileCommand{File: FileGeneric{
		Subcommand: token.New("SIZE"),
		Arguments:  token.List("file1", "out_var"),
	}})
}

// list(GET)'s output variable trails a greedy element-index list; every
// other list() subcommand decodes at common-shape granularity.
func TestListGetTrailingOutputVariable(t *testing.T) {
	got := decodeOrFatal(t, "list", token.List("GET", "mylist", "0", "3", "out"))
	diff(t, got, ListCommand{List: ListGet{
		List:           token.New("mylist"),
		ElementIndexes: token.List("0", "3"),
		OutputVariable: token.New("out"),
	}})

	got = decodeOrFatal(t, "list", token.List("APPEND", "mylist", "a", "b"))
	diff(t, got, ListCommand{List: ListGeneric{
		Subcommand: token.New("APPEND"),
		Variable:   token.New("mylist"),
		Arguments:  token.List("a", "b"),
	}})

	if _, err := Decode("list", token.List("GET", "mylist", "out")); err == nil {
		t.Fatal("list(GET) without an element index: want error, got none")
	}
}

// install()'s TARGETS rule decodes field-by-field; every other rule kind
// falls back to the common-shape InstallGeneric form.
func TestInstallRules(t *testing.T) {
	got := decodeOrFatal(t, "install", token.List("TARGETS", "mylib", "DESTINATION", "lib"))
	diff(t, got, Install{Rule: InstallTargetsRule{
		Targets:     token.List("mylib"),
		Destination: tokenPtr(token.New("lib")),
	}})

	got = decodeOrFatal(t, "install", token.List("FILES", "a.h", "b.h", "DESTINATION", "include"))
	diff(t, got, Install{Rule: InstallGeneric{
		Kind:      token.New("FILES"),
		Arguments: token.List("a.h", "b.h", "DESTINATION", "include"),
	}})

	got = decodeOrFatal(t, "install", token.List("DIRECTORY", "docs/", "TYPE", "DOC"))
	diff(t, got, Install{Rule: InstallGeneric{
		Kind:      token.New("DIRECTORY"),
		Arguments: token.List("docs/", "TYPE", "DOC"),
	}})
}

// add_library's UNKNOWN library type is only valid on the IMPORTED arm;
// without IMPORTED, UNKNOWN is just an ordinary source-like token fed to
// the Normal arm's default bucket, not a recognized library type.
func TestAddLibraryUnknownRequiresImported(t *testing.T) {
	got := decodeOrFatal(t, "add_library", token.List("Foo", "UNKNOWN", "src.cpp"))
	diff(t, got, AddLibrary{
		Name: token.New("Foo"),
		Library: NormalLibrary{
			Sources: token.List("UNKNOWN", "src.cpp"),
		},
	})

	got = decodeOrFatal(t, "add_library", token.List("ClangFormat", "UNKNOWN", "IMPORTED", "GLOBAL"))
	diff(t, got, AddLibrary{
		Name: token.New("ClangFormat"),
		Library: ImportedLibrary{
			LibraryType: ImportedLibraryUnknown,
			Global:      true,
		},
	})
}
