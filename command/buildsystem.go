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
	"bitbucket.org/creachadair/stringset"
	"github.com/cmakeparser/cmakelists/decode"
	"github.com/cmakeparser/cmakelists/token"
)

// libraryArmKeywords excludes add_library's other untagged arms (ALIAS,
// INTERFACE, IMPORTED, OBJECT) from ever being folded into a Normal
// library's Sources. decodeAliasLibrary, decodeInterfaceLibrary,
// decodeObjectLibrary, and decodeImportedLibrary are tried first by
// TryArms, but each matches only when its keyword sits in its own position;
// when one of these keywords appears anywhere else (add_library(Foo a.cpp
// OBJECT), or INTERFACE followed by sources), the Normal arm rejects the
// input instead of taking the keyword as a source.
var libraryArmKeywords = stringset.New("ALIAS", "INTERFACE", "IMPORTED", "OBJECT")

func init() {
	register("add_compile_options", decodeAddCompileOptions)
	register("add_definitions", decodeAddDefinitions)
	register("add_dependencies", decodeAddDependencies)
	register("add_executable", decodeAddExecutable)
	register("add_library", decodeAddLibrary)
	register("add_custom_target", decodeAddCustomTarget)
	register("add_custom_command", decodeAddCustomCommand)
	register("add_subdirectory", decodeAddSubdirectory)
	register("add_test", decodeAddTest)
	register("target_link_libraries", decodeTargetLinkLibraries)
	register("target_include_directories", decodeTargetIncludeDirectories)
	register("target_compile_definitions", decodeTargetCompileDefinitions)
	register("target_compile_options", decodeTargetCompileOptions)
	register("include_directories", decodeIncludeDirectories)
	register("link_directories", decodeLinkDirectories)
	register("link_libraries", decodeLinkLibraries)
	register("target_link_options", decodeTargetLinkOptions)
	register("target_compile_features", decodeTargetCompileFeatures)
	register("target_link_directories", decodeTargetLinkDirectories)
	register("target_precompile_headers", decodeTargetPrecompileHeaders)
	register("target_sources", decodeTargetSources)
	register("add_compile_definitions", decodeAddCompileDefinitions)
	register("add_link_options", decodeAddLinkOptions)
	register("aux_source_directory", decodeAuxSourceDirectory)
	register("create_test_sourcelist", decodeCreateTestSourcelist)
}

// AddCompileOptions is add_compile_options(<option>...).
type AddCompileOptions struct {
	CompileOptions []token.Token
}

func (AddCompileOptions) CommandIdentifier() string { return "add_compile_options" }

func decodeAddCompileOptions(toks []token.Token) (Command, error) {
	return AddCompileOptions{CompileOptions: toks}, nil
}

// AddDefinitions is add_definitions(<definition>...), preserved for
// completeness alongside the deprecated remove_definitions.
type AddDefinitions struct {
	Definitions []token.Token
}

func (AddDefinitions) CommandIdentifier() string { return "add_definitions" }

func decodeAddDefinitions(toks []token.Token) (Command, error) {
	return AddDefinitions{Definitions: toks}, nil
}

// AddDependencies is add_dependencies(<target> [<target-dependency>...]).
type AddDependencies struct {
	Target             token.Token
	TargetDependencies []token.Token // nil when absent
}

func (AddDependencies) CommandIdentifier() string { return "add_dependencies" }

func decodeAddDependencies(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	deps, _ := c.TakeRestOptional()
	return AddDependencies{Target: target, TargetDependencies: deps}, nil
}

// AddExecutable is a simplified add_executable(<name> [WIN32] [MACOSX_BUNDLE]
// [EXCLUDE_FROM_ALL] <source>...). ALIAS and IMPORTED executable forms are
// not modeled separately; they decode as a Normal executable whose Sources
// begins with the ALIAS/IMPORTED keyword as plain text, matching the
// engine's default-bucket behavior for unclaimed tokens.
type AddExecutable struct {
	Name           token.Token
	Win32          bool
	MacosxBundle   bool
	ExcludeFromAll bool
	Sources        []token.Token
}

func (AddExecutable) CommandIdentifier() string { return "add_executable" }

func decodeAddExecutable(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	name, err := c.Take("name")
	if err != nil {
		return nil, err
	}
	var exe AddExecutable
	exe.Name = name
	e := decode.NewEngine()
	e.Default(&exe.Sources)
	e.Flag(&exe.Win32, "WIN32")
	e.Flag(&exe.MacosxBundle, "MACOSX_BUNDLE")
	e.Flag(&exe.ExcludeFromAll, "EXCLUDE_FROM_ALL")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return exe, nil
}

// Library is add_library's untagged sum over its target kinds.
type Library interface {
	isLibrary()
}

// NormalLibrary is add_library(<name> [STATIC|SHARED|MODULE]
// [EXCLUDE_FROM_ALL] <source>...). UNKNOWN is not a valid Normal library
// type; it is only meaningful on the Imported arm below.
type NormalLibrary struct {
	LibraryType    NormalLibraryType // "" when not given, defaulting per build-type policy outside this core
	ExcludeFromAll bool
	Sources        []token.Token
}

func (NormalLibrary) isLibrary() {}

// AliasLibrary is add_library(<name> ALIAS <target>).
type AliasLibrary struct {
	Target token.Token
}

func (AliasLibrary) isLibrary() {}

// ImportedLibrary is add_library(<name> <type> IMPORTED [GLOBAL]). Unlike
// NormalLibrary, UNKNOWN is a valid type here.
type ImportedLibrary struct {
	LibraryType ImportedLibraryType
	Global      bool
}

func (ImportedLibrary) isLibrary() {}

// InterfaceLibrary is add_library(<name> INTERFACE).
type InterfaceLibrary struct{}

func (InterfaceLibrary) isLibrary() {}

// ObjectLibrary is add_library(<name> OBJECT <source>...).
type ObjectLibrary struct {
	Sources []token.Token
}

func (ObjectLibrary) isLibrary() {}

// AddLibrary is add_library(<name> ...).
type AddLibrary struct {
	Name    token.Token
	Library Library
}

func (AddLibrary) CommandIdentifier() string { return "add_library" }

func decodeAddLibrary(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	name, err := c.Take("name")
	if err != nil {
		return nil, err
	}
	lib, _, err := decode.TryArms(c.Remaining(),
		decodeAliasLibrary,
		decodeInterfaceLibrary,
		decodeObjectLibrary,
		decodeImportedLibrary,
		decodeNormalLibrary,
	)
	if err != nil {
		return nil, err
	}
	return AddLibrary{Name: name, Library: lib}, nil
}

func decodeAliasLibrary(c *decode.Cursor) (Library, error) {
	if !c.TakeLiteral("ALIAS") {
		return nil, &decode.UnexpectedTokenError{Expected: "ALIAS", Found: peekText(c)}
	}
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	if err := c.RequireEmpty(); err != nil {
		return nil, err
	}
	return AliasLibrary{Target: target}, nil
}

func decodeInterfaceLibrary(c *decode.Cursor) (Library, error) {
	if !c.TakeLiteral("INTERFACE") {
		return nil, &decode.UnexpectedTokenError{Expected: "INTERFACE", Found: peekText(c)}
	}
	if err := c.RequireEmpty(); err != nil {
		return nil, err
	}
	return InterfaceLibrary{}, nil
}

func decodeObjectLibrary(c *decode.Cursor) (Library, error) {
	if !c.TakeLiteral("OBJECT") {
		return nil, &decode.UnexpectedTokenError{Expected: "OBJECT", Found: peekText(c)}
	}
	return ObjectLibrary{Sources: c.TakeRest()}, nil
}

func decodeImportedLibrary(c *decode.Cursor) (Library, error) {
	t, ok := c.Peek()
	lt, known := importedLibraryTypeTable[t.String()]
	if !ok || !known {
		return nil, &decode.UnexpectedTokenError{Expected: "library type", Found: peekText(c)}
	}
	c.Take("library_type")
	if !c.TakeLiteral("IMPORTED") {
		return nil, &decode.UnexpectedTokenError{Expected: "IMPORTED", Found: peekText(c)}
	}
	global := c.TakeLiteral("GLOBAL")
	if err := c.RequireEmpty(); err != nil {
		return nil, err
	}
	return ImportedLibrary{LibraryType: lt, Global: global}, nil
}

func decodeNormalLibrary(c *decode.Cursor) (Library, error) {
	if !decode.NoKeywordsPresent(c.Remaining(), libraryArmKeywords) {
		return nil, &decode.UnexpectedTokenError{Expected: "library sources", Found: peekText(c)}
	}
	var lib NormalLibrary
	if t, ok := c.Peek(); ok {
		if lt, known := normalLibraryTypeTable[t.String()]; known {
			lib.LibraryType = lt
			c.Take("library_type")
		}
	}
	e := decode.NewEngine()
	e.Default(&lib.Sources)
	e.Flag(&lib.ExcludeFromAll, "EXCLUDE_FROM_ALL")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return lib, nil
}

func peekText(c *decode.Cursor) string {
	if t, ok := c.Peek(); ok {
		return t.String()
	}
	return "<end>"
}

// AddCustomTarget is add_custom_target(<name> [ALL] [COMMAND ...]...
// [DEPENDS ...] [BYPRODUCTS ...] [WORKING_DIRECTORY dir] [COMMENT comment]
// [JOB_POOL pool] [VERBATIM] [USES_TERMINAL] [COMMAND_EXPAND_LISTS]
// [SOURCES ...]).
type AddCustomTarget struct {
	Name               token.Token
	All                bool
	Commands           []Invocation
	Depends            []token.Token
	Byproducts         []token.Token
	WorkingDirectory   *token.Token
	Comment            *token.Token
	JobPool            *token.Token
	Verbatim           bool
	UsesTerminal       bool
	CommandExpandLists bool
	Sources            []token.Token
}

func (AddCustomTarget) CommandIdentifier() string { return "add_custom_target" }

func decodeAddCustomTarget(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	name, err := c.Take("name")
	if err != nil {
		return nil, err
	}
	var out AddCustomTarget
	out.Name = name
	var def []token.Token
	e := decode.NewEngine()
	e.Default(&def)
	e.Flag(&out.All, "ALL")
	decode.RecordSeq(e, &out.Commands, "COMMAND", decodeInvocation)
	e.Values(&out.Depends, "DEPENDS")
	e.Values(&out.Byproducts, "BYPRODUCTS")
	e.OptionalValue(&out.WorkingDirectory, "WORKING_DIRECTORY")
	e.OptionalValue(&out.Comment, "COMMENT")
	e.OptionalValue(&out.JobPool, "JOB_POOL")
	e.Flag(&out.Verbatim, "VERBATIM")
	e.Flag(&out.UsesTerminal, "USES_TERMINAL")
	e.Flag(&out.CommandExpandLists, "COMMAND_EXPAND_LISTS")
	e.Values(&out.Sources, "SOURCES")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	out.Sources = append(out.Sources, def...)
	return out, nil
}

// AddCustomCommand is a simplified add_custom_command(OUTPUT <output>...
// COMMAND ...)... variant; add_custom_command(TARGET ...) pre/post-build
// forms are not modeled, since they share no fields with the OUTPUT form
// and this library's scope is argument shape, not full command semantics.
type AddCustomCommand struct {
	Output             []token.Token
	Commands           []Invocation
	Depends            []token.Token
	Comment            *token.Token
	WorkingDirectory   *token.Token
	Verbatim           bool
	Append             bool
	CommandExpandLists bool
}

func (AddCustomCommand) CommandIdentifier() string { return "add_custom_command" }

func decodeAddCustomCommand(toks []token.Token) (Command, error) {
	var out AddCustomCommand
	e := decode.NewEngine()
	var def []token.Token
	e.Default(&def)
	e.Values(&out.Output, "OUTPUT")
	decode.RecordSeq(e, &out.Commands, "COMMAND", decodeInvocation)
	e.Values(&out.Depends, "DEPENDS")
	e.OptionalValue(&out.Comment, "COMMENT")
	e.OptionalValue(&out.WorkingDirectory, "WORKING_DIRECTORY")
	e.Flag(&out.Verbatim, "VERBATIM")
	e.Flag(&out.Append, "APPEND")
	e.Flag(&out.CommandExpandLists, "COMMAND_EXPAND_LISTS")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// AddSubdirectory is add_subdirectory(<dir> [<binary-dir>] [EXCLUDE_FROM_ALL]).
type AddSubdirectory struct {
	SourceDir      token.Token
	BinaryDir      *token.Token
	ExcludeFromAll bool
}

func (AddSubdirectory) CommandIdentifier() string { return "add_subdirectory" }

func decodeAddSubdirectory(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	dir, err := c.Take("source_dir")
	if err != nil {
		return nil, err
	}
	var out AddSubdirectory
	out.SourceDir = dir
	if t, ok := c.Peek(); ok && !t.Is("EXCLUDE_FROM_ALL") {
		bd, _ := c.Take("binary_dir")
		out.BinaryDir = &bd
	}
	out.ExcludeFromAll = c.TakeLiteral("EXCLUDE_FROM_ALL")
	return out, c.RequireEmpty()
}

// AddTest is add_test(NAME <name> COMMAND <command> [<arg>...]
// [WORKING_DIRECTORY dir] [CONFIGURATIONS ...]).
type AddTest struct {
	Name             token.Token
	Command          Invocation
	WorkingDirectory *token.Token
	Configurations   []token.Token
}

func (AddTest) CommandIdentifier() string { return "add_test" }

func decodeAddTest(toks []token.Token) (Command, error) {
	var out AddTest
	var name *token.Token
	var cmd *Invocation
	e := decode.NewEngine()
	e.OptionalValue(&name, "NAME")
	decode.TaggedRecord(e, &cmd, "COMMAND", decodeInvocation)
	e.OptionalValue(&out.WorkingDirectory, "WORKING_DIRECTORY")
	e.Values(&out.Configurations, "CONFIGURATIONS")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	if name == nil {
		return nil, &decode.MissingTokenError{Field: "NAME"}
	}
	out.Name = *name
	if cmd == nil {
		return nil, &decode.MissingTokenError{Field: "COMMAND"}
	}
	out.Command = *cmd
	return out, nil
}

// TargetLinkLibraries is a simplified
// target_link_libraries(<target> [<PRIVATE|PUBLIC|INTERFACE> <item>...]...).
type TargetLinkLibraries struct {
	Target    token.Token
	Private   []token.Token
	Public    []token.Token
	Interface []token.Token
	Unscoped  []token.Token
}

func (TargetLinkLibraries) CommandIdentifier() string { return "target_link_libraries" }

func decodeTargetLinkLibraries(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	var out TargetLinkLibraries
	out.Target = target
	e := decode.NewEngine()
	e.Default(&out.Unscoped)
	e.Values(&out.Private, "PRIVATE")
	e.Values(&out.Public, "PUBLIC")
	e.Values(&out.Interface, "INTERFACE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// TargetIncludeDirectories is
// target_include_directories(<target> [SYSTEM] [AFTER|BEFORE]
// <PRIVATE|PUBLIC|INTERFACE> <dir>...).
type TargetIncludeDirectories struct {
	Target    token.Token
	System    bool
	Private   []token.Token
	Public    []token.Token
	Interface []token.Token
}

func (TargetIncludeDirectories) CommandIdentifier() string {
	return "target_include_directories"
}

func decodeTargetIncludeDirectories(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	var out TargetIncludeDirectories
	out.Target = target
	e := decode.NewEngine()
	var def []token.Token
	e.Default(&def)
	e.Flag(&out.System, "SYSTEM")
	e.Values(&out.Private, "PRIVATE")
	e.Values(&out.Public, "PUBLIC")
	e.Values(&out.Interface, "INTERFACE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// TargetCompileDefinitions is
// target_compile_definitions(<target> <PRIVATE|PUBLIC|INTERFACE> <def>...).
type TargetCompileDefinitions struct {
	Target    token.Token
	Private   []token.Token
	Public    []token.Token
	Interface []token.Token
}

func (TargetCompileDefinitions) CommandIdentifier() string {
	return "target_compile_definitions"
}

func decodeTargetCompileDefinitions(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	var out TargetCompileDefinitions
	out.Target = target
	e := decode.NewEngine()
	e.Values(&out.Private, "PRIVATE")
	e.Values(&out.Public, "PUBLIC")
	e.Values(&out.Interface, "INTERFACE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// TargetCompileOptions is
// target_compile_options(<target> [BEFORE] <PRIVATE|PUBLIC|INTERFACE> <opt>...).
type TargetCompileOptions struct {
	Target    token.Token
	Before    bool
	Private   []token.Token
	Public    []token.Token
	Interface []token.Token
}

func (TargetCompileOptions) CommandIdentifier() string { return "target_compile_options" }

func decodeTargetCompileOptions(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	var out TargetCompileOptions
	out.Target = target
	e := decode.NewEngine()
	e.Flag(&out.Before, "BEFORE")
	e.Values(&out.Private, "PRIVATE")
	e.Values(&out.Public, "PUBLIC")
	e.Values(&out.Interface, "INTERFACE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// IncludeDirectories is
// include_directories([AFTER|BEFORE] [SYSTEM] <dir>...).
type IncludeDirectories struct {
	After       bool
	Before      bool
	System      bool
	Directories []token.Token
}

func (IncludeDirectories) CommandIdentifier() string { return "include_directories" }

func decodeIncludeDirectories(toks []token.Token) (Command, error) {
	var out IncludeDirectories
	e := decode.NewEngine()
	e.Default(&out.Directories)
	e.Flag(&out.After, "AFTER")
	e.Flag(&out.Before, "BEFORE")
	e.Flag(&out.System, "SYSTEM")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// LinkDirectories is link_directories([AFTER|BEFORE] <dir>...).
type LinkDirectories struct {
	After       bool
	Before      bool
	Directories []token.Token
}

func (LinkDirectories) CommandIdentifier() string { return "link_directories" }

func decodeLinkDirectories(toks []token.Token) (Command, error) {
	var out LinkDirectories
	e := decode.NewEngine()
	e.Default(&out.Directories)
	e.Flag(&out.After, "AFTER")
	e.Flag(&out.Before, "BEFORE")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// LinkLibraries is the deprecated link_libraries(<library>...).
type LinkLibraries struct {
	Libraries []token.Token
}

func (LinkLibraries) CommandIdentifier() string { return "link_libraries" }

func decodeLinkLibraries(toks []token.Token) (Command, error) {
	return LinkLibraries{Libraries: toks}, nil
}

// TargetLinkOptions is
// target_link_options(<target> <PRIVATE|PUBLIC|INTERFACE> <option>...).
type TargetLinkOptions struct {
	Target    token.Token
	Private   []token.Token
	Public    []token.Token
	Interface []token.Token
}

func (TargetLinkOptions) CommandIdentifier() string { return "target_link_options" }

func decodeTargetLinkOptions(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	var out TargetLinkOptions
	out.Target = target
	e := decode.NewEngine()
	e.Values(&out.Private, "PRIVATE")
	e.Values(&out.Public, "PUBLIC")
	e.Values(&out.Interface, "INTERFACE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// TargetCompileFeatures is
// target_compile_features(<target> <PRIVATE|PUBLIC|INTERFACE> <feature>...).
type TargetCompileFeatures struct {
	Target    token.Token
	Private   []token.Token
	Public    []token.Token
	Interface []token.Token
}

func (TargetCompileFeatures) CommandIdentifier() string { return "target_compile_features" }

func decodeTargetCompileFeatures(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	var out TargetCompileFeatures
	out.Target = target
	e := decode.NewEngine()
	e.Values(&out.Private, "PRIVATE")
	e.Values(&out.Public, "PUBLIC")
	e.Values(&out.Interface, "INTERFACE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// TargetLinkDirectories is
// target_link_directories(<target> [BEFORE] <PRIVATE|PUBLIC|INTERFACE> <dir>...).
type TargetLinkDirectories struct {
	Target    token.Token
	Before    bool
	Private   []token.Token
	Public    []token.Token
	Interface []token.Token
}

func (TargetLinkDirectories) CommandIdentifier() string { return "target_link_directories" }

func decodeTargetLinkDirectories(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	var out TargetLinkDirectories
	out.Target = target
	e := decode.NewEngine()
	e.Flag(&out.Before, "BEFORE")
	e.Values(&out.Private, "PRIVATE")
	e.Values(&out.Public, "PUBLIC")
	e.Values(&out.Interface, "INTERFACE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// TargetPrecompileHeaders is target_precompile_headers's untagged sum: a
// scoped header list, or a REUSE_FROM delegation to another target.
type TargetPrecompileHeaders interface {
	isTargetPrecompileHeaders()
}

// ScopedPrecompileHeaders is
// target_precompile_headers(<target> <PRIVATE|PUBLIC|INTERFACE> <header>...).
type ScopedPrecompileHeaders struct {
	Private   []token.Token
	Public    []token.Token
	Interface []token.Token
}

func (ScopedPrecompileHeaders) isTargetPrecompileHeaders() {}

// ReuseFromPrecompileHeaders is
// target_precompile_headers(<target> REUSE_FROM <other-target>).
type ReuseFromPrecompileHeaders struct {
	OtherTarget token.Token
}

func (ReuseFromPrecompileHeaders) isTargetPrecompileHeaders() {}

// TargetPrecompileHeadersCommand wraps the decoded arm under the
// target_precompile_headers() identifier.
type TargetPrecompileHeadersCommand struct {
	Target  token.Token
	Headers TargetPrecompileHeaders
}

func (TargetPrecompileHeadersCommand) CommandIdentifier() string {
	return "target_precompile_headers"
}

func decodeTargetPrecompileHeaders(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	headers, _, err := decode.TryArms(c.Remaining(), decodeReuseFromPrecompileHeaders, decodeScopedPrecompileHeaders)
	if err != nil {
		return nil, err
	}
	return TargetPrecompileHeadersCommand{Target: target, Headers: headers}, nil
}

func decodeReuseFromPrecompileHeaders(c *decode.Cursor) (TargetPrecompileHeaders, error) {
	if !c.TakeLiteral("REUSE_FROM") {
		return nil, &decode.UnexpectedTokenError{Expected: "REUSE_FROM", Found: peekText(c)}
	}
	other, err := c.Take("other_target")
	if err != nil {
		return nil, err
	}
	if err := c.RequireEmpty(); err != nil {
		return nil, err
	}
	return ReuseFromPrecompileHeaders{OtherTarget: other}, nil
}

func decodeScopedPrecompileHeaders(c *decode.Cursor) (TargetPrecompileHeaders, error) {
	var out ScopedPrecompileHeaders
	e := decode.NewEngine()
	e.Values(&out.Private, "PRIVATE")
	e.Values(&out.Public, "PUBLIC")
	e.Values(&out.Interface, "INTERFACE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// TargetSources is
// target_sources(<target> <PRIVATE|PUBLIC|INTERFACE> <source>...).
type TargetSources struct {
	Target    token.Token
	Private   []token.Token
	Public    []token.Token
	Interface []token.Token
}

func (TargetSources) CommandIdentifier() string { return "target_sources" }

func decodeTargetSources(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	var out TargetSources
	out.Target = target
	e := decode.NewEngine()
	e.Values(&out.Private, "PRIVATE")
	e.Values(&out.Public, "PUBLIC")
	e.Values(&out.Interface, "INTERFACE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// AddCompileDefinitions is add_compile_definitions(<definition>...).
type AddCompileDefinitions struct {
	Definitions []token.Token
}

func (AddCompileDefinitions) CommandIdentifier() string { return "add_compile_definitions" }

func decodeAddCompileDefinitions(toks []token.Token) (Command, error) {
	return AddCompileDefinitions{Definitions: toks}, nil
}

// AddLinkOptions is add_link_options(<option>...).
type AddLinkOptions struct {
	Options []token.Token
}

func (AddLinkOptions) CommandIdentifier() string { return "add_link_options" }

func decodeAddLinkOptions(toks []token.Token) (Command, error) {
	return AddLinkOptions{Options: toks}, nil
}

// AuxSourceDirectory is aux_source_directory(<dir> <variable>).
type AuxSourceDirectory struct {
	Directory token.Token
	Variable  token.Token
}

func (AuxSourceDirectory) CommandIdentifier() string { return "aux_source_directory" }

func decodeAuxSourceDirectory(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	dir, err := c.Take("directory")
	if err != nil {
		return nil, err
	}
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	return AuxSourceDirectory{Directory: dir, Variable: variable}, c.RequireEmpty()
}

// CreateTestSourcelist is a simplified
// create_test_sourcelist(<sourceListName> <driverName> <test>...
// [EXTRA_INCLUDE <include>] [FUNCTION <function>]).
type CreateTestSourcelist struct {
	SourceListName token.Token
	DriverName     token.Token
	Tests          []token.Token
	ExtraInclude   *token.Token
	Function       *token.Token
}

func (CreateTestSourcelist) CommandIdentifier() string { return "create_test_sourcelist" }

func decodeCreateTestSourcelist(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	name, err := c.Take("source_list_name")
	if err != nil {
		return nil, err
	}
	driver, err := c.Take("driver_name")
	if err != nil {
		return nil, err
	}
	out := CreateTestSourcelist{SourceListName: name, DriverName: driver}
	e := decode.NewEngine()
	e.Default(&out.Tests)
	e.OptionalValue(&out.ExtraInclude, "EXTRA_INCLUDE")
	e.OptionalValue(&out.Function, "FUNCTION")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}
