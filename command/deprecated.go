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

// Deprecated-scope commands: retained by CMake only for backward
// compatibility with pre-2.6 listfiles. Schemas here are intentionally
// thin; nobody writes new CMakeLists.txt files against them.

package command

import (
	"github.com/cmakeparser/cmakelists/decode"
	"github.com/cmakeparser/cmakelists/token"
)

func init() {
	register("remove_definitions", decodeRemoveDefinitions)
	register("exec_program", decodeExecProgram)
	register("make_directory", decodeMakeDirectory)
	register("write_file", decodeWriteFile)
	register("subdirs", decodeSubdirs)
	register("subdir_depends", decodeSubdirDepends)
	register("variable_requires", decodeVariableRequires)
	register("install_files", decodeInstallFiles)
	register("install_targets", decodeInstallTargets)
	register("build_name", decodeBuildName)
	register("use_mangled_mesa", decodeUseMangledMesa)
	register("load_cache", decodeLoadCache)
	register("export_library_dependencies", decodeExportLibraryDependencies)
	register("install_programs", decodeInstallPrograms)
	register("load_command", decodeLoadCommand)
	register("output_required_files", decodeOutputRequiredFiles)
	register("qt_wrap_cpp", decodeQtWrapCpp)
	register("qt_wrap_ui", decodeQtWrapUi)
	register("remove", decodeRemove)
	register("utility_source", decodeUtilitySource)
}

// RemoveDefinitions is remove_definitions(<definition>...).
type RemoveDefinitions struct {
	Definitions []token.Token
}

func (RemoveDefinitions) CommandIdentifier() string { return "remove_definitions" }

func decodeRemoveDefinitions(toks []token.Token) (Command, error) {
	return RemoveDefinitions{Definitions: toks}, nil
}

// ExecProgram is a simplified
// exec_program(<executable> [<dir>] [ARGS <arg>...] [OUTPUT_VARIABLE <var>]
// [RETURN_VALUE <var>]).
type ExecProgram struct {
	Executable  token.Token
	Directory   *token.Token
	Args        []token.Token
	OutputVar   *token.Token
	ReturnValue *token.Token
}

func (ExecProgram) CommandIdentifier() string { return "exec_program" }

func decodeExecProgram(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	exe, err := c.Take("executable")
	if err != nil {
		return nil, err
	}
	out := ExecProgram{Executable: exe}
	if t, ok := c.Peek(); ok && !isExecProgramKeyword(t) {
		v, _ := c.Take("directory")
		out.Directory = &v
	}
	e := decode.NewEngine()
	e.Values(&out.Args, "ARGS")
	e.OptionalValue(&out.OutputVar, "OUTPUT_VARIABLE")
	e.OptionalValue(&out.ReturnValue, "RETURN_VALUE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

func isExecProgramKeyword(t token.Token) bool {
	switch t.String() {
	case "ARGS", "OUTPUT_VARIABLE", "RETURN_VALUE":
		return true
	}
	return false
}

// MakeDirectory is make_directory(<directory>), superseded by
// file(MAKE_DIRECTORY ...).
type MakeDirectory struct {
	Directory token.Token
}

func (MakeDirectory) CommandIdentifier() string { return "make_directory" }

func decodeMakeDirectory(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	dir, err := c.Take("directory")
	if err != nil {
		return nil, err
	}
	return MakeDirectory{Directory: dir}, c.RequireEmpty()
}

// WriteFile is write_file(<filename> <content>... [APPEND]).
type WriteFile struct {
	Filename token.Token
	Content  []token.Token
	Append   bool
}

func (WriteFile) CommandIdentifier() string { return "write_file" }

func decodeWriteFile(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	filename, err := c.Take("filename")
	if err != nil {
		return nil, err
	}
	out := WriteFile{Filename: filename}
	out.Content = c.TakeUntil(false, "APPEND")
	out.Append = c.TakeLiteral("APPEND")
	return out, c.RequireEmpty()
}

// Subdirs is subdirs(<dir>... [EXCLUDE_FROM_ALL <dir>...]
// [PREORDER]), superseded by add_subdirectory().
type Subdirs struct {
	Directories  []token.Token
	ExcludedDirs []token.Token
	Preorder     bool
}

func (Subdirs) CommandIdentifier() string { return "subdirs" }

func decodeSubdirs(toks []token.Token) (Command, error) {
	var out Subdirs
	e := decode.NewEngine()
	e.Default(&out.Directories)
	e.Values(&out.ExcludedDirs, "EXCLUDE_FROM_ALL")
	e.Flag(&out.Preorder, "PREORDER")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// SubdirDepends is subdir_depends(<subdir> <dep-subdir>...).
type SubdirDepends struct {
	Subdir       token.Token
	Dependencies []token.Token
}

func (SubdirDepends) CommandIdentifier() string { return "subdir_depends" }

func decodeSubdirDepends(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	subdir, err := c.Take("subdir")
	if err != nil {
		return nil, err
	}
	return SubdirDepends{Subdir: subdir, Dependencies: c.TakeRest()}, nil
}

// VariableRequires is
// variable_requires(<test-variable> <result-variable> <required-var>...).
type VariableRequires struct {
	TestVariable   token.Token
	ResultVariable token.Token
	RequiredVars   []token.Token
}

func (VariableRequires) CommandIdentifier() string { return "variable_requires" }

func decodeVariableRequires(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	test, err := c.Take("test_variable")
	if err != nil {
		return nil, err
	}
	result, err := c.Take("result_variable")
	if err != nil {
		return nil, err
	}
	return VariableRequires{TestVariable: test, ResultVariable: result, RequiredVars: c.TakeRest()}, nil
}

// InstallFiles is install_files(<dir> <extension|regex> <file>...),
// superseded by install(FILES ...).
type InstallFiles struct {
	Directory token.Token
	Pattern   token.Token
	Files     []token.Token
}

func (InstallFiles) CommandIdentifier() string { return "install_files" }

func decodeInstallFiles(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	dir, err := c.Take("directory")
	if err != nil {
		return nil, err
	}
	pattern, err := c.Take("pattern")
	if err != nil {
		return nil, err
	}
	return InstallFiles{Directory: dir, Pattern: pattern, Files: c.TakeRest()}, nil
}

// InstallTargets is install_targets(<dir> [RUNTIME_DIRECTORY <dir>]
// <target>...), superseded by install(TARGETS ...).
type InstallTargets struct {
	Directory        token.Token
	RuntimeDirectory *token.Token
	Targets          []token.Token
}

func (InstallTargets) CommandIdentifier() string { return "install_targets" }

func decodeInstallTargets(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	dir, err := c.Take("directory")
	if err != nil {
		return nil, err
	}
	out := InstallTargets{Directory: dir}
	e := decode.NewEngine()
	e.Default(&out.Targets)
	e.OptionalValue(&out.RuntimeDirectory, "RUNTIME_DIRECTORY")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// BuildName is build_name(<variable>), superseded by
// CTEST_BUILD_NAME/CMAKE_SYSTEM information.
type BuildName struct {
	Variable token.Token
}

func (BuildName) CommandIdentifier() string { return "build_name" }

func decodeBuildName(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	return BuildName{Variable: variable}, c.RequireEmpty()
}

// UseMangledMesa is use_mangled_mesa(<path-to-mesa> <output-dir>).
type UseMangledMesa struct {
	PathToMesa token.Token
	OutputDir  token.Token
}

func (UseMangledMesa) CommandIdentifier() string { return "use_mangled_mesa" }

func decodeUseMangledMesa(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	path, err := c.Take("path_to_mesa")
	if err != nil {
		return nil, err
	}
	out, err := c.Take("output_dir")
	if err != nil {
		return nil, err
	}
	return UseMangledMesa{PathToMesa: path, OutputDir: out}, c.RequireEmpty()
}

// LoadCache is a simplified
// load_cache(<build-dir> READ_WITH_PREFIX <prefix> <entry>...).
type LoadCache struct {
	BuildDir token.Token
	Prefix   *token.Token
	Entries  []token.Token
}

func (LoadCache) CommandIdentifier() string { return "load_cache" }

func decodeLoadCache(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	buildDir, err := c.Take("build_dir")
	if err != nil {
		return nil, err
	}
	out := LoadCache{BuildDir: buildDir}
	if c.TakeLiteral("READ_WITH_PREFIX") {
		prefix, err := c.Take("prefix")
		if err != nil {
			return nil, err
		}
		out.Prefix = &prefix
		out.Entries = c.TakeRest()
	}
	return out, nil
}

// ExportLibraryDependencies is export_library_dependencies(<file> [APPEND]),
// superseded by install(EXPORT ...).
type ExportLibraryDependencies struct {
	File   token.Token
	Append bool
}

func (ExportLibraryDependencies) CommandIdentifier() string {
	return "export_library_dependencies"
}

func decodeExportLibraryDependencies(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	file, err := c.Take("file")
	if err != nil {
		return nil, err
	}
	out := ExportLibraryDependencies{File: file}
	out.Append = c.TakeLiteral("APPEND")
	return out, c.RequireEmpty()
}

// InstallPrograms is install_programs(<dir> <file>...), superseded by
// install(PROGRAMS ...).
type InstallPrograms struct {
	Directory token.Token
	Files     []token.Token
}

func (InstallPrograms) CommandIdentifier() string { return "install_programs" }

func decodeInstallPrograms(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	dir, err := c.Take("directory")
	if err != nil {
		return nil, err
	}
	return InstallPrograms{Directory: dir, Files: c.TakeRest()}, nil
}

// LoadCommand is load_command(<command-name> <location>...), superseded by
// cmake_language(CALL ...) and native commands.
type LoadCommand struct {
	CommandName token.Token
	Locations   []token.Token
}

func (LoadCommand) CommandIdentifier() string { return "load_command" }

func decodeLoadCommand(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	name, err := c.Take("command_name")
	if err != nil {
		return nil, err
	}
	return LoadCommand{CommandName: name, Locations: c.TakeRest()}, nil
}

// OutputRequiredFiles is output_required_files(<srcfile> <outputfile>).
type OutputRequiredFiles struct {
	SrcFile    token.Token
	OutputFile token.Token
}

func (OutputRequiredFiles) CommandIdentifier() string { return "output_required_files" }

func decodeOutputRequiredFiles(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	src, err := c.Take("srcfile")
	if err != nil {
		return nil, err
	}
	out, err := c.Take("outputfile")
	if err != nil {
		return nil, err
	}
	return OutputRequiredFiles{SrcFile: src, OutputFile: out}, c.RequireEmpty()
}

// QtWrapCpp is
// qt_wrap_cpp(<resulting-library-name> <source-list-variable> <header>...).
type QtWrapCpp struct {
	ResultingLibraryName token.Token
	SourceListVariable   token.Token
	Headers              []token.Token
}

func (QtWrapCpp) CommandIdentifier() string { return "qt_wrap_cpp" }

func decodeQtWrapCpp(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	lib, err := c.Take("resulting_library_name")
	if err != nil {
		return nil, err
	}
	list, err := c.Take("source_list_variable")
	if err != nil {
		return nil, err
	}
	return QtWrapCpp{ResultingLibraryName: lib, SourceListVariable: list, Headers: c.TakeRest()}, nil
}

// QtWrapUi is
// qt_wrap_ui(<resulting-library-name> <ui-headers-variable>
// <ui-sources-variable> <source>...).
type QtWrapUi struct {
	ResultingLibraryName token.Token
	UiHeadersVariable    token.Token
	UiSourcesVariable    token.Token
	Sources              []token.Token
}

func (QtWrapUi) CommandIdentifier() string { return "qt_wrap_ui" }

func decodeQtWrapUi(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	lib, err := c.Take("resulting_library_name")
	if err != nil {
		return nil, err
	}
	headers, err := c.Take("ui_headers_variable")
	if err != nil {
		return nil, err
	}
	sources, err := c.Take("ui_sources_variable")
	if err != nil {
		return nil, err
	}
	return QtWrapUi{
		ResultingLibraryName: lib,
		UiHeadersVariable:    headers,
		UiSourcesVariable:    sources,
		Sources:              c.TakeRest(),
	}, nil
}

// Remove is remove(<variable> <value>...), superseded by
// list(REMOVE_ITEM ...).
type Remove struct {
	Variable token.Token
	Values   []token.Token
}

func (Remove) CommandIdentifier() string { return "remove" }

func decodeRemove(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	return Remove{Variable: variable, Values: c.TakeRest()}, nil
}

// UtilitySource is
// utility_source(<cache-entry-variable> <executable-name>
// <path-to-source> <file>...).
type UtilitySource struct {
	CacheEntryVariable token.Token
	ExecutableName     token.Token
	PathToSource       token.Token
	Files              []token.Token
}

func (UtilitySource) CommandIdentifier() string { return "utility_source" }

func decodeUtilitySource(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	cacheVar, err := c.Take("cache_entry_variable")
	if err != nil {
		return nil, err
	}
	exe, err := c.Take("executable_name")
	if err != nil {
		return nil, err
	}
	path, err := c.Take("path_to_source")
	if err != nil {
		return nil, err
	}
	return UtilitySource{
		CacheEntryVariable: cacheVar,
		ExecutableName:     exe,
		PathToSource:       path,
		Files:              c.TakeRest(),
	}, nil
}
