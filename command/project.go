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
	"github.com/cmakeparser/cmakelists/decode"
	"github.com/cmakeparser/cmakelists/token"
)

func init() {
	register("project", decodeProject)
	register("cmake_minimum_required", decodeCMakeMinimumRequired)
	register("find_package", decodeFindPackage)
	register("find_library", decodeFindLibrary)
	register("find_path", decodeFindPath)
	register("find_program", decodeFindProgram)
	register("configure_file", decodeConfigureFile)
	register("install", decodeInstall)
	register("include", decodeInclude)
	register("try_compile", decodeTryCompile)
	register("try_run", decodeTryRun)
	register("set_target_properties", decodeSetTargetProperties)
	register("set_tests_properties", decodeSetTestsProperties)
	register("set_source_files_properties", decodeSetSourceFilesProperties)
	register("source_group", decodeSourceGroup)
	register("define_property", decodeDefineProperty)
	register("build_command", decodeBuildCommand)
	register("fltk_wrap_ui", decodeFltkWrapUi)
	register("get_source_file_property", decodeGetSourceFileProperty)
	register("include_external_msproject", decodeIncludeExternalMsproject)
	register("include_regular_expression", decodeIncludeRegularExpression)
	register("enable_language", decodeEnableLanguage)
	register("enable_testing", decodeEnableTesting)
	register("export", decodeExport)
	register("get_target_property", decodeGetTargetProperty)
	register("get_test_property", decodeGetTestProperty)
}

// Project is
// project(<name> [VERSION <v>] [DESCRIPTION <d>] [HOMEPAGE_URL <u>]
// [LANGUAGES <lang>...]).
type Project struct {
	Name        token.Token
	Version     *token.Token
	Description *token.Token
	HomepageURL *token.Token
	Languages   []token.Token
}

func (Project) CommandIdentifier() string { return "project" }

func decodeProject(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	name, err := c.Take("name")
	if err != nil {
		return nil, err
	}
	out := Project{Name: name}
	e := decode.NewEngine()
	e.Default(&out.Languages) // bare LANGUAGES literal is consumed as keyword below; stray bare words fall here
	e.OptionalValue(&out.Version, "VERSION")
	e.OptionalValue(&out.Description, "DESCRIPTION")
	e.OptionalValue(&out.HomepageURL, "HOMEPAGE_URL")
	e.Values(&out.Languages, "LANGUAGES")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// CMakeMinimumRequired is
// cmake_minimum_required(VERSION <min>[...<max>] [FATAL_ERROR]).
type CMakeMinimumRequired struct {
	Version    token.Token
	FatalError bool
}

func (CMakeMinimumRequired) CommandIdentifier() string { return "cmake_minimum_required" }

func decodeCMakeMinimumRequired(toks []token.Token) (Command, error) {
	var out CMakeMinimumRequired
	var version *token.Token
	e := decode.NewEngine()
	e.OptionalValue(&version, "VERSION")
	e.Flag(&out.FatalError, "FATAL_ERROR")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	if version == nil {
		return nil, &decode.MissingTokenError{Field: "VERSION"}
	}
	out.Version = *version
	return out, nil
}

// FindPackage is a simplified
// find_package(<package> [version] [EXACT] [QUIET] [REQUIRED]
// [COMPONENTS <comp>...]).
type FindPackage struct {
	Package    token.Token
	Version    *token.Token
	Exact      bool
	Quiet      bool
	Required   bool
	Components []token.Token
}

func (FindPackage) CommandIdentifier() string { return "find_package" }

func decodeFindPackage(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	pkg, err := c.Take("package")
	if err != nil {
		return nil, err
	}
	out := FindPackage{Package: pkg}
	if t, ok := c.Peek(); ok && looksLikeVersion(t) {
		v, _ := c.Take("version")
		out.Version = &v
	}
	e := decode.NewEngine()
	e.Flag(&out.Exact, "EXACT")
	e.Flag(&out.Quiet, "QUIET")
	e.Flag(&out.Required, "REQUIRED")
	e.Values(&out.Components, "COMPONENTS")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

func looksLikeVersion(t token.Token) bool {
	s := t.String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// FindLibrary is a simplified
// find_library(<variable> <name>... [PATHS <path>...]).
type FindLibrary struct {
	Variable token.Token
	Names    []token.Token
	Paths    []token.Token
}

func (FindLibrary) CommandIdentifier() string { return "find_library" }

func decodeFindLibrary(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := FindLibrary{Variable: variable}
	e := decode.NewEngine()
	e.Default(&out.Names)
	e.Values(&out.Paths, "PATHS")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// FindPath is find_path(<variable> <name>... [PATHS <path>...]), the same
// shape as FindLibrary.
type FindPath struct {
	Variable token.Token
	Names    []token.Token
	Paths    []token.Token
}

func (FindPath) CommandIdentifier() string { return "find_path" }

func decodeFindPath(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := FindPath{Variable: variable}
	e := decode.NewEngine()
	e.Default(&out.Names)
	e.Values(&out.Paths, "PATHS")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// FindProgram is find_program(<variable> <name>... [PATHS <path>...]).
type FindProgram struct {
	Variable token.Token
	Names    []token.Token
	Paths    []token.Token
}

func (FindProgram) CommandIdentifier() string { return "find_program" }

func decodeFindProgram(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := FindProgram{Variable: variable}
	e := decode.NewEngine()
	e.Default(&out.Names)
	e.Values(&out.Paths, "PATHS")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfigureFile is
// configure_file(<input> <output> [COPYONLY] [ESCAPE_QUOTES] [@ONLY]).
type ConfigureFile struct {
	Input        token.Token
	Output       token.Token
	CopyOnly     bool
	EscapeQuotes bool
	AtOnly       bool
}

func (ConfigureFile) CommandIdentifier() string { return "configure_file" }

func decodeConfigureFile(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	input, err := c.Take("input")
	if err != nil {
		return nil, err
	}
	output, err := c.Take("output")
	if err != nil {
		return nil, err
	}
	out := ConfigureFile{Input: input, Output: output}
	e := decode.NewEngine()
	e.Flag(&out.CopyOnly, "COPYONLY")
	e.Flag(&out.EscapeQuotes, "ESCAPE_QUOTES")
	e.Flag(&out.AtOnly, "@ONLY")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// InstallRule is install()'s transparent sum: the leading keyword names
// the rule kind. TARGETS is decoded field-by-field; the other rule kinds
// fall back to InstallGeneric, the same common-shape treatment file()'s
// unmodeled subcommands get.
type InstallRule interface {
	isInstallRule()
}

// InstallTargetsRule is a simplified
// install(TARGETS <target>... [DESTINATION <dir>]).
type InstallTargetsRule struct {
	Targets     []token.Token
	Destination *token.Token
}

func (InstallTargetsRule) isInstallRule() {}

// InstallGeneric is the common-shape fallback for install()'s other rule
// kinds (FILES, PROGRAMS, DIRECTORY, SCRIPT, CODE, EXPORT, IMPORTED_RUNTIME_ARTIFACTS,
// RUNTIME_DEPENDENCY_SET): rule keyword plus the raw remaining arguments.
type InstallGeneric struct {
	Kind      token.Token
	Arguments []token.Token
}

func (InstallGeneric) isInstallRule() {}

// Install wraps the decoded rule under the install() identifier.
type Install struct {
	Rule InstallRule
}

func (Install) CommandIdentifier() string { return "install" }

func decodeInstall(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	kind, err := c.Take("rule")
	if err != nil {
		return nil, err
	}
	rest := c.Remaining()
	if !kind.Is("TARGETS") {
		return Install{Rule: InstallGeneric{Kind: kind, Arguments: rest}}, nil
	}
	var rule InstallTargetsRule
	e := decode.NewEngine()
	e.Default(&rule.Targets)
	e.OptionalValue(&rule.Destination, "DESTINATION")
	if err := e.Run(rest); err != nil {
		return nil, err
	}
	return Install{Rule: rule}, nil
}

// Include is include(<file|module> [OPTIONAL] [RESULT_VARIABLE <var>]).
// Resolution of the included file's own contents is out of scope; this
// only decodes the invocation's own arguments.
type Include struct {
	Name           token.Token
	Optional       bool
	ResultVariable *token.Token
}

func (Include) CommandIdentifier() string { return "include" }

func decodeInclude(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	name, err := c.Take("name")
	if err != nil {
		return nil, err
	}
	out := Include{Name: name}
	e := decode.NewEngine()
	e.Flag(&out.Optional, "OPTIONAL")
	e.OptionalValue(&out.ResultVariable, "RESULT_VARIABLE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// TryCompile is a simplified try_compile(<result-var> <args>...
// [OUTPUT_VARIABLE <var>] [COPY_FILE <file>]); the legacy bindir/srcdir
// form and the modern PROJECT/SOURCES form share no common field layout
// beyond the leading result variable, so the rest decodes as opaque
// positional arguments.
type TryCompile struct {
	ResultVar      token.Token
	Arguments      []token.Token
	OutputVariable *token.Token
	CopyFile       *token.Token
}

func (TryCompile) CommandIdentifier() string { return "try_compile" }

func decodeTryCompile(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	resultVar, err := c.Take("result_var")
	if err != nil {
		return nil, err
	}
	out := TryCompile{ResultVar: resultVar}
	e := decode.NewEngine()
	e.Default(&out.Arguments)
	e.OptionalValue(&out.OutputVariable, "OUTPUT_VARIABLE")
	e.OptionalValue(&out.CopyFile, "COPY_FILE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// TryRun is a simplified try_run(<run-result-var> <compile-result-var>
// <args>... [RUN_OUTPUT_VARIABLE <var>] [OUTPUT_VARIABLE <var>]), the
// same opaque-arguments treatment as TryCompile.
type TryRun struct {
	RunResultVar      token.Token
	CompileResultVar  token.Token
	Arguments         []token.Token
	RunOutputVariable *token.Token
	OutputVariable    *token.Token
}

func (TryRun) CommandIdentifier() string { return "try_run" }

func decodeTryRun(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	runVar, err := c.Take("run_result_var")
	if err != nil {
		return nil, err
	}
	compileVar, err := c.Take("compile_result_var")
	if err != nil {
		return nil, err
	}
	out := TryRun{RunResultVar: runVar, CompileResultVar: compileVar}
	e := decode.NewEngine()
	e.Default(&out.Arguments)
	e.OptionalValue(&out.RunOutputVariable, "RUN_OUTPUT_VARIABLE")
	e.OptionalValue(&out.OutputVariable, "OUTPUT_VARIABLE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// SetTargetProperties is
// set_target_properties(<target>... PROPERTIES <prop> <value>...).
type SetTargetProperties struct {
	Targets    []token.Token
	Properties []token.Token
}

func (SetTargetProperties) CommandIdentifier() string { return "set_target_properties" }

func decodeSetTargetProperties(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	targets := c.TakeUntil(false, "PROPERTIES")
	if !c.TakeLiteral("PROPERTIES") {
		return nil, &decode.UnexpectedTokenError{Expected: "PROPERTIES", Found: peekText(c)}
	}
	return SetTargetProperties{Targets: targets, Properties: c.TakeRest()}, nil
}

// SetTestsProperties is
// set_tests_properties(<test>... PROPERTIES <prop> <value>...).
type SetTestsProperties struct {
	Tests      []token.Token
	Properties []token.Token
}

func (SetTestsProperties) CommandIdentifier() string { return "set_tests_properties" }

func decodeSetTestsProperties(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	tests := c.TakeUntil(false, "PROPERTIES")
	if !c.TakeLiteral("PROPERTIES") {
		return nil, &decode.UnexpectedTokenError{Expected: "PROPERTIES", Found: peekText(c)}
	}
	return SetTestsProperties{Tests: tests, Properties: c.TakeRest()}, nil
}

// SetSourceFilesProperties is
// set_source_files_properties(<file>... [DIRECTORY <dir>...]
// [TARGET_DIRECTORY <target>...] PROPERTIES <prop> <value>...).
type SetSourceFilesProperties struct {
	Files           []token.Token
	Directory       []token.Token
	TargetDirectory []token.Token
	Properties      []token.Token
}

func (SetSourceFilesProperties) CommandIdentifier() string {
	return "set_source_files_properties"
}

func decodeSetSourceFilesProperties(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	out := SetSourceFilesProperties{
		Files: c.TakeUntil(false, "DIRECTORY", "TARGET_DIRECTORY", "PROPERTIES"),
	}
	sawProperties := false
	for _, t := range c.Remaining() {
		if t.Is("PROPERTIES") {
			sawProperties = true
		}
	}
	if !sawProperties {
		return nil, &decode.MissingTokenError{Field: "PROPERTIES"}
	}
	e := decode.NewEngine()
	e.Values(&out.Directory, "DIRECTORY")
	e.Values(&out.TargetDirectory, "TARGET_DIRECTORY")
	e.Values(&out.Properties, "PROPERTIES")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// SourceGroup is source_group's untagged sum between its named and TREE
// forms.
type SourceGroup interface {
	isSourceGroup()
}

// NamedSourceGroup is
// source_group(<name> [FILES <file>...] [REGULAR_EXPRESSION <regex>]).
type NamedSourceGroup struct {
	Name              token.Token
	Files             []token.Token
	RegularExpression *token.Token
}

func (NamedSourceGroup) isSourceGroup() {}

// TreeSourceGroup is
// source_group(TREE <root> [PREFIX <prefix>] [FILES <file>...]).
type TreeSourceGroup struct {
	Root   token.Token
	Prefix *token.Token
	Files  []token.Token
}

func (TreeSourceGroup) isSourceGroup() {}

// SourceGroupCommand wraps the decoded SourceGroup arm under the
// source_group() identifier.
type SourceGroupCommand struct {
	Group SourceGroup
}

func (SourceGroupCommand) CommandIdentifier() string { return "source_group" }

func decodeSourceGroup(toks []token.Token) (Command, error) {
	group, _, err := decode.TryArms(toks, decodeTreeSourceGroup, decodeNamedSourceGroup)
	if err != nil {
		return nil, err
	}
	return SourceGroupCommand{Group: group}, nil
}

func decodeTreeSourceGroup(c *decode.Cursor) (SourceGroup, error) {
	if !c.TakeLiteral("TREE") {
		return nil, &decode.UnexpectedTokenError{Expected: "TREE", Found: peekText(c)}
	}
	root, err := c.Take("root")
	if err != nil {
		return nil, err
	}
	out := TreeSourceGroup{Root: root}
	e := decode.NewEngine()
	e.OptionalValue(&out.Prefix, "PREFIX")
	e.Values(&out.Files, "FILES")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeNamedSourceGroup(c *decode.Cursor) (SourceGroup, error) {
	name, err := c.Take("name")
	if err != nil {
		return nil, err
	}
	out := NamedSourceGroup{Name: name}
	e := decode.NewEngine()
	e.Values(&out.Files, "FILES")
	e.OptionalValue(&out.RegularExpression, "REGULAR_EXPRESSION")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// DefineProperty is
// define_property(<scope> PROPERTY <name> [INHERITED]
// [BRIEF_DOCS <doc>...] [FULL_DOCS <doc>...]
// [INITIALIZE_FROM_VARIABLE <variable>]).
type DefineProperty struct {
	Scope                  token.Token
	Property               *token.Token
	Inherited              bool
	BriefDocs              []token.Token
	FullDocs               []token.Token
	InitializeFromVariable *token.Token
}

func (DefineProperty) CommandIdentifier() string { return "define_property" }

func decodeDefineProperty(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	scope, err := c.Take("scope")
	if err != nil {
		return nil, err
	}
	out := DefineProperty{Scope: scope}
	e := decode.NewEngine()
	e.OptionalValue(&out.Property, "PROPERTY")
	e.Flag(&out.Inherited, "INHERITED")
	e.Values(&out.BriefDocs, "BRIEF_DOCS")
	e.Values(&out.FullDocs, "FULL_DOCS")
	e.OptionalValue(&out.InitializeFromVariable, "INITIALIZE_FROM_VARIABLE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// BuildCommand is
// build_command(<variable> [CONFIGURATION <config>] [TARGET <target>]
// [PROJECT_NAME <name>]).
type BuildCommand struct {
	Variable      token.Token
	Configuration *token.Token
	Target        *token.Token
	ProjectName   *token.Token
}

func (BuildCommand) CommandIdentifier() string { return "build_command" }

func decodeBuildCommand(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := BuildCommand{Variable: variable}
	e := decode.NewEngine()
	e.OptionalValue(&out.Configuration, "CONFIGURATION")
	e.OptionalValue(&out.Target, "TARGET")
	e.OptionalValue(&out.ProjectName, "PROJECT_NAME")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// FltkWrapUi is fltk_wrap_ui(<resulting-library-name> <source>...).
type FltkWrapUi struct {
	ResultingLibraryName token.Token
	Sources              []token.Token
}

func (FltkWrapUi) CommandIdentifier() string { return "fltk_wrap_ui" }

func decodeFltkWrapUi(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	lib, err := c.Take("resulting_library_name")
	if err != nil {
		return nil, err
	}
	return FltkWrapUi{ResultingLibraryName: lib, Sources: c.TakeRest()}, nil
}

// GetSourceFileProperty is
// get_source_file_property(<variable> <file> [DIRECTORY <dir>|
// TARGET_DIRECTORY <target>] <property>).
type GetSourceFileProperty struct {
	Variable        token.Token
	File            token.Token
	Directory       *token.Token
	TargetDirectory *token.Token
	Property        token.Token
}

func (GetSourceFileProperty) CommandIdentifier() string { return "get_source_file_property" }

func decodeGetSourceFileProperty(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	file, err := c.Take("file")
	if err != nil {
		return nil, err
	}
	out := GetSourceFileProperty{Variable: variable, File: file}
	if c.TakeLiteral("DIRECTORY") {
		dir, err := c.Take("directory")
		if err != nil {
			return nil, err
		}
		out.Directory = &dir
	} else if c.TakeLiteral("TARGET_DIRECTORY") {
		target, err := c.Take("target_directory")
		if err != nil {
			return nil, err
		}
		out.TargetDirectory = &target
	}
	property, err := c.Take("property")
	if err != nil {
		return nil, err
	}
	out.Property = property
	return out, c.RequireEmpty()
}

// IncludeExternalMsproject is
// include_external_msproject(<projectname> <location> [TYPE <type>]
// [GUID <guid>] [PLATFORM <platform>] [<dependency>...]).
type IncludeExternalMsproject struct {
	ProjectName  token.Token
	Location     token.Token
	Type         *token.Token
	Guid         *token.Token
	Platform     *token.Token
	Dependencies []token.Token
}

func (IncludeExternalMsproject) CommandIdentifier() string {
	return "include_external_msproject"
}

func decodeIncludeExternalMsproject(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	name, err := c.Take("projectname")
	if err != nil {
		return nil, err
	}
	location, err := c.Take("location")
	if err != nil {
		return nil, err
	}
	out := IncludeExternalMsproject{ProjectName: name, Location: location}
	e := decode.NewEngine()
	e.Default(&out.Dependencies)
	e.OptionalValue(&out.Type, "TYPE")
	e.OptionalValue(&out.Guid, "GUID")
	e.OptionalValue(&out.Platform, "PLATFORM")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// IncludeRegularExpression is
// include_regular_expression(<regex> [<exclude-regex>]).
type IncludeRegularExpression struct {
	Regex        token.Token
	ExcludeRegex *token.Token
}

func (IncludeRegularExpression) CommandIdentifier() string {
	return "include_regular_expression"
}

func decodeIncludeRegularExpression(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	regex, err := c.Take("regex")
	if err != nil {
		return nil, err
	}
	out := IncludeRegularExpression{Regex: regex}
	if v, ok := c.TakeOptional(); ok {
		out.ExcludeRegex = &v
	}
	return out, c.RequireEmpty()
}

// EnableLanguage is enable_language(<lang>... [OPTIONAL]).
type EnableLanguage struct {
	Languages []token.Token
	Optional  bool
}

func (EnableLanguage) CommandIdentifier() string { return "enable_language" }

func decodeEnableLanguage(toks []token.Token) (Command, error) {
	var out EnableLanguage
	e := decode.NewEngine()
	e.Default(&out.Languages)
	e.Flag(&out.Optional, "OPTIONAL")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// EnableTesting is enable_testing(), taking no arguments.
type EnableTesting struct{}

func (EnableTesting) CommandIdentifier() string { return "enable_testing" }

func decodeEnableTesting(toks []token.Token) (Command, error) {
	if len(toks) > 0 {
		return nil, &decode.IncompleteError{Remaining: len(toks)}
	}
	return EnableTesting{}, nil
}

// Export is export's untagged sum between its TARGETS and PACKAGE forms.
type Export interface {
	isExport()
}

// TargetsExport is
// export(TARGETS <target>... [NAMESPACE <ns>] FILE <file>).
type TargetsExport struct {
	Targets   []token.Token
	Namespace *token.Token
	File      *token.Token
}

func (TargetsExport) isExport() {}

// PackageExport is export(PACKAGE <package>).
type PackageExport struct {
	Package token.Token
}

func (PackageExport) isExport() {}

// ExportCommand wraps the decoded Export arm under the export()
// identifier.
type ExportCommand struct {
	Export Export
}

func (ExportCommand) CommandIdentifier() string { return "export" }

func decodeExport(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	if c.TakeLiteral("PACKAGE") {
		pkg, err := c.Take("package")
		if err != nil {
			return nil, err
		}
		if err := c.RequireEmpty(); err != nil {
			return nil, err
		}
		return ExportCommand{Export: PackageExport{Package: pkg}}, nil
	}
	if !c.TakeLiteral("TARGETS") {
		return nil, &decode.UnexpectedTokenError{Expected: "TARGETS", Found: peekText(c)}
	}
	var out TargetsExport
	e := decode.NewEngine()
	e.Default(&out.Targets)
	e.OptionalValue(&out.Namespace, "NAMESPACE")
	e.OptionalValue(&out.File, "FILE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return ExportCommand{Export: out}, nil
}

// GetTargetProperty is
// get_target_property(<variable> <target> <property>).
type GetTargetProperty struct {
	Variable token.Token
	Target   token.Token
	Property token.Token
}

func (GetTargetProperty) CommandIdentifier() string { return "get_target_property" }

func decodeGetTargetProperty(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	target, err := c.Take("target")
	if err != nil {
		return nil, err
	}
	property, err := c.Take("property")
	if err != nil {
		return nil, err
	}
	return GetTargetProperty{Variable: variable, Target: target, Property: property}, c.RequireEmpty()
}

// GetTestProperty is get_test_property(<test> <property> <variable>).
type GetTestProperty struct {
	Test     token.Token
	Property token.Token
	Variable token.Token
}

func (GetTestProperty) CommandIdentifier() string { return "get_test_property" }

func decodeGetTestProperty(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	test, err := c.Take("test")
	if err != nil {
		return nil, err
	}
	property, err := c.Take("property")
	if err != nil {
		return nil, err
	}
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	return GetTestProperty{Test: test, Property: property, Variable: variable}, c.RequireEmpty()
}
