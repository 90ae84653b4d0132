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

// Scripting-scope commands decode argument shape only; none of them
// execute: if()/foreach()/while() conditions and bodies are not
// evaluated, and function()/macro() bodies are never invoked.

package command

import (
	"github.com/cmakeparser/cmakelists/decode"
	"github.com/cmakeparser/cmakelists/token"
)

func init() {
	register("if", decodeIf)
	register("elseif", decodeElseif)
	register("else", decodeElse)
	register("endif", decodeEndif)
	register("foreach", decodeForeach)
	register("endforeach", decodeEndforeach)
	register("while", decodeWhile)
	register("endwhile", decodeEndwhile)
	register("function", decodeFunction)
	register("endfunction", decodeEndfunction)
	register("macro", decodeMacro)
	register("endmacro", decodeEndmacro)
	register("return", decodeReturn)
	register("break", decodeBreak)
	register("continue", decodeContinue)
	register("message", decodeMessage)
	register("list", decodeList)
	register("string", decodeString)
	register("cmake_path", decodeCMakePath)
	register("execute_process", decodeExecuteProcess)
	register("get_property", decodeGetProperty)
	register("get_filename_component", decodeGetFilenameComponent)
	register("get_directory_property", decodeGetDirectoryProperty)
	register("get_cmake_property", decodeGetCMakeProperty)
	register("cmake_language", decodeCMakeLanguage)
	register("cmake_policy", decodeCMakePolicy)
	register("cmake_parse_arguments", decodeCMakeParseArguments)
	register("cmake_host_system_information", decodeCMakeHostSystemInformation)
	register("find_file", decodeFindFile)
	register("include_guard", decodeIncludeGuard)
	register("math", decodeMath)
	register("separate_arguments", decodeSeparateArguments)
	register("site_name", decodeSiteName)
	register("variable_watch", decodeVariableWatch)
	register("block", decodeBlock)
	register("endblock", decodeEndblock)
}

// If is if(<condition>...). The condition tokens are preserved verbatim;
// boolean evaluation is out of scope.
type If struct {
	Condition []token.Token
}

func (If) CommandIdentifier() string { return "if" }

func decodeIf(toks []token.Token) (Command, error) { return If{Condition: toks}, nil }

// Elseif is elseif(<condition>...).
type Elseif struct {
	Condition []token.Token
}

func (Elseif) CommandIdentifier() string { return "elseif" }

func decodeElseif(toks []token.Token) (Command, error) { return Elseif{Condition: toks}, nil }

// Else is else().
type Else struct{}

func (Else) CommandIdentifier() string { return "else" }

func decodeElse(toks []token.Token) (Command, error) { return Else{}, nil }

// Endif is endif([<condition>...]); CMake allows repeating the opening
// condition here for readability, so it is preserved, not validated.
type Endif struct {
	Condition []token.Token
}

func (Endif) CommandIdentifier() string { return "endif" }

func decodeEndif(toks []token.Token) (Command, error) { return Endif{Condition: toks}, nil }

// Foreach is a simplified foreach(<loop-var> <item>...); the
// RANGE/IN LISTS/IN ZIP_LISTS forms all decode into the same Items slice,
// since distinguishing them is a later semantic step, not argument shape.
type Foreach struct {
	LoopVar token.Token
	Items   []token.Token
}

func (Foreach) CommandIdentifier() string { return "foreach" }

func decodeForeach(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	loopVar, err := c.Take("loop_var")
	if err != nil {
		return nil, err
	}
	return Foreach{LoopVar: loopVar, Items: c.TakeRest()}, nil
}

// Endforeach is endforeach([<loop-var>]).
type Endforeach struct {
	LoopVar *token.Token
}

func (Endforeach) CommandIdentifier() string { return "endforeach" }

func decodeEndforeach(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	out := Endforeach{}
	if v, ok := c.TakeOptional(); ok {
		out.LoopVar = &v
	}
	return out, nil
}

// While is while(<condition>...).
type While struct {
	Condition []token.Token
}

func (While) CommandIdentifier() string { return "while" }

func decodeWhile(toks []token.Token) (Command, error) { return While{Condition: toks}, nil }

// Endwhile is endwhile([<condition>...]).
type Endwhile struct {
	Condition []token.Token
}

func (Endwhile) CommandIdentifier() string { return "endwhile" }

func decodeEndwhile(toks []token.Token) (Command, error) { return Endwhile{Condition: toks}, nil }

// Function is function(<name> [<arg>...]).
type Function struct {
	Name      token.Token
	Arguments []token.Token
}

func (Function) CommandIdentifier() string { return "function" }

func decodeFunction(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	name, err := c.Take("name")
	if err != nil {
		return nil, err
	}
	return Function{Name: name, Arguments: c.TakeRest()}, nil
}

// Endfunction is endfunction([<name>]).
type Endfunction struct {
	Name *token.Token
}

func (Endfunction) CommandIdentifier() string { return "endfunction" }

func decodeEndfunction(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	out := Endfunction{}
	if v, ok := c.TakeOptional(); ok {
		out.Name = &v
	}
	return out, nil
}

// Macro is macro(<name> [<arg>...]).
type Macro struct {
	Name      token.Token
	Arguments []token.Token
}

func (Macro) CommandIdentifier() string { return "macro" }

func decodeMacro(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	name, err := c.Take("name")
	if err != nil {
		return nil, err
	}
	return Macro{Name: name, Arguments: c.TakeRest()}, nil
}

// Endmacro is endmacro([<name>]).
type Endmacro struct {
	Name *token.Token
}

func (Endmacro) CommandIdentifier() string { return "endmacro" }

func decodeEndmacro(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	out := Endmacro{}
	if v, ok := c.TakeOptional(); ok {
		out.Name = &v
	}
	return out, nil
}

// Return is return([PROPAGATE <var>...]).
type Return struct {
	Propagate []token.Token
}

func (Return) CommandIdentifier() string { return "return" }

func decodeReturn(toks []token.Token) (Command, error) {
	var out Return
	e := decode.NewEngine()
	e.Values(&out.Propagate, "PROPAGATE")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// Break is break(), taking no arguments.
type Break struct{}

func (Break) CommandIdentifier() string { return "break" }

func decodeBreak(toks []token.Token) (Command, error) {
	if len(toks) > 0 {
		return nil, &decode.IncompleteError{Remaining: len(toks)}
	}
	return Break{}, nil
}

// Continue is continue(), taking no arguments.
type Continue struct{}

func (Continue) CommandIdentifier() string { return "continue" }

func decodeContinue(toks []token.Token) (Command, error) {
	if len(toks) > 0 {
		return nil, &decode.IncompleteError{Remaining: len(toks)}
	}
	return Continue{}, nil
}

// Message is
// message([<mode>] <message-text>...), where mode is one of the
// documented severity keywords used as a bare leading literal.
type Message struct {
	Mode string // "" when no mode keyword is present (defaults to NOTICE)
	Text []token.Token
}

func (Message) CommandIdentifier() string { return "message" }

var messageModes = map[string]bool{
	"FATAL_ERROR": true, "SEND_ERROR": true, "WARNING": true, "AUTHOR_WARNING": true,
	"DEPRECATION": true, "NOTICE": true, "STATUS": true, "VERBOSE": true,
	"DEBUG": true, "TRACE": true,
}

func decodeMessage(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	var out Message
	if t, ok := c.Peek(); ok && messageModes[t.String()] {
		out.Mode = t.String()
		c.Take("mode")
	}
	out.Text = c.TakeRest()
	return out, nil
}

// List is list()'s transparent sum over its subcommand word. GET is
// decoded field-by-field (its output variable trails a greedy index
// list); the huge per-subcommand argument grammar of the other forms is
// not modeled field-by-field, only the common shape.
type List interface {
	isList()
}

// ListGet is list(GET <list> <element-index>... <output-variable>).
type ListGet struct {
	List           token.Token
	ElementIndexes []token.Token
	OutputVariable token.Token
}

func (ListGet) isList() {}

// ListGeneric is the common-shape form for list()'s other subcommands:
// subcommand word, the list variable, and the raw remaining arguments.
type ListGeneric struct {
	Subcommand token.Token
	Variable   token.Token
	Arguments  []token.Token
}

func (ListGeneric) isList() {}

// ListCommand wraps the decoded List arm under the list() identifier.
type ListCommand struct {
	List List
}

func (ListCommand) CommandIdentifier() string { return "list" }

func decodeList(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	sub, err := c.Take("subcommand")
	if err != nil {
		return nil, err
	}
	if sub.Is("GET") {
		get, err := decodeListGet(c.Remaining())
		if err != nil {
			return nil, err
		}
		return ListCommand{List: get}, nil
	}
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	return ListCommand{List: ListGeneric{Subcommand: sub, Variable: variable, Arguments: c.TakeRest()}}, nil
}

func decodeListGet(toks []token.Token) (List, error) {
	c := decode.NewCursor(toks)
	list, err := c.Take("list")
	if err != nil {
		return nil, err
	}
	outVar, err := c.TakeLast("output_variable")
	if err != nil {
		return nil, err
	}
	indexes, ok := c.TakeRestOptional()
	if !ok {
		return nil, &decode.TokenRequiredError{Field: "element_index"}
	}
	return ListGet{List: list, ElementIndexes: indexes, OutputVariable: outVar}, nil
}

// String is string(<subcommand> [<arg>...]), modeled the same way as
// List: common shape only, not a schema per subcommand.
type String struct {
	Subcommand token.Token
	Arguments  []token.Token
}

func (String) CommandIdentifier() string { return "string" }

func decodeString(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	sub, err := c.Take("subcommand")
	if err != nil {
		return nil, err
	}
	return String{Subcommand: sub, Arguments: c.TakeRest()}, nil
}

// CMakePath is cmake_path(<subcommand> [<arg>...]), modeled the same way as
// List and String: cmake_path's per-subcommand grammar (COMPARE, APPEND,
// GET, ...) is the largest in the original command set and is not
// field-by-field here, only its common shape.
type CMakePath struct {
	Subcommand token.Token
	Arguments  []token.Token
}

func (CMakePath) CommandIdentifier() string { return "cmake_path" }

func decodeCMakePath(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	sub, err := c.Take("subcommand")
	if err != nil {
		return nil, err
	}
	return CMakePath{Subcommand: sub, Arguments: c.TakeRest()}, nil
}

// ExecuteProcess is a simplified
// execute_process(COMMAND <cmd1> [<arg>...] [COMMAND <cmd2> ...]
// [WORKING_DIRECTORY <dir>] [RESULT_VARIABLE <var>] [OUTPUT_VARIABLE <var>]
// [ERROR_VARIABLE <var>] [OUTPUT_STRIP_TRAILING_WHITESPACE]
// [ERROR_STRIP_TRAILING_WHITESPACE]).
type ExecuteProcess struct {
	Commands                      []Invocation
	WorkingDirectory              *token.Token
	ResultVariable                *token.Token
	OutputVariable                *token.Token
	ErrorVariable                 *token.Token
	OutputStripTrailingWhitespace bool
	ErrorStripTrailingWhitespace  bool
}

func (ExecuteProcess) CommandIdentifier() string { return "execute_process" }

func decodeExecuteProcess(toks []token.Token) (Command, error) {
	var out ExecuteProcess
	e := decode.NewEngine()
	decode.RecordSeq(e, &out.Commands, "COMMAND", decodeInvocation)
	e.OptionalValue(&out.WorkingDirectory, "WORKING_DIRECTORY")
	e.OptionalValue(&out.ResultVariable, "RESULT_VARIABLE")
	e.OptionalValue(&out.OutputVariable, "OUTPUT_VARIABLE")
	e.OptionalValue(&out.ErrorVariable, "ERROR_VARIABLE")
	e.Flag(&out.OutputStripTrailingWhitespace, "OUTPUT_STRIP_TRAILING_WHITESPACE")
	e.Flag(&out.ErrorStripTrailingWhitespace, "ERROR_STRIP_TRAILING_WHITESPACE")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProperty is a simplified
// get_property(<variable> <scope> [<scope-argument>] PROPERTY <name>
// [SET|DEFINED|BRIEF_DOCS|FULL_DOCS]), where scope is one of GLOBAL,
// DIRECTORY, TARGET, SOURCE, INSTALL, TEST, CACHE, or VARIABLE and
// scope-argument is the directory/target/source/.../entry name that
// TARGET, SOURCE, INSTALL, TEST, and CACHE require.
type GetProperty struct {
	Variable      token.Token
	Scope         token.Token
	ScopeArgument []token.Token
	Property      *token.Token
	Set           bool
	Defined       bool
	BriefDocs     bool
	FullDocs      bool
}

func (GetProperty) CommandIdentifier() string { return "get_property" }

func decodeGetProperty(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	scope, err := c.Take("scope")
	if err != nil {
		return nil, err
	}
	out := GetProperty{Variable: variable, Scope: scope}
	out.ScopeArgument = c.TakeUntil(true, "PROPERTY")
	e := decode.NewEngine()
	e.OptionalValue(&out.Property, "PROPERTY")
	e.Flag(&out.Set, "SET")
	e.Flag(&out.Defined, "DEFINED")
	e.Flag(&out.BriefDocs, "BRIEF_DOCS")
	e.Flag(&out.FullDocs, "FULL_DOCS")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFilenameComponent is
// get_filename_component(<variable> <input> <mode> [BASE_DIR <dir>] [CACHE]).
type GetFilenameComponent struct {
	Variable token.Token
	Input    token.Token
	Mode     token.Token
	BaseDir  *token.Token
	Cache    bool
}

func (GetFilenameComponent) CommandIdentifier() string { return "get_filename_component" }

func decodeGetFilenameComponent(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	input, err := c.Take("input")
	if err != nil {
		return nil, err
	}
	mode, err := c.Take("mode")
	if err != nil {
		return nil, err
	}
	out := GetFilenameComponent{Variable: variable, Input: input, Mode: mode}
	e := decode.NewEngine()
	e.OptionalValue(&out.BaseDir, "BASE_DIR")
	e.Flag(&out.Cache, "CACHE")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDirectoryProperty is
// get_directory_property(<variable> [DIRECTORY <dir>] <property>).
type GetDirectoryProperty struct {
	Variable  token.Token
	Directory *token.Token
	Property  token.Token
}

func (GetDirectoryProperty) CommandIdentifier() string { return "get_directory_property" }

func decodeGetDirectoryProperty(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := GetDirectoryProperty{Variable: variable}
	if c.TakeLiteral("DIRECTORY") {
		dir, err := c.Take("directory")
		if err != nil {
			return nil, err
		}
		out.Directory = &dir
	}
	property, err := c.Take("property")
	if err != nil {
		return nil, err
	}
	out.Property = property
	return out, c.RequireEmpty()
}

// GetCMakeProperty is get_cmake_property(<variable> <property>).
type GetCMakeProperty struct {
	Variable token.Token
	Property token.Token
}

func (GetCMakeProperty) CommandIdentifier() string { return "get_cmake_property" }

func decodeGetCMakeProperty(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	property, err := c.Take("property")
	if err != nil {
		return nil, err
	}
	return GetCMakeProperty{Variable: variable, Property: property}, c.RequireEmpty()
}

// CMakeLanguage is cmake_language(<subcommand> [<arg>...]), modeled the
// same way as List and String: CALL, EVAL, DEFER, GET_MESSAGE_LOG_LEVEL,
// and SET_DEPENDENCY_PROVIDER each have their own grammar that is not
// field-by-field here, only the common shape.
type CMakeLanguage struct {
	Subcommand token.Token
	Arguments  []token.Token
}

func (CMakeLanguage) CommandIdentifier() string { return "cmake_language" }

func decodeCMakeLanguage(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	sub, err := c.Take("subcommand")
	if err != nil {
		return nil, err
	}
	return CMakeLanguage{Subcommand: sub, Arguments: c.TakeRest()}, nil
}

// CMakePolicy is cmake_policy's transparent sum over its VERSION/SET/GET/
// PUSH/POP modes.
type CMakePolicy interface {
	isCMakePolicy()
}

// VersionPolicy is cmake_policy(VERSION <min>[...<max>]).
type VersionPolicy struct {
	Version token.Token
}

func (VersionPolicy) isCMakePolicy() {}

// SetPolicy is cmake_policy(SET <policy> NEW|OLD).
type SetPolicy struct {
	Policy token.Token
	Value  token.Token
}

func (SetPolicy) isCMakePolicy() {}

// GetPolicy is cmake_policy(GET <policy> <variable>).
type GetPolicy struct {
	Policy   token.Token
	Variable token.Token
}

func (GetPolicy) isCMakePolicy() {}

// PushPolicy is cmake_policy(PUSH).
type PushPolicy struct{}

func (PushPolicy) isCMakePolicy() {}

// PopPolicy is cmake_policy(POP).
type PopPolicy struct{}

func (PopPolicy) isCMakePolicy() {}

// CMakePolicyCommand wraps the decoded CMakePolicy arm under the
// cmake_policy() identifier.
type CMakePolicyCommand struct {
	Policy CMakePolicy
}

func (CMakePolicyCommand) CommandIdentifier() string { return "cmake_policy" }

func decodeCMakePolicy(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	mode, err := c.Take("mode")
	if err != nil {
		return nil, err
	}
	var policy CMakePolicy
	switch mode.String() {
	case "VERSION":
		version, err := c.Take("version")
		if err != nil {
			return nil, err
		}
		policy = VersionPolicy{Version: version}
	case "SET":
		p, err := c.Take("policy")
		if err != nil {
			return nil, err
		}
		v, err := c.Take("value")
		if err != nil {
			return nil, err
		}
		policy = SetPolicy{Policy: p, Value: v}
	case "GET":
		p, err := c.Take("policy")
		if err != nil {
			return nil, err
		}
		v, err := c.Take("variable")
		if err != nil {
			return nil, err
		}
		policy = GetPolicy{Policy: p, Variable: v}
	case "PUSH":
		policy = PushPolicy{}
	case "POP":
		policy = PopPolicy{}
	default:
		return nil, &decode.UnexpectedTokenError{Expected: "policy mode", Found: mode.String()}
	}
	if err := c.RequireEmpty(); err != nil {
		return nil, err
	}
	return CMakePolicyCommand{Policy: policy}, nil
}

// CMakeParseArguments is cmake_parse_arguments' untagged sum between its
// standard and PARSE_ARGV forms.
type CMakeParseArguments interface {
	isCMakeParseArguments()
}

// StandardParseArguments is
// cmake_parse_arguments(<prefix> <options> <one-value-keywords>
// <multi-value-keywords> <arg>...).
type StandardParseArguments struct {
	Prefix             token.Token
	Options            token.Token
	OneValueKeywords   token.Token
	MultiValueKeywords token.Token
	Arguments          []token.Token
}

func (StandardParseArguments) isCMakeParseArguments() {}

// ParseArgvParseArguments is
// cmake_parse_arguments(PARSE_ARGV <n> <prefix> <options>
// <one-value-keywords> <multi-value-keywords>).
type ParseArgvParseArguments struct {
	N                  token.Token
	Prefix             token.Token
	Options            token.Token
	OneValueKeywords   token.Token
	MultiValueKeywords token.Token
}

func (ParseArgvParseArguments) isCMakeParseArguments() {}

// CMakeParseArgumentsCommand wraps the decoded arm under the
// cmake_parse_arguments() identifier.
type CMakeParseArgumentsCommand struct {
	Parse CMakeParseArguments
}

func (CMakeParseArgumentsCommand) CommandIdentifier() string { return "cmake_parse_arguments" }

func decodeCMakeParseArguments(toks []token.Token) (Command, error) {
	parse, _, err := decode.TryArms(toks, decodeParseArgvForm, decodeStandardParseArgumentsForm)
	if err != nil {
		return nil, err
	}
	return CMakeParseArgumentsCommand{Parse: parse}, nil
}

func decodeParseArgvForm(c *decode.Cursor) (CMakeParseArguments, error) {
	if !c.TakeLiteral("PARSE_ARGV") {
		return nil, &decode.UnexpectedTokenError{Expected: "PARSE_ARGV", Found: peekText(c)}
	}
	n, err := c.Take("n")
	if err != nil {
		return nil, err
	}
	prefix, err := c.Take("prefix")
	if err != nil {
		return nil, err
	}
	options, err := c.Take("options")
	if err != nil {
		return nil, err
	}
	oneValue, err := c.Take("one_value_keywords")
	if err != nil {
		return nil, err
	}
	multiValue, err := c.Take("multi_value_keywords")
	if err != nil {
		return nil, err
	}
	if err := c.RequireDrained(); err != nil {
		return nil, err
	}
	return ParseArgvParseArguments{
		N: n, Prefix: prefix, Options: options,
		OneValueKeywords: oneValue, MultiValueKeywords: multiValue,
	}, nil
}

func decodeStandardParseArgumentsForm(c *decode.Cursor) (CMakeParseArguments, error) {
	prefix, err := c.Take("prefix")
	if err != nil {
		return nil, err
	}
	options, err := c.Take("options")
	if err != nil {
		return nil, err
	}
	oneValue, err := c.Take("one_value_keywords")
	if err != nil {
		return nil, err
	}
	multiValue, err := c.Take("multi_value_keywords")
	if err != nil {
		return nil, err
	}
	return StandardParseArguments{
		Prefix: prefix, Options: options,
		OneValueKeywords: oneValue, MultiValueKeywords: multiValue,
		Arguments: c.TakeRest(),
	}, nil
}

// CMakeHostSystemInformation is a simplified
// cmake_host_system_information(RESULT <variable> QUERY <key>...).
type CMakeHostSystemInformation struct {
	Result token.Token
	Query  []token.Token
}

func (CMakeHostSystemInformation) CommandIdentifier() string {
	return "cmake_host_system_information"
}

func decodeCMakeHostSystemInformation(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	if !c.TakeLiteral("RESULT") {
		return nil, &decode.UnexpectedTokenError{Expected: "RESULT", Found: peekText(c)}
	}
	result, err := c.Take("result")
	if err != nil {
		return nil, err
	}
	if !c.TakeLiteral("QUERY") {
		return nil, &decode.UnexpectedTokenError{Expected: "QUERY", Found: peekText(c)}
	}
	return CMakeHostSystemInformation{Result: result, Query: c.TakeRest()}, nil
}

// FindFile is find_file(<variable> <name>... [PATHS <path>...]), the same
// shape as FindLibrary and FindPath.
type FindFile struct {
	Variable token.Token
	Names    []token.Token
	Paths    []token.Token
}

func (FindFile) CommandIdentifier() string { return "find_file" }

func decodeFindFile(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := FindFile{Variable: variable}
	e := decode.NewEngine()
	e.Default(&out.Names)
	e.Values(&out.Paths, "PATHS")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// IncludeGuard is include_guard([DIRECTORY|GLOBAL]).
type IncludeGuard struct {
	Scope *token.Token
}

func (IncludeGuard) CommandIdentifier() string { return "include_guard" }

func decodeIncludeGuard(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	var out IncludeGuard
	if v, ok := c.TakeOptional(); ok {
		out.Scope = &v
	}
	return out, c.RequireEmpty()
}

// Math is math(EXPR <variable> <expression> [OUTPUT_FORMAT <format>]).
type Math struct {
	Variable     token.Token
	Expression   token.Token
	OutputFormat *token.Token
}

func (Math) CommandIdentifier() string { return "math" }

func decodeMath(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	if !c.TakeLiteral("EXPR") {
		return nil, &decode.UnexpectedTokenError{Expected: "EXPR", Found: peekText(c)}
	}
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	expression, err := c.Take("expression")
	if err != nil {
		return nil, err
	}
	out := Math{Variable: variable, Expression: expression}
	e := decode.NewEngine()
	e.OptionalValue(&out.OutputFormat, "OUTPUT_FORMAT")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

// SeparateArguments is a simplified
// separate_arguments(<variable> [<mode>] [<args>]), where mode is one of
// UNIX_COMMAND, WINDOWS_COMMAND, or NATIVE_COMMAND.
type SeparateArguments struct {
	Variable token.Token
	Mode     *token.Token
	Args     []token.Token
}

func (SeparateArguments) CommandIdentifier() string { return "separate_arguments" }

var separateArgumentsModes = map[string]bool{
	"UNIX_COMMAND": true, "WINDOWS_COMMAND": true, "NATIVE_COMMAND": true,
}

func decodeSeparateArguments(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := SeparateArguments{Variable: variable}
	if t, ok := c.Peek(); ok && separateArgumentsModes[t.String()] {
		v, _ := c.Take("mode")
		out.Mode = &v
	}
	out.Args = c.TakeRest()
	return out, nil
}

// SiteName is site_name(<variable>).
type SiteName struct {
	Variable token.Token
}

func (SiteName) CommandIdentifier() string { return "site_name" }

func decodeSiteName(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	return SiteName{Variable: variable}, c.RequireEmpty()
}

// VariableWatch is variable_watch(<variable> [<command>]).
type VariableWatch struct {
	Variable token.Token
	Command  *token.Token
}

func (VariableWatch) CommandIdentifier() string { return "variable_watch" }

func decodeVariableWatch(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := VariableWatch{Variable: variable}
	if v, ok := c.TakeOptional(); ok {
		out.Command = &v
	}
	return out, c.RequireEmpty()
}

// Block is block([SCOPE_FOR <property>...] [PROPAGATE <var>...]).
type Block struct {
	ScopeFor  []token.Token
	Propagate []token.Token
}

func (Block) CommandIdentifier() string { return "block" }

func decodeBlock(toks []token.Token) (Command, error) {
	var out Block
	e := decode.NewEngine()
	e.Values(&out.ScopeFor, "SCOPE_FOR")
	e.Values(&out.Propagate, "PROPAGATE")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// Endblock is endblock([PROPAGATE <var>...]).
type Endblock struct {
	Propagate []token.Token
}

func (Endblock) CommandIdentifier() string { return "endblock" }

func decodeEndblock(toks []token.Token) (Command, error) {
	var out Endblock
	e := decode.NewEngine()
	e.Values(&out.Propagate, "PROPAGATE")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}
