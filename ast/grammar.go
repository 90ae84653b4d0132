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

// Package ast implements the lossless, tokenizer-facing grammar for
// CMakeLists.txt: it recognizes command invocations and their parenthesized
// argument lists, without interpreting ${} variable references, escape
// sequences beyond erasure, or any command-specific argument shape. That is
// the job of the decode package one layer up.
package ast

import (
	"github.com/alecthomas/participle/lexer"
)

// CMakeFile represents the root of a CMakeLists.txt AST and corresponds to:
// https://cmake.org/cmake/help/v3.0/manual/cmake-language.7.html#source-files
type CMakeFile struct {
	Commands []CommandInvocation `( ( Space | Newline )* @@ ( Space | Newline )* )*`
}

// CommandInvocation is a top-level CMake command.
// https://cmake.org/cmake/help/v3.0/manual/cmake-language.7.html#command-invocations
type CommandInvocation struct {
	Pos lexer.Position

	Name      string       `Space* @Unquoted  Space*`
	Arguments ArgumentList `@@`
}

// ArgumentList is a parentheses-enclosed separated list of arguments.
// It broadly corresponds to the arguments and separated_argument productions from:
// https://cmake.org/cmake/help/v3.0/manual/cmake-language.7.html#command-invocations
type ArgumentList struct {
	Values []Argument `"(" @@? ((( Space | Newline )+ @@? ) | @@ )* ")"`
}

// Argument is a union-production for each of the CMake argument kinds.
// See: https://cmake.org/cmake/help/v3.0/manual/cmake-language.7.html#command-arguments
type Argument struct {
	Pos lexer.Position

	ArgumentList     *ArgumentList     `@@`
	QuotedArgument   *QuotedArgument   `| @@`
	BracketArgument  *BracketArgument  `| @@`
	UnquotedArgument *UnquotedArgument `| @@`
}

// BracketArgument is a [=*[<text>]=*]-enclosed argument corresponding to:
// https://cmake.org/cmake/help/v3.0/manual/cmake-language.7.html#bracket-argument
// The lexer has already combined its content into one token and stripped a
// leading newline, so the grammar only recognizes the delimiters around it.
type BracketArgument struct {
	Text string `BracketOpen @BracketContent BracketClose`
}

// QuotedArgument is a simple quoted string, corresponding to:
// https://cmake.org/cmake/help/v3.0/manual/cmake-language.7.html#quoted-argument
// The lexer combines everything between the two Quote delimiters (escape
// sequences and variable-reference punctuation included) into one Quoted
// token, so the grammar only needs to recognize the delimiters.
type QuotedArgument struct {
	Text string `"\"" @Quoted? "\""`
}

// UnquotedArgument is CMake's standard unquoted command argument:
// https://cmake.org/cmake/help/v3.0/manual/cmake-language.7.html#unquoted-argument
// Note: The unquoted_legacy production mentioned above is *not* supported.
// Runs of plain text, escape sequences and variable-reference delimiters are
// captured verbatim and unescaped by Argument.Token.
type UnquotedArgument struct {
	Text string `@( Unquoted | EscapeSequence | VarOpen | VarClose )+`
}
