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

package ast

import (
	"strings"

	"github.com/cmakeparser/cmakelists/token"
)

// Token renders the argument to the raw, unevaluated Token the decode
// package consumes. Variable references are preserved as literal text
// (e.g. "${FOO}"); the core never expands them. Nested argument lists
// (used rarely, e.g. inside if() conditions) are flattened back to their
// surrounding parentheses.
func (a *Argument) Token() token.Token {
	switch {
	case a.QuotedArgument != nil:
		return token.Quote(unescape(a.QuotedArgument.Text))
	case a.UnquotedArgument != nil:
		return token.New(unescape(a.UnquotedArgument.Text))
	case a.BracketArgument != nil:
		return token.New(a.BracketArgument.Text)
	case a.ArgumentList != nil:
		return token.New("(" + strings.Join(a.ArgumentList.rawParts(), " ") + ")")
	}
	panic("ast: argument has no concrete alternative")
}

// rawParts renders the source text of a nested ArgumentList's elements,
// for use when flattening nested parens back to a single literal token.
func (l *ArgumentList) rawParts() []string {
	parts := make([]string, len(l.Values))
	for i := range l.Values {
		parts[i] = l.Values[i].Token().String()
	}
	return parts
}

// Tokens renders every argument of the invocation in source order.
func (c *CommandInvocation) Tokens() []token.Token {
	toks := make([]token.Token, len(c.Arguments.Values))
	for i := range c.Arguments.Values {
		toks[i] = c.Arguments.Values[i].Token()
	}
	return toks
}

// unescape erases backslash-escapes the way the CMake language processor
// does before a command ever sees its arguments: `\<char>` becomes `<char>`
// and a line-continuation `\<newline>` disappears entirely. This is a
// best-effort pass; the decoder never depends on its exactness since full
// escape-sequence fidelity belongs to the tokenizer, which is out of scope
// for this library (see the package comment).
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			if s[i] == '\n' {
				continue
			}
			b.WriteByte(s[i])
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
