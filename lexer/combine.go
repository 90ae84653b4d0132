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

package lexer

import (
	"github.com/alecthomas/participle/lexer"
)

// combiningLexer sits on top of the raw regex scanner and merges runs of
// low-level tokens into the higher-level tokens the grammar expects:
// quoted-argument content between a pair of Quote tokens, bracket-argument
// content between matching BracketOpen/BracketClose delimiters, and
// comments (which are dropped entirely; the core decoder never sees them).
type combiningLexer struct {
	l   lexer.Lexer
	buf []lexer.Token
}

// Next implements the lexer.Lexer interface for combiningLexer.
func (l *combiningLexer) Next() (lexer.Token, error) {
	if len(l.buf) > 0 {
		tok := l.buf[0]
		l.buf = l.buf[1:]
		return tok, nil
	}
	for {
		tok, err := l.l.Next()
		if err != nil {
			return lexer.Token{}, err
		}
		switch tok.Type {
		case Comment:
			if err := l.skipComment(); err != nil {
				return lexer.Token{}, err
			}
			tok := l.buf[0]
			l.buf = l.buf[1:]
			return tok, nil
		case Quote:
			content, closer, err := l.combineQuoted()
			if err != nil {
				return lexer.Token{}, err
			}
			return l.emit(tok, content, closer)
		case BracketOpen:
			content, closer, err := l.combineBracket(len(tok.Value))
			if err != nil {
				return lexer.Token{}, err
			}
			return l.emit(tok, content, closer)
		default:
			return tok, nil
		}
	}
}

// emit returns the opening delimiter and buffers the combined content
// token plus the closing delimiter (if any) behind it, so the grammar sees
// the same open-content-close sequence the source had.
func (l *combiningLexer) emit(open lexer.Token, content lexer.Token, closer *lexer.Token) (lexer.Token, error) {
	content.Pos = open.Pos
	l.buf = append(l.buf, content)
	if closer != nil {
		l.buf = append(l.buf, *closer)
	}
	return open, nil
}

// combineQuoted reads tokens until the matching closing Quote or EOF,
// merging everything else (including EscapeSequence and variable-reference
// delimiters, which are not evaluated by this tokenizer) into one Quoted
// token.
func (l *combiningLexer) combineQuoted() (lexer.Token, *lexer.Token, error) {
	quoted := lexer.Token{Type: Quoted}
	for {
		next, err := l.l.Next()
		if err != nil {
			return quoted, nil, err
		}
		switch next.Type {
		case Quote, lexer.EOF:
			return quoted, &next, nil
		default:
			quoted.Value += next.Value
		}
	}
}

// combineBracket reads tokens until a BracketClose whose delimiter length
// matches hdrlen (i.e. the same number of '=' characters), or EOF. A single
// leading newline in the bracket content is stripped per CMake's
// bracket-argument rule.
func (l *combiningLexer) combineBracket(hdrlen int) (lexer.Token, *lexer.Token, error) {
	content := lexer.Token{Type: BracketContent}
	first := true
	for {
		next, err := l.l.Next()
		if err != nil {
			return content, nil, err
		}
		switch {
		case next.Type == lexer.EOF:
			return content, &next, nil
		case next.Type == BracketClose && len(next.Value) == hdrlen:
			return content, &next, nil
		default:
			if first && next.Value == "\n" {
				first = false
				continue
			}
			first = false
			content.Value += next.Value
		}
	}
}

// skipComment discards tokens through the end of the current line. The
// terminating Newline or EOF is left for the next Next() call to return
// unmolested, since comments carry no information the decoder needs.
func (l *combiningLexer) skipComment() error {
	for {
		next, err := l.l.Next()
		if err != nil {
			return err
		}
		switch next.Type {
		case Newline, lexer.EOF:
			l.buf = append(l.buf, next)
			return nil
		}
	}
}
