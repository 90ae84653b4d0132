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
	register("set", decodeSet)
	register("unset", decodeUnset)
	register("option", decodeOption)
	register("mark_as_advanced", decodeMarkAsAdvanced)
}

// Set is set()'s untagged sum: a plain variable assignment, a CACHE
// declaration, or a PARENT_SCOPE propagation.
type Set interface {
	isSet()
}

// PlainSet is set(<variable> <value>...).
type PlainSet struct {
	Variable token.Token
	Value    []token.Token
}

func (PlainSet) isSet() {}

// ParentScopeSet is set(<variable> <value>... PARENT_SCOPE).
type ParentScopeSet struct {
	Variable    token.Token
	Value       []token.Token
	ParentScope bool
}

func (ParentScopeSet) isSet() {}

// CacheSet is
// set(<variable> <value>... CACHE <type> <docstring> [FORCE]).
type CacheSet struct {
	Variable  token.Token
	Value     []token.Token
	Cache     CacheType
	Docstring token.Token
	Force     bool
}

func (CacheSet) isSet() {}

// SetCommand wraps the decoded Set arm under the set() identifier.
type SetCommand struct {
	Set Set
}

func (SetCommand) CommandIdentifier() string { return "set" }

func decodeSet(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	value := c.TakeUntil(false, "CACHE", "PARENT_SCOPE")

	if c.TakeLiteral("CACHE") {
		var cache CacheSet
		cache.Variable = variable
		cache.Value = value
		cacheType, err := decode.TakeEnum(c, "cache_type", cacheTypeTable)
		if err != nil {
			return nil, err
		}
		cache.Cache = cacheType
		doc, err := c.Take("docstring")
		if err != nil {
			return nil, err
		}
		cache.Docstring = doc
		cache.Force = c.TakeLiteral("FORCE")
		if err := c.RequireEmpty(); err != nil {
			return nil, err
		}
		return SetCommand{Set: cache}, nil
	}

	if c.TakeLiteral("PARENT_SCOPE") {
		if err := c.RequireEmpty(); err != nil {
			return nil, err
		}
		return SetCommand{Set: ParentScopeSet{Variable: variable, Value: value, ParentScope: true}}, nil
	}

	if err := c.RequireEmpty(); err != nil {
		return nil, err
	}
	return SetCommand{Set: PlainSet{Variable: variable, Value: value}}, nil
}

// Unset is unset(<variable> [CACHE | PARENT_SCOPE]).
type Unset struct {
	Variable    token.Token
	Cache       bool
	ParentScope bool
}

func (Unset) CommandIdentifier() string { return "unset" }

func decodeUnset(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := Unset{Variable: variable}
	if c.TakeLiteral("CACHE") {
		out.Cache = true
	} else if c.TakeLiteral("PARENT_SCOPE") {
		out.ParentScope = true
	}
	return out, c.RequireEmpty()
}

// Option is option(<variable> "<help-text>" [value]).
type Option struct {
	Variable token.Token
	HelpText token.Token
	Value    *token.Token
}

func (Option) CommandIdentifier() string { return "option" }

func decodeOption(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	help, err := c.Take("help_text")
	if err != nil {
		return nil, err
	}
	out := Option{Variable: variable, HelpText: help}
	if v, ok := c.TakeOptional(); ok {
		out.Value = &v
	}
	return out, c.RequireEmpty()
}

// MarkAsAdvanced is
// mark_as_advanced([CLEAR|FORCE] <variable>...).
type MarkAsAdvanced struct {
	Clear     bool
	Force     bool
	Variables []token.Token
}

func (MarkAsAdvanced) CommandIdentifier() string { return "mark_as_advanced" }

func decodeMarkAsAdvanced(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	var out MarkAsAdvanced
	if t, ok := c.Peek(); ok {
		switch t.String() {
		case "CLEAR":
			out.Clear = true
			c.Take("mode")
		case "FORCE":
			out.Force = true
			c.Take("mode")
		}
	}
	out.Variables = c.TakeRest()
	return out, nil
}
