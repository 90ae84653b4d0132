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

// CacheType is set()'s CACHE type enum: STRING, BOOL, PATH, FILEPATH, or
// INTERNAL.
type CacheType string

const (
	CacheString   CacheType = "STRING"
	CacheBool     CacheType = "BOOL"
	CachePath     CacheType = "PATH"
	CacheFilepath CacheType = "FILEPATH"
	CacheInternal CacheType = "INTERNAL"
)

var cacheTypeTable = map[string]CacheType{
	"STRING":   CacheString,
	"BOOL":     CacheBool,
	"PATH":     CachePath,
	"FILEPATH": CacheFilepath,
	"INTERNAL": CacheInternal,
}

// NormalLibraryType is a Normal add_library's STATIC/SHARED/MODULE enum.
// UNKNOWN is deliberately absent: the original's NormalLibraryType enum
// (add_library.rs) only has three variants, and UNKNOWN is only valid on
// the IMPORTED arm (ImportedLibraryType).
type NormalLibraryType string

const (
	LibraryStatic NormalLibraryType = "STATIC"
	LibraryShared NormalLibraryType = "SHARED"
	LibraryModule NormalLibraryType = "MODULE"
)

var normalLibraryTypeTable = map[string]NormalLibraryType{
	"STATIC": LibraryStatic,
	"SHARED": LibraryShared,
	"MODULE": LibraryModule,
}

// ImportedLibraryType is an Imported add_library's STATIC/SHARED/MODULE/
// UNKNOWN enum, matching the original's ImportedLibraryType.
type ImportedLibraryType string

const (
	ImportedLibraryStatic  ImportedLibraryType = "STATIC"
	ImportedLibraryShared  ImportedLibraryType = "SHARED"
	ImportedLibraryModule  ImportedLibraryType = "MODULE"
	ImportedLibraryUnknown ImportedLibraryType = "UNKNOWN"
)

var importedLibraryTypeTable = map[string]ImportedLibraryType{
	"STATIC":  ImportedLibraryStatic,
	"SHARED":  ImportedLibraryShared,
	"MODULE":  ImportedLibraryModule,
	"UNKNOWN": ImportedLibraryUnknown,
}

// Invocation is a shared sub-record for the "command word followed by its
// own arguments" shape: add_custom_target's and add_custom_command's
// COMMAND sections, ctest's custom test commands, and similar.
type Invocation struct {
	Name      token.Token
	Arguments []token.Token
}

// decodeInvocation builds an Invocation from a RecordSeq/TaggedRecord
// buffer: the first token is the command name, everything after is its
// arguments.
func decodeInvocation(buf []token.Token) (Invocation, error) {
	c := decode.NewCursor(buf)
	name, err := c.Take("name")
	if err != nil {
		return Invocation{}, err
	}
	return Invocation{Name: name, Arguments: c.TakeRest()}, nil
}
