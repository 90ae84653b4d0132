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
	register("file", decodeFile)
}

// File is file()'s transparent sum: the first token is itself the arm
// discriminator (READ, WRITE, ...), so dispatch is a direct switch rather
// than an untagged trial decode; file()'s sub-operations never overlap in
// shape.
type File interface {
	isFile()
}

// FileRead is file(READ <filename> <variable> [OFFSET <offset>]
// [LIMIT <limit>] [HEX]).
type FileRead struct {
	Filename token.Token
	Variable token.Token
	Offset   *token.Token
	Limit    *token.Token
	Hex      bool
}

func (FileRead) isFile() {}

// FileWrite is file(WRITE <filename> <content>...).
type FileWrite struct {
	Filename token.Token
	Content  []token.Token
}

func (FileWrite) isFile() {}

// FileAppend is file(APPEND <filename> <content>...).
type FileAppend struct {
	Filename token.Token
	Content  []token.Token
}

func (FileAppend) isFile() {}

// FileGlob is file(GLOB <variable> [RELATIVE <path>]
// [CONFIGURE_DEPENDS] <globbing-expression>...).
type FileGlob struct {
	Recurse             bool
	Variable            token.Token
	Relative            *token.Token
	ConfigureDepends    bool
	GlobbingExpressions []token.Token
}

func (FileGlob) isFile() {}

// FileMakeDirectory is file(MAKE_DIRECTORY <directory>...).
type FileMakeDirectory struct {
	Directories []token.Token
}

func (FileMakeDirectory) isFile() {}

// FileRemove is file(REMOVE <file>...) or file(REMOVE_RECURSE <file>...).
type FileRemove struct {
	Recurse bool
	Files   []token.Token
}

func (FileRemove) isFile() {}

// FileRename is file(RENAME <oldname> <newname>).
type FileRename struct {
	OldName token.Token
	NewName token.Token
}

func (FileRename) isFile() {}

// FileCopy is file(COPY <file>... DESTINATION <dir>).
type FileCopy struct {
	Files       []token.Token
	Destination token.Token
}

func (FileCopy) isFile() {}

// FileGeneric is the common-shape fallback for every file() subcommand
// not modeled field-by-field above: STRINGS, TIMESTAMP,
// GET_RUNTIME_DEPENDENCIES, GENERATE, CONFIGURE, INSTALL, SIZE,
// READ_SYMLINK, CREATE_LINK, CHMOD, RELATIVE_PATH, TO_CMAKE_PATH,
// TO_NATIVE_PATH, REAL_PATH, DOWNLOAD, UPLOAD, LOCK, ARCHIVE_CREATE,
// ARCHIVE_EXTRACT, and the rest of file()'s ~28 documented forms. Modeled
// at the same common-shape granularity as list()/string()/cmake_path() in
// scripting.go: subcommand token plus the raw remaining arguments, never
// erroring on a subcommand this library doesn't decode field-by-field.
type FileGeneric struct {
	Subcommand token.Token
	Arguments  []token.Token
}

func (FileGeneric) isFile() {}

// FileCommand wraps the decoded File arm under the file() identifier.
type FileCommand struct {
	File File
}

func (FileCommand) CommandIdentifier() string { return "file" }

func decodeFile(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	op, err := c.Take("subcommand")
	if err != nil {
		return nil, err
	}
	rest := c.Remaining()
	var f File
	switch op.String() {
	case "READ":
		f, err = decodeFileRead(rest)
	case "WRITE":
		f, err = decodeFileWriteLike(rest, false)
	case "APPEND":
		f, err = decodeFileWriteLike(rest, true)
	case "GLOB":
		f, err = decodeFileGlob(rest, false)
	case "GLOB_RECURSE":
		f, err = decodeFileGlob(rest, true)
	case "MAKE_DIRECTORY":
		f = FileMakeDirectory{Directories: rest}
	case "REMOVE":
		f = FileRemove{Files: rest}
	case "REMOVE_RECURSE":
		f = FileRemove{Recurse: true, Files: rest}
	case "RENAME":
		f, err = decodeFileRename(rest)
	case "COPY":
		f, err = decodeFileCopy(rest)
	default:
		f = FileGeneric{Subcommand: op, Arguments: rest}
	}
	if err != nil {
		return nil, err
	}
	return FileCommand{File: f}, nil
}

func decodeFileRead(toks []token.Token) (File, error) {
	c := decode.NewCursor(toks)
	filename, err := c.Take("filename")
	if err != nil {
		return nil, err
	}
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := FileRead{Filename: filename, Variable: variable}
	e := decode.NewEngine()
	e.OptionalValue(&out.Offset, "OFFSET")
	e.OptionalValue(&out.Limit, "LIMIT")
	e.Flag(&out.Hex, "HEX")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeFileWriteLike(toks []token.Token, append bool) (File, error) {
	c := decode.NewCursor(toks)
	filename, err := c.Take("filename")
	if err != nil {
		return nil, err
	}
	content := c.TakeRest()
	if append {
		return FileAppend{Filename: filename, Content: content}, nil
	}
	return FileWrite{Filename: filename, Content: content}, nil
}

func decodeFileGlob(toks []token.Token, recurse bool) (File, error) {
	c := decode.NewCursor(toks)
	variable, err := c.Take("variable")
	if err != nil {
		return nil, err
	}
	out := FileGlob{Recurse: recurse, Variable: variable}
	e := decode.NewEngine()
	e.Default(&out.GlobbingExpressions)
	e.OptionalValue(&out.Relative, "RELATIVE")
	e.Flag(&out.ConfigureDepends, "CONFIGURE_DEPENDS")
	if err := e.Run(c.Remaining()); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeFileRename(toks []token.Token) (File, error) {
	c := decode.NewCursor(toks)
	oldName, err := c.Take("oldname")
	if err != nil {
		return nil, err
	}
	newName, err := c.Take("newname")
	if err != nil {
		return nil, err
	}
	return FileRename{OldName: oldName, NewName: newName}, c.RequireEmpty()
}

func decodeFileCopy(toks []token.Token) (File, error) {
	var out FileCopy
	var dest *token.Token
	e := decode.NewEngine()
	e.Default(&out.Files)
	e.OptionalValue(&dest, "DESTINATION")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, &decode.MissingTokenError{Field: "DESTINATION"}
	}
	out.Destination = *dest
	return out, nil
}
