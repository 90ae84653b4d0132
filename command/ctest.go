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

// ctest-scope commands: the CTest dashboard script verbs. These run only
// inside ctest -S scripts, never a regular CMakeLists.txt, but share the
// same invocation shape and so the same decoder.

package command

import (
	"github.com/cmakeparser/cmakelists/decode"
	"github.com/cmakeparser/cmakelists/token"
)

func init() {
	register("ctest_start", decodeCTestStart)
	register("ctest_configure", decodeCTestConfigure)
	register("ctest_build", decodeCTestBuild)
	register("ctest_test", decodeCTestTest)
	register("ctest_submit", decodeCTestSubmit)
	register("ctest_memcheck", decodeCTestMemcheck)
	register("ctest_coverage", decodeCTestCoverage)
	register("ctest_upload", decodeCTestUpload)
	register("ctest_update", decodeCTestUpdate)
	register("ctest_sleep", decodeCTestSleep)
	register("ctest_run_script", decodeCTestRunScript)
	register("ctest_empty_binary_directory", decodeCTestEmptyBinaryDirectory)
	register("ctest_read_custom_files", decodeCTestReadCustomFiles)
}

// CTestStart is
// ctest_start(<model> [<source> [<binary>]] [QUIET]).
type CTestStart struct {
	Model  token.Token
	Source *token.Token
	Binary *token.Token
	Quiet  bool
}

func (CTestStart) CommandIdentifier() string { return "ctest_start" }

func decodeCTestStart(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	model, err := c.Take("model")
	if err != nil {
		return nil, err
	}
	out := CTestStart{Model: model}
	if t, ok := c.Peek(); ok && !t.Is("QUIET") {
		v, _ := c.Take("source")
		out.Source = &v
		if t2, ok2 := c.Peek(); ok2 && !t2.Is("QUIET") {
			v2, _ := c.Take("binary")
			out.Binary = &v2
		}
	}
	out.Quiet = c.TakeLiteral("QUIET")
	return out, c.RequireEmpty()
}

// CTestConfigure is
// ctest_configure([BUILD <dir>] [SOURCE <dir>] [APPEND] [RETURN_VALUE <var>]).
type CTestConfigure struct {
	Build       *token.Token
	Source      *token.Token
	Append      bool
	ReturnValue *token.Token
}

func (CTestConfigure) CommandIdentifier() string { return "ctest_configure" }

func decodeCTestConfigure(toks []token.Token) (Command, error) {
	var out CTestConfigure
	e := decode.NewEngine()
	e.OptionalValue(&out.Build, "BUILD")
	e.OptionalValue(&out.Source, "SOURCE")
	e.Flag(&out.Append, "APPEND")
	e.OptionalValue(&out.ReturnValue, "RETURN_VALUE")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// CTestBuild is
// ctest_build([BUILD <dir>] [TARGET <target>] [RETURN_VALUE <var>]
// [NUMBER_ERRORS <var>] [NUMBER_WARNINGS <var>]).
type CTestBuild struct {
	Build          *token.Token
	Target         *token.Token
	ReturnValue    *token.Token
	NumberErrors   *token.Token
	NumberWarnings *token.Token
}

func (CTestBuild) CommandIdentifier() string { return "ctest_build" }

func decodeCTestBuild(toks []token.Token) (Command, error) {
	var out CTestBuild
	e := decode.NewEngine()
	e.OptionalValue(&out.Build, "BUILD")
	e.OptionalValue(&out.Target, "TARGET")
	e.OptionalValue(&out.ReturnValue, "RETURN_VALUE")
	e.OptionalValue(&out.NumberErrors, "NUMBER_ERRORS")
	e.OptionalValue(&out.NumberWarnings, "NUMBER_WARNINGS")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// CTestTest is
// ctest_test([BUILD <dir>] [RETURN_VALUE <var>] [PARALLEL_LEVEL <n>]
// [INCLUDE <regex>] [EXCLUDE <regex>]).
type CTestTest struct {
	Build         *token.Token
	ReturnValue   *token.Token
	ParallelLevel *token.Token
	Include       *token.Token
	Exclude       *token.Token
}

func (CTestTest) CommandIdentifier() string { return "ctest_test" }

func decodeCTestTest(toks []token.Token) (Command, error) {
	var out CTestTest
	e := decode.NewEngine()
	e.OptionalValue(&out.Build, "BUILD")
	e.OptionalValue(&out.ReturnValue, "RETURN_VALUE")
	e.OptionalValue(&out.ParallelLevel, "PARALLEL_LEVEL")
	e.OptionalValue(&out.Include, "INCLUDE")
	e.OptionalValue(&out.Exclude, "EXCLUDE")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// CTestSubmit is
// ctest_submit([PARTS <part>...] [RETRY_COUNT <n>] [RETRY_DELAY <n>]).
type CTestSubmit struct {
	Parts      []token.Token
	RetryCount *token.Token
	RetryDelay *token.Token
}

func (CTestSubmit) CommandIdentifier() string { return "ctest_submit" }

func decodeCTestSubmit(toks []token.Token) (Command, error) {
	var out CTestSubmit
	e := decode.NewEngine()
	e.Values(&out.Parts, "PARTS")
	e.OptionalValue(&out.RetryCount, "RETRY_COUNT")
	e.OptionalValue(&out.RetryDelay, "RETRY_DELAY")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// CTestMemcheck decodes ctest_memcheck's BUILD, RETURN_VALUE, INCLUDE and
// EXCLUDE options, a subset of ctest_test's; PARALLEL_LEVEL and the other
// ctest_test options are not recognized here.
type CTestMemcheck struct {
	Build       *token.Token
	ReturnValue *token.Token
	Include     *token.Token
	Exclude     *token.Token
}

func (CTestMemcheck) CommandIdentifier() string { return "ctest_memcheck" }

func decodeCTestMemcheck(toks []token.Token) (Command, error) {
	var out CTestMemcheck
	e := decode.NewEngine()
	e.OptionalValue(&out.Build, "BUILD")
	e.OptionalValue(&out.ReturnValue, "RETURN_VALUE")
	e.OptionalValue(&out.Include, "INCLUDE")
	e.OptionalValue(&out.Exclude, "EXCLUDE")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// CTestCoverage is
// ctest_coverage([BUILD <dir>] [LABELS <label>...] [RETURN_VALUE <var>] [QUIET]).
type CTestCoverage struct {
	Build       *token.Token
	Labels      []token.Token
	ReturnValue *token.Token
	Quiet       bool
}

func (CTestCoverage) CommandIdentifier() string { return "ctest_coverage" }

func decodeCTestCoverage(toks []token.Token) (Command, error) {
	var out CTestCoverage
	e := decode.NewEngine()
	e.OptionalValue(&out.Build, "BUILD")
	e.Values(&out.Labels, "LABELS")
	e.OptionalValue(&out.ReturnValue, "RETURN_VALUE")
	e.Flag(&out.Quiet, "QUIET")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// CTestUpload is ctest_upload(FILES <file>...).
type CTestUpload struct {
	Files []token.Token
}

func (CTestUpload) CommandIdentifier() string { return "ctest_upload" }

func decodeCTestUpload(toks []token.Token) (Command, error) {
	var out CTestUpload
	e := decode.NewEngine()
	e.Values(&out.Files, "FILES")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// CTestUpdate is ctest_update([SOURCE <dir>] [RETURN_VALUE <var>]
// [CAPTURE_CMAKE_ERROR <var>]).
type CTestUpdate struct {
	Source            *token.Token
	ReturnValue       *token.Token
	CaptureCMakeError *token.Token
}

func (CTestUpdate) CommandIdentifier() string { return "ctest_update" }

func decodeCTestUpdate(toks []token.Token) (Command, error) {
	var out CTestUpdate
	e := decode.NewEngine()
	e.OptionalValue(&out.Source, "SOURCE")
	e.OptionalValue(&out.ReturnValue, "RETURN_VALUE")
	e.OptionalValue(&out.CaptureCMakeError, "CAPTURE_CMAKE_ERROR")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// CTestSleep is ctest_sleep's untagged sum: a single seconds argument, or
// a time1/duration/time2 triple.
type CTestSleep interface {
	isCTestSleep()
}

// CTestSleepSeconds is ctest_sleep(<seconds>).
type CTestSleepSeconds struct {
	Seconds token.Token
}

func (CTestSleepSeconds) isCTestSleep() {}

// CTestSleepTime is ctest_sleep(<time1> <duration> <time2>).
type CTestSleepTime struct {
	Time1    token.Token
	Duration token.Token
	Time2    token.Token
}

func (CTestSleepTime) isCTestSleep() {}

// CTestSleepCommand wraps the decoded CTestSleep arm under the
// ctest_sleep() identifier.
type CTestSleepCommand struct {
	Sleep CTestSleep
}

func (CTestSleepCommand) CommandIdentifier() string { return "ctest_sleep" }

func decodeCTestSleep(toks []token.Token) (Command, error) {
	sleep, _, err := decode.TryArms(toks, decodeCTestSleepTime, decodeCTestSleepSeconds)
	if err != nil {
		return nil, err
	}
	return CTestSleepCommand{Sleep: sleep}, nil
}

func decodeCTestSleepTime(c *decode.Cursor) (CTestSleep, error) {
	time1, err := c.Take("time1")
	if err != nil {
		return nil, err
	}
	duration, err := c.Take("duration")
	if err != nil {
		return nil, err
	}
	time2, err := c.Take("time2")
	if err != nil {
		return nil, err
	}
	if err := c.RequireDrained(); err != nil {
		return nil, err
	}
	return CTestSleepTime{Time1: time1, Duration: duration, Time2: time2}, nil
}

func decodeCTestSleepSeconds(c *decode.Cursor) (CTestSleep, error) {
	seconds, err := c.Take("seconds")
	if err != nil {
		return nil, err
	}
	if err := c.RequireDrained(); err != nil {
		return nil, err
	}
	return CTestSleepSeconds{Seconds: seconds}, nil
}

// CTestRunScript is
// ctest_run_script([NEW_PROCESS] <script>... [RETURN_VALUE <var>]).
type CTestRunScript struct {
	NewProcess  bool
	Scripts     []token.Token
	ReturnValue *token.Token
}

func (CTestRunScript) CommandIdentifier() string { return "ctest_run_script" }

func decodeCTestRunScript(toks []token.Token) (Command, error) {
	var out CTestRunScript
	e := decode.NewEngine()
	e.Default(&out.Scripts)
	e.Flag(&out.NewProcess, "NEW_PROCESS")
	e.OptionalValue(&out.ReturnValue, "RETURN_VALUE")
	if err := e.Run(toks); err != nil {
		return nil, err
	}
	return out, nil
}

// CTestEmptyBinaryDirectory is ctest_empty_binary_directory(<directory>).
type CTestEmptyBinaryDirectory struct {
	Directory token.Token
}

func (CTestEmptyBinaryDirectory) CommandIdentifier() string {
	return "ctest_empty_binary_directory"
}

func decodeCTestEmptyBinaryDirectory(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	dir, err := c.Take("directory")
	if err != nil {
		return nil, err
	}
	return CTestEmptyBinaryDirectory{Directory: dir}, c.RequireEmpty()
}

// CTestReadCustomFiles is ctest_read_custom_files(<directory>...).
type CTestReadCustomFiles struct {
	Directories []token.Token
}

func (CTestReadCustomFiles) CommandIdentifier() string { return "ctest_read_custom_files" }

func decodeCTestReadCustomFiles(toks []token.Token) (Command, error) {
	c := decode.NewCursor(toks)
	dirs, ok := c.TakeRestOptional()
	if !ok {
		return nil, &decode.TokenRequiredError{Field: "directory"}
	}
	return CTestReadCustomFiles{Directories: dirs}, nil
}
