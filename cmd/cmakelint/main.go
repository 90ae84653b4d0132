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

// Command cmakelint walks one or more CMakeLists.txt files, decodes every
// command invocation, and reports two things: invocations of commands an
// ini-format policy file marks disallowed, and invocations this library
// fails to decode at all. It exists to exercise the Doc/CommandsIter
// surface end to end, the way cmaketobzl exercised the bzl generator.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"bitbucket.org/creachadair/stringset"
	"github.com/creachadair/ini"

	"github.com/cmakeparser/cmakelists/doc"
)

var (
	configPath = flag.String("config", "", "path to a .cmakelintrc policy file (ini format)")
)

// policy is the decoded form of a .cmakelintrc file:
//
//	[commands]
//	disallow = add_definitions link_libraries subdirs
func loadPolicy(path string) (stringset.Set, error) {
	disallow := stringset.New()
	if path == "" {
		return disallow, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	err = ini.Parse(f, ini.Handler{
		KeyValue: func(loc ini.Location, key string, values []string) error {
			if loc.Section == "commands" && key == "disallow" {
				disallow.Add(values...)
			}
			return nil
		},
	})
	return disallow, err
}

func lintFile(path string, disallow stringset.Set) (violations, failures int) {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	d, err := doc.FromBytes(src)
	if err != nil {
		log.Fatalf("%s: %v", path, err)
	}
	it := d.CommandsIter()
	for it.Next() {
		cmd, err := it.Command()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
			continue
		}
		if disallow.Contains(cmd.CommandIdentifier()) {
			fmt.Fprintf(os.Stderr, "%s: disallowed command %q\n", path, cmd.CommandIdentifier())
			violations++
		}
	}
	return violations, failures
}

func main() {
	flag.Parse()
	disallow, err := loadPolicy(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	var violations, failures int
	for _, path := range flag.Args() {
		v, f := lintFile(path, disallow)
		violations += v
		failures += f
	}
	if violations > 0 || failures > 0 {
		fmt.Fprintf(os.Stderr, "cmakelint: %d disallowed command(s), %d decode failure(s)\n", violations, failures)
		os.Exit(1)
	}
}
