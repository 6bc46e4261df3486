// Copyright © 2023 Geo Web Project
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
)

var shortened, output = false, "yaml"

// BuildDate is set by the build with the compile time
var BuildDate string

// BuildCommit is set by the build with the git commit
var BuildCommit string

// BuildVersion is set by the build with the release version
var BuildVersion string

// Info is the version payload printed by the version command
type Info struct {
	Version string `json:"Version,omitempty" yaml:"Version,omitempty"`
	Commit  string `json:"Commit,omitempty" yaml:"Commit,omitempty"`
	Date    string `json:"Date,omitempty" yaml:"Date,omitempty"`
	License string `json:"License,omitempty" yaml:"License,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version info",
	Long:  "Prints the version info of the cadastred binary",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := &Info{
			Version: BuildVersion,
			Commit:  BuildCommit,
			Date:    BuildDate,
			License: "Apache-2.0",
		}

		if shortened {
			fmt.Println(info.Version)
			return nil
		}

		var (
			bytes []byte
			err   error
		)
		switch output {
		case "json":
			bytes, err = json.MarshalIndent(info, "", "  ")
		case "yaml":
			bytes, err = yaml.Marshal(info)
		default:
			err = i18n.NewError(context.Background(), i18n.MsgInvalidOutputOption, output)
		}
		if err != nil {
			return err
		}

		fmt.Println(string(bytes))
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&shortened, "short", "s", false, "Prints only the version number")
	versionCmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format (\"yaml\"|\"json\")")
	rootCmd.AddCommand(versionCmd)
}
