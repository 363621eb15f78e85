/*
 *     Copyright 2024 The BioSentience Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// GitVersion is set by the build.
	GitVersion = "v1.0.0"

	// GitCommit is set by the build.
	GitCommit = "unknown"

	// BuildTime is set by the build.
	BuildTime = "unknown"
)

// Version returns the full version report.
func Version() string {
	return fmt.Sprintf("version: %s, commit: %s, build time: %s, go version: %s, platform: %s/%s",
		GitVersion, GitCommit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// VersionCmd prints version information.
var VersionCmd = &cobra.Command{
	Use:               "version",
	Short:             "show version",
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version())
	},
}
