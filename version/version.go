// This file is part of Picocart.
//
// Picocart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Picocart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Picocart.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the version number and the vcs revision of the
// build. The version number is only set when building through the makefile.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Picocart"

// if number is empty then the project was not built using the makefile.
var number string

// revision contains the vcs revision. if the source has been modified but not
// committed then the revision string is suffixed with "+dirty".
var revision string

// version contains the version number of the build. the value "unreleased"
// means the project was built manually from a source checkout; "local" means
// there is no version number and no vcs information at all.
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release version.
func Version() (string, string, bool) {
	return version, revision, version == number && number != ""
}

// Title returns a string suitable for printing at program startup.
func Title() string {
	s, _, _ := Version()
	return fmt.Sprintf("%s (%s)", ApplicationName, s)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	} else {
		version = number
	}
}
