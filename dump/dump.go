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

// Package dump writes inspection-friendly views of the cartridge and
// responder state. Used by the dump mode of the command line program to
// sanity check how an image has been mapped before committing it to
// hardware.
package dump

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"
)

// Graph writes a graphviz (dot format) graph of the value's internal
// structure.
func Graph(output io.Writer, value interface{}) {
	memviz.Map(output, value)
}

// Values writes a deep listing of the value's fields. Large byte arrays are
// abbreviated.
func Values(output io.Writer, value interface{}) {
	c := spew.ConfigState{
		Indent:                  "\t",
		MaxDepth:                5,
		DisableMethods:          true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	c.Fdump(output, value)
}
