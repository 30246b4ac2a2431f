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

// Package gpio abstracts the single GPIO bank the cartridge connector is
// wired to. The Port interface is the only way the rest of the project
// touches the bank: the bus package owns the one Port instance for the
// lifetime of the process and nothing else mutates it.
//
// Two implementations exist. The Sim type is a pure Go model of the bank,
// used for tests and host-side runs. The rp2040 build tag selects a port
// backed by the real SIO registers.
package gpio

// Port is a single 32-line GPIO bank with bulk masked operations. Every
// method is non-blocking and constant-time. All value and mask arguments
// are bit-per-line.
type Port interface {
	// Init readies the masked lines for use. Direction is input
	Init(mask uint32)

	// ReadAll returns the level of every line in one operation
	ReadAll() uint32

	// WriteMasked sets the output value of the masked lines. The value is
	// only visible on lines whose direction is output
	WriteMasked(mask uint32, value uint32)

	// DirOutMasked switches the masked lines to output
	DirOutMasked(mask uint32)

	// DirInMasked switches the masked lines to input (high impedance)
	DirInMasked(mask uint32)
}
