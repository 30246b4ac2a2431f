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

// Package mapper defines the interface between the responder loop and the
// many ways cartridge data can be arranged.
package mapper

// CartMapper resolves addresses within the cartridge address space to bytes
// of the cartridge image. Addresses passed to Access() and Listen() have
// already been masked to the mapper's address window by the cartridge
// package.
//
// Implementations are not safe for concurrent use. The responder loop is the
// only caller during operation.
type CartMapper interface {
	// ID of the mapping scheme, eg. "F8"
	ID() string

	// a human readable summary of the mapper and its current state
	String() string

	// Access resolves a read of the given address. The returned bool
	// indicates whether the data lines should be driven with the byte; a
	// false value means the address belongs to the console or to a write
	// port and the lines must stay released.
	//
	// Bank switching triggered by the address is performed as a side
	// effect, as on real hardware.
	Access(addr uint16) (uint8, bool)

	// Listen observes a bus cycle during which the cartridge is not driving
	// the data lines. data is the value seen on the released data bus.
	// Mappers use this for write ports and write-triggered bank switching.
	Listen(addr uint16, data uint8)

	// Reset the mapper to its power-on state. RAM areas are cleared
	Reset()

	// NumBanks and GetBank describe the bank switching state
	NumBanks() int
	GetBank() int
}

// OptionalSuperchip is implemented by mappers that can have the 128 byte
// superchip RAM added after creation.
type OptionalSuperchip interface {
	AddSuperchip()
}
