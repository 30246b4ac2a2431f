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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/picocart/cartridge/mapper"
)

// Console is the class of machine on the other end of the bus.
type Console int

// List of valid Console values.
const (
	Console2600 Console = iota
	Console7800
)

func (c Console) String() string {
	switch c {
	case Console2600:
		return "2600"
	case Console7800:
		return "7800"
	}
	return "unknown"
}

// Cartridge decodes sampled addresses for the target console and forwards
// them to the active mapper.
type Cartridge struct {
	console Console

	// lowest address the cartridge responds to. only used by the 7800
	// decode; the 2600 selects on A12 alone
	origin uint16

	mapper mapper.CartMapper
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s: %s", cart.console, cart.mapper.String())
}

// ID returns the mapping scheme of the attached mapper.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Console returns the console class the cartridge was created for.
func (cart *Cartridge) Console() Console {
	return cart.console
}

// Selected returns true if the sampled address is directed at the
// cartridge.
//
// The 2600 has no chip select line other than A12: the cartridge is being
// addressed whenever A12 is high. The 7800 exposes the full address bus and
// the cartridge claims everything from its origin up.
func (cart *Cartridge) Selected(addr uint16) bool {
	if cart.console == Console2600 {
		return addr&0x1000 == 0x1000
	}
	return addr >= cart.origin
}

// Access resolves a read of the sampled address. Must only be called when
// Selected() is true for the address. The returned bool indicates whether
// the byte should be driven onto the data lines.
func (cart *Cartridge) Access(addr uint16) (uint8, bool) {
	return cart.mapper.Access(cart.window(addr))
}

// Listen passes an observed non-driving cycle to the mapper. data is the
// value the console placed on the data lines.
func (cart *Cartridge) Listen(addr uint16, data uint8) {
	cart.mapper.Listen(cart.window(addr), data)
}

// Reset restores power-on state: bank selection and any cartridge RAM.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// NumBanks returns the number of banks in the cartridge image.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.NumBanks()
}

// GetBank returns the currently selected bank.
func (cart *Cartridge) GetBank() int {
	return cart.mapper.GetBank()
}

// window masks a sampled address to the mapper's address window. 2600
// mappers work in the 4K window selected by A12; 7800 mappers see the full
// address.
func (cart *Cartridge) window(addr uint16) uint16 {
	if cart.console == Console2600 {
		return addr & 0x0fff
	}
	return addr
}
