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

	"github.com/jetsetilly/picocart/curated"
)

// The standard Atari 2600 formats.
//
// 2K and 4K images are not bank switched; a 2K image appears twice in the 4K
// window. F8 is the standard way of implementing 8K: two 4K banks selected
// by accessing 0xFF8 or 0xFF9 (window relative). F6 extends the same idea to
// four banks (0xFF6 to 0xFF9) and F4 to eight banks (0xFF4 to 0xFFB).
//
// Any of the bank switched formats can carry the "superchip": 128 bytes of
// RAM at the bottom of the window. The first 128 bytes are the write port
// and the second 128 bytes are the read port. The 2600 cartridge connector
// has no RW line so the port an access lands in is the only way to tell a
// read from a write.

type atari struct {
	mappingID   string
	description string

	// 2k and 4k images conceptually have one bank
	bankSize int
	banks    [][]uint8

	// the currently selected bank
	bank int

	// superchip RAM. nil when not present
	ram []uint8
}

const superchipRAMsize = 128

// look for an empty area (representing RAM) at the start of the image. some
// images use 0xff rather than 0x00 to fill the empty space, so only
// uniformity is checked.
func hasEmptyArea(d []uint8) bool {
	b := d[0]
	for i := 1; i < superchipRAMsize; i++ {
		if d[i] != b {
			return false
		}
	}
	return true
}

func (cart *atari) String() string {
	if len(cart.banks) == 1 {
		return fmt.Sprintf("%s [%s]", cart.mappingID, cart.description)
	}
	return fmt.Sprintf("%s [%s] Bank: %d", cart.mappingID, cart.description, cart.bank)
}

// ID implements the mapper.CartMapper interface.
func (cart *atari) ID() string {
	return cart.mappingID
}

// Reset implements the mapper.CartMapper interface.
//
// The original hardware powers up with bank zero selected.
func (cart *atari) Reset() {
	for i := range cart.ram {
		cart.ram[i] = 0
	}
	cart.bank = 0
}

// GetBank implements the mapper.CartMapper interface.
func (cart *atari) GetBank() int {
	return cart.bank
}

// Listen implements the mapper.CartMapper interface.
//
// The only writes a 2600 cartridge can observe are those landing in the
// superchip write port.
func (cart *atari) Listen(addr uint16, data uint8) {
	if cart.ram != nil && addr <= 0x7f {
		cart.ram[addr] = data
	}
}

// AddSuperchip implements the mapper.OptionalSuperchip interface.
func (cart *atari) AddSuperchip() {
	if cart.ram == nil {
		cart.ram = make([]uint8, superchipRAMsize)
		cart.mappingID += "SC"
		cart.description += " (superchip)"
	}
}

// ramAccess handles the superchip port addresses. The final return value is
// false if the address is not a superchip access (or there is no superchip),
// in which case the caller resolves the address as ROM.
func (cart *atari) ramAccess(addr uint16) (uint8, bool, bool) {
	if cart.ram == nil || addr > 0xff {
		return 0, false, false
	}
	if addr <= 0x7f {
		// write port. the console is about to drive the data lines so the
		// cartridge must not
		return 0, false, true
	}
	return cart.ram[addr-superchipRAMsize], true, true
}

// allocate and fill the bank array from the image data.
func (cart *atari) fillBanks(data []byte, numBanks int) error {
	if len(data) != cart.bankSize*numBanks {
		return curated.Errorf("%s: wrong number of bytes in the cartridge data", cart.mappingID)
	}

	cart.banks = make([][]uint8, numBanks)
	for k := 0; k < numBanks; k++ {
		cart.banks[k] = make([]uint8, cart.bankSize)
		offset := k * cart.bankSize
		copy(cart.banks[k], data[offset:offset+cart.bankSize])
	}

	return nil
}

// atari2k is the half-size cartridge of 2048 bytes. the image is mirrored
// into both halves of the 4K window.
type atari2k struct {
	atari
}

func newAtari2k(data []byte) (*atari2k, error) {
	cart := &atari2k{}
	cart.bankSize = 2048
	cart.mappingID = "2k"
	cart.description = "atari 2k"

	if err := cart.fillBanks(data, 1); err != nil {
		return nil, err
	}

	return cart, nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *atari2k) NumBanks() int {
	return 1
}

// Access implements the mapper.CartMapper interface.
func (cart *atari2k) Access(addr uint16) (uint8, bool) {
	if data, drive, ok := cart.ramAccess(addr); ok {
		return data, drive
	}
	return cart.banks[0][addr&0x07ff], true
}

// atari4k is the original and most straightforward format.
type atari4k struct {
	atari
}

func newAtari4k(data []byte) (*atari4k, error) {
	cart := &atari4k{}
	cart.bankSize = 4096
	cart.mappingID = "4k"
	cart.description = "atari 4k"

	if err := cart.fillBanks(data, 1); err != nil {
		return nil, err
	}

	return cart, nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *atari4k) NumBanks() int {
	return 1
}

// Access implements the mapper.CartMapper interface.
func (cart *atari4k) Access(addr uint16) (uint8, bool) {
	if data, drive, ok := cart.ramAccess(addr); ok {
		return data, drive
	}
	return cart.banks[0][addr], true
}

// atari8k is the F8 format: two 4K banks.
type atari8k struct {
	atari
}

func newAtari8k(data []byte) (*atari8k, error) {
	cart := &atari8k{}
	cart.bankSize = 4096
	cart.mappingID = "F8"
	cart.description = "atari 8k"

	if err := cart.fillBanks(data, cart.NumBanks()); err != nil {
		return nil, err
	}

	return cart, nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *atari8k) NumBanks() int {
	return 2
}

// Access implements the mapper.CartMapper interface.
func (cart *atari8k) Access(addr uint16) (uint8, bool) {
	if data, drive, ok := cart.ramAccess(addr); ok {
		return data, drive
	}
	cart.bankswitch(addr)
	return cart.banks[cart.bank][addr], true
}

// bankswitch on hotspot access.
func (cart *atari8k) bankswitch(addr uint16) {
	if addr >= 0x0ff8 && addr <= 0x0ff9 {
		cart.bank = int(addr - 0x0ff8)
	}
}

// atari16k is the F6 format: four 4K banks.
type atari16k struct {
	atari
}

func newAtari16k(data []byte) (*atari16k, error) {
	cart := &atari16k{}
	cart.bankSize = 4096
	cart.mappingID = "F6"
	cart.description = "atari 16k"

	if err := cart.fillBanks(data, cart.NumBanks()); err != nil {
		return nil, err
	}

	return cart, nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *atari16k) NumBanks() int {
	return 4
}

// Access implements the mapper.CartMapper interface.
func (cart *atari16k) Access(addr uint16) (uint8, bool) {
	if data, drive, ok := cart.ramAccess(addr); ok {
		return data, drive
	}
	cart.bankswitch(addr)
	return cart.banks[cart.bank][addr], true
}

// bankswitch on hotspot access.
func (cart *atari16k) bankswitch(addr uint16) {
	if addr >= 0x0ff6 && addr <= 0x0ff9 {
		cart.bank = int(addr - 0x0ff6)
	}
}

// atari32k is the F4 format: eight 4K banks.
type atari32k struct {
	atari
}

func newAtari32k(data []byte) (*atari32k, error) {
	cart := &atari32k{}
	cart.bankSize = 4096
	cart.mappingID = "F4"
	cart.description = "atari 32k"

	if err := cart.fillBanks(data, cart.NumBanks()); err != nil {
		return nil, err
	}

	return cart, nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *atari32k) NumBanks() int {
	return 8
}

// Access implements the mapper.CartMapper interface.
func (cart *atari32k) Access(addr uint16) (uint8, bool) {
	if data, drive, ok := cart.ramAccess(addr); ok {
		return data, drive
	}
	cart.bankswitch(addr)
	return cart.banks[cart.bank][addr], true
}

// bankswitch on hotspot access.
func (cart *atari32k) bankswitch(addr uint16) {
	if addr >= 0x0ff4 && addr <= 0x0ffb {
		cart.bank = int(addr - 0x0ff4)
	}
}
