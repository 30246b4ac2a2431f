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

// The 7800 exposes the full address and RW lines to the cartridge, so unlike
// the 2600 formats the mappers here see real write cycles through Listen().

// flat7800 is an unbanked 7800 image of 8K, 16K, 32K or 48K, mapped so the
// last byte sits at 0xffff.
type flat7800 struct {
	mappingID string
	data      []uint8
	origin    uint16
}

func newFlat7800(data []byte) (*flat7800, error) {
	switch len(data) {
	case 8192:
	case 16384:
	case 32768:
	case 49152:
	default:
		return nil, curated.Errorf("7800: unsupported flat image size (%d)", len(data))
	}

	cart := &flat7800{
		mappingID: fmt.Sprintf("%dK", len(data)/1024),
		data:      data,
		origin:    uint16(0x10000 - len(data)),
	}

	return cart, nil
}

func (cart *flat7800) String() string {
	return fmt.Sprintf("%s [7800 flat] Origin: %#04x", cart.mappingID, cart.origin)
}

// ID implements the mapper.CartMapper interface.
func (cart *flat7800) ID() string {
	return cart.mappingID
}

// Access implements the mapper.CartMapper interface.
func (cart *flat7800) Access(addr uint16) (uint8, bool) {
	if addr < cart.origin {
		return 0xff, false
	}
	return cart.data[addr-cart.origin], true
}

// Listen implements the mapper.CartMapper interface. Flat images have
// nothing to observe.
func (cart *flat7800) Listen(_ uint16, _ uint8) {
}

// Reset implements the mapper.CartMapper interface.
func (cart *flat7800) Reset() {
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *flat7800) NumBanks() int {
	return 1
}

// GetBank implements the mapper.CartMapper interface.
func (cart *flat7800) GetBank() int {
	return 0
}

// supergame is the standard 7800 bank switching format: 16K banks with a
// switched window at 0x8000 to 0xbfff and the last bank fixed at 0xc000 to
// 0xffff. The bank in the window is selected by the value of any write to
// the window.
//
// The 0x4000 to 0x7fff region depends on the variant: the SGER variant puts
// 16K of external RAM there and the SGEF variant fixes the second-to-last
// bank of the image there. Plain SG leaves the region unclaimed.
type supergame struct {
	mappingID string

	banks [][]uint8
	bank  int

	// external RAM. nil when not present
	exram []uint8

	// the second-to-last bank is fixed at 0x4000
	exfix bool
}

const supergameBankSize = 16384

func newSupergame(data []byte, mapping string) (*supergame, error) {
	if len(data)%supergameBankSize != 0 || len(data) < supergameBankSize*2 {
		return nil, curated.Errorf("%s: wrong number of bytes in the cartridge data", mapping)
	}

	cart := &supergame{
		mappingID: mapping,
	}

	numBanks := len(data) / supergameBankSize
	cart.banks = make([][]uint8, numBanks)
	for k := 0; k < numBanks; k++ {
		cart.banks[k] = make([]uint8, supergameBankSize)
		offset := k * supergameBankSize
		copy(cart.banks[k], data[offset:offset+supergameBankSize])
	}

	switch mapping {
	case "SG":
	case "SGER":
		cart.exram = make([]uint8, supergameBankSize)
	case "SGEF":
		cart.exfix = true
	default:
		return nil, curated.Errorf("SG: unsupported variant (%s)", mapping)
	}

	return cart, nil
}

func (cart *supergame) String() string {
	return fmt.Sprintf("%s [supergame] Bank: %d of %d", cart.mappingID, cart.bank, len(cart.banks))
}

// ID implements the mapper.CartMapper interface.
func (cart *supergame) ID() string {
	return cart.mappingID
}

// Access implements the mapper.CartMapper interface.
func (cart *supergame) Access(addr uint16) (uint8, bool) {
	switch {
	case addr >= 0xc000:
		return cart.banks[len(cart.banks)-1][addr-0xc000], true
	case addr >= 0x8000:
		return cart.banks[cart.bank][addr-0x8000], true
	case addr >= 0x4000 && cart.exram != nil:
		return cart.exram[addr-0x4000], true
	case addr >= 0x4000 && cart.exfix:
		return cart.banks[len(cart.banks)-2][addr-0x4000], true
	}
	return 0xff, false
}

// Listen implements the mapper.CartMapper interface.
//
// Writes to the switched window select the bank named by the written value.
// Writes to the RAM area (when present) are stored.
func (cart *supergame) Listen(addr uint16, data uint8) {
	switch {
	case addr >= 0xc000:
		// the fixed bank is not a write target
	case addr >= 0x8000:
		cart.bank = int(data) % len(cart.banks)
	case addr >= 0x4000 && cart.exram != nil:
		cart.exram[addr-0x4000] = data
	}
}

// Reset implements the mapper.CartMapper interface.
func (cart *supergame) Reset() {
	for i := range cart.exram {
		cart.exram[i] = 0
	}
	cart.bank = 0
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *supergame) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *supergame) GetBank() int {
	return cart.bank
}

// absolute is the Activision scheme used by F-18 Hornet and Double Dragon:
// a 64K image of four 16K banks. One of the first two banks appears at
// 0x4000 to 0x7fff, selected by writing 1 or 2 to 0x8000. The last 32K is
// fixed at 0x8000 to 0xffff.
type absolute struct {
	banks [][]uint8

	// the bank at 0x4000. only ever 0 or 1
	bank int
}

func newAbsolute(data []byte) (*absolute, error) {
	if len(data) != supergameBankSize*4 {
		return nil, curated.Errorf("AB: wrong number of bytes in the cartridge data")
	}

	cart := &absolute{}
	cart.banks = make([][]uint8, 4)
	for k := 0; k < 4; k++ {
		cart.banks[k] = make([]uint8, supergameBankSize)
		offset := k * supergameBankSize
		copy(cart.banks[k], data[offset:offset+supergameBankSize])
	}

	return cart, nil
}

func (cart *absolute) String() string {
	return fmt.Sprintf("AB [absolute] Bank: %d", cart.bank)
}

// ID implements the mapper.CartMapper interface.
func (cart *absolute) ID() string {
	return "AB"
}

// Access implements the mapper.CartMapper interface.
func (cart *absolute) Access(addr uint16) (uint8, bool) {
	switch {
	case addr >= 0xc000:
		return cart.banks[3][addr-0xc000], true
	case addr >= 0x8000:
		return cart.banks[2][addr-0x8000], true
	case addr >= 0x4000:
		return cart.banks[cart.bank][addr-0x4000], true
	}
	return 0xff, false
}

// Listen implements the mapper.CartMapper interface.
//
// The bank register sits at 0x8000. A value of 1 selects the first bank and
// a value of 2 the second; other values are ignored.
func (cart *absolute) Listen(addr uint16, data uint8) {
	if addr == 0x8000 {
		switch data {
		case 1:
			cart.bank = 0
		case 2:
			cart.bank = 1
		}
	}
}

// Reset implements the mapper.CartMapper interface.
func (cart *absolute) Reset() {
	cart.bank = 0
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *absolute) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *absolute) GetBank() int {
	return cart.bank
}
