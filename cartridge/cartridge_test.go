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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/picocart/cartridge"
	"github.com/jetsetilly/picocart/test"
)

// bankedImage builds an image of numBanks banks in which every byte of bank
// k has the value k+1, making it obvious which bank an access resolved to.
func bankedImage(bankSize int, numBanks int) []byte {
	data := make([]byte, bankSize*numBanks)
	for k := 0; k < numBanks; k++ {
		for i := 0; i < bankSize; i++ {
			data[k*bankSize+i] = byte(k + 1)
		}
	}
	return data
}

func TestFingerprint2600(t *testing.T) {
	for _, d := range []struct {
		size int
		id   string
	}{
		{2048, "2k"},
		{4096, "4k"},
		{8192, "F8"},
		{16384, "F6"},
		{32768, "F4"},
	} {
		// a non-uniform image. a uniform leading area would be detected as
		// superchip RAM
		data := make([]byte, d.size)
		for i := range data {
			data[i] = byte(i)
		}
		cart, err := cartridge.NewCartridge(cartridge.Console2600, "AUTO", data)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, cart.ID(), d.id)
	}

	// sizes with no corresponding format are a load-time error
	_, err := cartridge.NewCartridge(cartridge.Console2600, "AUTO", make([]byte, 1000))
	test.ExpectFailure(t, err)

	_, err = cartridge.NewCartridge(cartridge.Console2600, "AUTO", nil)
	test.ExpectFailure(t, err)

	// forced mapping with the wrong amount of data is also an error
	_, err = cartridge.NewCartridge(cartridge.Console2600, "F8", make([]byte, 4096))
	test.ExpectFailure(t, err)
}

func TestAtari4k(t *testing.T) {
	data := make([]byte, 4096)
	data[0x0010] = 0xde
	data[0x0fff] = 0xad
	// the image must not look like it has an empty RAM area
	for i := 0; i < 256; i++ {
		data[i] |= byte(i)
	}

	cart, err := cartridge.NewCartridge(cartridge.Console2600, "4K", data)
	test.DemandSuccess(t, err)

	// selection is on A12 alone
	test.ExpectSuccess(t, cart.Selected(0x1010))
	test.ExpectFailure(t, cart.Selected(0x0010))

	v, drive := cart.Access(0x1fff)
	test.ExpectSuccess(t, drive)
	test.ExpectEquality(t, v, 0xad)

	// resolution is deterministic and pure for a plain image
	v2, _ := cart.Access(0x1fff)
	test.ExpectEquality(t, v2, v)
}

func TestAtari2kMirror(t *testing.T) {
	data := bankedImage(2048, 1)
	data[0x123] = 0x42

	cart, err := cartridge.NewCartridge(cartridge.Console2600, "2K", data)
	test.DemandSuccess(t, err)

	// the 2K image appears in both halves of the 4K window
	v, _ := cart.Access(0x1123)
	test.ExpectEquality(t, v, 0x42)
	v, _ = cart.Access(0x1923)
	test.ExpectEquality(t, v, 0x42)
}

func TestF8Bankswitch(t *testing.T) {
	data := bankedImage(4096, 2)
	cart, err := cartridge.NewCartridge(cartridge.Console2600, "F8", data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.NumBanks(), 2)
	test.ExpectEquality(t, cart.GetBank(), 0)

	// reads outside the hotspot range do not change the bank
	v, _ := cart.Access(0x1010)
	test.ExpectEquality(t, v, 1)
	test.ExpectEquality(t, cart.GetBank(), 0)

	// access to the 0x1ff9 hotspot selects bank 1. subsequent reads resolve
	// in the new bank
	cart.Access(0x1ff9)
	test.ExpectEquality(t, cart.GetBank(), 1)
	v, _ = cart.Access(0x1010)
	test.ExpectEquality(t, v, 2)

	// and back again
	cart.Access(0x1ff8)
	test.ExpectEquality(t, cart.GetBank(), 0)
	v, _ = cart.Access(0x1010)
	test.ExpectEquality(t, v, 1)
}

func TestF6Bankswitch(t *testing.T) {
	data := bankedImage(4096, 4)
	cart, err := cartridge.NewCartridge(cartridge.Console2600, "F6", data)
	test.DemandSuccess(t, err)

	for bank := 0; bank < 4; bank++ {
		cart.Access(uint16(0x1ff6 + bank))
		test.ExpectEquality(t, cart.GetBank(), bank)
		v, _ := cart.Access(0x1010)
		test.ExpectEquality(t, v, uint8(bank+1))
	}
}

func TestSuperchip(t *testing.T) {
	data := bankedImage(4096, 2)
	cart, err := cartridge.NewCartridge(cartridge.Console2600, "F8SC", data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "F8SC")

	// the write port must never be driven by the cartridge
	_, drive := cart.Access(0x1020)
	test.ExpectFailure(t, drive)

	// a write lands in RAM through Listen and can be read back through the
	// read port 128 bytes up
	cart.Listen(0x1020, 0x99)
	v, drive := cart.Access(0x10a0)
	test.ExpectSuccess(t, drive)
	test.ExpectEquality(t, v, 0x99)

	// RAM is cleared on reset
	cart.Reset()
	v, _ = cart.Access(0x10a0)
	test.ExpectEquality(t, v, 0x00)
}

func TestSuperchipAutoDetect(t *testing.T) {
	// an 8K image with an empty leading area fingerprints as F8 with
	// superchip
	data := make([]byte, 8192)
	for i := 256; i < len(data); i++ {
		data[i] = byte(i)
	}

	cart, err := cartridge.NewCartridge(cartridge.Console2600, "AUTO", data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "F8SC")
}

func TestFlat7800(t *testing.T) {
	data := make([]byte, 49152)
	data[0] = 0x11
	data[len(data)-1] = 0x22

	cart, err := cartridge.NewCartridge(cartridge.Console7800, "AUTO", data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "48K")

	// a 48K image occupies 0x4000 and up
	test.ExpectSuccess(t, cart.Selected(0x4000))
	test.ExpectFailure(t, cart.Selected(0x3fff))

	v, drive := cart.Access(0x4000)
	test.ExpectSuccess(t, drive)
	test.ExpectEquality(t, v, 0x11)

	v, _ = cart.Access(0xffff)
	test.ExpectEquality(t, v, 0x22)
}

func TestSupergame(t *testing.T) {
	data := bankedImage(16384, 4)
	cart, err := cartridge.NewCartridge(cartridge.Console7800, "SG", data)
	test.DemandSuccess(t, err)

	// the fixed region always resolves in the last bank
	v, drive := cart.Access(0xc000)
	test.ExpectSuccess(t, drive)
	test.ExpectEquality(t, v, 4)

	// the switched window starts in bank 0
	v, _ = cart.Access(0x8000)
	test.ExpectEquality(t, v, 1)

	// a write of 2 to the window selects bank 2
	cart.Listen(0x8000, 2)
	test.ExpectEquality(t, cart.GetBank(), 2)
	v, _ = cart.Access(0x8000)
	test.ExpectEquality(t, v, 3)

	// the fixed region is unaffected
	v, _ = cart.Access(0xffff)
	test.ExpectEquality(t, v, 4)

	// without external RAM the cartridge does not claim 0x4000
	test.ExpectFailure(t, cart.Selected(0x4000))
}

func TestSupergameExfix(t *testing.T) {
	data := bankedImage(16384, 4)
	cart, err := cartridge.NewCartridge(cartridge.Console7800, "SGEF", data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "SGEF")

	// the second-to-last bank is fixed at 0x4000
	test.ExpectSuccess(t, cart.Selected(0x4000))
	v, drive := cart.Access(0x4000)
	test.ExpectSuccess(t, drive)
	test.ExpectEquality(t, v, 3)

	// switching the 0x8000 window does not move the fixed regions
	cart.Listen(0x8000, 1)
	v, _ = cart.Access(0x8000)
	test.ExpectEquality(t, v, 2)
	v, _ = cart.Access(0x4000)
	test.ExpectEquality(t, v, 3)
	v, _ = cart.Access(0xffff)
	test.ExpectEquality(t, v, 4)

	// the fixed bank is ROM. a write there has no effect
	cart.Listen(0x4000, 0x55)
	v, _ = cart.Access(0x4000)
	test.ExpectEquality(t, v, 3)
}

func TestAbsolute(t *testing.T) {
	data := bankedImage(16384, 4)
	cart, err := cartridge.NewCartridge(cartridge.Console7800, "AB", data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "AB")

	// the last 32K is fixed
	v, drive := cart.Access(0x8000)
	test.ExpectSuccess(t, drive)
	test.ExpectEquality(t, v, 3)
	v, _ = cart.Access(0xc000)
	test.ExpectEquality(t, v, 4)

	// the switched region starts in the first bank
	v, _ = cart.Access(0x4000)
	test.ExpectEquality(t, v, 1)

	// writing 2 to the bank register selects the second bank
	cart.Listen(0x8000, 2)
	test.ExpectEquality(t, cart.GetBank(), 1)
	v, _ = cart.Access(0x4000)
	test.ExpectEquality(t, v, 2)

	// values other than 1 and 2 are ignored, as are writes elsewhere
	cart.Listen(0x8000, 3)
	test.ExpectEquality(t, cart.GetBank(), 1)
	cart.Listen(0x9000, 1)
	test.ExpectEquality(t, cart.GetBank(), 1)

	// and back to the first bank
	cart.Listen(0x8000, 1)
	v, _ = cart.Access(0x4000)
	test.ExpectEquality(t, v, 1)

	// an absolute image is always 64K
	_, err = cartridge.NewCartridge(cartridge.Console7800, "AB", bankedImage(16384, 2))
	test.ExpectFailure(t, err)
}

func TestSupergameRAM(t *testing.T) {
	data := bankedImage(16384, 2)
	cart, err := cartridge.NewCartridge(cartridge.Console7800, "SGER", data)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cart.Selected(0x4000))

	cart.Listen(0x5000, 0x77)
	v, drive := cart.Access(0x5000)
	test.ExpectSuccess(t, drive)
	test.ExpectEquality(t, v, 0x77)

	cart.Reset()
	v, _ = cart.Access(0x5000)
	test.ExpectEquality(t, v, 0x00)
}
