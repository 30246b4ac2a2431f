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

package cartridgeloader_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/picocart/cartridge"
	"github.com/jetsetilly/picocart/cartridgeloader"
	"github.com/jetsetilly/picocart/test"
)

func TestNewLoader(t *testing.T) {
	ld, err := cartridgeloader.NewLoader("game.bin", "AUTO")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.Console, cartridge.Console2600)
	test.ExpectEquality(t, ld.Mapping, "AUTO")

	// extension forces the mapping
	ld, err = cartridgeloader.NewLoader("game.f8sc", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.Mapping, "F8SC")

	// explicit mapping wins over the extension
	ld, err = cartridgeloader.NewLoader("game.bin", "F6")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.Mapping, "F6")

	// a78 selects the 7800
	ld, err = cartridgeloader.NewLoader("game.a78", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.Console, cartridge.Console7800)

	_, err = cartridgeloader.NewLoader("game.wav", "")
	test.ExpectFailure(t, err)
}

func TestLoad2600(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.bin")
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0644))

	ld, err := cartridgeloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 4096)
	test.ExpectEquality(t, len(ld.Hash), 40)

	_, err = cartridge.NewCartridge(ld.Console, ld.Mapping, ld.Data)
	test.ExpectSuccess(t, err)
}

// a78File builds a minimal A78 file: header plus patterned image data.
func a78File(size int, typeA uint8, typeB uint8) []byte {
	data := make([]byte, 128+size)
	data[0] = 3
	copy(data[17:49], "test cartridge")
	binary.BigEndian.PutUint32(data[49:53], uint32(size))
	data[53] = typeA
	data[54] = typeB
	data[55] = 1
	for i := 128; i < len(data); i++ {
		data[i] = byte(i)
	}
	return data
}

func TestLoadA78(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.a78")
	test.DemandSuccess(t, os.WriteFile(fn, a78File(16384, 0, 0), 0644))

	ld, err := cartridgeloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ld.Load())

	// header is stripped from the data
	test.ExpectEquality(t, len(ld.Data), 16384)
	test.ExpectEquality(t, ld.Mapping, "FLAT")
	test.DemandSuccess(t, ld.Header != nil)
	test.ExpectEquality(t, ld.Header.Name, "test cartridge")
	test.ExpectEquality(t, ld.Header.Controller1, "ProLine")
	test.ExpectEquality(t, ld.Header.Video, "NTSC")

	cart, err := cartridge.NewCartridge(ld.Console, ld.Mapping, ld.Data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "16K")
}

func TestLoadA78Supergame(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.a78")

	// typeB 0x02 is SUPER, 0x04 is EXRAM
	test.DemandSuccess(t, os.WriteFile(fn, a78File(65536, 0, 0x02|0x04), 0644))

	ld, err := cartridgeloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Mapping, "SGER")

	cart, err := cartridge.NewCartridge(ld.Console, ld.Mapping, ld.Data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.NumBanks(), 4)
}

func TestLoadA78Exfix(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.a78")

	// typeB 0x02 is SUPER, 0x10 is EXFIX
	test.DemandSuccess(t, os.WriteFile(fn, a78File(65536, 0, 0x02|0x10), 0644))

	ld, err := cartridgeloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Mapping, "SGEF")

	cart, err := cartridge.NewCartridge(ld.Console, ld.Mapping, ld.Data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "SGEF")
	test.ExpectSuccess(t, cart.Selected(0x4000))
}

func TestLoadA78Absolute(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.a78")

	// typeA 0x02 is the absolute format
	test.DemandSuccess(t, os.WriteFile(fn, a78File(65536, 0x02, 0), 0644))

	ld, err := cartridgeloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Mapping, "AB")

	cart, err := cartridge.NewCartridge(ld.Console, ld.Mapping, ld.Data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "AB")
}

func TestLoadA78Unsupported(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.a78")

	// typeA 0x20 is the bankset format, which the hardware cannot service
	test.DemandSuccess(t, os.WriteFile(fn, a78File(16384, 0x20, 0), 0644))

	ld, err := cartridgeloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ld.Load())

	// EXRAM and EXFIX both claim the 0x4000 region. the combination is
	// rejected
	test.DemandSuccess(t, os.WriteFile(fn, a78File(65536, 0, 0x02|0x04|0x10), 0644))
	ld, err = cartridgeloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ld.Load())
}

func TestLoadShortA78(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.a78")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 64), 0644))

	ld, err := cartridgeloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ld.Load())
}
