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
	"strings"

	"github.com/jetsetilly/picocart/cartridge/mapper"
	"github.com/jetsetilly/picocart/curated"
	"github.com/jetsetilly/picocart/logger"
)

// NewCartridge creates a Cartridge from image data. The mapping argument
// forces a mapping scheme; the empty string or "AUTO" selects fingerprinting
// by image size.
//
// Creation is the only point at which a cartridge can fail. Once a
// Cartridge exists every address lookup succeeds by construction.
func NewCartridge(console Console, mapping string, data []byte) (*Cartridge, error) {
	if len(data) == 0 {
		return nil, curated.Errorf("cartridge: empty image")
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping == "" {
		mapping = "AUTO"
	}

	cart := &Cartridge{console: console}

	var err error
	switch console {
	case Console2600:
		err = cart.fingerprint2600(mapping, data)
	case Console7800:
		err = cart.fingerprint7800(mapping, data)
	default:
		err = curated.Errorf("cartridge: unsupported console (%v)", console)
	}
	if err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}

	cart.Reset()
	logger.Logf("cartridge", "attached %s", cart.String())

	return cart, nil
}

func (cart *Cartridge) fingerprint2600(mapping string, data []byte) error {
	if mapping == "AUTO" {
		switch len(data) {
		case 2048:
			mapping = "2K"
		case 4096:
			mapping = "4K"
		case 8192:
			mapping = "F8"
		case 16384:
			mapping = "F6"
		case 32768:
			mapping = "F4"
		default:
			return curated.Errorf("unsupported image size (%d)", len(data))
		}

		// images built for a superchip cartridge leave the RAM area empty
		if hasEmptyArea(data) {
			mapping += "SC"
		}
	}

	superchip := strings.HasSuffix(mapping, "SC")
	mapping = strings.TrimSuffix(mapping, "SC")

	var m mapper.CartMapper
	var err error

	switch mapping {
	case "2K":
		m, err = newAtari2k(data)
	case "4K":
		m, err = newAtari4k(data)
	case "F8":
		m, err = newAtari8k(data)
	case "F6":
		m, err = newAtari16k(data)
	case "F4":
		m, err = newAtari32k(data)
	default:
		return curated.Errorf("unsupported mapping (%s)", mapping)
	}
	if err != nil {
		return err
	}

	if superchip {
		m.(mapper.OptionalSuperchip).AddSuperchip()
	}

	cart.mapper = m

	return nil
}

func (cart *Cartridge) fingerprint7800(mapping string, data []byte) error {
	if mapping == "AUTO" {
		switch len(data) {
		case 8192, 16384, 32768, 49152:
			mapping = "FLAT"
		default:
			return curated.Errorf("unsupported image size (%d)", len(data))
		}
	}

	switch mapping {
	case "FLAT", "8K", "16K", "32K", "48K":
		m, err := newFlat7800(data)
		if err != nil {
			return err
		}
		cart.mapper = m
		cart.origin = m.origin
	case "SG", "SGER", "SGEF":
		m, err := newSupergame(data, mapping)
		if err != nil {
			return err
		}
		cart.mapper = m
		if m.exram != nil || m.exfix {
			cart.origin = 0x4000
		} else {
			cart.origin = 0x8000
		}
	case "AB":
		m, err := newAbsolute(data)
		if err != nil {
			return err
		}
		cart.mapper = m
		cart.origin = 0x4000
	default:
		return curated.Errorf("unsupported mapping (%s)", mapping)
	}

	return nil
}
