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

package bus

import (
	"github.com/jetsetilly/picocart/hardware/gpio"
	"github.com/jetsetilly/picocart/pins"
)

// Sample is one capture of the bus. Immutable once returned by the Sampler.
type Sample struct {
	// the address asserted by the console
	Addr uint16

	// the level of the data lines at the moment of capture. only meaningful
	// when the data lines are released and the console is driving them
	Data uint8

	// RW line. true means the console is reading and the cartridge is
	// expected to drive the data bus
	Read bool

	// HALT line (active low). true means bus activity is suspended
	Halted bool
}

// Sampler reads the address and control lines. It holds no state of its own
// beyond the port and layout it was created with.
type Sampler struct {
	port gpio.Port
	lay  pins.Layout
}

// NewSampler is the preferred method of initialisation for the Sampler type.
func NewSampler(port gpio.Port, lay pins.Layout) *Sampler {
	return &Sampler{
		port: port,
		lay:  lay,
	}
}

// Sample captures the bus. One bulk read recovers the fifteen low address
// bits in position; A15, RW and HALT are picked out of the same word
// individually. No side effects.
func (smp *Sampler) Sample() Sample {
	raw := smp.port.ReadAll()

	addr := uint16(raw & smp.lay.AddressMask)
	if raw&smp.lay.A15Mask != 0 {
		addr |= 0x8000
	}

	return Sample{
		Addr:   addr,
		Data:   uint8((raw & smp.lay.DataMask) >> smp.lay.DataShift),
		Read:   raw&smp.lay.RWMask != 0,
		Halted: raw&smp.lay.HaltMask == 0,
	}
}
