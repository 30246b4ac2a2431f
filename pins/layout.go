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

package pins

import (
	"github.com/jetsetilly/picocart/curated"
)

// Assignment lists the physical GPIO line for every cartridge connector
// signal. The zeroth entry of the Address array is A0, etc.
type Assignment struct {
	Address [NumAddress]int
	Data    [NumData]int
	RW      int
	Halt    int
}

// DefaultAssignment is the fixed Otaku-flash wiring of the Pico to the
// cartridge connector.
var DefaultAssignment = Assignment{
	Address: [NumAddress]int{
		A0, A1, A2, A3, A4, A5, A6, A7,
		A8, A9, A10, A11, A12, A13, A14, A15,
	},
	Data: [NumData]int{D0, D1, D2, D3, D4, D5, D6, D7},
	RW:   RW,
	Halt: Halt,
}

// Layout is a validated Assignment together with the derived masks used on
// the fast path. Create with NewLayout(). A Layout is never mutated after
// creation.
type Layout struct {
	Assignment

	// covers A0-A14. one masked read of the GPIO bank recovers the low
	// fifteen address bits already in position
	AddressMask uint32

	// covers D0-D7. one masked write of data<<DataShift places a byte on
	// the data bus
	DataMask  uint32
	DataShift int

	// single line masks
	A15Mask  uint32
	RWMask   uint32
	HaltMask uint32

	// every connector line. used to initialise the GPIO bank
	InitMask uint32
}

// NewLayout validates an Assignment and derives the bulk I/O masks from it.
//
// Validation fails if A0-A14 do not occupy a contiguous ascending run of
// lines starting at line zero, if D0-D7 do not occupy a contiguous ascending
// run, or if any line is assigned to more than one signal.
func NewLayout(pa Assignment) (Layout, error) {
	lay := Layout{Assignment: pa}

	seen := make(map[int]bool)
	assign := func(line int) error {
		if line < 0 || line > 31 {
			return curated.Errorf("pins: line out of range (%d)", line)
		}
		if seen[line] {
			return curated.Errorf("pins: line assigned twice (%d)", line)
		}
		seen[line] = true
		return nil
	}

	// the masked read of the address group relies on A0 being at line zero.
	// without that, reassembling the address would need an additional shift
	if pa.Address[0] != 0 {
		return Layout{}, curated.Errorf("pins: A0 must be line 0 (is %d)", pa.Address[0])
	}

	for i := 0; i < NumAddress-1; i++ {
		if err := assign(pa.Address[i]); err != nil {
			return Layout{}, err
		}
		if i > 0 && pa.Address[i] != pa.Address[i-1]+1 {
			return Layout{}, curated.Errorf("pins: A0-A14 not contiguous (A%d at line %d)", i, pa.Address[i])
		}
		lay.AddressMask |= 1 << pa.Address[i]
	}

	// A15 is the one address line allowed to be anywhere
	if err := assign(pa.Address[NumAddress-1]); err != nil {
		return Layout{}, err
	}
	lay.A15Mask = 1 << pa.Address[NumAddress-1]

	for i := 0; i < NumData; i++ {
		if err := assign(pa.Data[i]); err != nil {
			return Layout{}, err
		}
		if i > 0 && pa.Data[i] != pa.Data[i-1]+1 {
			return Layout{}, curated.Errorf("pins: D0-D7 not contiguous (D%d at line %d)", i, pa.Data[i])
		}
		lay.DataMask |= 1 << pa.Data[i]
	}
	lay.DataShift = pa.Data[0]

	if err := assign(pa.RW); err != nil {
		return Layout{}, err
	}
	lay.RWMask = 1 << pa.RW

	if err := assign(pa.Halt); err != nil {
		return Layout{}, err
	}
	lay.HaltMask = 1 << pa.Halt

	lay.InitMask = lay.AddressMask | lay.A15Mask | lay.DataMask | lay.RWMask | lay.HaltMask

	return lay, nil
}

// Default is the validated Layout for DefaultAssignment.
var Default = mustLayout(DefaultAssignment)

func mustLayout(pa Assignment) Layout {
	lay, err := NewLayout(pa)
	if err != nil {
		panic(err)
	}
	return lay
}
