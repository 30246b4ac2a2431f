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

package gpio_test

import (
	"testing"

	"github.com/jetsetilly/picocart/hardware/gpio"
	"github.com/jetsetilly/picocart/test"
)

func TestSimDirection(t *testing.T) {
	p := gpio.NewSim()
	p.Init(0xffffffff)

	// a released line reads the externally applied level
	p.Apply(0x0000000f, 0x0000000a)
	test.ExpectEquality(t, p.ReadAll(), 0x0000000a)

	// a driven value is invisible while the line is an input
	p.WriteMasked(0x000000f0, 0x00000050)
	test.ExpectEquality(t, p.ReadAll(), 0x0000000a)
	test.ExpectEquality(t, p.Bus(), 0x0000000a)

	// and visible once the line is an output
	p.DirOutMasked(0x000000f0)
	test.ExpectEquality(t, p.ReadAll(), 0x0000005a)
	test.ExpectEquality(t, p.Bus(), 0x0000005a)

	// releasing the line hides the driven value again. nothing sticks
	p.DirInMasked(0x000000f0)
	test.ExpectEquality(t, p.ReadAll(), 0x0000000a)
	test.ExpectEquality(t, p.Bus(), 0x0000000a)
}

func TestSimWriteMasked(t *testing.T) {
	p := gpio.NewSim()
	p.Init(0xffffffff)
	p.DirOutMasked(0x00000ff0)

	// writes only affect the masked lines
	p.WriteMasked(0x00000ff0, 0xffffffff)
	test.ExpectEquality(t, p.Bus(), 0x00000ff0)

	p.WriteMasked(0x00000f00, 0x00000000)
	test.ExpectEquality(t, p.Bus(), 0x000000f0)
}
