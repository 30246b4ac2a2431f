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

//go:build rp2040

package gpio

import (
	"unsafe"
)

// SIO register block. The SIO bank is the single-cycle I/O path of the
// RP2040 and the only path fast enough for the bus deadlines.
const (
	sioBase   = 0xd0000000
	sioIn     = sioBase + 0x004
	sioOut    = sioBase + 0x010
	sioOutXor = sioBase + 0x01c
	sioOE     = sioBase + 0x020
	sioOESet  = sioBase + 0x024
	sioOEClr  = sioBase + 0x028
)

// IO_BANK0 control registers. only used during Init()
const (
	ioBank0Base = 0x40014000
	ctrlFuncSIO = 5
)

func reg(addr uintptr) *uint32 {
	return (*uint32)(unsafe.Pointer(addr))
}

// sio is a Port backed by the RP2040 SIO registers. Build with tinygo for
// the rp2040 target.
type sio struct{}

// NewPort returns the Port for the build target.
func NewPort() Port {
	return sio{}
}

// Init implements the Port interface.
func (p sio) Init(mask uint32) {
	*reg(sioOEClr) = mask
	for line := 0; line < 32; line++ {
		if mask&(1<<line) != 0 {
			// GPIOx_CTRL. select the SIO function for the line
			*reg(ioBank0Base + uintptr(0x004+line*8)) = ctrlFuncSIO
		}
	}
}

// ReadAll implements the Port interface.
func (p sio) ReadAll() uint32 {
	return *reg(sioIn)
}

// WriteMasked implements the Port interface.
func (p sio) WriteMasked(mask uint32, value uint32) {
	// same xor trick as the pico-sdk gpio_put_masked(): flips exactly the
	// masked bits that differ from value, in one store
	*reg(sioOutXor) = (*reg(sioOut) ^ value) & mask
}

// DirOutMasked implements the Port interface.
func (p sio) DirOutMasked(mask uint32) {
	*reg(sioOESet) = mask
}

// DirInMasked implements the Port interface.
func (p sio) DirInMasked(mask uint32) {
	*reg(sioOEClr) = mask
}
