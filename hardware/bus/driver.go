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

// Driver writes to the data lines and tri-states them when the cartridge is
// not being read. The direction of the data lines is only ever changed on a
// transition between the driving and released states, keeping the common
// case (consecutive reads) to a single masked write per cycle.
type Driver struct {
	port gpio.Port
	lay  pins.Layout

	// whether the data lines are currently configured as outputs
	driving bool
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The data lines start in the released state.
func NewDriver(port gpio.Port, lay pins.Layout) *Driver {
	drv := &Driver{
		port: port,
		lay:  lay,
	}
	drv.port.DirInMasked(lay.DataMask)
	return drv
}

// Drive places data on the data lines. Must only be called for a cycle in
// which the console is reading an address the cartridge responds to.
func (drv *Driver) Drive(data uint8) {
	drv.port.WriteMasked(drv.lay.DataMask, uint32(data)<<drv.lay.DataShift)
	if !drv.driving {
		drv.port.DirOutMasked(drv.lay.DataMask)
		drv.driving = true
	}
}

// Release tri-states the data lines. Safe to call when already released.
func (drv *Driver) Release() {
	if drv.driving {
		drv.port.DirInMasked(drv.lay.DataMask)
		drv.driving = false
	}
}

// Driving returns true if the data lines are currently being driven.
func (drv *Driver) Driving() bool {
	return drv.driving
}
