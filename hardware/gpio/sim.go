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

package gpio

// Sim is an in-memory model of the GPIO bank. It distinguishes the level
// applied to a pad from outside (the console side of the bus) from the level
// we drive onto it, so tri-state behaviour is observable: a line configured
// as input reads the applied level, a line configured as output reads the
// driven level.
type Sim struct {
	// levels applied by the external bus master
	pads uint32

	// levels we are driving
	driven uint32

	// direction. set bit means output
	outputs uint32
}

// NewSim is the preferred method of initialisation for the Sim type.
func NewSim() *Sim {
	return &Sim{}
}

// Init implements the Port interface.
func (p *Sim) Init(mask uint32) {
	p.outputs &^= mask
	p.driven &^= mask
}

// ReadAll implements the Port interface.
func (p *Sim) ReadAll() uint32 {
	return (p.pads &^ p.outputs) | (p.driven & p.outputs)
}

// WriteMasked implements the Port interface.
func (p *Sim) WriteMasked(mask uint32, value uint32) {
	p.driven = (p.driven &^ mask) | (value & mask)
}

// DirOutMasked implements the Port interface.
func (p *Sim) DirOutMasked(mask uint32) {
	p.outputs |= mask
}

// DirInMasked implements the Port interface.
func (p *Sim) DirInMasked(mask uint32) {
	p.outputs &^= mask
}

// The remaining functions are the console side of the simulation and have no
// counterpart in the Port interface.

// Apply sets the level of the masked pads as driven by the external bus
// master.
func (p *Sim) Apply(mask uint32, value uint32) {
	p.pads = (p.pads &^ mask) | (value & mask)
}

// Bus returns the level of every line as seen by the external bus master:
// the driven level for lines configured as output and the applied level for
// lines that are released.
func (p *Sim) Bus() uint32 {
	return (p.pads &^ p.outputs) | (p.driven & p.outputs)
}

// Driving returns the direction mask. A set bit means the corresponding line
// is being driven by us.
func (p *Sim) Driving() uint32 {
	return p.outputs
}
