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

package responder

import (
	"github.com/jetsetilly/picocart/cartridge"
	"github.com/jetsetilly/picocart/hardware/bus"
	"github.com/jetsetilly/picocart/hardware/gpio"
	"github.com/jetsetilly/picocart/logger"
	"github.com/jetsetilly/picocart/pins"
)

// The continueCheck function passed to Run() is called once per bus cycle
// and so must itself be cheap. The PerformanceBrake constant is a standard
// value for filtering expensive checks down to every n cycles:
//
//	brake++
//	if brake >= responder.PerformanceBrake {
//		brake = 0
//		if endCondition {
//			return false
//		}
//	}
//	return true
const PerformanceBrake = 100

// Responder coordinates the Sampler, the Cartridge and the Driver. Create
// with NewResponder() and start with Run(); all methods must be called from
// the same goroutine.
type Responder struct {
	smp  *bus.Sampler
	drv  *bus.Driver
	cart *cartridge.Cartridge

	// whether the HALT line is honoured. only meaningful for the 7800;
	// the 2600 does not wire the line
	useHalt bool

	// whether the RW line distinguishes read cycles from write cycles. on
	// the 2600 every cycle is treated as a read and write ports are
	// recognised by address alone
	useRW bool

	// number of bus cycles serviced since creation
	cycles uint64
}

// NewResponder initialises the GPIO bank for the cartridge connector and
// assembles the responder around the given cartridge. The data lines start
// released.
func NewResponder(port gpio.Port, lay pins.Layout, cart *cartridge.Cartridge) *Responder {
	port.Init(lay.InitMask)
	port.DirInMasked(lay.InitMask)

	rsp := &Responder{
		smp:     bus.NewSampler(port, lay),
		drv:     bus.NewDriver(port, lay),
		cart:    cart,
		useHalt: cart.Console() == cartridge.Console7800,
		useRW:   cart.Console() == cartridge.Console7800,
	}

	logger.Logf("responder", "ready: %s", cart.String())

	return rsp
}

// Step services one bus cycle: sample, resolve, drive or release.
//
// The body is a transliteration of the state machine Idle -> Sampling ->
// Resolving -> Driving. The states are not reified; each call passes
// through them in order and the Driving state persists between calls in the
// Driver's latch, so consecutive reads of the same or a new address cost
// one sample, one lookup and one masked write.
func (rsp *Responder) Step() {
	s := rsp.smp.Sample()
	rsp.cycles++

	// synchronisation point. the console uses HALT around its own bus
	// transitions; touching the data lines now would glitch the bus
	if rsp.useHalt && s.Halted {
		return
	}

	if !rsp.cart.Selected(s.Addr) {
		rsp.drv.Release()
		return
	}

	// a write cycle. release before observing: the console owns the data
	// lines for the rest of the cycle
	if rsp.useRW && !s.Read {
		rsp.drv.Release()
		s = rsp.smp.Sample()
		rsp.cart.Listen(s.Addr, s.Data)
		return
	}

	data, drive := rsp.cart.Access(s.Addr)
	if !drive {
		// a read of a write port. same handling as an explicit write cycle
		rsp.drv.Release()
		s = rsp.smp.Sample()
		rsp.cart.Listen(s.Addr, s.Data)
		return
	}

	rsp.drv.Drive(data)
}

// Run services the bus until continueCheck returns false. A nil
// continueCheck runs forever, which is the normal mode on hardware: the
// loop ends at power-off and not before.
func (rsp *Responder) Run(continueCheck func() bool) {
	if continueCheck == nil {
		for {
			rsp.Step()
		}
	}

	for continueCheck() {
		rsp.Step()
	}
}

// Cycles returns the number of bus cycles serviced. Not called from the
// loop itself; intended for instrumentation after or outside Run().
func (rsp *Responder) Cycles() uint64 {
	return rsp.cycles
}

// Driving returns true if the data lines are currently driven. For
// instrumentation and tests.
func (rsp *Responder) Driving() bool {
	return rsp.drv.Driving()
}
