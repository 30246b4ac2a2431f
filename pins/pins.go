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

// GPIO line numbers for the cartridge connector signals.
//
// A0-A14 read the low address bits from the console. A15 completes the
// address but lives on a non-contiguous line. RW is the read/write signal
// from the console and HALT is the synchronisation signal (7800 only).
// D0-D7 carry data to and from the console.
const (
	A0 = iota
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	A8
	A9
	A10
	A11
	A12
	A13
	A14
	D0 // GPIO 15
	D1
	D2
	D3
	D4
	D5
	D6
	D7 // GPIO 22
)

const (
	RW   = 25
	A15  = 26
	Halt = 27
)

// NumAddress is the width of the address bus in physical lines.
const NumAddress = 16

// NumData is the width of the data bus in physical lines.
const NumData = 8
