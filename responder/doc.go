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

// Package responder runs the cartridge side of the console bus.
//
// The console is the bus master. The responder never initiates anything: it
// polls the address and control lines, resolves the address against the
// cartridge image and either drives the data lines with the result or keeps
// them released. One iteration of the loop must fit inside the console's
// address-valid-to-data-required window, which is a hardware deadline of
// some tens of nanoseconds. There is no way to detect a missed deadline in
// software; the loop is kept to a handful of register operations and an
// array index so that misses are structurally improbable.
//
// Accordingly, nothing in the per-cycle path blocks, allocates, locks or
// logs. The only mutable state reached from the loop is the cartridge's
// bank selection, which is read and written on this goroutine alone.
package responder
