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

// Package pins defines the mapping of the cartridge connector signals to the
// physical GPIO lines of the board.
//
// Do not change the pin assignments. The bus package recovers the fifteen
// low address bits with a single masked read and places a byte on the data
// bus with a single masked write. Both operations require A0-A14 and D0-D7
// to occupy contiguous ascending GPIO positions. The Layout type validates
// those requirements once, at startup, so the per-cycle path never has to.
package pins
