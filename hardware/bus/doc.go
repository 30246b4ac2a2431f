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

// Package bus reads and drives the physical cartridge bus.
//
// The Sampler captures the address and control lines in a single bulk read
// of the GPIO bank. The Driver places a byte on the data lines with a single
// masked write and tracks whether the lines are currently driven or
// released.
//
// Both types sit on the per-cycle path of the responder loop. Every
// operation here is a handful of register accesses; there is no allocation,
// no locking and no blocking anywhere in the package.
package bus
