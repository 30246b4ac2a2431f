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

// Package cartridge owns the cartridge image and answers the address
// lookups made by the responder loop. The Cartridge type decodes the
// sampled address for the target console (2600 or 7800) and defers to a
// mapper implementation for the byte itself.
//
// Bank switching state is the only mutable state in the package and it is
// only ever changed from inside Access() and Listen(), on the responder's
// goroutine. No locking is needed or used.
//
// The supported mapping schemes are those of the cartridge types the
// hardware can service: for the 2600, plain 2K and 4K images and the
// standard Atari bank switching formats F8, F6 and F4, each with the
// optional superchip RAM; for the 7800, flat images up to 48K, the
// SuperGame format and its external RAM and fixed bank variants, and the
// Activision absolute format.
package cartridge
