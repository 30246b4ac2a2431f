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

// Package cartridgeloader reads cartridge image files and works out how the
// image should be mapped. The file extension selects the target console and
// can force a mapping scheme; A78 files carry a header that names the
// mapping explicitly.
//
// All of this happens before the responder loop starts. A Loader that has
// Load()ed successfully hands its data to the cartridge package and plays
// no further part.
package cartridgeloader
