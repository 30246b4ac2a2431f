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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/picocart/cartridge"
	"github.com/jetsetilly/picocart/curated"
	"github.com/jetsetilly/picocart/logger"
)

// Loader is used to specify the cartridge image to respond with. A Loader
// is created with NewLoader() and the image read with Load().
type Loader struct {
	// filename of the cartridge image
	Filename string

	// target console, decided by the file extension
	Console cartridge.Console

	// mapping scheme. "AUTO" means fingerprinting by the cartridge package
	Mapping string

	// sha1 of the file as read. populated by Load()
	Hash string

	// the image data, with any container header removed. populated by
	// Load()
	Data []byte

	// parsed A78 header. nil for plain image files
	Header *A78Header
}

// extensions that force a 2600 mapping scheme.
var mappingExtensions = []string{"2K", "4K", "F8", "F6", "F4", "F8SC", "F6SC", "F4SC"}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument will be used to set the Mapping field unless it is
// "AUTO" or the empty string, in which case the file extension decides.
// Extensions ".BIN", ".ROM" and ".A26" mean a 2600 image with automatic
// fingerprinting; ".A78" means a 7800 image whose header names the mapping;
// an extension matching a 2600 mapping scheme (eg. ".F8") forces that
// scheme.
func NewLoader(filename string, mapping string) (Loader, error) {
	ld := Loader{
		Filename: filename,
		Console:  cartridge.Console2600,
		Mapping:  "AUTO",
	}

	ext := strings.ToUpper(strings.TrimPrefix(path.Ext(filename), "."))
	switch ext {
	case "BIN", "ROM", "A26":
		// automatic fingerprinting
	case "A78":
		ld.Console = cartridge.Console7800
	default:
		forced := false
		for _, m := range mappingExtensions {
			if ext == m {
				ld.Mapping = m
				forced = true
				break
			}
		}
		if !forced {
			return Loader{}, curated.Errorf("loader: unsupported file extension (%s)", ext)
		}
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping != "" && mapping != "AUTO" {
		ld.Mapping = mapping
		switch mapping {
		case "SG", "SGER", "SGEF", "AB":
			ld.Console = cartridge.Console7800
		}
	}

	return ld, nil
}

// Load the cartridge image file. For A78 files the header is parsed and
// stripped, and the mapping scheme taken from the header unless one has
// already been forced.
func (ld *Loader) Load() error {
	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf("loader: %v", err)
	}

	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	if ld.Console == cartridge.Console7800 && ld.Header == nil {
		hdr, err := ParseA78(data)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}
		ld.Header = &hdr
		data = data[a78HeaderSize:]

		if len(data) != hdr.Size {
			return curated.Errorf("loader: %v", curated.Errorf("a78: image size does not match header (%d and %d)", len(data), hdr.Size))
		}

		if ld.Mapping == "AUTO" {
			m, err := hdr.Mapping()
			if err != nil {
				return curated.Errorf("loader: %v", err)
			}
			ld.Mapping = m
		}
	}

	ld.Data = data

	logger.Logf("loader", "%s (%d bytes) [%s]", path.Base(ld.Filename), len(ld.Data), ld.Hash)

	return nil
}
