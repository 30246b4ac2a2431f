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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/picocart/cartridge"
	"github.com/jetsetilly/picocart/cartridgeloader"
	"github.com/jetsetilly/picocart/dump"
	"github.com/jetsetilly/picocart/hardware/gpio"
	"github.com/jetsetilly/picocart/logger"
	"github.com/jetsetilly/picocart/pins"
	"github.com/jetsetilly/picocart/responder"
	"github.com/jetsetilly/picocart/statsview"
	"github.com/jetsetilly/picocart/version"
)

const usage = `usage: picocart [mode] [flags] cartridge

modes:
  run      respond on the cartridge bus (default mode)
  info     show cartridge image information
  dump     show how the image has been mapped
  version  show version information
`

func main() {
	// echo the log as it accrues when the program is attached to a
	// terminal. otherwise entries are only written out on error
	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetEcho(os.Stdout, false)
	}

	args := os.Args[1:]
	mode := "RUN"
	if len(args) > 0 {
		switch strings.ToUpper(args[0]) {
		case "RUN", "INFO", "DUMP", "VERSION":
			mode = strings.ToUpper(args[0])
			args = args[1:]
		}
	}

	var err error

	switch mode {
	case "RUN":
		err = run(args)
	case "INFO":
		err = info(args)
	case "DUMP":
		err = dumpMode(args)
	case "VERSION":
		vrs, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", version.ApplicationName, vrs)
		fmt.Printf("  %s\n", rev)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		logger.Tail(os.Stderr, 10)
		os.Exit(10)
	}
}

// load the cartridge image named by the remaining arguments.
func load(fs *flag.FlagSet, mapping string) (*cartridge.Cartridge, *cartridgeloader.Loader, error) {
	if len(fs.Args()) != 1 {
		fmt.Print(usage)
		return nil, nil, fmt.Errorf("one cartridge file required")
	}

	ld, err := cartridgeloader.NewLoader(fs.Arg(0), mapping)
	if err != nil {
		return nil, nil, err
	}

	if err := ld.Load(); err != nil {
		return nil, nil, err
	}

	cart, err := cartridge.NewCartridge(ld.Console, ld.Mapping, ld.Data)
	if err != nil {
		return nil, nil, err
	}

	return cart, &ld, nil
}

func run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	mapping := fs.String("mapping", "AUTO", "force cartridge mapping scheme")
	cycles := fs.Uint64("cycles", 0, "stop after n bus cycles. 0 means run until power-off")
	stats := fs.Bool("stats", false, fmt.Sprintf("run the stats server (requires the statsview build constraint) [%s]", statsview.Address))
	if err := fs.Parse(args); err != nil {
		return err
	}

	cart, _, err := load(fs, *mapping)
	if err != nil {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			logger.Log("statsview", "not available in this build")
		}
	}

	port := gpio.NewPort()
	rsp := responder.NewResponder(port, pins.Default, cart)

	if *cycles == 0 {
		rsp.Run(nil)
		return nil
	}

	// a cycle-limited run. useful for exercising the loop on the host
	var brake int
	rsp.Run(func() bool {
		brake++
		if brake >= responder.PerformanceBrake {
			brake = 0
			return rsp.Cycles() < *cycles
		}
		return true
	})

	fmt.Printf("%d bus cycles serviced\n", rsp.Cycles())

	return nil
}

func info(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	mapping := fs.String("mapping", "AUTO", "force cartridge mapping scheme")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cart, ld, err := load(fs, *mapping)
	if err != nil {
		return err
	}

	fmt.Println(ld.Filename)
	fmt.Printf("SHA1: %s\n", ld.Hash)
	if ld.Header != nil {
		fmt.Println(ld.Header.String())
	}
	fmt.Println(cart.String())

	return nil
}

func dumpMode(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	mapping := fs.String("mapping", "AUTO", "force cartridge mapping scheme")
	graph := fs.Bool("graph", false, "write a graphviz graph instead of a value listing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cart, _, err := load(fs, *mapping)
	if err != nil {
		return err
	}

	if *graph {
		dump.Graph(os.Stdout, cart)
	} else {
		dump.Values(os.Stdout, cart)
	}

	return nil
}
