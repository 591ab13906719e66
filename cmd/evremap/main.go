//go:build linux

// Command evremap remaps keys on a Linux evdev keyboard into a virtual
// uinput device, driven by a YAML configuration file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func exitIf(log *logrus.Logger, err error) {
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  evremap list-devices")
	fmt.Fprintln(os.Stderr, "  evremap remap CONFIG-FILE")
}

func main() {
	var (
		log      = logrus.StandardLogger()
		listCmd  = flag.NewFlagSet("list-devices", flag.ExitOnError)
		remapCmd = flag.NewFlagSet("remap", flag.ExitOnError)
	)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "list-devices":
		listCmd.Parse(os.Args[2:])
		exitIf(log, listDevices(log))
	case "remap":
		remapCmd.Parse(os.Args[2:])

		if remapCmd.NArg() != 1 {
			usage()
			os.Exit(2)
		}

		exitIf(log, runRemap(log, remapCmd.Arg(0)))
	default:
		usage()
		os.Exit(2)
	}
}
