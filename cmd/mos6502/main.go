package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/arhym/mos6502/cpu"
	cliv2 "gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cliv2.App{
		Name:    "mos6502",
		Usage:   "load and run MOS 6502 programs",
		Version: "v0.0.1",
		Commands: []*cliv2.Command{
			runCommand,
			debugCommand,
		},
	}

	sort.Sort(cliv2.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var maxStepsFlag = &cliv2.IntFlag{
	Name:    "max-steps",
	Aliases: []string{"m"},
	Usage:   "halt after this many instructions (0 disables the guard)",
	Value:   1_000_000,
}

var startFlag = &cliv2.UintFlag{
	Name:    "start",
	Aliases: []string{"s"},
	Usage:   "address to start execution from (the program is always loaded at 0)",
	Value:   0,
}

var runCommand = &cliv2.Command{
	Name:  "run",
	Usage: "load a program and run it to completion",
	Flags: []cliv2.Flag{
		maxStepsFlag,
		startFlag,
	},
	Action: func(c *cliv2.Context) error {
		path := c.Args().First()
		if path == "" {
			return cliv2.Exit("usage: mos6502 run <program>", 1)
		}

		program, err := loadProgram(path)
		if err != nil {
			return cliv2.Exit(fmt.Sprintf("loading program: %s", err), 1)
		}

		c6502 := cpu.New()
		c6502.MaxSteps = c.Int("max-steps")

		// Load places the program at address 0 and points PC there; SetPC
		// then moves the starting instruction if the caller asked for an
		// offset other than 0. Interpret isn't used here because its Load
		// call would stomp the SetPC below right back to 0.
		c6502.Load(program)
		c6502.SetPC(uint16(c.Uint("start")))

		log.Printf("loaded %d bytes, starting at $%04X", len(program), c.Uint("start"))

		halt := c6502.Run()

		log.Printf("halted: %s", halt)
		log.Printf("%s", c6502)

		if halt == cpu.HaltIllegalOpcode {
			return cliv2.Exit("", 1)
		}
		return nil
	},
}

var debugCommand = &cliv2.Command{
	Name:  "debug",
	Usage: "step through a program in an interactive terminal debugger",
	Flags: []cliv2.Flag{
		startFlag,
	},
	Action: func(c *cliv2.Context) error {
		path := c.Args().First()
		if path == "" {
			return cliv2.Exit("usage: mos6502 debug <program>", 1)
		}

		program, err := loadProgram(path)
		if err != nil {
			return cliv2.Exit(fmt.Sprintf("loading program: %s", err), 1)
		}

		return runDebugger(program, uint16(c.Uint("start")))
	},
}

func loadProgram(path string) ([]uint8, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stats, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stats.Size() > int64(cpu.AddressSpaceSize) {
		return nil, fmt.Errorf("program too large: wanted at most %d bytes got %d", cpu.AddressSpaceSize, stats.Size())
	}

	buf := make([]byte, stats.Size())
	if _, err := bufio.NewReader(file).Read(buf); err != nil {
		return nil, err
	}

	return buf, nil
}
