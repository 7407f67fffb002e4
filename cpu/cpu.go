// Package cpu implements the register file, memory, and instruction
// semantics of a MOS 6502, scoped to the load/store, transfer, stack, and
// logical instruction families. It never imports log or os: the core stays
// silent and reports everything through return values so any host can wrap
// it on its own terms.
package cpu

import "fmt"

// resetSP is the stack pointer value after a reset, matching real 6502
// hardware: SP starts three pulls below the top of the stack page.
const resetSP uint8 = 0xFD

// HaltReason explains why Interpret (or Step) stopped.
type HaltReason int

const (
	// HaltNone means the CPU is still running; never observed by a caller
	// once Interpret returns.
	HaltNone HaltReason = iota
	// HaltBreak means a BRK was executed.
	HaltBreak
	// HaltIllegalOpcode means the fetched opcode has no entry in the
	// dispatch table.
	HaltIllegalOpcode
	// HaltStepLimit means MaxSteps was reached without the program
	// halting on its own. This is a guard against runaway or
	// self-modifying loops, not a feature of the hardware being modeled.
	HaltStepLimit
)

func (r HaltReason) String() string {
	switch r {
	case HaltBreak:
		return "break"
	case HaltIllegalOpcode:
		return "illegal opcode"
	case HaltStepLimit:
		return "step limit"
	default:
		return "running"
	}
}

// CPU is the full machine state: registers, flags, and the address space
// they operate over.
type CPU struct {
	a, x, y uint8
	sp      uint8
	pc      uint16
	p       flags

	m Memory

	// MaxSteps bounds the number of instructions Interpret will execute
	// before giving up with HaltStepLimit. Zero means unbounded. This has
	// no hardware counterpart; it lets a host run untrusted or generated
	// programs without risking an unbounded fetch-decode-execute loop.
	MaxSteps int

	steps int
	halt  HaltReason
}

// New returns a CPU with zeroed registers and memory, SP at its post-reset
// value, and PC at 0.
func New() *CPU {
	cpu := &CPU{}
	cpu.Reset()
	return cpu
}

// Reset restores the register file to its power-on state without
// disturbing memory contents.
func (cpu *CPU) Reset() {
	cpu.a, cpu.x, cpu.y = 0, 0, 0
	cpu.sp = resetSP
	cpu.pc = 0
	cpu.p = 0
	cpu.steps = 0
	cpu.halt = HaltNone
}

// Register and flag accessors. Writes happen only through the instruction
// set or Reset/SetPC/Load; there is no exported setter for A/X/Y/SP/P.
func (cpu *CPU) A() uint8        { return cpu.a }
func (cpu *CPU) X() uint8        { return cpu.x }
func (cpu *CPU) Y() uint8        { return cpu.y }
func (cpu *CPU) SP() uint8       { return cpu.sp }
func (cpu *CPU) PC() uint16      { return cpu.pc }
func (cpu *CPU) P() uint8        { return uint8(cpu.p) }
func (cpu *CPU) Halt() HaltReason { return cpu.halt }
func (cpu *CPU) Steps() int      { return cpu.steps }

// Memory exposes the address space by pointer so hosts (disassemblers,
// debuggers, test fixtures) can inspect or preload it directly.
func (cpu *CPU) Memory() *Memory { return &cpu.m }

// SetPC seeds the program counter directly, bypassing Load. Used by tests
// that want execution starting somewhere other than address 0.
func (cpu *CPU) SetPC(addr uint16) { cpu.pc = addr }

// Load copies program into memory at address 0 and points PC at it.
func (cpu *CPU) Load(program []uint8) {
	cpu.m.Load(program)
	cpu.pc = 0
}

// Step fetches, decodes and executes exactly one instruction and reports
// whether the CPU is still runnable afterward. It does not itself enforce
// MaxSteps; that accounting belongs to Run (and so Interpret), since a caller driving
// Step directly (an interactive debugger, say) is assumed to want to
// single-step for as long as it likes.
func (cpu *CPU) Step() bool {
	if cpu.halt != HaltNone {
		return false
	}

	opcode := cpu.m.Read(cpu.pc)
	cpu.pc++

	inst := instructions[opcode]
	if inst == nil {
		cpu.halt = HaltIllegalOpcode
		return false
	}

	addr := cpu.decode(inst.mode)
	inst.exec(cpu, addr)

	return cpu.halt == HaltNone
}

// Run drives fetch-decode-execute from the CPU's current PC until BRK, an
// illegal opcode, or MaxSteps instructions have executed, and returns the
// reason execution stopped. Unlike Interpret it does not touch memory or
// PC first, so a caller that wants to start somewhere other than address 0
// can Load and SetPC itself before calling Run.
func (cpu *CPU) Run() HaltReason {
	for {
		if cpu.MaxSteps > 0 && cpu.steps >= cpu.MaxSteps {
			cpu.halt = HaltStepLimit
			return cpu.halt
		}
		cpu.steps++
		if !cpu.Step() {
			return cpu.halt
		}
	}
}

// Interpret loads program into memory at address 0, points PC at it, and
// runs fetch-decode-execute until BRK, an illegal opcode, or MaxSteps
// instructions have executed. It returns the reason execution stopped.
func (cpu *CPU) Interpret(program []uint8) HaltReason {
	cpu.Load(program)
	return cpu.Run()
}

func (cpu *CPU) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X P=%02X",
		cpu.a, cpu.x, cpu.y, cpu.sp, cpu.pc, uint8(cpu.p))
}
