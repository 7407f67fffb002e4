package cpu

import "testing"

const ProgramStart uint16 = 0x0600

// setup loads program at ProgramStart, applies any bootstrap memory pokes,
// and points PC at the program.
func setup(program []uint8, bootstrap map[uint16]uint8) *CPU {
	cpu := New()

	for i, b := range program {
		cpu.m.Write(ProgramStart+uint16(i), b)
	}
	for address, b := range bootstrap {
		cpu.m.Write(address, b)
	}

	cpu.SetPC(ProgramStart)
	return cpu
}

func setupUint8(register *uint8, v *uint8) {
	if v != nil {
		*register = *v
	}
}

func setupUint16(register *uint16, v *uint16) {
	if v != nil {
		*register = *v
	}
}

func newUint8(v uint8) *uint8   { return &v }
func newUint16(v uint16) *uint16 { return &v }
func newBool(b bool) *bool       { return &b }

func expect8(t *testing.T, a uint8, b *uint8) {
	t.Helper()
	if b == nil {
		return
	}
	if a != *b {
		t.Errorf("expected: %02x got: %02x", *b, a)
	}
}

func expect16(t *testing.T, a uint16, b *uint16) {
	t.Helper()
	if b == nil {
		return
	}
	if a != *b {
		t.Errorf("expected: %04x got: %04x", *b, a)
	}
}

// testCase drives one or more Step calls against a freshly constructed CPU
// and asserts the resulting register, flag, and memory state. Fields left
// nil are not checked.
type testCase struct {
	name    string
	program []uint8
	memory  map[uint16]uint8

	setupA  *uint8
	setupX  *uint8
	setupY  *uint8
	setupSP *uint8
	setupPC *uint16

	setupCarry     *bool
	setupZero      *bool
	setupOverflow  *bool
	setupNegative  *bool
	setupInterrupt *bool

	// steps is how many instructions to execute. Defaults to 1.
	steps int

	expectA  *uint8
	expectX  *uint8
	expectY  *uint8
	expectSP *uint8
	expectPC *uint16

	expectCarry    *bool
	expectZero     *bool
	expectOverflow *bool
	expectNegative *bool
	expectUnused   *bool

	expectHalt HaltReason

	expectMemory map[uint16]uint8
}

func (tc *testCase) setup(t *testing.T) *CPU {
	t.Helper()

	cpu := setup(tc.program, tc.memory)

	setupUint8(&cpu.a, tc.setupA)
	setupUint8(&cpu.x, tc.setupX)
	setupUint8(&cpu.y, tc.setupY)
	setupUint8(&cpu.sp, tc.setupSP)
	setupUint16(&cpu.pc, tc.setupPC)

	if tc.setupCarry != nil {
		cpu.p.setFlag(P_Carry, *tc.setupCarry)
	}
	if tc.setupZero != nil {
		cpu.p.setFlag(P_Zero, *tc.setupZero)
	}
	if tc.setupOverflow != nil {
		cpu.p.setFlag(P_Overflow, *tc.setupOverflow)
	}
	if tc.setupNegative != nil {
		cpu.p.setFlag(P_Negative, *tc.setupNegative)
	}
	if tc.setupInterrupt != nil {
		cpu.p.setFlag(P_Interrupt, *tc.setupInterrupt)
	}

	return cpu
}

func (tc *testCase) run(t *testing.T, cpu *CPU) {
	t.Helper()

	steps := tc.steps
	if steps == 0 {
		steps = 1
	}

	for i := 0; i < steps; i++ {
		if !cpu.Step() {
			break
		}
	}

	expect8(t, cpu.a, tc.expectA)
	expect8(t, cpu.x, tc.expectX)
	expect8(t, cpu.y, tc.expectY)
	expect8(t, cpu.sp, tc.expectSP)
	expect16(t, cpu.pc, tc.expectPC)

	if tc.expectCarry != nil {
		expectFlag(t, cpu, P_Carry, *tc.expectCarry)
	}
	if tc.expectZero != nil {
		expectFlag(t, cpu, P_Zero, *tc.expectZero)
	}
	if tc.expectOverflow != nil {
		expectFlag(t, cpu, P_Overflow, *tc.expectOverflow)
	}
	if tc.expectNegative != nil {
		expectFlag(t, cpu, P_Negative, *tc.expectNegative)
	}
	if tc.expectUnused != nil {
		expectFlag(t, cpu, P_Unused, *tc.expectUnused)
	}

	if tc.expectHalt != HaltNone && cpu.Halt() != tc.expectHalt {
		t.Errorf("expected halt reason %s got %s", tc.expectHalt, cpu.Halt())
	}

	for address, expected := range tc.expectMemory {
		if got := cpu.m.Read(address); got != expected {
			t.Errorf("expected memory %04x to be %02x got %02x", address, expected, got)
		}
	}
}

type testCases []testCase

func (tcs testCases) run(t *testing.T) {
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cpu := tc.setup(t)
			tc.run(t, cpu)
		})
	}
}

func TestReset(t *testing.T) {
	cpu := New()
	cpu.a, cpu.x, cpu.y = 1, 2, 3
	cpu.sp = 0x10
	cpu.pc = 0x1234
	cpu.p = flags(0xff)

	cpu.Reset()

	expect8(t, cpu.a, newUint8(0))
	expect8(t, cpu.x, newUint8(0))
	expect8(t, cpu.y, newUint8(0))
	expect8(t, cpu.sp, newUint8(resetSP))
	expect16(t, cpu.pc, newUint16(0))
	if cpu.Halt() != HaltNone {
		t.Errorf("expected HaltNone after reset got %s", cpu.Halt())
	}
}

func TestInterpretIllegalOpcode(t *testing.T) {
	cpu := New()
	halt := cpu.Interpret([]uint8{0xff})
	if halt != HaltIllegalOpcode {
		t.Errorf("expected HaltIllegalOpcode got %s", halt)
	}
}

func TestInterpretBreak(t *testing.T) {
	cpu := New()
	halt := cpu.Interpret([]uint8{0x00})
	if halt != HaltBreak {
		t.Errorf("expected HaltBreak got %s", halt)
	}
}

func TestInterpretStepLimit(t *testing.T) {
	cpu := New()
	cpu.MaxSteps = 3
	// EA is NOP; the limit of 3 is hit before the five NOPs and the BRK
	// (zeroed memory) after them are reached.
	halt := cpu.Interpret([]uint8{0xea, 0xea, 0xea, 0xea, 0xea})
	if halt != HaltStepLimit {
		t.Errorf("expected HaltStepLimit got %s", halt)
	}
	if cpu.Steps() != 3 {
		t.Errorf("expected 3 steps executed got %d", cpu.Steps())
	}
}

// TestSeedSuite exercises the small set of whole-program scenarios used to
// sanity-check the fetch-decode-execute loop end to end, rather than one
// instruction at a time.
func TestSeedSuite(t *testing.T) {
	t.Run("load zero sets only Zero", func(t *testing.T) {
		cpu := New()
		cpu.Interpret([]uint8{
			0xa9, 0x00, // LDA #$00
			0x00, // BRK
		})
		expect8(t, cpu.a, newUint8(0x00))
		if got := cpu.P(); got != 0x02 {
			t.Errorf("expected P == 0x02 got %02x", got)
		}
	})

	t.Run("pha then brk leaves stack and SP untouched by BRK", func(t *testing.T) {
		cpu := New()
		startSP := cpu.SP()
		cpu.Interpret([]uint8{
			0xa9, 0x37, // LDA #$37
			0x48, // PHA
			0x00, // BRK
		})
		if got := cpu.SP(); got != startSP-1 {
			t.Errorf("expected SP decremented by 1 got %02x (start %02x)", got, startSP)
		}
		if got := cpu.m.Read(StackBase + uint16(cpu.SP()) + 1); got != 0x37 {
			t.Errorf("expected top of stack to be 0x37 got %02x", got)
		}
	})

	t.Run("load store round trip", func(t *testing.T) {
		cpu := New()
		cpu.Interpret([]uint8{
			0xa9, 0x42, // LDA #$42
			0x85, 0x10, // STA $10
			0xa5, 0x10, // LDA $10 (clobber A, reload from memory)
			0x00, // BRK
		})
		expect8(t, cpu.a, newUint8(0x42))
		if got := cpu.m.Read(0x10); got != 0x42 {
			t.Errorf("expected memory 0x10 to be 0x42 got %02x", got)
		}
	})

	t.Run("index register round trip through stack", func(t *testing.T) {
		cpu := New()
		cpu.Interpret([]uint8{
			0xa2, 0x07, // LDX #$07
			0x8a,       // TXA
			0x48,       // PHA
			0xa9, 0x00, // LDA #$00
			0x68, // PLA
			0x00, // BRK
		})
		expect8(t, cpu.a, newUint8(0x07))
	})

	t.Run("zero page x wraps within page zero", func(t *testing.T) {
		cpu := New()
		cpu.m.Write(0x05, 0x99)
		cpu.Interpret([]uint8{
			0xa2, 0xff, // LDX #$FF
			0xb5, 0x06, // LDA $06,X  -> effective 0x05, wrapped
			0x00, // BRK
		})
		expect8(t, cpu.a, newUint8(0x99))
	})

	t.Run("bit does not modify accumulator", func(t *testing.T) {
		cpu := New()
		cpu.m.Write(0x20, 0xC0) // bits 7 and 6 set
		cpu.Interpret([]uint8{
			0xa9, 0x00, // LDA #$00
			0x24, 0x20, // BIT $20
			0x00, // BRK
		})
		expect8(t, cpu.a, newUint8(0x00))
		expectFlag(t, cpu, P_Zero, true)
		expectFlag(t, cpu, P_Negative, true)
		expectFlag(t, cpu, P_Overflow, true)
	})

	t.Run("php then plp restores flags with unused forced set", func(t *testing.T) {
		cpu := New()
		cpu.Interpret([]uint8{
			0xa9, 0x80, // LDA #$80 -> sets Negative
			0x08, // PHP
			0xa9, 0x00, // LDA #$00 -> sets Zero, clears Negative
			0x28, // PLP
			0x00, // BRK
		})
		expectFlag(t, cpu, P_Negative, true)
		expectFlag(t, cpu, P_Unused, true)
	})

	t.Run("indirect x indexed load", func(t *testing.T) {
		cpu := New()
		cpu.m.WriteWord(0x24, 0x0300)
		cpu.m.Write(0x0300, 0x55)
		cpu.Interpret([]uint8{
			0xa2, 0x04, // LDX #$04
			0xa1, 0x20, // LDA ($20,X) -> pointer at 0x24
			0x00, // BRK
		})
		expect8(t, cpu.a, newUint8(0x55))
	})

	t.Run("indirect y indexed load", func(t *testing.T) {
		cpu := New()
		cpu.m.WriteWord(0x20, 0x0300)
		cpu.m.Write(0x0305, 0x77)
		cpu.Interpret([]uint8{
			0xa0, 0x05, // LDY #$05
			0xb1, 0x20, // LDA ($20),Y -> 0x0300 + 5
			0x00, // BRK
		})
		expect8(t, cpu.a, newUint8(0x77))
	})

	t.Run("illegal opcode halts mid program without crashing", func(t *testing.T) {
		cpu := New()
		halt := cpu.Interpret([]uint8{
			0xa9, 0x01, // LDA #$01
			0xff, // illegal
		})
		if halt != HaltIllegalOpcode {
			t.Errorf("expected HaltIllegalOpcode got %s", halt)
		}
		expect8(t, cpu.a, newUint8(0x01))
	})
}
