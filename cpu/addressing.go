package cpu

// AddressMode identifies how an instruction's operand bytes are turned into
// an effective memory address. Only the nine modes the 6502 load/store,
// transfer, stack, logical, and system instructions use are modeled —
// Relative and Indirect (branches, JMP) have no home in this instruction
// set.
type AddressMode uint8

const (
	Implied AddressMode = iota
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX
	IndirectY
)

// decode computes the effective address for mode, assuming cpu.pc points at
// the first operand byte of the current instruction. It advances cpu.pc by
// the mode's operand width — the sole place PC moves for an operand, per
// the single convention held everywhere in this package (§9 of the design
// notes this is ported from: handlers never re-advance PC themselves).
func (cpu *CPU) decode(mode AddressMode) uint16 {
	switch mode {
	case Implied:
		return 0

	case Immediate:
		addr := cpu.pc
		cpu.pc++
		return addr

	case ZeroPage:
		addr := uint16(cpu.m.Read(cpu.pc))
		cpu.pc++
		return addr

	case ZeroPageX:
		base := cpu.m.Read(cpu.pc)
		cpu.pc++
		return uint16(base + cpu.x)

	case ZeroPageY:
		base := cpu.m.Read(cpu.pc)
		cpu.pc++
		return uint16(base + cpu.y)

	case Absolute:
		addr := cpu.m.ReadWord(cpu.pc)
		cpu.pc += 2
		return addr

	case AbsoluteX:
		base := cpu.m.ReadWord(cpu.pc)
		cpu.pc += 2
		return base + uint16(cpu.x)

	case AbsoluteY:
		base := cpu.m.ReadWord(cpu.pc)
		cpu.pc += 2
		return base + uint16(cpu.y)

	case IndirectX:
		zp := cpu.m.Read(cpu.pc)
		cpu.pc++
		ptr := zp + cpu.x // wraps within page zero
		lo := uint16(cpu.m.Read(uint16(ptr)))
		hi := uint16(cpu.m.Read(uint16(ptr + 1))) // +1 also wraps in page zero
		return lo | (hi << 8)

	case IndirectY:
		zp := cpu.m.Read(cpu.pc)
		cpu.pc++
		lo := uint16(cpu.m.Read(uint16(zp)))
		hi := uint16(cpu.m.Read(uint16(zp + 1)))
		base := lo | (hi << 8)
		return base + uint16(cpu.y)

	default:
		panic("unhandled addressing mode")
	}
}
