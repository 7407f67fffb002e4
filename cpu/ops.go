package cpu

// lda: Load Accumulator with Memory
func (cpu *CPU) lda(addr uint16) {
	cpu.a = cpu.m.Read(addr)
	cpu.updateZN(cpu.a)
}

// ldx: Load Index X with Memory
func (cpu *CPU) ldx(addr uint16) {
	cpu.x = cpu.m.Read(addr)
	cpu.updateZN(cpu.x)
}

// ldy: Load Index Y with Memory
func (cpu *CPU) ldy(addr uint16) {
	cpu.y = cpu.m.Read(addr)
	cpu.updateZN(cpu.y)
}

// sta: Store Accumulator in Memory. Flags untouched.
func (cpu *CPU) sta(addr uint16) {
	cpu.m.Write(addr, cpu.a)
}

// stx: Store Index X in Memory. Flags untouched.
func (cpu *CPU) stx(addr uint16) {
	cpu.m.Write(addr, cpu.x)
}

// sty: Store Index Y in Memory. Flags untouched.
func (cpu *CPU) sty(addr uint16) {
	cpu.m.Write(addr, cpu.y)
}

// tax: Transfer Accumulator to Index X
func (cpu *CPU) tax(addr uint16) {
	cpu.x = cpu.a
	cpu.updateZN(cpu.x)
}

// tay: Transfer Accumulator to Index Y
func (cpu *CPU) tay(addr uint16) {
	cpu.y = cpu.a
	cpu.updateZN(cpu.y)
}

// txa: Transfer Index X to Accumulator
func (cpu *CPU) txa(addr uint16) {
	cpu.a = cpu.x
	cpu.updateZN(cpu.a)
}

// tya: Transfer Index Y to Accumulator
func (cpu *CPU) tya(addr uint16) {
	cpu.a = cpu.y
	cpu.updateZN(cpu.a)
}

// tsx: Transfer Stack Pointer to Index X
func (cpu *CPU) tsx(addr uint16) {
	cpu.x = cpu.sp
	cpu.updateZN(cpu.x)
}

// txs: Transfer Index X to Stack Pointer. Flags untouched.
func (cpu *CPU) txs(addr uint16) {
	cpu.sp = cpu.x
}

// pha: Push Accumulator on Stack
func (cpu *CPU) pha(addr uint16) {
	cpu.push(cpu.a)
}

// php: Push Processor Status on Stack. The pushed byte always has Break and
// Unused set, regardless of their live state in P.
func (cpu *CPU) php(addr uint16) {
	cpu.push(uint8(cpu.p) | uint8(P_Break) | uint8(P_Unused))
}

// pla: Pull Accumulator from Stack
func (cpu *CPU) pla(addr uint16) {
	cpu.a = cpu.pop()
	cpu.updateZN(cpu.a)
}

// plp: Pull Processor Status from Stack. Unused is forced set on the way
// back in; every other bit, Break included, is taken from the pulled byte.
func (cpu *CPU) plp(addr uint16) {
	cpu.p = flags(cpu.pop())
	cpu.p.setFlag(P_Unused, true)
}

// and: AND Memory with Accumulator
func (cpu *CPU) and(addr uint16) {
	cpu.a &= cpu.m.Read(addr)
	cpu.updateZN(cpu.a)
}

// eor: Exclusive-OR Memory with Accumulator
func (cpu *CPU) eor(addr uint16) {
	cpu.a ^= cpu.m.Read(addr)
	cpu.updateZN(cpu.a)
}

// ora: OR Memory with Accumulator
func (cpu *CPU) ora(addr uint16) {
	cpu.a |= cpu.m.Read(addr)
	cpu.updateZN(cpu.a)
}

// bit: Test Bits in Memory with Accumulator. Zero is set from A&M; Negative
// and Overflow come from bits 7 and 6 of the memory operand directly, not
// from the AND result. A itself is never modified.
func (cpu *CPU) bit(addr uint16) {
	value := cpu.m.Read(addr)
	cpu.p.setFlag(P_Zero, cpu.a&value == 0)
	cpu.p.setFlag(P_Negative, value&0x80 != 0)
	cpu.p.setFlag(P_Overflow, value&0x40 != 0)
}

// brk: Force Break. There is no interrupt vector in this instruction set, so
// BRK pushes nothing and touches no flag; it is a pure halt signal to the
// dispatcher, reported to the host instead of resuming at an IRQ handler.
func (cpu *CPU) brk(addr uint16) {
	cpu.halt = HaltBreak
}

// nop: No Operation
func (cpu *CPU) nop(addr uint16) {}
