package cpu

// OPCode names an instruction by its assembly mnemonic.
type OPCode string

const (
	OPC_LDA OPCode = "LDA"
	OPC_LDX OPCode = "LDX"
	OPC_LDY OPCode = "LDY"
	OPC_STA OPCode = "STA"
	OPC_STX OPCode = "STX"
	OPC_STY OPCode = "STY"
	OPC_TAX OPCode = "TAX"
	OPC_TAY OPCode = "TAY"
	OPC_TXA OPCode = "TXA"
	OPC_TYA OPCode = "TYA"
	OPC_TSX OPCode = "TSX"
	OPC_TXS OPCode = "TXS"
	OPC_PHA OPCode = "PHA"
	OPC_PHP OPCode = "PHP"
	OPC_PLA OPCode = "PLA"
	OPC_PLP OPCode = "PLP"
	OPC_AND OPCode = "AND"
	OPC_EOR OPCode = "EOR"
	OPC_ORA OPCode = "ORA"
	OPC_BIT OPCode = "BIT"
	OPC_BRK OPCode = "BRK"
	OPC_NOP OPCode = "NOP"
)

// executor is the handler body for one instruction. addr is whatever decode
// computed for the instruction's addressing mode; handlers that are Implied
// ignore it.
type executor func(cpu *CPU, addr uint16)

type instruction struct {
	opc  OPCode
	mode AddressMode
	exec executor
}

func newInstruction(opc OPCode, mode AddressMode, exec executor) *instruction {
	return &instruction{opc: opc, mode: mode, exec: exec}
}

// instructions is the 256-entry dispatch table, indexed by opcode byte. A
// nil entry is a decode miss: Step reports HaltIllegalOpcode.
var instructions [0x100]*instruction

func init() {
	i := func(opcode uint8, opc OPCode, mode AddressMode, exec executor) {
		instructions[opcode] = newInstruction(opc, mode, exec)
	}

	// LDA
	i(0xa9, OPC_LDA, Immediate, (*CPU).lda)
	i(0xa5, OPC_LDA, ZeroPage, (*CPU).lda)
	i(0xb5, OPC_LDA, ZeroPageX, (*CPU).lda)
	i(0xad, OPC_LDA, Absolute, (*CPU).lda)
	i(0xbd, OPC_LDA, AbsoluteX, (*CPU).lda)
	i(0xb9, OPC_LDA, AbsoluteY, (*CPU).lda)
	i(0xa1, OPC_LDA, IndirectX, (*CPU).lda)
	i(0xb1, OPC_LDA, IndirectY, (*CPU).lda)

	// LDX
	i(0xa2, OPC_LDX, Immediate, (*CPU).ldx)
	i(0xa6, OPC_LDX, ZeroPage, (*CPU).ldx)
	i(0xb6, OPC_LDX, ZeroPageY, (*CPU).ldx)
	i(0xae, OPC_LDX, Absolute, (*CPU).ldx)
	i(0xbe, OPC_LDX, AbsoluteY, (*CPU).ldx)

	// LDY
	i(0xa0, OPC_LDY, Immediate, (*CPU).ldy)
	i(0xa4, OPC_LDY, ZeroPage, (*CPU).ldy)
	i(0xb4, OPC_LDY, ZeroPageX, (*CPU).ldy)
	i(0xac, OPC_LDY, Absolute, (*CPU).ldy)
	i(0xbc, OPC_LDY, AbsoluteX, (*CPU).ldy)

	// STA
	i(0x85, OPC_STA, ZeroPage, (*CPU).sta)
	i(0x95, OPC_STA, ZeroPageX, (*CPU).sta)
	i(0x8d, OPC_STA, Absolute, (*CPU).sta)
	i(0x9d, OPC_STA, AbsoluteX, (*CPU).sta)
	i(0x99, OPC_STA, AbsoluteY, (*CPU).sta)
	i(0x81, OPC_STA, IndirectX, (*CPU).sta)
	i(0x91, OPC_STA, IndirectY, (*CPU).sta)

	// STX
	i(0x86, OPC_STX, ZeroPage, (*CPU).stx)
	i(0x96, OPC_STX, ZeroPageY, (*CPU).stx)
	i(0x8e, OPC_STX, Absolute, (*CPU).stx)

	// STY
	i(0x84, OPC_STY, ZeroPage, (*CPU).sty)
	i(0x94, OPC_STY, ZeroPageX, (*CPU).sty)
	i(0x8c, OPC_STY, Absolute, (*CPU).sty)

	// register transfers, all Implied
	i(0xaa, OPC_TAX, Implied, (*CPU).tax)
	i(0xa8, OPC_TAY, Implied, (*CPU).tay)
	i(0x8a, OPC_TXA, Implied, (*CPU).txa)
	i(0x98, OPC_TYA, Implied, (*CPU).tya)
	i(0xba, OPC_TSX, Implied, (*CPU).tsx)
	i(0x9a, OPC_TXS, Implied, (*CPU).txs)

	// stack
	i(0x48, OPC_PHA, Implied, (*CPU).pha)
	i(0x08, OPC_PHP, Implied, (*CPU).php)
	i(0x68, OPC_PLA, Implied, (*CPU).pla)
	i(0x28, OPC_PLP, Implied, (*CPU).plp)

	// AND
	i(0x29, OPC_AND, Immediate, (*CPU).and)
	i(0x25, OPC_AND, ZeroPage, (*CPU).and)
	i(0x35, OPC_AND, ZeroPageX, (*CPU).and)
	i(0x2d, OPC_AND, Absolute, (*CPU).and)
	i(0x3d, OPC_AND, AbsoluteX, (*CPU).and)
	i(0x39, OPC_AND, AbsoluteY, (*CPU).and)
	i(0x21, OPC_AND, IndirectX, (*CPU).and)
	i(0x31, OPC_AND, IndirectY, (*CPU).and)

	// EOR
	i(0x49, OPC_EOR, Immediate, (*CPU).eor)
	i(0x45, OPC_EOR, ZeroPage, (*CPU).eor)
	i(0x55, OPC_EOR, ZeroPageX, (*CPU).eor)
	i(0x4d, OPC_EOR, Absolute, (*CPU).eor)
	i(0x5d, OPC_EOR, AbsoluteX, (*CPU).eor)
	i(0x59, OPC_EOR, AbsoluteY, (*CPU).eor)
	i(0x41, OPC_EOR, IndirectX, (*CPU).eor)
	i(0x51, OPC_EOR, IndirectY, (*CPU).eor)

	// ORA
	i(0x09, OPC_ORA, Immediate, (*CPU).ora)
	i(0x05, OPC_ORA, ZeroPage, (*CPU).ora)
	i(0x15, OPC_ORA, ZeroPageX, (*CPU).ora)
	i(0x0d, OPC_ORA, Absolute, (*CPU).ora)
	i(0x1d, OPC_ORA, AbsoluteX, (*CPU).ora)
	i(0x19, OPC_ORA, AbsoluteY, (*CPU).ora)
	i(0x01, OPC_ORA, IndirectX, (*CPU).ora)
	i(0x11, OPC_ORA, IndirectY, (*CPU).ora)

	// BIT
	i(0x24, OPC_BIT, ZeroPage, (*CPU).bit)
	i(0x2c, OPC_BIT, Absolute, (*CPU).bit)

	// system
	i(0x00, OPC_BRK, Implied, (*CPU).brk)
	i(0xea, OPC_NOP, Implied, (*CPU).nop)
}
