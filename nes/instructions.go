package nes

// Instruction is one entry of the 256-slot opcode table: the addressing
// mode resolver and the opcode body are bound method values captured at
// table-construction time, so both run with zero arguments against the
// owning CPU.
type Instruction struct {
	Name     string
	Execute  func() byte
	AddrMode func() byte
	Mode     AddressingMode
	Cycles   byte
}

// buildInstLookup populates the 256-entry decode table. Only the 56
// official 6502 mnemonics are covered; every unmapped opcode byte decodes
// tolerantly to a one-byte, two-cycle no-op rather than a panic or an
// illegal-opcode behavior.
func (cpu *Cpu6502) buildInstLookup() {
	xxx := Instruction{"XXX", cpu.opXXX, cpu.amIMP, IMP,2}

	cpu.InstLookup = [256]Instruction{
		// 0x00-0x0F
		{"BRK", cpu.opBRK, cpu.amIMP, IMP,7}, {"ORA", cpu.opORA, cpu.amIZX, IZX,6}, xxx, xxx,
		xxx, {"ORA", cpu.opORA, cpu.amZP0, ZP0,3}, {"ASL", cpu.opASL, cpu.amZP0, ZP0,5}, xxx,
		{"PHP", cpu.opPHP, cpu.amIMP, IMP,3}, {"ORA", cpu.opORA, cpu.amIMM, IMM,2}, {"ASL", cpu.opASL, cpu.amACC, ACC,2}, xxx,
		xxx, {"ORA", cpu.opORA, cpu.amABS, ABS,4}, {"ASL", cpu.opASL, cpu.amABS, ABS,6}, xxx,

		// 0x10-0x1F
		{"BPL", cpu.opBPL, cpu.amREL, REL,2}, {"ORA", cpu.opORA, cpu.amIZY, IZY,5}, xxx, xxx,
		xxx, {"ORA", cpu.opORA, cpu.amZPX, ZPX,4}, {"ASL", cpu.opASL, cpu.amZPX, ZPX,6}, xxx,
		{"CLC", cpu.opCLC, cpu.amIMP, IMP,2}, {"ORA", cpu.opORA, cpu.amABY, ABY,4}, xxx, xxx,
		xxx, {"ORA", cpu.opORA, cpu.amABX, ABX,4}, {"ASL", cpu.opASL, cpu.amABX, ABX,7}, xxx,

		// 0x20-0x2F
		{"JSR", cpu.opJSR, cpu.amABS, ABS,6}, {"AND", cpu.opAND, cpu.amIZX, IZX,6}, xxx, xxx,
		{"BIT", cpu.opBIT, cpu.amZP0, ZP0,3}, {"AND", cpu.opAND, cpu.amZP0, ZP0,3}, {"ROL", cpu.opROL, cpu.amZP0, ZP0,5}, xxx,
		{"PLP", cpu.opPLP, cpu.amIMP, IMP,4}, {"AND", cpu.opAND, cpu.amIMM, IMM,2}, {"ROL", cpu.opROL, cpu.amACC, ACC,2}, xxx,
		{"BIT", cpu.opBIT, cpu.amABS, ABS,4}, {"AND", cpu.opAND, cpu.amABS, ABS,4}, {"ROL", cpu.opROL, cpu.amABS, ABS,6}, xxx,

		// 0x30-0x3F
		{"BMI", cpu.opBMI, cpu.amREL, REL,2}, {"AND", cpu.opAND, cpu.amIZY, IZY,5}, xxx, xxx,
		xxx, {"AND", cpu.opAND, cpu.amZPX, ZPX,4}, {"ROL", cpu.opROL, cpu.amZPX, ZPX,6}, xxx,
		{"SEC", cpu.opSEC, cpu.amIMP, IMP,2}, {"AND", cpu.opAND, cpu.amABY, ABY,4}, xxx, xxx,
		xxx, {"AND", cpu.opAND, cpu.amABX, ABX,4}, {"ROL", cpu.opROL, cpu.amABX, ABX,7}, xxx,

		// 0x40-0x4F
		{"RTI", cpu.opRTI, cpu.amIMP, IMP,6}, {"EOR", cpu.opEOR, cpu.amIZX, IZX,6}, xxx, xxx,
		xxx, {"EOR", cpu.opEOR, cpu.amZP0, ZP0,3}, {"LSR", cpu.opLSR, cpu.amZP0, ZP0,5}, xxx,
		{"PHA", cpu.opPHA, cpu.amIMP, IMP,3}, {"EOR", cpu.opEOR, cpu.amIMM, IMM,2}, {"LSR", cpu.opLSR, cpu.amACC, ACC,2}, xxx,
		{"JMP", cpu.opJMP, cpu.amABS, ABS,3}, {"EOR", cpu.opEOR, cpu.amABS, ABS,4}, {"LSR", cpu.opLSR, cpu.amABS, ABS,6}, xxx,

		// 0x50-0x5F
		{"BVC", cpu.opBVC, cpu.amREL, REL,2}, {"EOR", cpu.opEOR, cpu.amIZY, IZY,5}, xxx, xxx,
		xxx, {"EOR", cpu.opEOR, cpu.amZPX, ZPX,4}, {"LSR", cpu.opLSR, cpu.amZPX, ZPX,6}, xxx,
		{"CLI", cpu.opCLI, cpu.amIMP, IMP,2}, {"EOR", cpu.opEOR, cpu.amABY, ABY,4}, xxx, xxx,
		xxx, {"EOR", cpu.opEOR, cpu.amABX, ABX,4}, {"LSR", cpu.opLSR, cpu.amABX, ABX,7}, xxx,

		// 0x60-0x6F
		{"RTS", cpu.opRTS, cpu.amIMP, IMP,6}, {"ADC", cpu.opADC, cpu.amIZX, IZX,6}, xxx, xxx,
		xxx, {"ADC", cpu.opADC, cpu.amZP0, ZP0,3}, {"ROR", cpu.opROR, cpu.amZP0, ZP0,5}, xxx,
		{"PLA", cpu.opPLA, cpu.amIMP, IMP,4}, {"ADC", cpu.opADC, cpu.amIMM, IMM,2}, {"ROR", cpu.opROR, cpu.amACC, ACC,2}, xxx,
		{"JMP", cpu.opJMP, cpu.amIND, IND,5}, {"ADC", cpu.opADC, cpu.amABS, ABS,4}, {"ROR", cpu.opROR, cpu.amABS, ABS,6}, xxx,

		// 0x70-0x7F
		{"BVS", cpu.opBVS, cpu.amREL, REL,2}, {"ADC", cpu.opADC, cpu.amIZY, IZY,5}, xxx, xxx,
		xxx, {"ADC", cpu.opADC, cpu.amZPX, ZPX,4}, {"ROR", cpu.opROR, cpu.amZPX, ZPX,6}, xxx,
		{"SEI", cpu.opSEI, cpu.amIMP, IMP,2}, {"ADC", cpu.opADC, cpu.amABY, ABY,4}, xxx, xxx,
		xxx, {"ADC", cpu.opADC, cpu.amABX, ABX,4}, {"ROR", cpu.opROR, cpu.amABX, ABX,7}, xxx,

		// 0x80-0x8F
		xxx, {"STA", cpu.opSTA, cpu.amIZX, IZX,6}, xxx, xxx,
		{"STY", cpu.opSTY, cpu.amZP0, ZP0,3}, {"STA", cpu.opSTA, cpu.amZP0, ZP0,3}, {"STX", cpu.opSTX, cpu.amZP0, ZP0,3}, xxx,
		{"DEY", cpu.opDEY, cpu.amIMP, IMP,2}, xxx, {"TXA", cpu.opTXA, cpu.amIMP, IMP,2}, xxx,
		{"STY", cpu.opSTY, cpu.amABS, ABS,4}, {"STA", cpu.opSTA, cpu.amABS, ABS,4}, {"STX", cpu.opSTX, cpu.amABS, ABS,4}, xxx,

		// 0x90-0x9F
		{"BCC", cpu.opBCC, cpu.amREL, REL,2}, {"STA", cpu.opSTA, cpu.amIZY, IZY,6}, xxx, xxx,
		{"STY", cpu.opSTY, cpu.amZPX, ZPX,4}, {"STA", cpu.opSTA, cpu.amZPX, ZPX,4}, {"STX", cpu.opSTX, cpu.amZPY, ZPY,4}, xxx,
		{"TYA", cpu.opTYA, cpu.amIMP, IMP,2}, {"STA", cpu.opSTA, cpu.amABY, ABY,5}, {"TXS", cpu.opTXS, cpu.amIMP, IMP,2}, xxx,
		xxx, {"STA", cpu.opSTA, cpu.amABX, ABX,5}, xxx, xxx,

		// 0xA0-0xAF
		{"LDY", cpu.opLDY, cpu.amIMM, IMM,2}, {"LDA", cpu.opLDA, cpu.amIZX, IZX,6}, {"LDX", cpu.opLDX, cpu.amIMM, IMM,2}, xxx,
		{"LDY", cpu.opLDY, cpu.amZP0, ZP0,3}, {"LDA", cpu.opLDA, cpu.amZP0, ZP0,3}, {"LDX", cpu.opLDX, cpu.amZP0, ZP0,3}, xxx,
		{"TAY", cpu.opTAY, cpu.amIMP, IMP,2}, {"LDA", cpu.opLDA, cpu.amIMM, IMM,2}, {"TAX", cpu.opTAX, cpu.amIMP, IMP,2}, xxx,
		{"LDY", cpu.opLDY, cpu.amABS, ABS,4}, {"LDA", cpu.opLDA, cpu.amABS, ABS,4}, {"LDX", cpu.opLDX, cpu.amABS, ABS,4}, xxx,

		// 0xB0-0xBF
		{"BCS", cpu.opBCS, cpu.amREL, REL,2}, {"LDA", cpu.opLDA, cpu.amIZY, IZY,5}, xxx, xxx,
		{"LDY", cpu.opLDY, cpu.amZPX, ZPX,4}, {"LDA", cpu.opLDA, cpu.amZPX, ZPX,4}, {"LDX", cpu.opLDX, cpu.amZPY, ZPY,4}, xxx,
		{"CLV", cpu.opCLV, cpu.amIMP, IMP,2}, {"LDA", cpu.opLDA, cpu.amABY, ABY,4}, {"TSX", cpu.opTSX, cpu.amIMP, IMP,2}, xxx,
		{"LDY", cpu.opLDY, cpu.amABX, ABX,4}, {"LDA", cpu.opLDA, cpu.amABX, ABX,4}, {"LDX", cpu.opLDX, cpu.amABY, ABY,4}, xxx,

		// 0xC0-0xCF
		{"CPY", cpu.opCPY, cpu.amIMM, IMM,2}, {"CMP", cpu.opCMP, cpu.amIZX, IZX,6}, xxx, xxx,
		{"CPY", cpu.opCPY, cpu.amZP0, ZP0,3}, {"CMP", cpu.opCMP, cpu.amZP0, ZP0,3}, {"DEC", cpu.opDEC, cpu.amZP0, ZP0,5}, xxx,
		{"INY", cpu.opINY, cpu.amIMP, IMP,2}, {"CMP", cpu.opCMP, cpu.amIMM, IMM,2}, {"DEX", cpu.opDEX, cpu.amIMP, IMP,2}, xxx,
		{"CPY", cpu.opCPY, cpu.amABS, ABS,4}, {"CMP", cpu.opCMP, cpu.amABS, ABS,4}, {"DEC", cpu.opDEC, cpu.amABS, ABS,6}, xxx,

		// 0xD0-0xDF
		{"BNE", cpu.opBNE, cpu.amREL, REL,2}, {"CMP", cpu.opCMP, cpu.amIZY, IZY,5}, xxx, xxx,
		xxx, {"CMP", cpu.opCMP, cpu.amZPX, ZPX,4}, {"DEC", cpu.opDEC, cpu.amZPX, ZPX,6}, xxx,
		{"CLD", cpu.opCLD, cpu.amIMP, IMP,2}, {"CMP", cpu.opCMP, cpu.amABY, ABY,4}, xxx, xxx,
		xxx, {"CMP", cpu.opCMP, cpu.amABX, ABX,4}, {"DEC", cpu.opDEC, cpu.amABX, ABX,7}, xxx,

		// 0xE0-0xEF
		{"CPX", cpu.opCPX, cpu.amIMM, IMM,2}, {"SBC", cpu.opSBC, cpu.amIZX, IZX,6}, xxx, xxx,
		{"CPX", cpu.opCPX, cpu.amZP0, ZP0,3}, {"SBC", cpu.opSBC, cpu.amZP0, ZP0,3}, {"INC", cpu.opINC, cpu.amZP0, ZP0,5}, xxx,
		{"INX", cpu.opINX, cpu.amIMP, IMP,2}, {"SBC", cpu.opSBC, cpu.amIMM, IMM,2}, {"NOP", cpu.opNOP, cpu.amIMP, IMP,2}, xxx,
		{"CPX", cpu.opCPX, cpu.amABS, ABS,4}, {"SBC", cpu.opSBC, cpu.amABS, ABS,4}, {"INC", cpu.opINC, cpu.amABS, ABS,6}, xxx,

		// 0xF0-0xFF
		{"BEQ", cpu.opBEQ, cpu.amREL, REL,2}, {"SBC", cpu.opSBC, cpu.amIZY, IZY,5}, xxx, xxx,
		xxx, {"SBC", cpu.opSBC, cpu.amZPX, ZPX,4}, {"INC", cpu.opINC, cpu.amZPX, ZPX,6}, xxx,
		{"SED", cpu.opSED, cpu.amIMP, IMP,2}, {"SBC", cpu.opSBC, cpu.amABY, ABY,4}, xxx, xxx,
		xxx, {"SBC", cpu.opSBC, cpu.amABX, ABX,4}, {"INC", cpu.opINC, cpu.amABX, ABX,7}, xxx,
	}
}
