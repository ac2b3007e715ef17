package opcodes

// Python 2.7 root table, the last of the 2.x line. Matches CPython 2.7's
// opcode module entry for entry.
func defs27() []Opcode {
	return []Opcode{
		op("STOP_CODE", 0),
		op("POP_TOP", 1),
		op("ROT_TWO", 2),
		op("ROT_THREE", 3),
		op("DUP_TOP", 4),
		op("ROT_FOUR", 5),
		op("NOP", 9),

		op("UNARY_POSITIVE", 10),
		op("UNARY_NEGATIVE", 11),
		op("UNARY_NOT", 12),
		op("UNARY_CONVERT", 13),
		op("UNARY_INVERT", 15),

		op("BINARY_POWER", 19),
		op("BINARY_MULTIPLY", 20),
		op("BINARY_DIVIDE", 21),
		op("BINARY_MODULO", 22),
		op("BINARY_ADD", 23),
		op("BINARY_SUBTRACT", 24),
		op("BINARY_SUBSCR", 25),
		op("BINARY_FLOOR_DIVIDE", 26),
		op("BINARY_TRUE_DIVIDE", 27),
		op("INPLACE_FLOOR_DIVIDE", 28),
		op("INPLACE_TRUE_DIVIDE", 29),

		op("SLICE+0", 30),
		op("SLICE+1", 31),
		op("SLICE+2", 32),
		op("SLICE+3", 33),
		op("STORE_SLICE+0", 40),
		op("STORE_SLICE+1", 41),
		op("STORE_SLICE+2", 42),
		op("STORE_SLICE+3", 43),
		op("DELETE_SLICE+0", 50),
		op("DELETE_SLICE+1", 51),
		op("DELETE_SLICE+2", 52),
		op("DELETE_SLICE+3", 53),

		op("STORE_MAP", 54),
		op("INPLACE_ADD", 55),
		op("INPLACE_SUBTRACT", 56),
		op("INPLACE_MULTIPLY", 57),
		op("INPLACE_DIVIDE", 58),
		op("INPLACE_MODULO", 59),
		op("STORE_SUBSCR", 60),
		op("DELETE_SUBSCR", 61),
		op("BINARY_LSHIFT", 62),
		op("BINARY_RSHIFT", 63),
		op("BINARY_AND", 64),
		op("BINARY_XOR", 65),
		op("BINARY_OR", 66),
		op("INPLACE_POWER", 67),
		op("GET_ITER", 68),

		op("PRINT_EXPR", 70),
		op("PRINT_ITEM", 71),
		op("PRINT_NEWLINE", 72),
		op("PRINT_ITEM_TO", 73),
		op("PRINT_NEWLINE_TO", 74),
		op("INPLACE_LSHIFT", 75),
		op("INPLACE_RSHIFT", 76),
		op("INPLACE_AND", 77),
		op("INPLACE_XOR", 78),
		op("INPLACE_OR", 79),
		op("BREAK_LOOP", 80),
		op("WITH_CLEANUP", 81),
		op("LOAD_LOCALS", 82),
		op("RETURN_VALUE", 83),
		op("IMPORT_STAR", 84),
		op("EXEC_STMT", 85),
		op("YIELD_VALUE", 86),
		op("POP_BLOCK", 87),
		op("END_FINALLY", 88),
		op("BUILD_CLASS", 89),

		nameOp("STORE_NAME", 90),
		nameOp("DELETE_NAME", 91),
		op("UNPACK_SEQUENCE", 92),
		jrelOp("FOR_ITER", 93),
		op("LIST_APPEND", 94),
		nameOp("STORE_ATTR", 95),
		nameOp("DELETE_ATTR", 96),
		nameOp("STORE_GLOBAL", 97),
		nameOp("DELETE_GLOBAL", 98),
		op("DUP_TOPX", 99),
		constOp("LOAD_CONST", 100),
		nameOp("LOAD_NAME", 101),
		op("BUILD_TUPLE", 102),
		op("BUILD_LIST", 103),
		op("BUILD_SET", 104),
		op("BUILD_MAP", 105),
		nameOp("LOAD_ATTR", 106),
		compareOp("COMPARE_OP", 107),
		nameOp("IMPORT_NAME", 108),
		nameOp("IMPORT_FROM", 109),

		jrelOp("JUMP_FORWARD", 110),
		jabsOp("JUMP_IF_FALSE_OR_POP", 111),
		jabsOp("JUMP_IF_TRUE_OR_POP", 112),
		jabsOp("JUMP_ABSOLUTE", 113),
		jabsOp("POP_JUMP_IF_FALSE", 114),
		jabsOp("POP_JUMP_IF_TRUE", 115),
		nameOp("LOAD_GLOBAL", 116),
		jabsOp("CONTINUE_LOOP", 119),
		jrelOp("SETUP_LOOP", 120),
		jrelOp("SETUP_EXCEPT", 121),
		jrelOp("SETUP_FINALLY", 122),

		localOp("LOAD_FAST", 124),
		localOp("STORE_FAST", 125),
		localOp("DELETE_FAST", 126),

		op("RAISE_VARARGS", 130),
		op("CALL_FUNCTION", 131),
		op("MAKE_FUNCTION", 132),
		op("BUILD_SLICE", 133),
		op("MAKE_CLOSURE", 134),
		freeOp("LOAD_CLOSURE", 135),
		freeOp("LOAD_DEREF", 136),
		freeOp("STORE_DEREF", 137),

		op("CALL_FUNCTION_VAR", 140),
		op("CALL_FUNCTION_KW", 141),
		op("CALL_FUNCTION_VAR_KW", 142),
		jrelOp("SETUP_WITH", 143),
		op("EXTENDED_ARG", 145),
		op("SET_ADD", 146),
		op("MAP_ADD", 147),
	}
}

// PyPy 2.7 tracks CPython 2.7's table and claims four codes of its own in
// the high range for its method-call fast path and debug-stripping jump.
func edits27pypy() []Edit {
	return []Edit{
		Define("LOOKUP_METHOD", 201, FlagName),
		Define("CALL_METHOD", 202, 0),
		Define("BUILD_LIST_FROM_ARG", 203, 0),
		Define("JUMP_IF_NOT_DEBUG", 204, FlagJumpRelative),
	}
}
