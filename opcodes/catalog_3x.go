package opcodes

// Python 3.2 root table, the base of the 3.x line. Matches CPython 3.2's
// opcode module entry for entry.
func defs32() []Opcode {
	return []Opcode{
		op("STOP_CODE", 0),
		op("POP_TOP", 1),
		op("ROT_TWO", 2),
		op("ROT_THREE", 3),
		op("DUP_TOP", 4),
		op("DUP_TOP_TWO", 5),
		op("NOP", 9),

		op("UNARY_POSITIVE", 10),
		op("UNARY_NEGATIVE", 11),
		op("UNARY_NOT", 12),
		op("UNARY_INVERT", 15),

		op("BINARY_POWER", 19),
		op("BINARY_MULTIPLY", 20),
		op("BINARY_MODULO", 22),
		op("BINARY_ADD", 23),
		op("BINARY_SUBTRACT", 24),
		op("BINARY_SUBSCR", 25),
		op("BINARY_FLOOR_DIVIDE", 26),
		op("BINARY_TRUE_DIVIDE", 27),
		op("INPLACE_FLOOR_DIVIDE", 28),
		op("INPLACE_TRUE_DIVIDE", 29),

		op("STORE_MAP", 54),
		op("INPLACE_ADD", 55),
		op("INPLACE_SUBTRACT", 56),
		op("INPLACE_MULTIPLY", 57),
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
		op("STORE_LOCALS", 69),

		op("PRINT_EXPR", 70),
		op("LOAD_BUILD_CLASS", 71),
		op("INPLACE_LSHIFT", 75),
		op("INPLACE_RSHIFT", 76),
		op("INPLACE_AND", 77),
		op("INPLACE_XOR", 78),
		op("INPLACE_OR", 79),
		op("BREAK_LOOP", 80),
		op("WITH_CLEANUP", 81),
		op("RETURN_VALUE", 83),
		op("IMPORT_STAR", 84),
		op("YIELD_VALUE", 86),
		op("POP_BLOCK", 87),
		op("END_FINALLY", 88),
		op("POP_EXCEPT", 89),

		nameOp("STORE_NAME", 90),
		nameOp("DELETE_NAME", 91),
		op("UNPACK_SEQUENCE", 92),
		jrelOp("FOR_ITER", 93),
		op("UNPACK_EX", 94),
		nameOp("STORE_ATTR", 95),
		nameOp("DELETE_ATTR", 96),
		nameOp("STORE_GLOBAL", 97),
		nameOp("DELETE_GLOBAL", 98),
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
		freeOp("DELETE_DEREF", 138),

		op("CALL_FUNCTION_VAR", 140),
		op("CALL_FUNCTION_KW", 141),
		op("CALL_FUNCTION_VAR_KW", 142),
		jrelOp("SETUP_WITH", 143),
		op("EXTENDED_ARG", 144),
		op("LIST_APPEND", 145),
		op("SET_ADD", 146),
		op("MAP_ADD", 147),
	}
}

// 3.3: generator delegation arrives, the long-dead STOP_CODE goes.
func edits33() []Edit {
	return []Edit{
		Remove("STOP_CODE", 0),
		Define("YIELD_FROM", 72, FlagNoArg),
	}
}

// 3.4: the implicit class argument is gone; LOAD_CLASSDEREF handles
// class-body closures instead.
func edits34() []Edit {
	return []Edit{
		Remove("STORE_LOCALS", 69),
		Define("LOAD_CLASSDEREF", 148, FlagFree),
	}
}

// 3.5: async/await and the unpacking generalizations. WITH_CLEANUP splits
// in two and keeps its old code for the START half, an intentional reuse
// spelled as a redefine.
func edits35() []Edit {
	return []Edit{
		Remove("STORE_MAP", 54),
		Define("BINARY_MATRIX_MULTIPLY", 16, FlagNoArg),
		Define("INPLACE_MATRIX_MULTIPLY", 17, FlagNoArg),
		Define("GET_AITER", 50, FlagNoArg),
		Define("GET_ANEXT", 51, FlagNoArg),
		Define("BEFORE_ASYNC_WITH", 52, FlagNoArg),
		Define("GET_YIELD_FROM_ITER", 69, FlagNoArg),
		Define("GET_AWAITABLE", 73, FlagNoArg),
		Redefine("WITH_CLEANUP_START", 81, FlagNoArg),
		Define("WITH_CLEANUP_FINISH", 82, FlagNoArg),
		Define("BUILD_LIST_UNPACK", 149, 0),
		Define("BUILD_MAP_UNPACK", 150, 0),
		Define("BUILD_MAP_UNPACK_WITH_CALL", 151, 0),
		Define("BUILD_TUPLE_UNPACK", 152, 0),
		Define("BUILD_SET_UNPACK", 153, 0),
		Define("SETUP_ASYNC_WITH", 154, FlagJumpRelative),
	}
}

// 3.6: wordcode, f-strings, and the CALL_FUNCTION_VAR* pair collapses into
// CALL_FUNCTION_EX.
func edits36() []Edit {
	return []Edit{
		Remove("MAKE_CLOSURE", 134),
		Remove("CALL_FUNCTION_VAR", 140),
		Remove("CALL_FUNCTION_VAR_KW", 142),
		Define("SETUP_ANNOTATIONS", 85, FlagNoArg),
		Define("STORE_ANNOTATION", 127, FlagName),
		Define("CALL_FUNCTION_EX", 142, 0),
		Define("FORMAT_VALUE", 155, 0),
		Define("BUILD_CONST_KEY_MAP", 156, 0),
		Define("BUILD_STRING", 157, 0),
		Define("BUILD_TUPLE_UNPACK_WITH_CALL", 158, 0),
	}
}

// 3.7: method-call fast path; STORE_ANNOTATION lasted one release.
func edits37() []Edit {
	return []Edit{
		Remove("STORE_ANNOTATION", 127),
		Define("LOAD_METHOD", 160, FlagName),
		Define("CALL_METHOD", 161, 0),
	}
}

// 3.8: the loop block stack goes away, finally handling moves to explicit
// opcodes.
func edits38() []Edit {
	return []Edit{
		Remove("BREAK_LOOP", 80),
		Remove("CONTINUE_LOOP", 119),
		Remove("SETUP_LOOP", 120),
		Remove("SETUP_EXCEPT", 121),
		Define("ROT_FOUR", 6, FlagNoArg),
		Define("BEGIN_FINALLY", 53, FlagNoArg),
		Define("END_ASYNC_FOR", 54, FlagNoArg),
		Define("CALL_FINALLY", 162, FlagJumpRelative),
		Define("POP_FINALLY", 163, 0),
	}
}
