package magics

import "strings"

// The known-magics catalog.
//
// This is a versioned changelog: historical entries are load-bearing for
// old compiled artifacts, so extend it by appending, never by editing or
// reordering what is already here. The magic word bumps by ten per format
// change for CPython (odd values, spaced so the -U interpreter flag's
// MAGIC+1 stays unambiguous); PyPy adds seven to the CPython word it
// tracks; the small word values at the bottom are the oddballs PyPy and
// Graal shipped on their own.

type magicEntry struct {
	word    int
	version string
}

var knownMagics = []magicEntry{
	{39170, "1.0"},
	{39171, "1.1"}, // covers 1.2 as well
	{11913, "1.3"},
	{5892, "1.4"},
	{20121, "1.5"}, // 1.5.1, 1.5.2
	{50428, "1.6"},

	{50823, "2.0"}, // 2.0, 2.0.1
	{60202, "2.1"}, // 2.1, 2.1.1, 2.1.2
	{60717, "2.2"},

	// Two magics, one version.
	{62011, "2.3a0"},
	{62021, "2.3a0"},

	{62041, "2.4a0"},
	{62051, "2.4a3"},
	{62061, "2.4b1"},
	{62071, "2.5a0"},
	{62081, "2.5a0"}, // ast-branch
	{62091, "2.5a0"}, // with
	{62092, "2.5a0"}, // changed WITH_CLEANUP opcode
	{62101, "2.5b3"}, // fix wrong code: for x, in ...
	{62111, "2.5b3"}, // fix wrong code: x += yield
	{62121, "2.5c1"}, // fix wrong lnotab with for loops
	{62131, "2.5c2"}, // fix wrong code: "for x, in ..." in listcomp/genexp

	// Dropbox-modified Python 2.5 used in Dropbox 1.1x and before
	{62135, "2.5dropbox"},

	{62151, "2.6a0"}, // peephole optimizations & STORE_MAP
	{62161, "2.6a1"}, // WITH_CLEANUP optimization

	{62171, "2.7a0"},   // optimize list comprehensions, change LIST_APPEND
	{62181, "2.7a0+1"}, // introduce POP_JUMP_IF_FALSE and POP_JUMP_IF_TRUE
	{62191, "2.7a0+2"}, // introduce SETUP_WITH
	{62201, "2.7a0+3"}, // introduce BUILD_SET
	{62211, "2.7"},     // introduce MAP_ADD and SET_ADD

	{2657, "2.7pyston-0.6.1"},

	// PyPy adds 7 to the corresponding CPython word
	{62211 + 7, "2.7pypy"},

	{3000, "3.000"},
	{3010, "3.000+1"}, // removed UNARY_CONVERT
	{3020, "3.000+2"}, // added BUILD_SET
	{3030, "3.000+3"}, // added keyword-only parameters
	{3040, "3.000+4"}, // added signature annotations
	{3050, "3.000+5"}, // print becomes a function
	{3060, "3.000+6"}, // PEP 3115 metaclass syntax
	{3061, "3.000+7"}, // string literals become unicode
	{3071, "3.000+8"}, // PEP 3109 raise changes
	{3081, "3.000+9"}, // PEP 3137 make __file__ and __name__ unicode
	{3091, "3.000+10"}, // kill str8 interning
	{3101, "3.000+11"}, // merge from 2.6a0, see 62151
	{3103, "3.000+12"}, // __file__ points to source file
	{3111, "3.0a4"},   // WITH_CLEANUP optimization
	{3131, "3.0a5"},   // lexical exception stacking, including POP_EXCEPT
	{3141, "3.1a0"},   // optimize list, set and dict comprehensions
	{3151, "3.1a0+"},  // optimize conditional branches
	{3160, "3.2a0"},   // add SETUP_WITH
	{3170, "3.2a1"},   // add DUP_TOP_TWO, remove DUP_TOPX and ROT_FOUR
	{3180, "3.2a2"},   // add DELETE_DEREF

	// Python 3.2.5 - PyPy 2.3.4
	{3180 + 7, "3.2pypy"},

	{3190, "3.3a0"},  // __class__ super closure changed
	{3200, "3.3a0+"}, // __qualname__ added
	{3220, "3.3a1"},  // changed PEP 380 implementation
	{3210, "3.3a2"},  // added size modulo 2**32 to the pyc header
	{3230, "3.3a4"},  // revert changes to implicit __class__ closure

	{3250, "3.4a1"},   // evaluate positional default args before keyword-only defaults
	{3260, "3.4a1+1"}, // add LOAD_CLASSDEREF
	{3270, "3.4a1+2"}, // various tweaks to the __class__ closure
	{3280, "3.4a1+3"}, // remove implicit class argument
	{3290, "3.4a4"},   // changes to __qualname__ computation
	{3300, "3.4a4+"},  // more changes to __qualname__ computation
	{3310, "3.4rc2"},  // alter __qualname__ computation

	{3320, "3.5a0"},  // matrix multiplication operator
	{3330, "3.5b1"},  // PEP 448: additional unpacking generalizations
	{3340, "3.5b2"},  // fix dictionary display evaluation order
	{3350, "3.5"},    // add GET_YIELD_FROM_ITER opcode (also 3.5b2)
	{3351, "3.5.2"},  // fix BUILD_MAP_UNPACK_WITH_CALL; 3.5.3, 3.5.4, 3.5.5

	{3360, "3.6a0"},   // add FORMAT_VALUE opcode
	{3361, "3.6a0+1"}, // lineno delta of code.co_lnotab becomes signed
	{3370, "3.6a1"},   // 16 bit wordcode
	{3371, "3.6a1+1"}, // add BUILD_CONST_KEY_MAP opcode
	{3372, "3.6a1+2"}, // MAKE_FUNCTION simplification, remove MAKE_CLOSURE
	{3373, "3.6b1"},   // add BUILD_STRING opcode
	{3375, "3.6b1+1"}, // add SETUP_ANNOTATIONS and STORE_ANNOTATION opcodes
	{3376, "3.6b1+2"}, // simplify CALL_FUNCTION* & BUILD_MAP_UNPACK_WITH_CALL
	{3377, "3.6b1+3"}, // set __class__ cell from type.__new__
	{3378, "3.6b2"},   // add BUILD_TUPLE_UNPACK_WITH_CALL
	{3379, "3.6rc1"},  // more thorough __class__ validation

	{3390, "3.7.0alpha0"}, // add LOAD_METHOD and CALL_METHOD opcodes
	{3391, "3.7.0alpha3"}, // update GET_AITER
	{3392, "3.7.0beta2"},  // initial PEP 552, deterministic pycs
	{3393, "3.7.0beta3"},  // final PEP 552, remove STORE_ANNOTATION opcode
	{3394, "3.7.0"},       // restore docstring as the first stmt in the body

	{3400, "3.8.0a1"},    // move frame block handling to compiler
	{3401, "3.8.0a3+"},   // add END_ASYNC_FOR
	{3410, "3.8.0a1+"},   // PEP 570 positional-only parameters
	{3411, "3.8.0b2+"},   // reverse evaluation order of key: value in dict comprehensions
	{3412, "3.8.0beta2"}, // swap positional args and positional-only args in ast.arguments
	{3413, "3.8.0rc1+"},  // fix "break" and "continue" in "finally"

	{3420, "3.9.0a0"},     // add LOAD_ASSERTION_ERROR
	{3421, "3.9.0a0"},     // simplified bytecode for with blocks
	{3422, "3.9.0alpha1"}, // remove BEGIN_FINALLY, END_FINALLY, CALL_FINALLY, POP_FINALLY
	{3423, "3.9.0a0"},     // add IS_OP, CONTAINS_OP and JUMP_IF_NOT_EXC_MATCH
	{3424, "3.9.0a2"},     // simplify bytecodes for *value unpacking
	{3425, "3.9.0beta5"},  // simplify bytecodes for **value unpacking

	{3430, "3.10a1"},    // make 'annotations' future by default
	{3431, "3.10a1"},    // new line number table format, PEP 626
	{3432, "3.10a2"},    // function annotation for MAKE_FUNCTION changed from dict to tuple
	{3433, "3.10a2"},    // RERAISE restores f_lasti if oparg != 0
	{3434, "3.10a6"},
	{3435, "3.10a7"},
	{3438, "3.10b1"},
	{3439, "3.10.0rc2"},

	{3450, "3.11a1a"},
	{3451, "3.11a1b"},
	{3452, "3.11a1c"},
	{3453, "3.11a1d"},
	{3454, "3.11a1e"},
	{3455, "3.11a1f"},
	{3457, "3.11a1g"},
	{3458, "3.11a1h"},
	{3459, "3.11a1i"},
	{3460, "3.11a1j"},
	{3461, "3.11a1k"},
	{3462, "3.11a2"},
	{3463, "3.11a3a"},
	{3464, "3.11a3b"},
	{3465, "3.11a4a"},
	{3466, "3.11a4b"},
	{3466, "3.11a4c"}, // same word registered twice: forward lookup keeps 3.11a4c
	{3467, "3.11a4d"},
	{3468, "3.11a4e"},
	{3469, "3.11a4f"},
	{3470, "3.11a4g"},
	{3471, "3.11a4h"},
	{3472, "3.11a4i"},
	{3473, "3.11a4j"},
	{3474, "3.11a4k"},
	{3475, "3.11a5a"},
	{3476, "3.11a5b"},
	{3477, "3.11a5c"},
	{3478, "3.11a5d"},
	{3479, "3.11a5e"},
	{3480, "3.11a5e"}, // second word for the same pre-release tag
	{3481, "3.11a5f"},
	{3482, "3.11a5g"},
	{3483, "3.11a5h"},
	{3484, "3.11a5i"},
	{3485, "3.11a5j"},
	{3486, "3.11a6a"},
	{3487, "3.11a6b"},
	{3488, "3.11a6c"},
	{3489, "3.11a6d"},
	{3490, "3.11a6d"}, // second word for the same pre-release tag
	{3491, "3.11a7a"},
	{3492, "3.11a7b"},
	{3493, "3.11a7c"},
	{3494, "3.11a7d"},
	{3495, "3.11a7e"},
	{3531, "3.12.0rc2"},

	// Oddball words: 3.2.5 era PyPy and later PyPys picked small values of
	// their own instead of tracking CPython.
	{48, "3.2a2"},
	{64, "3.3pypy"},
	{112, "3.5pypy"},   // pypy3.5-c-jit-latest
	{160, "3.6.1pypy"}, // 3.6.1 PyPy 7.1.0-beta0
	{192, "3.6pypy"},   // 3.6.9 PyPy 7.1.0-beta0
	{224, "3.7pypy"},   // PyPy 3.7.9-beta0
	{240, "3.7pypy"},   // PyPy 3.7.9-beta0
	{256, "3.8pypy"},   // PyPy 3.8.15
	{336, "3.9pypy"},   // PyPy 3.9.15, PyPy 3.9.17
	{384, "3.10pypy"},  // PyPy 3.10.12

	// JVM bytecode, not Python bytecode
	{21150, "3.8.5Graal"},

	{1011, "2.7.1b3Jython"},
	{22138, "2.7.7Pyston"}, // 2.7.8pyston, pyston-0.6.0
}

// Release spellings grouped by the canonical version of their compatibility
// class. Append new groups; a spelling bound twice keeps its last binding.
var canonicAliases = []struct {
	canonical string
	spellings string
}{
	{"1.5", "1.5.1 1.5.2"},
	{"2.0", "2.0.1"},
	{"2.1", "2.1.1 2.1.2 2.1.3"},
	{"2.2", "2.2.3"},
	{"2.3a0", "2.3 2.3.7"},
	{"2.4b1", "2.4 2.4.0 2.4.1 2.4.2 2.4.3 2.4.5 2.4.6"},
	{"2.5c2", "2.5 2.5.0 2.5.1 2.5.2 2.5.3 2.5.4 2.5.5 2.5.6"},
	{"2.6a1", "2.6 2.6.6 2.6.7 2.6.8 2.6.9"},
	{"2.7",
		"2.7.0 2.7.1 2.7.2 2.7.3 2.7.4 2.7.5 2.7.6 2.7.7 " +
			"2.7.8 2.7.9 2.7.10 2.7.11 2.7.12 2.7.13 2.7.14 2.7.15 " +
			"2.7.15candidate1 " +
			"2.7.16 " +
			"2.7.17rc1 2.7.17candidate1 2.7.17 2.7.18 2.7.18candidate1"},
	{"3.0a5", "3.0 3.0.0 3.0.1"},
	{"3.1a0+", "3.1 3.1.0 3.1.1 3.1.2 3.1.3 3.1.4 3.1.5"},
	{"3.2a2", "3.2 3.2.0 3.2.1 3.2.2 3.2.3 3.2.4 3.2.5 3.2.6"},
	{"3.3a4", "3.3 3.3.0 3.3.1 3.3.2 3.3.3 3.3.4 3.3.5 3.3.6 3.3.7rc1 3.3.7"},
	{"3.4rc2", "3.4 3.4.0 3.4.1 3.4.2 3.4.3 3.4.4 3.4.5 3.4.6 3.4.7 3.4.8 3.4.9 3.4.10"},
	{"3.5", "3.5.0 3.5.1"},
	{"3.5.2", "3.5.3 3.5.4 3.5.5 3.5.6 3.5.7 3.5.8 3.5.9 3.5.10"},
	{"3.6rc1",
		"3.6b2 3.6 3.6.0 3.6.1 3.6.2 3.6.3 3.6.4 3.6.5 3.6.6 3.6.7 3.6.8 " +
			"3.6.9 3.6.10 3.6.11 3.6.12 3.6.13 3.6.14 3.6.15"},
	{"3.7.0beta3", "3.7b1"},
	{"3.8.0beta2", "3.8a1"},
	{"2.7pypy", "2.7.10pypy 2.7.12pypy 2.7.13pypy 2.7.18pypy"},
	{"2.7.1b3Jython", "2.7.3b0Jython"},
	{"3.8.5Graal", "3.8.5Graal"},
	{"3.2pypy", "3.2.5pypy"},
	{"3.3pypy", "3.3.5pypy"},
	{"3.5pypy", "3.5.3pypy"},
	{"3.6pypy", "3.6.9pypy"},
	{"3.7pypy", "3.7.0pypy 3.7.9pypy 3.7.10pypy 3.7.12pypy 3.7.13pypy"},
	// PyPy 3.8 shipped on CPython 3.8's final format, so its spellings
	// resolve straight to the CPython canonical (no alias chains).
	{"3.8.0rc1+", "3.8.0pypy 3.8pypy 3.8.12pypy 3.8.13pypy 3.8.15pypy 3.8.16pypy"},
	{"3.9.0alpha1", "3.9.15pypy"},
	{"2.7.7Pyston", "2.7.8Pyston"},
	{"3.7.0alpha3", "3.7.0alpha3"},
	{"3.7.0",
		"3.7 3.7.0beta5 3.7.1 3.7.2 3.7.3 3.7.4 3.7.5 3.7.6 3.7.7 3.7.8 3.7.9 " +
			"3.7.10 3.7.11 3.7.12 3.7.13 3.7.14 3.7.15 3.7.16 3.7.17"},
	{"3.8.0a3+", "3.8.0alpha0 3.8.0alpha3 3.8.0a0"},
	{"3.8.0rc1+",
		"3.8b4 3.8.0candidate1 3.8 3.8.0 3.8.1 3.8.2 3.8.3 3.8.4 3.8.5 3.8.6 3.8.7 3.8.8 " +
			"3.8.9 3.8.10 3.8.11 3.8.12 3.8.13 3.8.14 3.8.15 3.8.16 3.8.17 3.8.18"},
	{"3.9.0alpha1", "3.9 3.9.0 3.9.0a1+ 3.9.0a2+ 3.9.0alpha2"},
	{"3.9.0beta5",
		"3.9 3.9.0 3.9.1 3.9.2 3.9.3 3.9.4 3.9.5 3.9.6 3.9.7 3.9.8 3.9.9 3.9.10 3.9.11 " +
			"3.9.12 3.9.13 3.9.14 3.9.15 3.9.16 3.9.10pypy 3.9.11pypy 3.9.12pypy " +
			"3.9.15pypy 3.9.16pypy 3.9.0b5+ 3.9.17 3.9.18"},
	{"3.10.0rc2",
		"3.10 3.10.0 3.10.1 3.10.2 3.10.3 3.10.4 3.10.5 3.10.6 3.10.7 3.10.8 3.10.9 " +
			"3.10.10 3.10.11 3.10.12 3.10.13"},
	{"3.9pypy", "3.9.17pypy"},
	{"3.10pypy", "3.10.12pypy"},
	{"3.11a7e", "3.11 3.11.0 3.11.1 3.11.2 3.11.3 3.11.4 3.11.5"},
	{"3.12.0rc2", "3.12 3.12.0"},
}

// Load builds the magic registry from the compiled-in catalog.
func Load() (*Registry, error) {
	b := NewBuilder()
	for _, e := range knownMagics {
		b.Register(e.word, e.version)
	}
	for _, g := range canonicAliases {
		if err := b.Aliases(g.canonical, strings.Fields(g.spellings)...); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}
