package planner

// LegacyCode renders code using the source's "return the bitwise-not of
// the result code" convention (spec.md §6, §9). This package's own
// Replan/ReplanWithTimeParameters return plain Code values; LegacyCode is
// offered only for callers that need byte-for-byte compatibility with the
// original C++ return-code contract.
func LegacyCode(code Code) int {
	return ^int(code)
}
