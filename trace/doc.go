// Package trace generates ordered, human-inspectable traces of every
// transform stage, for explanatory rendering by a front end.
//
// A trace mirrors the codec's own pipeline (bytes → bits → groups →
// symbols and the reverse) and is rebuilt from the codec's exported
// helpers rather than re-implementing the bit packing, so the explanation
// and the transform cannot fall out of sync.
//
// The generators never fail: any internal error yields a single failure
// stage at index 0 carrying the error message, so callers always receive
// something renderable. Traces have no effect on encode/decode
// correctness and no state survives a call.
package trace
