// Package input is the facade over the input pipeline. An Input wraps
// exactly one backend adapter chosen at construction; callers poll it
// once per frame and receive the canonical, normalized event batch
// without being able to observe which adapter produced it.
//
// The event model lives in input/event, the terminal byte pipeline in
// input/ansi, and the adapters in input/backend.
package input
