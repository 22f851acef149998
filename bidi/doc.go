// Package bidi mirrors direction sensitive CSS values between left-to-right
// and right-to-left writing contexts.
//
// A value is tokenized with the tdewolff CSS lexer and turned into a small
// node tree (keywords, dimensions, function calls and lists). The property
// name selects one transformer family which rewrites the tree for the
// requested direction: logical sides (start/end) become physical ones,
// four value shorthands swap their horizontal members, offsets flip sign and
// angles are mirrored. Every call is independent, Engine holds no mutable
// state and may be shared between goroutines.
package bidi
