// Package fern implements the lexical front end for the Fern configuration
// language. The tokenizer turns raw UTF-8 source text into a stream of
// position-annotated tokens covering:
//   - Keywords (`let`, `in`, `forall`, `if`/`then`/`else`, the builtin type
//     names, and the slash-qualified builtins like `Natural/fold`).
//   - Punctuation and operators, including the `->`/`→`, `\`/`λ`, and
//     `forall`/`∀` spelling pairs.
//   - Literals: double-quoted text with backslash escapes, unbounded
//     naturals written `+123`, bare unbounded numbers, and 64-bit doubles.
//   - Filesystem paths (`/…`, `./…`, `../…`) and http(s) URLs, carried as
//     opaque decoded text for the import resolver.
//   - Labels: bare identifiers or parenthesized operator symbols like
//     `(&&)`.
//
// Comments beginning with `--` run to end of line and are discarded.
// Scanning is maximal munch over an ordered rule table: the longest match
// wins and ties go to the earlier rule. Parsing, type checking, evaluation,
// and import fetching all live downstream; this package only produces the
// token stream and structured lexical errors.
package fern
