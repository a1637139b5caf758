// Package prosecheck implements an English grammar and style checker.
//
// It turns a character stream into a set of structured diagnostics ("lints"),
// each with a span, a category, an advisory message, and zero or more textual
// replacement suggestions. The package is a pure library: it performs no I/O
// and never panics on malformed input - unknown words, unmatched quotes, and
// non-English text are lints, not errors. Lint and parse functions never log;
// logging (see logging.go) is reserved for configuration boundaries like
// ParseLintGroupConfig.
//
// Three subsystems do the work:
//
//   - Tokenization + document model (token.go, tokenizer.go, document.go,
//     markdown.go): turns raw text into a typed token stream and peels
//     host-language syntax (Markdown, code, MDX) away from English prose.
//   - Pattern engine (pattern.go): a composable, backtracking-free matcher
//     over token slices.
//   - Lint group + overlap resolver (lintgroup.go, overlap.go): runs the
//     full rule suite and deduplicates overlapping diagnostics.
package prosecheck
