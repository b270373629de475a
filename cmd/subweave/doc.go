// Command subweave aligns bilingual sentence pairs against a word-level
// transcript and emits SRT and karaoke subtitle files.
package main
