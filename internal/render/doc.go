// Package render formats aligned sentences into subtitle markup: flat SRT
// files for configurable column combinations, and a dual-track ASS karaoke
// script with embedded per-unit fill codes.
package render
