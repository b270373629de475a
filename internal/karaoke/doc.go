// Package karaoke synthesizes per-unit fill timing for dual-track karaoke
// cues: native ASR timing per word on the source track, and an even
// per-character split of the sentence span on the translated track.
package karaoke
