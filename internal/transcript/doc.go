// Package transcript models word-level ASR output and loads it from the
// JSON shapes emitted by common transcription backends.
package transcript
