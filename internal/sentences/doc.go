// Package sentences models the ordered (source, translated) sentence pairs
// consumed by alignment and prepares translated text for subtitle display.
package sentences
