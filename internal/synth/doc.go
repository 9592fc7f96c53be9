// Package synth generates document payloads for the corpus.
//
// Generation is pure with respect to the filesystem: given a category and
// optional overrides it returns bytes, never touching disk or network.
// Content must never abort a batch, so every failure path degrades to a safe
// payload: an unknown category yields a generic fallback, and a template
// referencing a placeholder with no value is returned unsubstituted rather
// than failing the partition.
//
// # Usage
//
//	content := synth.Document("reports", map[string]string{"dept": "Finance"})
//	logData := synth.LogFile("security", 500)
//	pdfData, err := synth.PDF("Report_001", content)
package synth
