package synth

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestDocumentUnknownCategory(t *testing.T) {
	content := Document("no_such_category", nil)
	if content == "" {
		t.Fatal("expected nonempty fallback content")
	}
	if !strings.Contains(content, "no_such_category") {
		t.Errorf("fallback should name the category, got %q", content)
	}
}

func TestDocumentKnownCategory(t *testing.T) {
	for i := 0; i < 20; i++ {
		content := Document("meeting_notes", nil)
		if content == "" {
			t.Fatal("expected nonempty content")
		}
		// meeting_notes templates have defaults for every placeholder,
		// so none should survive substitution.
		if strings.Contains(content, "{date}") || strings.Contains(content, "{user}") {
			t.Errorf("unsubstituted placeholder in %q", content)
		}
	}
}

func TestDocumentOverridesWin(t *testing.T) {
	for i := 0; i < 20; i++ {
		content := Document("reports", map[string]string{"dept": "Finance"})
		// Two of the three report templates mention the department; when one
		// does, it must be the override.
		if strings.Contains(content, "Department:") && !strings.Contains(content, "Finance") {
			t.Errorf("override not applied: %q", content)
		}
	}
}

func TestSubstituteMissingPlaceholderDegrades(t *testing.T) {
	tmpl := "Hello {name}, your balance is {balance}"
	got := substitute(tmpl, map[string]string{"name": "Ada"})
	if got != tmpl {
		t.Errorf("expected unsubstituted template, got %q", got)
	}
}

func TestSubstituteComplete(t *testing.T) {
	got := substitute("Hello {name}!", map[string]string{"name": "Ada"})
	if got != "Hello Ada!" {
		t.Errorf("expected %q, got %q", "Hello Ada!", got)
	}
}

func TestLogFile(t *testing.T) {
	content := LogFile("security", 100)
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if len(lines) != 100 {
		t.Fatalf("expected 100 entries, got %d", len(lines))
	}
	for _, line := range lines[:5] {
		if !strings.Contains(line, "SECURITY:") {
			t.Errorf("log line missing type tag: %q", line)
		}
		if !strings.Contains(line, "(PID: ") {
			t.Errorf("log line missing PID: %q", line)
		}
	}
}

func TestLogFileUnknownType(t *testing.T) {
	content := LogFile("mystery", 10)
	if content == "" {
		t.Fatal("expected nonempty log content for unknown type")
	}
	if !strings.Contains(content, "MYSTERY:") {
		t.Error("log lines should carry the requested type")
	}
}

func TestPDF(t *testing.T) {
	data, err := PDF("Report_001", "Quarterly figures look strong.")
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("expected PDF header, got %q", data[:8])
	}
}

func TestArchive(t *testing.T) {
	data, err := Archive(7)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 7 {
		t.Errorf("expected 7 members, got %d", len(zr.File))
	}
	if zr.File[0].Name != "file_01.txt" {
		t.Errorf("unexpected member name %q", zr.File[0].Name)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
