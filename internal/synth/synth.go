package synth

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/seedbed-io/seedbed/internal/catalog"
)

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Document returns realistic content for the given template category.
// A template is picked uniformly at random and its {name} placeholders are
// filled from generated defaults merged under the caller's overrides
// (overrides win). An unknown category yields a generic fallback payload.
func Document(category string, overrides map[string]string) string {
	templates, ok := catalog.DocumentTemplates[category]
	if !ok || len(templates) == 0 {
		return fmt.Sprintf("Sample content for %s\nGenerated on: %s",
			category, time.Now().Format("2006-01-02 15:04:05"))
	}

	tmpl := templates[rand.IntN(len(templates))]

	vars := defaultVars()
	for k, v := range overrides {
		vars[k] = v
	}

	return substitute(tmpl, vars)
}

// substitute replaces every {name} placeholder in tmpl with its value from
// vars. If any placeholder has no value the template is returned untouched;
// one malformed template must not fail an entire partition.
func substitute(tmpl string, vars map[string]string) string {
	for _, match := range placeholderRe.FindAllStringSubmatch(tmpl, -1) {
		if _, ok := vars[match[1]]; !ok {
			return tmpl
		}
	}
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(m string) string {
		return vars[m[1:len(m)-1]]
	})
}

// defaultVars generates the standard placeholder values: dates within the
// past year, currency figures, names, and percentages.
func defaultVars() map[string]string {
	date := time.Now().AddDate(0, 0, -rand.IntN(366))

	attendees := sample(catalog.Users, 3+rand.IntN(6))

	return map[string]string{
		"date":        date.Format("2006-01-02"),
		"user":        catalog.Users[rand.IntN(len(catalog.Users))],
		"dept":        catalog.Departments[rand.IntN(len(catalog.Departments))],
		"quarter":     strconv.Itoa(1 + rand.IntN(4)),
		"year":        strconv.Itoa(2022 + rand.IntN(3)),
		"month":       catalog.Months[rand.IntN(len(catalog.Months))],
		"revenue":     formatAmount(50000 + rand.IntN(450001)),
		"revenue2":    formatAmount(30000 + rand.IntN(170001)),
		"revenue3":    formatAmount(20000 + rand.IntN(130001)),
		"revenue4":    formatAmount(10000 + rand.IntN(90001)),
		"customers":   strconv.Itoa(50 + rand.IntN(951)),
		"growth":      strconv.Itoa(-10 + rand.IntN(36)),
		"attendees":   strings.Join(attendees, ", "),
		"trend":       catalog.Trends[rand.IntN(len(catalog.Trends))],
		"client":      fmt.Sprintf("Client_%d", 1000+rand.IntN(9000)),
		"contract_no": fmt.Sprintf("CNT-%d", 10000+rand.IntN(90000)),
		"company":     catalog.CompanyName,
	}
}

// LogFile generates a log file body of the given entry count for a log type,
// with timestamps spread over the past 90 days.
func LogFile(logType string, entries int) string {
	messages, ok := catalog.LogMessages[logType]
	if !ok {
		messages = catalog.GenericLogMessages
	}

	start := time.Now().AddDate(0, 0, -90)
	var b strings.Builder
	for i := 0; i < entries; i++ {
		ts := start.Add(time.Duration(rand.Int64N(int64(90 * 24 * time.Hour))))
		level := catalog.LogLevels[rand.IntN(len(catalog.LogLevels))]
		msg := messages[rand.IntN(len(messages))]
		fmt.Fprintf(&b, "%s [%s] %s: %s (PID: %d)\n",
			ts.Format("2006-01-02 15:04:05.000"),
			level,
			strings.ToUpper(logType),
			msg,
			1000+rand.IntN(9000),
		)
	}
	return b.String()
}

// TempFile generates the body of a temp file for the given index.
func TempFile(index int) string {
	return fmt.Sprintf("Temporary file %d\nCreated: %s\nSize: %d bytes",
		index,
		time.Now().Format("2006-01-02 15:04:05"),
		1024+rand.IntN(1048576-1024+1),
	)
}

// CacheFile generates the body of an application cache file.
func CacheFile(index int) string {
	app := catalog.CacheApplications[rand.IntN(len(catalog.CacheApplications))]
	return fmt.Sprintf("Cache data %d\nApplication: %s", index, app)
}

// DeletedFile generates the body of a to-be-deleted file.
func DeletedFile(category, filename string) string {
	reason := catalog.DeleteReasons[rand.IntN(len(catalog.DeleteReasons))]
	return fmt.Sprintf("DELETED FILE - %s\nOriginal name: %s\nCategory: %s\nDeleted: %s\nReason: %s\n\nThis file contained sensitive information and was deleted for security reasons.",
		strings.ToUpper(category), filename, category,
		time.Now().Format("2006-01-02 15:04:05"), reason)
}

// formatAmount renders an integer with thousands separators (1234567 ->
// "1,234,567").
func formatAmount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// sample returns n distinct random elements from list (all of them if n
// exceeds the list length).
func sample(list []string, n int) []string {
	if n >= len(list) {
		n = len(list)
	}
	idx := rand.Perm(len(list))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = list[j]
	}
	return out
}
