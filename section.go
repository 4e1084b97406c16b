package jobtailor

import (
	"regexp"
	"strings"
)

// SectionConfig controls the line-based section scanner used by the
// full-page extraction fallback.
type SectionConfig struct {
	// MaxMisses is how many consecutive non-matching lines end the
	// section once scanning has been triggered.
	MaxMisses int

	// MinLength is the shortest section the scanner considers usable;
	// shorter results are discarded by the caller.
	MinLength int
}

// DefaultSectionConfig returns the scanner configuration used in
// production.
func DefaultSectionConfig() SectionConfig {
	return SectionConfig{
		MaxMisses: 10,
		MinLength: 300,
	}
}

// sectionTriggers start accumulation when found in a line.
var sectionTriggers = []string{
	"responsibilities",
	"requirements",
	"qualifications",
	"job description",
}

var numberedLinePattern = regexp.MustCompile(`^\d+\.`)

// ExtractJobSection scans text line by line for a job-section trigger, then
// accumulates subsequent lines that carry job vocabulary or list markers.
// Scanning stops after MaxMisses consecutive non-matching lines; trailing
// misses are dropped from the result. A later trigger line restarts the
// section. Returns "" when no trigger is found.
func ExtractJobSection(text string, cfg SectionConfig) string {
	var section []string
	triggered := false
	misses := 0
	kept := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if isTriggerLine(lower) {
			triggered = true
			section = section[:0]
			section = append(section, line)
			kept = len(section)
			misses = 0
			continue
		}

		if !triggered {
			continue
		}

		if CountJobWords(line) > 0 ||
			strings.Contains(line, "•") ||
			strings.Contains(line, "-") ||
			numberedLinePattern.MatchString(line) {
			section = append(section, line)
			kept = len(section)
			misses = 0
		} else {
			section = append(section, line)
			misses++
			if misses >= cfg.MaxMisses {
				break
			}
		}
	}

	if !triggered {
		return ""
	}

	// Drop the trailing run of non-matching lines.
	return strings.Join(section[:kept], "\n")
}

func isTriggerLine(lower string) bool {
	for _, trigger := range sectionTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}
