package outline

import (
	"strings"
)

// Classify tags a single raw outline line. Blank lines are noise; lines that
// match no rule are [KindUnrecognized]. Classify never fails.
func Classify(raw string) Line {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Line{Kind: KindNoise, Rule: "blank"}
	}
	for _, rule := range Rules {
		m := rule.Pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		l := rule.Extract(m)
		l.Rule = rule.Name
		return l
	}
	return Line{Kind: KindUnrecognized}
}
