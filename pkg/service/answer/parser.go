package answer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
)

// Completions follow a prompted section layout, but models drift: headers
// arrive with or without markdown emphasis, numbering, or trailing colons.
// Parsing is therefore tolerant and every section is optional; a completion
// with no recognizable sections becomes an answer with the full text and a
// heuristic confidence.

var sectionNames = []string{
	"DIRECT ANSWER",
	"KEY FINDINGS",
	"DOCUMENT REFERENCES",
	"CROSS REFERENCES",
	"RECOMMENDATIONS",
	"FOLLOW-UP QUESTIONS",
	"CONFIDENCE",
}

// headerPattern matches a section header on its own line, tolerating
// "## ", "**...**", "3. " prefixes, hyphen/space variants and a trailing
// colon.
var headerPattern = regexp.MustCompile(
	`(?mi)^[#*\s\d.]*(DIRECT ANSWER|KEY FINDINGS|DOCUMENT REFERENCES|CROSS[- ]REFERENCES|RECOMMENDATIONS|FOLLOW[- ]UP QUESTIONS|CONFIDENCE)[*\s]*:?[*\s]*$|^[#*\s\d.]*(DIRECT ANSWER|KEY FINDINGS|DOCUMENT REFERENCES|CROSS[- ]REFERENCES|RECOMMENDATIONS|FOLLOW[- ]UP QUESTIONS|CONFIDENCE)[*\s]*:[*\s]*`,
)

var (
	bulletPattern     = regexp.MustCompile(`^[\s]*(?:[-*•]|\d+[.)])\s*`)
	percentPattern    = regexp.MustCompile(`(\d{1,3})`)
	datePattern       = regexp.MustCompile(`(?i)\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\b(january|february|march|april|may|june|july|august|september|october|november|december)\b\s+\d{4}|\b\d{4}-\d{2}-\d{2}\b`)
	currencyPattern   = regexp.MustCompile(`(?i)[£$€]\s?\d|\b(gbp|usd|eur)\b`)
	boldMarkerPattern = regexp.MustCompile(`\*\*`)
)

// Parse converts a raw model completion into a structured Answer
func Parse(completion string) *model.Answer {
	sections := splitSections(completion)

	ans := &model.Answer{
		Text:               sections["DIRECT ANSWER"],
		KeyFindings:        parseList(sections["KEY FINDINGS"]),
		DocumentReferences: parseList(sections["DOCUMENT REFERENCES"]),
		CrossReferences:    parseList(sections["CROSS REFERENCES"]),
		Recommendations:    parseList(sections["RECOMMENDATIONS"]),
		FollowUpQuestions:  parseList(sections["FOLLOW-UP QUESTIONS"]),
	}

	if ans.Text == "" {
		ans.Text = strings.TrimSpace(completion)
	}

	if conf, ok := parseConfidence(sections["CONFIDENCE"]); ok {
		ans.Confidence = conf
	} else {
		ans.Confidence = estimateConfidence(completion)
	}

	return ans
}

// splitSections cuts the completion at each recognized header and maps the
// canonical section name to the trimmed body that follows it.
func splitSections(completion string) map[string]string {
	sections := make(map[string]string)

	locs := headerPattern.FindAllStringSubmatchIndex(completion, -1)
	for i, loc := range locs {
		var name string
		if loc[2] >= 0 {
			name = completion[loc[2]:loc[3]]
		} else {
			name = completion[loc[4]:loc[5]]
		}
		end := len(completion)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := strings.TrimSpace(completion[loc[1]:end])
		sections[canonicalName(name)] = body
	}

	return sections
}

func canonicalName(raw string) string {
	name := strings.ToUpper(strings.ReplaceAll(raw, "-", " "))
	name = strings.Join(strings.Fields(name), " ")
	for _, canonical := range sectionNames {
		if strings.ReplaceAll(canonical, "-", " ") == name {
			return canonical
		}
	}
	return name
}

// parseList splits a section body into items. Bulleted or numbered lines
// become one item each; a body with no list markers becomes a single item.
func parseList(body string) []string {
	if body == "" {
		return nil
	}

	var items []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = bulletPattern.ReplaceAllString(line, "")
		line = boldMarkerPattern.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

func parseConfidence(body string) (int, bool) {
	m := percentPattern.FindString(body)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return n, true
}

// estimateConfidence scores a completion that carries no explicit
// confidence figure. Specific evidence (dates, money figures, substantial
// length) raises the baseline; the heuristic never exceeds 95 because an
// unstated confidence is never certain.
func estimateConfidence(completion string) int {
	score := 50
	if datePattern.MatchString(completion) {
		score += 10
	}
	if currencyPattern.MatchString(completion) {
		score += 15
	}
	if len(completion) > 2000 {
		score += 10
	}
	if score > 95 {
		score = 95
	}
	return score
}
