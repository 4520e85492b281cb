// Package classify assigns exactly one topical category to a feed entry
// using an ordered list of keyword rules.
package classify

import (
	"regexp"
	"strings"
)

// Fallback is returned when no rule matches.
const Fallback = "Polity"

type rule struct {
	re       *regexp.Regexp
	category string
}

// Rule order is priority order and is load-bearing: the first matching
// rule wins and later rules are never consulted. An entry mentioning both
// "GST" and "Bill" is Economy, not Bills & Acts.
var rules = []rule{
	{regexp.MustCompile(`(?i)\b(RBI|repo rate|CPI|WPI|inflation|GST|Budget|Fiscal|GDP|SEBI|bank|NBFC|monetary|bond|yield|FDI)\b`), "Economy"},
	{regexp.MustCompile(`(?i)\b(UN|UNFCCC|BRICS|SCO|G20|bilateral|MoU|agreement|treaty|Indo[- ]?Pacific|MEA|summit|dialogue)\b`), "International Relations"},
	{regexp.MustCompile(`(?i)\b(environment|forest|wildlife|tiger|NTCA|conservation|pollution|climate|emission|biodiversit(y|ies))\b`), "Environment"},
	{regexp.MustCompile(`(?i)\b(ISRO|space|satellite|launch|AI|quantum|semiconductor|science|technology|DST|MeitY|CSIR)\b`), "Science & Tech"},
	{regexp.MustCompile(`(?i)\b(cyclone|flood|earthquake|NDMA|disaster|NDRF|security|border|defence|police|cybersecurity)\b`), "Security/Disaster"},
	{regexp.MustCompile(`(?i)\b(Supreme Court|High Court|SC\b|HC\b|judgment|verdict|order)\b`), "Judgments"},
	{regexp.MustCompile(`(?i)\b(Bill|Act|Amendment|Ordinance|Parliament|Lok Sabha|Rajya Sabha|Gazette)\b`), "Bills & Acts"},
	{regexp.MustCompile(`(?i)\b(Yojana|Mission|Scheme|PM[- ]?[A-Z]|SAMARTH|PM[- ]?KISAN|PMAY|AYUSH|NREGA|Ujjwala|UDAN|Awas)\b`), "Schemes"},
	{regexp.MustCompile(`(?i)\b(UNESCO|heritage|temple|festival|culture|archaeolog(y|ical)|ASI)\b`), "History & Culture"},
	{regexp.MustCompile(`(?i)\b(IMD|monsoon|heatwave|El[- ]?Niño|La[- ]?Niña|river|glacier|plateau|geomorphology|earth|geography)\b`), "Geography"},
	{regexp.MustCompile(`(?i)\b(NITI Aayog|index|report|survey|ranking|scorecard|white paper)\b`), "Reports & Indices"},
	{regexp.MustCompile(`(?i)\b(Cabinet|Constitution|federal|Centre|State|ministry|department|regulation|notification|guideline|policy)\b`), "Polity"},
}

// Classify folds title, summary and the source's display name into one
// lowercase haystack and returns the category of the first matching rule.
func Classify(title, summary, source string) string {
	text := strings.ToLower(title + " " + summary + " " + source)
	for _, r := range rules {
		if r.re.MatchString(text) {
			return r.category
		}
	}
	return Fallback
}
