// Package enrich derives the static study-aid strings attached to each
// output item: a per-category analytical angle and quick-recall facts.
package enrich

import (
	"net/url"
	"strings"
)

var mainsAngles = map[string]string{
	"Economy":                 "Inflation–growth, inclusion, fiscal–monetary, reforms implications.",
	"International Relations": "Strategic context for India; treaties, groupings, regional balance.",
	"Environment":             "Conservation vs development; climate resilience; regulatory capacity.",
	"Science & Tech":          "Tech sovereignty, public–private R&D, ethical and strategic issues.",
	"Security/Disaster":       "Preparedness, response, resilience, reforms in institutions.",
	"Judgments":               "Implications for rights, federalism, separation of powers.",
	"Bills & Acts":            "Objectives, key provisions, impact on stakeholders, challenges.",
	"Schemes":                 "Targeting, funding, coverage, leakages, evaluation metrics.",
	"History & Culture":       "Cultural conservation, tourism, livelihoods, identity debates.",
	"Geography":               "Resource distribution, disaster risk, human–environment interactions.",
	"Reports & Indices":       "Methodology, findings, policy takeaways and limitations.",
	"Polity":                  "Governance design, accountability, centre–state dynamics, implementation.",
}

const genericAngle = "Policy relevance and implementation challenges."

// MainsAngle returns the one-sentence analytical angle for a category.
// Classification is closed over the same category set, so the generic
// fallback only fires for labels this package has never heard of.
func MainsAngle(category string) string {
	if angle, ok := mainsAngles[category]; ok {
		return angle
	}
	return genericAngle
}

// Why is the display form of the mains angle used in the output record.
func Why(category string) string {
	return "Mains angle: " + MainsAngle(category)
}

// PrelimsFacts builds the fixed-order fact lines for an item: source,
// date, then the link's domain when the link has a host component.
func PrelimsFacts(feedName, link, date string) []string {
	facts := []string{
		"Source: " + feedName,
		"Date: " + date,
	}
	if host := Domain(link); host != "" {
		facts = append(facts, "Domain: "+host)
	}
	return facts
}

// Domain returns the host of link without a leading www. prefix, or ""
// when the link has no usable host.
func Domain(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}
