package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainsAngleKnownCategory(t *testing.T) {
	assert.Equal(t,
		"Inflation–growth, inclusion, fiscal–monetary, reforms implications.",
		MainsAngle("Economy"))
	assert.Equal(t,
		"Governance design, accountability, centre–state dynamics, implementation.",
		MainsAngle("Polity"))
}

func TestMainsAngleFallback(t *testing.T) {
	assert.Equal(t, "Policy relevance and implementation challenges.", MainsAngle("No Such Category"))
	assert.Equal(t, "Policy relevance and implementation challenges.", MainsAngle(""))
}

func TestWhyPrefix(t *testing.T) {
	assert.Equal(t, "Mains angle: "+MainsAngle("Economy"), Why("Economy"))
}

func TestPrelimsFactsOrder(t *testing.T) {
	facts := PrelimsFacts("PIB Press Releases (English)", "https://pib.gov.in/x", "2026-08-29")
	assert.Equal(t, []string{
		"Source: PIB Press Releases (English)",
		"Date: 2026-08-29",
		"Domain: pib.gov.in",
	}, facts)
}

func TestPrelimsFactsStripsWWW(t *testing.T) {
	facts := PrelimsFacts("MEA", "https://www.mea.gov.in/press", "2026-08-29")
	assert.Contains(t, facts, "Domain: mea.gov.in")
}

func TestPrelimsFactsNoDomainLine(t *testing.T) {
	// Empty and relative links have no host, so no Domain line.
	assert.Len(t, PrelimsFacts("PIB", "", "2026-08-29"), 2)
	assert.Len(t, PrelimsFacts("PIB", "/press/release/1", "2026-08-29"), 2)
}

func TestDomain(t *testing.T) {
	assert.Equal(t, "pib.gov.in", Domain("https://pib.gov.in/PressRelease.aspx?id=1"))
	assert.Equal(t, "pib.gov.in", Domain("https://www.pib.gov.in/x"))
	assert.Equal(t, "", Domain("not a url ::"))
	assert.Equal(t, "", Domain(""))
}
