package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOneSamplePerCategory(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		summary  string
		source   string
		expected string
	}{
		{"economy", "RBI hikes repo rate by 25 bps", "", "PIB", "Economy"},
		{"international relations", "India, Japan sign bilateral treaty", "", "PIB", "International Relations"},
		{"environment", "Tiger conservation drive in forest reserves", "", "PIB", "Environment"},
		{"science and tech", "ISRO completes satellite launch", "", "PIB", "Science & Tech"},
		{"security disaster", "Cyclone warning issued, NDRF teams deployed", "", "PIB", "Security/Disaster"},
		{"judgments", "Supreme Court delivers verdict on electoral bonds case", "", "PIB", "Judgments"},
		{"bills and acts", "Parliament passes the Amendment", "", "PIB", "Bills & Acts"},
		{"schemes", "PM-KISAN payout reaches ten crore beneficiaries", "", "PIB", "Schemes"},
		{"history and culture", "UNESCO heritage tag sought for ancient temple", "", "PIB", "History & Culture"},
		{"geography", "IMD forecasts above-normal monsoon", "", "PIB", "Geography"},
		{"reports and indices", "NITI Aayog releases innovation ranking", "", "PIB", "Reports & Indices"},
		{"polity keywords", "Cabinet approves notification on new guideline", "", "PIB", "Polity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.title, tc.summary, tc.source))
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Economy outranks Bills & Acts even though both match.
	got := Classify("GST Amendment Bill introduced", "", "")
	assert.Equal(t, "Economy", got)

	// International Relations outranks History & Culture.
	got = Classify("Bilateral agreement on shared heritage sites", "", "")
	assert.Equal(t, "International Relations", got)
}

func TestClassifyFallback(t *testing.T) {
	assert.Equal(t, Fallback, Classify("Village fair draws record crowds", "", ""))
	assert.Equal(t, "Polity", Classify("", "", ""))
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Economy", Classify("rbi cuts rates", "", ""))
	assert.Equal(t, "Economy", Classify("INFLATION eases in July", "", ""))
}

func TestClassifyWholeWordMatching(t *testing.T) {
	// "AI" must not match inside "said", "UN" must not match inside "UNESCO".
	assert.Equal(t, Fallback, Classify("He said nothing new", "", ""))
	assert.Equal(t, "History & Culture", Classify("UNESCO lists new cultural site", "", ""))
}

func TestClassifyUsesSummaryAndSource(t *testing.T) {
	// Keywords anywhere in the combined text count.
	assert.Equal(t, "Economy", Classify("Weekly roundup", "SEBI tightens disclosure norms", ""))
	assert.Equal(t, "International Relations", Classify("Weekly roundup", "", "MEA Press Releases"))
}

func TestClassifyDeterministic(t *testing.T) {
	title, summary, source := "Supreme Court order on GST refunds", "", "PIB"
	first := Classify(title, summary, source)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(title, summary, source))
	}
	// GST (Economy, priority 1) wins over Supreme Court (Judgments, priority 6).
	assert.Equal(t, "Economy", first)
}
