//nolint:testpackage // exercises the unexported indicator sets
package classifier

import "testing"

func TestCountIndicators(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantReal      int
		wantFake      int
		wantNotPolicy int
	}{
		{
			name:     "official english text",
			text:     "Government of Nepal, Ministry of Finance, budget for the fiscal year approved by the cabinet",
			wantReal: 5,
		},
		{
			name:     "fake urgency text",
			text:     "URGENT! Share this secret message, forward this before government deletes it",
			wantFake: 5,
		},
		{
			name:          "sports text",
			text:          "Nepal cricket team beat UAE, football fans celebrated despite the weather",
			wantNotPolicy: 3,
		},
		{
			name:     "nepali official text",
			text:     "नेपाल सरकारले आर्थिक वर्षको बजेट घोषणा गर्दै नयाँ नीति ल्याएको छ",
			wantReal: 5,
		},
		{
			name:     "nepali fake text",
			text:     "तत्काल! यो गोप्य जानकारी सबैलाई सेयर गर्नुहोस्",
			wantFake: 3,
		},
		{
			name: "no indicators",
			text: "The quick brown fox jumps over the lazy dog",
		},
		{
			name: "empty",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := countIndicators(tt.text)
			if got.real != tt.wantReal {
				t.Errorf("real = %d, want %d", got.real, tt.wantReal)
			}
			if got.fake != tt.wantFake {
				t.Errorf("fake = %d, want %d", got.fake, tt.wantFake)
			}
			if got.notPolicy != tt.wantNotPolicy {
				t.Errorf("notPolicy = %d, want %d", got.notPolicy, tt.wantNotPolicy)
			}
		})
	}
}

func TestCountIndicatorsCaseInsensitive(t *testing.T) {
	upper := countIndicators("GOVERNMENT OF NEPAL BUDGET")
	lower := countIndicators("government of nepal budget")
	if upper.real != lower.real {
		t.Errorf("case changed the count: upper %d, lower %d", upper.real, lower.real)
	}
	if upper.real != 2 {
		t.Errorf("real = %d, want 2", upper.real)
	}
}

func TestCountIndicatorsDistinctPatterns(t *testing.T) {
	// A repeated pattern counts once.
	got := countIndicators("weather weather weather")
	if got.notPolicy != 1 {
		t.Errorf("notPolicy = %d, want 1", got.notPolicy)
	}
}

func TestCountIndicatorsPunctuation(t *testing.T) {
	// The urgency pattern includes the exclamation mark.
	with := countIndicators("urgent! do it now")
	without := countIndicators("urgent, do it now")
	if with.fake != 1 {
		t.Errorf("fake with punctuation = %d, want 1", with.fake)
	}
	if without.fake != 0 {
		t.Errorf("fake without punctuation = %d, want 0", without.fake)
	}
}
