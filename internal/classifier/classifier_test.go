package classifier

import (
	"testing"

	"nutricoach/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Classification
	}{
		{"empty", "", model.ClassificationNone},
		{"explicit label wins over keywords", "You should not worry, this is Beneficial.", model.ClassificationBeneficial},
		{"explicit label any case", "verdict: AVOID", model.ClassificationAvoid},
		{"explicit neutral", "Classification: Neutral. It is healthy though.", model.ClassificationNeutral},
		{"first explicit label is taken", "Avoid it. Actually beneficial.", model.ClassificationAvoid},
		{"label must be standalone", "Avoidance of sugar helps.", model.ClassificationNone},
		{"avoid keyword in first sentences", "This food is not recommended for your condition. However it is generally healthy.", model.ClassificationAvoid},
		{"beneficial keyword", "Oats are good for your heart. Eat them daily.", model.ClassificationBeneficial},
		{"avoid checked before beneficial in one sentence", "It is healthy but do not overdo it.", model.ClassificationAvoid},
		{"first matching sentence wins", "Quinoa is healthy. Don't skip rinsing it.", model.ClassificationBeneficial},
		{"late keyword found by whole text pass", "Bananas have potassium. They are sweet. Diabetics should not eat many.", model.ClassificationAvoid},
		{"no trigger", "Great source of fiber.", model.ClassificationNone},
		{"suggests it is good", "Evidence suggests it is good for digestion.", model.ClassificationBeneficial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	text := "Salmon is rich in omega-3 and recommended twice a week."
	a, b := Classify(text), Classify(text)
	if a != b || a != model.ClassificationBeneficial {
		t.Errorf("got %q then %q", a, b)
	}
}
