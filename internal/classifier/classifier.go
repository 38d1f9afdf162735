// Package classifier tags assistant text as beneficial, avoid or neutral.
package classifier

import (
	"regexp"
	"strings"

	"nutricoach/internal/model"
)

var (
	explicitRe   = regexp.MustCompile(`(?i)\b(beneficial|avoid|neutral)\b`)
	sentenceRe   = regexp.MustCompile(`[.!?]\s+`)
	avoidRe      = regexp.MustCompile(`\b(avoid|do not|don't|not recommended|should not)\b`)
	beneficialRe = regexp.MustCompile(`\b(beneficial|benefit|good for|recommended|healthy|suggests it is good)\b`)
	neutralRe    = regexp.MustCompile(`\bneutral\b`)
)

// earlySentences is how many leading sentences carry the verdict.
const earlySentences = 2

// Classify returns the verdict for text, or ClassificationNone. Stages:
// an explicit label anywhere, then keywords in the first two sentences,
// then keywords over the whole text.
func Classify(text string) model.Classification {
	if text == "" {
		return model.ClassificationNone
	}

	if m := explicitRe.FindStringSubmatch(text); m != nil {
		return model.Classification(strings.ToLower(m[1]))
	}

	sentences := sentenceRe.Split(text, -1)
	if len(sentences) > earlySentences {
		sentences = sentences[:earlySentences]
	}
	for _, s := range sentences {
		if c := keywords(strings.ToLower(s)); c != model.ClassificationNone {
			return c
		}
	}

	return keywords(strings.ToLower(text))
}

// keywords checks avoid before beneficial before neutral.
func keywords(lower string) model.Classification {
	switch {
	case avoidRe.MatchString(lower):
		return model.ClassificationAvoid
	case beneficialRe.MatchString(lower):
		return model.ClassificationBeneficial
	case neutralRe.MatchString(lower):
		return model.ClassificationNeutral
	default:
		return model.ClassificationNone
	}
}
