package triage

import "strings"

// MaxSeverity is the ceiling for computed severity. Downstream displays
// bucket severities into low (<=3), moderate (<=7), and high (>7), so the
// output must stay bounded no matter which rule fires.
const MaxSeverity = 10

// Classify converts a patient's self-reported 1-10 rating into a clinically
// weighted score using a per-symptom rule, then clamps the result to
// MaxSeverity. The rule table models differing urgency curves: breathlessness
// escalates fastest, a cough is capped low regardless of the rating.
//
// Symptom names are matched case-insensitively against a closed set.
// Unrecognized symptoms keep the rating unchanged. The function is total over
// any integer input: out-of-range ratings are the entry form's problem, not
// this layer's.
func Classify(symptom string, severity int) int {
	var computed int
	switch strings.ToLower(symptom) {
	case "cough":
		computed = severity
		if computed > 3 {
			computed = 3
		}
	case "fever":
		computed = severity
		if severity > 3 {
			computed = severity * 2
		}
	case "headache":
		computed = severity
		if severity > 5 {
			computed = severity + 1
		}
	case "shortness_of_breath":
		computed = severity * 3
	default:
		computed = severity
	}

	if computed > MaxSeverity {
		computed = MaxSeverity
	}
	return computed
}
