package classify

import "fmt"

// Report tallies verdicts against ground truth, with genuine as the
// positive class.
type Report struct {
	Profiles int `json:"profiles"`
	Samples  int `json:"samples"`

	TruthGenuine     int `json:"truth_genuine"`
	TruthFake        int `json:"truth_fake"`
	PredictedGenuine int `json:"predicted_genuine"`
	PredictedFake    int `json:"predicted_fake"`

	TP int `json:"true_positive"`
	FP int `json:"false_positive"`
	TN int `json:"true_negative"`
	FN int `json:"false_negative"`
}

func (r *Report) add(truth, predicted bool) {
	r.Samples++
	if truth {
		r.TruthGenuine++
	} else {
		r.TruthFake++
	}
	if predicted {
		r.PredictedGenuine++
	} else {
		r.PredictedFake++
	}
	switch {
	case truth && predicted:
		r.TP++
	case !truth && predicted:
		r.FP++
	case !truth && !predicted:
		r.TN++
	default:
		r.FN++
	}
}

// Accuracy is the share of correct verdicts.
func (r *Report) Accuracy() float64 { return ratio(r.TP+r.TN, r.Samples) }

// Precision is the share of genuine verdicts that were right.
func (r *Report) Precision() float64 { return ratio(r.TP, r.TP+r.FP) }

// Recall is the share of genuine profiles that were recognized.
func (r *Report) Recall() float64 { return ratio(r.TP, r.TP+r.FN) }

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func (r *Report) String() string {
	return fmt.Sprintf("%d profiles, %d samples: accuracy %.3f, precision %.3f, recall %.3f",
		r.Profiles, r.Samples, r.Accuracy(), r.Precision(), r.Recall())
}
