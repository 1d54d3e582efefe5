package entities

// Counts holds raw match counts for one evaluation unit. Counts are the only
// values that may be summed across units; rates are always derived from
// summed counts (micro-averaging), never averaged themselves.
type Counts struct {
	TruePositives  int `json:"true_positives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`
	TotalGold      int `json:"total_gold"`
	TotalPredicted int `json:"total_pred"`
}

// Add accumulates another unit's counts into c.
func (c *Counts) Add(other Counts) {
	c.TruePositives += other.TruePositives
	c.FalsePositives += other.FalsePositives
	c.FalseNegatives += other.FalseNegatives
	c.TotalGold += other.TotalGold
	c.TotalPredicted += other.TotalPredicted
}

// Metrics holds derived precision/recall/F1 rates.
type Metrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Metrics derives precision, recall and F1 from the counts. Every zero
// denominator yields 0 rather than NaN: no predictions means precision 0,
// no gold means recall 0.
func (c Counts) Metrics() Metrics {
	var m Metrics
	if predicted := c.TruePositives + c.FalsePositives; predicted > 0 {
		m.Precision = float64(c.TruePositives) / float64(predicted)
	}
	if gold := c.TruePositives + c.FalseNegatives; gold > 0 {
		m.Recall = float64(c.TruePositives) / float64(gold)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// Scored bundles counts with the rates derived from them, the shape reported
// at every granularity.
type Scored struct {
	Counts
	Metrics
}

// Score derives the metrics and bundles them with the counts.
func (c Counts) Score() Scored {
	return Scored{Counts: c, Metrics: c.Metrics()}
}
