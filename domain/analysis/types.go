// Package analysis defines synthesized conclusions as emitted by the
// analysis stage, including their declared support levels and the metric
// and literature cross-references the validator audits.
package analysis

// SupportLevel is the analyst-facing categorical verdict on a conclusion
type SupportLevel string

const (
	StronglySupported    SupportLevel = "strongly_supported"
	Supported            SupportLevel = "supported"
	Inconclusive         SupportLevel = "inconclusive"
	Contradicted         SupportLevel = "contradicted"
	StronglyContradicted SupportLevel = "strongly_contradicted"
)

// Agreement classifies how a literature entry relates to the conclusion
type Agreement string

const (
	AgreementConsistent   Agreement = "consistent"
	AgreementInconsistent Agreement = "inconsistent"
	// AgreementNovel marks findings with no prior literature to agree or
	// disagree with. Novelty is not a defect.
	AgreementNovel Agreement = "novel"
)

// KeyMetric is one quantity the conclusion leans on, with the producer's
// own expectation bookkeeping
type KeyMetric struct {
	Name              string  `json:"name"`
	Value             float64 `json:"value"`
	Expected          float64 `json:"expected,omitempty"`
	DeviationPct      float64 `json:"deviation_pct"`
	WithinExpectation bool    `json:"within_expectation"`
}

// Comparison is one literature cross-reference
type Comparison struct {
	Source    string    `json:"source"`
	Agreement Agreement `json:"agreement"`
	Note      string    `json:"note,omitempty"`
}

// Conclusion is a synthesized analysis outcome awaiting validation
type Conclusion struct {
	Statement    string       `json:"statement"`
	SupportLevel SupportLevel `json:"support_level"`
	Confidence   float64      `json:"confidence"`
	KeyMetrics   []KeyMetric  `json:"key_metrics,omitempty"`
	Literature   []Comparison `json:"literature_comparison,omitempty"`
}
