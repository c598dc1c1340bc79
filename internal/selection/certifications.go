package selection

import "github.com/jonathan/portfolio-site/internal/types"

// CertificationSummary holds the aggregate counts shown above the certification list
type CertificationSummary struct {
	Total     int `json:"total"`
	TimeBound int `json:"time_bound"`
	Permanent int `json:"permanent"`
}

// SummarizeCertifications counts certifications with and without an expiry.
func SummarizeCertifications(certs []types.Certification) CertificationSummary {
	summary := CertificationSummary{Total: len(certs)}
	for _, c := range certs {
		if c.HasExpiry() {
			summary.TimeBound++
		} else {
			summary.Permanent++
		}
	}
	return summary
}
