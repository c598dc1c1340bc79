package types

// CertificationsDocument is the authored certifications.json document
type CertificationsDocument struct {
	Certifications []Certification `json:"certifications"`
}

// Certification represents a professional or national certification
type Certification struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Issuer       string   `json:"issuer"`
	Date         string   `json:"date"`
	Expiry       string   `json:"expiry,omitempty"`
	CredentialID string   `json:"credentialId,omitempty"`
	Link         string   `json:"link,omitempty"`
	Color        string   `json:"color"`
	Skills       []string `json:"skills"`
	Description  string   `json:"description"`
	ExamInfo     string   `json:"examInfo,omitempty"`
	ValidPeriod  string   `json:"validPeriod,omitempty"`
	Image        string   `json:"image,omitempty"`
}

// HasExpiry reports whether the certification is time-bound.
// Certifications without an expiry are permanent.
func (c Certification) HasExpiry() bool {
	return c.Expiry != ""
}
