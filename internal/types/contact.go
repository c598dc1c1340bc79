package types

// ContactForm is the visitor-submitted contact form
type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Reset clears every field of the form.
func (f *ContactForm) Reset() {
	*f = ContactForm{}
}

// IsEmpty reports whether every field is blank.
func (f ContactForm) IsEmpty() bool {
	return f == ContactForm{}
}
