package models

// ContactForm is what a visitor submits through the contact page
type ContactForm struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Botcheck    string `json:"botcheck"`
}

// ContactResult reports the outcome of a submission
type ContactResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
