package models

// FAQ is a marketing-page question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactMessage is a contact-form submission. Nothing is sent anywhere;
// messages are kept in memory and logged.
type ContactMessage struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject,omitempty"`
	Message    string `json:"message"`
	ReceivedAt string `json:"receivedAt"`
}
