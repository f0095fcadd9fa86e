package models

// EmailMessage is a mail job handed off to the delivery worker.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
