// internal/email/mailer/request.go
package mailer

import "github.com/dangerclosesec/tounesna/internal/email"

const fromName = "Tounesna"

// RequestTemplateData feeds the request_* email templates
type RequestTemplateData struct {
	VolunteerName    string
	OrganizationName string
	Title            string
	Location         string
	Message          string
	Link             string
}

// SendRequestReceived tells an organization a volunteer request arrived
func SendRequestReceived(s *email.Service, to string, data RequestTemplateData) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "New volunteer request: " + data.Title,
		TemplateName: "request_received",
		TemplateData: data,
	})
}

// SendRequestApproved tells a volunteer an organization accepted the request
func SendRequestApproved(s *email.Service, to string, data RequestTemplateData) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Your volunteer request was approved",
		TemplateName: "request_approved",
		TemplateData: data,
	})
}

// SendRequestRejected tells a volunteer an organization declined the request
func SendRequestRejected(s *email.Service, to string, data RequestTemplateData) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Update on your volunteer request",
		TemplateName: "request_rejected",
		TemplateData: data,
	})
}
