package email

import (
	"testing"

	"github.com/dangerclosesec/tounesna/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesLoad(t *testing.T) {
	s, err := NewEmailService(&config.Config{}, ProviderLog)
	require.NoError(t, err)

	for _, name := range []string{"request_received", "request_approved", "request_rejected"} {
		assert.Contains(t, s.Templates, name)
	}
}

func TestRenderTemplate(t *testing.T) {
	s, err := NewEmailService(&config.Config{}, ProviderLog)
	require.NoError(t, err)

	data := struct {
		VolunteerName    string
		OrganizationName string
		Title            string
		Location         string
		Message          string
		Link             string
	}{
		VolunteerName:    "Amira",
		OrganizationName: "Croissant Rouge",
		Title:            "Food <drive>",
		Location:         "Sfax",
		Link:             "http://localhost:8080/requests/1",
	}

	html, text, err := s.renderTemplate("request_received", data)
	require.NoError(t, err)
	assert.Contains(t, html, "Food &lt;drive&gt;")
	assert.Contains(t, text, "Food <drive>")
	assert.Contains(t, text, "Location: Sfax")

	_, _, err = s.renderTemplate("missing", data)
	assert.Error(t, err)
}

func TestSendEmailLogProvider(t *testing.T) {
	s, err := NewEmailService(&config.Config{}, ProviderLog)
	require.NoError(t, err)

	err = s.SendEmail(EmailData{
		To:           "org@example.tn",
		Subject:      "hello",
		TemplateName: "request_rejected",
		TemplateData: map[string]string{"VolunteerName": "Amira", "OrganizationName": "Enactus", "Title": "t", "Link": "l"},
	})
	assert.NoError(t, err)
}
