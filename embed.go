package tounesna

import "embed"

// EmailFS holds the HTML and plaintext email templates.
//
//go:embed templates/emails
var EmailFS embed.FS
