package researchsync

import "embed"

// EmailFS holds the html/plaintext template pairs rendered by the email
// service.
//
//go:embed templates/emails
var EmailFS embed.FS
