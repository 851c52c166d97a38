package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"invitationservice/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

const (
	invitationSubject = "invitation_subject.txt"
	invitationText    = "invitation.txt"
	invitationHTML    = "invitation.html"
)

// invitationRenderer renders the invitation email from templates parsed at construction.
type invitationRenderer struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// NewTemplateRenderer parses the embedded invitation templates. A broken template fails here,
// at startup, rather than on the first invitation sent.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	text, err := texttemplate.ParseFS(templateFS, "templates/"+invitationSubject, "templates/"+invitationText)
	if err != nil {
		return nil, fmt.Errorf("parse invitation text templates: %w", err)
	}
	html, err := htmltemplate.ParseFS(templateFS, "templates/"+invitationHTML)
	if err != nil {
		return nil, fmt.Errorf("parse invitation html template: %w", err)
	}
	return &invitationRenderer{text: text, html: html}, nil
}

func (r *invitationRenderer) RenderInvitation(data *domain.InvitationEmailData) (subject, htmlBody, textBody string, err error) {
	if data == nil {
		return "", "", "", fmt.Errorf("invitation email data is nil")
	}

	var subj, text, html bytes.Buffer
	if err := r.text.ExecuteTemplate(&subj, invitationSubject, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	if err := r.text.ExecuteTemplate(&text, invitationText, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	if err := r.html.ExecuteTemplate(&html, invitationHTML, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	return strings.TrimSpace(subj.String()), html.String(), text.String(), nil
}
