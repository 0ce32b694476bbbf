package mailer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendWithoutSMTPConfig(t *testing.T) {
	m := &Mailer{}
	err := m.Send("user@example.com", "Sujet", "Titre", "Corps")
	assert.ErrorContains(t, err, "SMTP non configuré")
}

func TestBodyTemplateRendering(t *testing.T) {
	body := fmt.Sprintf(bodyTemplate, "Inscription approuvée", "Votre inscription à l'atelier a été approuvée.")

	assert.True(t, strings.Contains(body, "<h2"))
	assert.Contains(t, body, "Inscription approuvée")
	assert.Contains(t, body, "Votre inscription à l'atelier a été approuvée.")
	assert.Contains(t, body, "L'équipe SUAS")
}
