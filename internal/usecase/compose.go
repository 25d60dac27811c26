package usecase

import (
	"fmt"
	"strings"

	"github.com/xavierca1/leadmail/internal/entity"
)

const genericSubject = "Quick question"

// ComposeEmail builds the default outreach message. The body is plain text
// with literal newlines; callers derive the HTML variant from it.
func ComposeEmail(lead *entity.Lead, senderName string) (subject, body string) {
	if lead == nil {
		return genericSubject, genericBody(senderName)
	}

	subject = "Quick question for " + lead.Name

	greeting := "Hi there,"
	if first := lead.FirstName(); first != "" {
		greeting = fmt.Sprintf("Hi %s,", first)
	}

	var intro string
	if position := strings.TrimSpace(lead.Position); position != "" {
		intro = "I noticed your work as " + position
	} else {
		intro = "I came across your profile"
	}
	if req := strings.TrimSpace(lead.Requirement); req != "" {
		intro += " and that you're looking for " + strings.ToLower(req)
	}
	intro += "."

	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n")
	b.WriteString(intro)
	b.WriteString("\n\n")
	b.WriteString("I'd love to share how we could help. Would you be open to a quick 15-minute call this week?")
	b.WriteString("\n\n")
	b.WriteString(signOff(senderName))

	return subject, b.String()
}

func genericBody(senderName string) string {
	return "Hi there,\n\n" +
		"I wanted to reach out and see whether we could help your team.\n\n" +
		"Would you be open to a quick 15-minute call this week?\n\n" +
		signOff(senderName)
}

func signOff(senderName string) string {
	return "Best regards,\n" + senderName
}

// PlainToHTML replaces every newline with a line-break tag. No other markup
// processing happens at send time.
func PlainToHTML(body string) string {
	return strings.ReplaceAll(body, "\n", "<br>")
}
