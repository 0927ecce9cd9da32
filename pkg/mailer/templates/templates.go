// Package templates renders the transactional emails the service sends.
// Templates are compiled in; adding one means adding its subject, text,
// and HTML bodies to the tables below.
package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
)

const (
	VerifyEmail = "verify_email"
)

var subjects = map[string]string{
	VerifyEmail: "Verify your email address",
}

var textBodies = map[string]*texttpl.Template{
	VerifyEmail: texttpl.Must(texttpl.New(VerifyEmail).Parse(
		`Welcome!

Please confirm your email address to finish creating your account.

Open this link to verify:
{{.VerifyURL}}

The link expires in 24 hours. If you did not request this, you can
ignore this message.
`)),
}

var htmlBodies = map[string]*htmpl.Template{
	VerifyEmail: htmpl.Must(htmpl.New(VerifyEmail).Parse(
		`<!DOCTYPE html>
<html>
<body style="font-family:Arial,Helvetica,sans-serif;color:#222;max-width:520px;margin:0 auto;padding:24px">
  <h2>Verify your email</h2>
  <p>Please confirm your email address to finish creating your account.</p>
  <p style="margin:28px 0">
    <a href="{{.VerifyURL}}" style="background:#2f6feb;color:#fff;padding:12px 24px;text-decoration:none;border-radius:6px">Verify email</a>
  </p>
  <p>Or copy this link into your browser:<br>{{.VerifyURL}}</p>
  <p style="color:#888;font-size:13px">The link expires in 24 hours. If you did not request this, you can ignore this message.</p>
</body>
</html>
`)),
}

// Render produces subject, text, and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	subject, ok := subjects[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}

	var tbuf bytes.Buffer
	if err := textBodies[name].Execute(&tbuf, data); err != nil {
		return "", "", "", fmt.Errorf("exec text %q: %w", name, err)
	}
	var hbuf bytes.Buffer
	if err := htmlBodies[name].Execute(&hbuf, data); err != nil {
		return "", "", "", fmt.Errorf("exec html %q: %w", name, err)
	}
	return subject, tbuf.String(), hbuf.String(), nil
}
