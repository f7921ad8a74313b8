package service

import "fmt"

func passwordResetEmailTemplate(resetURL, appName string) (string, string) {
	subject := fmt.Sprintf("Reset your password for %s", appName)
	body := fmt.Sprintf(`You requested to reset your password. Click this link to choose a new one:
%s

This link expires in 30 minutes and can only be used once.

If you didn't request this, you can safely ignore this email. Your password won't be changed.

Best,
The %s Team`, resetURL, appName)

	return subject, body
}

func welcomeEmailTemplate(dashboardURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s!", appName)
	body := fmt.Sprintf(`Your account is ready.

Start your bucket list: %s

If you have questions, reach out to our support team.

Best,
The %s Team`, dashboardURL, appName)

	return subject, body
}
