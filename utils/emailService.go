package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"upskillr/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid when an API key is
// configured, falling back to plain SMTP otherwise.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridAPIKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendGrid(to []string, subject string, htmlBody string) error {
	from := mail.NewEmail("UpSkillr", config.AppConfig.EmailSender)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)

	for _, recipient := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", recipient), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("Error sending email via SendGrid: %v", err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("SendGrid rejected email to %s: %d", recipient, resp.StatusCode)
			return fmt.Errorf("sendgrid error: status %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: UpSkillr <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<html>
		<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
			<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
				<h2 style="color: #333333; text-align: center;">%s</h2>
				%s
				<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">UpSkillr Team</p>
			</div>
		</body>
	</html>
	`, title, bodyContent)
}

// SendVerificationEmail sends the signup OTP to a new user
func SendVerificationEmail(email, otp string) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555; text-align: center;">Your verification code is:</p>
		<h1 style="text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0;">%s</h1>
		<p style="font-size: 14px; color: #999999; text-align: center;">Do not share this code with anyone. It expires in 10 minutes.</p>
	`, otp)

	return SendEmail([]string{email}, "Verify your UpSkillr account", getEmailTemplate("Email Verification", body))
}

// SendEnrollmentEmail sends an email notification when a learner enrolls in a course
func SendEnrollmentEmail(email, userName, courseName string) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Dear %s,</p>
		<p style="font-size: 16px; color: #555555;">You have successfully enrolled in:</p>
		<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
		<p style="font-size: 14px; color: #666666;">You can now access all lessons. Complete the course and pass the assessment to earn your certificate.</p>
	`, userName, courseName)

	return SendEmail([]string{email}, "Course Enrollment Confirmation - UpSkillr", getEmailTemplate("🎉 Enrollment Successful!", body))
}

// SendCertificateEmail sends certificate notification email
func SendCertificateEmail(email, userName, courseName, certificateID string) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Dear %s,</p>
		<p style="font-size: 16px; color: #555555;">Congratulations on completing the course:</p>
		<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
		<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
			<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Your Certificate ID:</p>
			<h2 style="color: #2196F3; margin: 0;">%s</h2>
		</div>
		<p style="font-size: 14px; color: #666666;">Anyone can verify this certificate with its ID on the UpSkillr verification page.</p>
	`, userName, courseName, certificateID)

	return SendEmail([]string{email}, "Course Completion Certificate - UpSkillr", getEmailTemplate("🏆 Certificate of Completion", body))
}
