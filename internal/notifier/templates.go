package notifier

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/consultly/booking-service/internal/domain"
)

// Данные для шаблонов писем
type templateData struct {
	Name            string
	Date            string
	Time            string
	MeetingLink     string
	DurationMinutes int
	LeadMinutes     int
}

const confirmationSubject = "Consultation Booking Confirmed - Meeting Link Included"

const confirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #4285f4; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .meeting-details { background: white; padding: 15px; border-radius: 5px; margin: 15px 0; }
        .meet-link { background: #4285f4; color: white; padding: 15px; text-align: center; border-radius: 5px; margin: 20px 0; }
        .meet-link a { color: white; text-decoration: none; font-weight: bold; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Consultation Confirmed!</h1>
        </div>
        <div class="content">
            <p>Hello {{.Name}},</p>
            <p>Your free consultation has been successfully booked. Here are the details:</p>

            <div class="meeting-details">
                <h3>Meeting Details</h3>
                <p><strong>Date:</strong> {{.Date}}</p>
                <p><strong>Time:</strong> {{.Time}}</p>
                <p><strong>Duration:</strong> {{.DurationMinutes}} minutes</p>
            </div>

            <div class="meet-link">
                <p><strong>Join the meeting:</strong></p>
                <a href="{{.MeetingLink}}" target="_blank">Click here to join the meeting</a>
            </div>

            <p><strong>What to expect:</strong></p>
            <ul>
                <li>You'll receive a reminder email {{.LeadMinutes}} minutes before the meeting</li>
                <li>The meeting link will remain active for the duration of your session</li>
                <li>Please test your camera and microphone beforehand</li>
            </ul>

            <p>If you need to reschedule or have any questions, please reply to this email.</p>

            <p>Looking forward to speaking with you!</p>
        </div>
        <div class="footer">
            <p>This is an automated message. Please do not reply directly to this email.</p>
        </div>
    </div>
</body>
</html>`

const reminderSubjectFormat = "Reminder: Your consultation starts in %d minutes"

const reminderTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #ff9800; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .urgent { background: #fff3cd; border: 1px solid #ffeaa7; padding: 15px; border-radius: 5px; margin: 15px 0; }
        .meet-link { background: #4285f4; color: white; padding: 15px; text-align: center; border-radius: 5px; margin: 20px 0; }
        .meet-link a { color: white; text-decoration: none; font-weight: bold; font-size: 18px; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Meeting Reminder</h1>
        </div>
        <div class="content">
            <p>Hello {{.Name}},</p>

            <div class="urgent">
                <h3>Your consultation starts in {{.LeadMinutes}} minutes!</h3>
                <p><strong>Date:</strong> {{.Date}}</p>
                <p><strong>Time:</strong> {{.Time}}</p>
            </div>

            <div class="meet-link">
                <p><strong>Join now:</strong></p>
                <a href="{{.MeetingLink}}" target="_blank">JOIN THE MEETING</a>
            </div>

            <p><strong>Quick checklist:</strong></p>
            <ul>
                <li>Test your camera and microphone</li>
                <li>Find a quiet, well-lit space</li>
                <li>Have any questions or materials ready</li>
                <li>Join a few minutes early</li>
            </ul>

            <p>See you soon!</p>
        </div>
        <div class="footer">
            <p>This is an automated reminder. Please do not reply directly to this email.</p>
        </div>
    </div>
</body>
</html>`

var (
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationTemplate))
	reminderTmpl     = template.Must(template.New("reminder").Parse(reminderTemplate))
)

// renderTemplate рендерит шаблон письма для бронирования
func renderTemplate(tmpl *template.Template, booking *domain.Booking) (string, error) {
	data := templateData{
		Name:            booking.Name,
		Date:            booking.Date,
		Time:            booking.Time,
		MeetingLink:     booking.MeetingLink,
		DurationMinutes: domain.MeetingDurationMinutes,
		LeadMinutes:     domain.DefaultReminderLeadMinutes,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderTemplate, tmpl.Name(), err)
	}
	return buf.String(), nil
}
