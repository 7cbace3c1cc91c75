package email

import "html/template"

var templates = template.Must(template.New("email").Parse(`
{{define "layout_top"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2c3e50;">{{.ClinicName}}</h2>
{{end}}

{{define "layout_bottom"}}
  <p style="color: #7f8c8d; font-size: 12px;">
    {{.ClinicName}}{{if .ClinicPhone}} | {{.ClinicPhone}}{{end}}{{if .ClinicAddress}} | {{.ClinicAddress}}{{end}}
  </p>
</div>
{{end}}

{{define "contact_ack"}}
{{template "layout_top" .}}
  <p>Dear {{.Name}},</p>
  <p>Thank you for reaching out to us. We have received your message regarding
  <strong>{{.Subject}}</strong> and our team will get back to you shortly.</p>
  <p>Warm regards,<br>The {{.ClinicName}} Team</p>
{{template "layout_bottom" .}}
{{end}}

{{define "contact_admin_alert"}}
{{template "layout_top" .}}
  <p>New contact message received.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
    <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
    <tr><td><strong>Subject</strong></td><td>{{.Subject}}</td></tr>
    <tr><td><strong>Message</strong></td><td>{{.Message}}</td></tr>
  </table>
{{template "layout_bottom" .}}
{{end}}

{{define "appointment_ack"}}
{{template "layout_top" .}}
  <p>Dear {{.Name}},</p>
  <p>Your appointment request has been received. Your booking reference is
  <strong>{{.ReferenceCode}}</strong>.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><strong>Treatment</strong></td><td>{{.TreatmentType}}</td></tr>
    <tr><td><strong>Preferred date</strong></td><td>{{.PreferredDate}}</td></tr>
    <tr><td><strong>Preferred time</strong></td><td>{{.PreferredTime}}</td></tr>
  </table>
  <p>We will contact you soon to confirm your slot.</p>
  <p>Warm regards,<br>The {{.ClinicName}} Team</p>
{{template "layout_bottom" .}}
{{end}}

{{define "appointment_admin_alert"}}
{{template "layout_top" .}}
  <p>New appointment request <strong>{{.ReferenceCode}}</strong>.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
    <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
    <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
    <tr><td><strong>Treatment</strong></td><td>{{.TreatmentType}}</td></tr>
    <tr><td><strong>Preferred date</strong></td><td>{{.PreferredDate}}</td></tr>
    <tr><td><strong>Preferred time</strong></td><td>{{.PreferredTime}}</td></tr>
    {{if .Message}}<tr><td><strong>Message</strong></td><td>{{.Message}}</td></tr>{{end}}
  </table>
{{template "layout_bottom" .}}
{{end}}

{{define "appointment_confirmation"}}
{{template "layout_top" .}}
  <p>Dear {{.Name}},</p>
  <p>Your appointment <strong>{{.ReferenceCode}}</strong> has been confirmed.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><strong>Treatment</strong></td><td>{{.TreatmentType}}</td></tr>
    <tr><td><strong>Date</strong></td><td>{{.ConfirmedDate}}</td></tr>
    <tr><td><strong>Time</strong></td><td>{{.ConfirmedTime}}</td></tr>
  </table>
  <p>Please arrive 10 minutes early. If you need to reschedule, reply to this
  email or call us.</p>
  <p>Warm regards,<br>The {{.ClinicName}} Team</p>
{{template "layout_bottom" .}}
{{end}}

{{define "subscription_confirmation"}}
{{template "layout_top" .}}
  <p>Hello,</p>
  <p>You are now subscribed to updates from {{.ClinicName}}. We share skin
  care tips, new treatments and clinic news, and you can unsubscribe at any
  time.</p>
  <p>Warm regards,<br>The {{.ClinicName}} Team</p>
{{template "layout_bottom" .}}
{{end}}
`))
