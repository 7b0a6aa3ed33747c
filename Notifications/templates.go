package Notifications

import "fmt"

func OtpEmailBody(otp string) string {
	return fmt.Sprintf(`
	<p>Dear Administrator,</p>
	<p>We received a request to reset your RDC Admin password.</p>
	<p><strong>Your One Time Password (OTP) is:</strong></p>
	<h2>%s</h2>
	<p>This OTP is valid for 5 minutes.</p>
	<p>If you did not request this, please ignore this email.</p>
	<p>Regards,<br>Ragavendra Diagnosis Center</p>`, otp)
}

func BookingEmailBody(name, testName string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
		<h2 style="color: #2E86C1;">Booking Confirmation</h2>
		<p>Dear %s,</p>
		<p>Thank you for booking your <strong>%s</strong> test with Ragavendra Diagnosis Center.</p>
		<p>We have successfully received your request. Our team will contact you shortly to confirm the details and schedule your appointment.</p>
		<p><strong>For any queries or assistance, please contact us at:</strong><br>
		Phone: +91 87222 02917<br>
		Email: rdclab2001@gmail.com</p>
		<p>Best regards,<br><strong>Ragavendra Diagnosis Center</strong></p>
	</div>`, name, testName)
}

func ReportEmailBody(name string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; color: #333; line-height: 1.6;">
		<h2 style="color: #2E86C1;">Lab Test Report</h2>
		<p>Dear %s,</p>
		<p>We are pleased to inform you that your lab test report is now available. Please find the attached PDF document containing your detailed results.</p>
		<p><strong>Important:</strong> If you have any questions or need further clarification regarding your report, feel free to reach out to us:</p>
		<ul>
			<li>Phone: +91 87222 02917</li>
			<li>Email: rdclab2001@gmail.com</li>
		</ul>
		<p>Thank you for choosing <strong>Ragavendra Diagnosis Center</strong> for your healthcare needs.</p>
		<p>Warm regards,<br><strong>Ragavendra Diagnosis Center</strong></p>
	</div>`, name)
}

func LeadAlertText(name, mobile, testName string) string {
	return fmt.Sprintf("NEW WEBSITE LEAD\n\nName: %s\nPhone: %s\nTest: %s\nSource: Website", name, mobile, testName)
}
