package mail

import "fmt"

func applicationReceivedTemplate(name string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Hi %s,</h2>
	<p>Thank you for applying to sell on Produkto Elyu-Kal.</p>
	<p>Our team will review your business permit and documents. You will receive
	another email once a decision has been made.</p>
	<p>— The Produkto Elyu-Kal Team</p>
</div>`, name)
}

func applicationApprovedTemplate(name string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Congratulations %s!</h2>
	<p>Your seller application has been approved. You can now log in to the
	seller dashboard and start listing your products.</p>
	<p>— The Produkto Elyu-Kal Team</p>
</div>`, name)
}

func applicationRejectedTemplate(name string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Hi %s,</h2>
	<p>After reviewing your seller application, we are unable to approve it at
	this time. You may submit a new application with updated documents.</p>
	<p>— The Produkto Elyu-Kal Team</p>
</div>`, name)
}
