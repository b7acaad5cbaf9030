package mailer

import "fmt"

// BookingConfirmation composes the email sent after a reservation commits.
// Prices are in the smallest currency unit.
func BookingConfirmation(to, courtName, date, startTime, endTime string, price int) Email {
	text := fmt.Sprintf(
		"Your booking is confirmed!\n\nCourt: %s\nDate: %s\nTime: %s - %s\nPrice: %d.%02d EUR\n\nSee you on the court!",
		courtName, date, startTime, endTime, price/100, price%100,
	)

	html := fmt.Sprintf(
		`<h2>Your booking is confirmed!</h2>
<p><strong>Court:</strong> %s<br/>
<strong>Date:</strong> %s<br/>
<strong>Time:</strong> %s - %s<br/>
<strong>Price:</strong> %d.%02d EUR</p>
<p>See you on the court!</p>`,
		courtName, date, startTime, endTime, price/100, price%100,
	)

	return Email{
		To:      []string{to},
		Subject: fmt.Sprintf("Booking confirmation - %s %s", date, startTime),
		Text:    text,
		HTML:    html,
	}
}
