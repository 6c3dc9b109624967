package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// SendReferralEmail envoie au filleul l'invitation composée à partir
// du template fixe. Pas de retry ni de suivi de livraison : l'échec
// SMTP remonte tel quel à l'appelant.
func SendReferralEmail(referrerEmail, refereeEmail string) error {
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "noreply@artmarket.app"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(refereeEmail); err != nil {
		return err
	}
	msg.Subject("Une invitation à découvrir ArtMarket")
	msg.SetBodyString(mail.TypeTextHTML, GenerateReferralHTML(referrerEmail))

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'invitation à", refereeEmail)
	return client.DialAndSend(msg)
}

// GenerateReferralHTML génère le corps HTML de l'invitation de parrainage.
func GenerateReferralHTML(referrerEmail string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Invitation ArtMarket</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Vous êtes invité sur ArtMarket</h2>
		<p>Bonjour,</p>
		<p><strong>%s</strong> vous invite à rejoindre ArtMarket, la place de marché
		des artistes indépendants : découvrez, achetez et vendez des œuvres originales.</p>
		<p style="margin: 30px 0; text-align: center;">
			<a href="https://artmarket.app" style="background-color: #1a73e8; color: white; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Découvrir la galerie</a>
		</p>
		<p style="margin-top: 30px; color: #555;">
			À bientôt,<br>
			<strong>L'équipe ArtMarket</strong>
		</p>
	</div>
</body>
</html>`, referrerEmail)
}
