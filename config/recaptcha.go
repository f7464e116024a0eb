package config

import (
	"fmt"
	"os"
)

func GetRecaptchaSecret() (string, error) {
	secret := os.Getenv("RECAPTCHA_SECRET_KEY")
	if secret == "" {
		return "", fmt.Errorf("recaptcha secret is missing")
	}
	return secret, nil
}
