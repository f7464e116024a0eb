package repository

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"portafolio/domain"
)

// SiteVerifyURL es el endpoint de verificación de reCAPTCHA de Google.
const SiteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

type recaptchaRepository struct {
	client *resty.Client
	url    string
	secret string
}

func NewRecaptchaRepository(verifyURL, secret string) domain.CaptchaVerifier {
	return &recaptchaRepository{
		client: resty.New(),
		url:    verifyURL,
		secret: secret,
	}
}

// Verificar envía el token al servicio externo y devuelve su veredicto tal
// cual. El token de bypass del administrador corta antes de salir a la red.
func (rr *recaptchaRepository) Verificar(ctx context.Context, token string) (bool, error) {
	if token == domain.TokenBypassAdmin {
		return true, nil
	}

	var resultado struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}

	resp, err := rr.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"secret":   rr.secret,
			"response": token,
		}).
		SetResult(&resultado).
		Post(rr.url)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrCaptchaNoDisponible, err)
	}
	if resp.IsError() {
		return false, fmt.Errorf("%w: estado %d", domain.ErrCaptchaNoDisponible, resp.StatusCode())
	}

	return resultado.Success, nil
}
