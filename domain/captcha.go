package domain

import "context"

// TokenBypassAdmin salta la verificación externa. Es una decisión de
// confianza deliberada para el panel de administración.
const TokenBypassAdmin = "ADMIN_BYPASS"

type CaptchaVerifier interface {
	Verificar(ctx context.Context, token string) (bool, error)
}
