package domain

import "errors"

var (
	ErrFechaInvalida       = errors.New("fecha de nacimiento inválida")
	ErrEdadInvalida        = errors.New("la edad debe estar entre 18 y 120 años")
	ErrTelefonoInvalido    = errors.New("el teléfono debe tener exactamente 10 dígitos")
	ErrCaptchaRequerido    = errors.New("captcha requerido")
	ErrCaptchaInvalido     = errors.New("validación de captcha fallida")
	ErrCaptchaNoDisponible = errors.New("servicio de verificación no disponible")
)
