package repository

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"portafolio/domain"
)

// CloudinaryBaseURL es la raíz del API de subida de Cloudinary.
const CloudinaryBaseURL = "https://api.cloudinary.com"

type cloudinaryRepository struct {
	client    *resty.Client
	baseURL   string
	cloudName string
	apiKey    string
	apiSecret string
}

func NewCloudinaryRepository(baseURL, cloudName, apiKey, apiSecret string) domain.MediaRepo {
	return &cloudinaryRepository{
		client:    resty.New(),
		baseURL:   baseURL,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}

func (cr *cloudinaryRepository) DestruirImagen(ctx context.Context, publicID string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	var resultado struct {
		Result string `json:"result"`
	}

	resp, err := cr.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"public_id": publicID,
			"timestamp": timestamp,
			"api_key":   cr.apiKey,
			"signature": firmarDestroy(publicID, timestamp, cr.apiSecret),
		}).
		SetResult(&resultado).
		Post(fmt.Sprintf("%s/v1_1/%s/image/destroy", cr.baseURL, cr.cloudName))
	if err != nil {
		return fmt.Errorf("could not reach cloudinary: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("cloudinary destroy: estado %d", resp.StatusCode())
	}

	// "not found" cuenta como destruido para que el borrado sea idempotente.
	if resultado.Result != "ok" && resultado.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", resultado.Result)
	}

	return nil
}

// Firma requerida por el API de Cloudinary: SHA-1 de los parámetros
// ordenados más el api_secret.
func firmarDestroy(publicID, timestamp, apiSecret string) string {
	suma := sha1.Sum([]byte(fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, apiSecret)))
	return hex.EncodeToString(suma[:])
}
