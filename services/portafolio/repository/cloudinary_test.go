package repository

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestruirImagen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1_1/mi-nube/image/destroy", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "galeria/foto1", r.FormValue("public_id"))
		assert.Equal(t, "clave-api", r.FormValue("api_key"))

		// la firma tiene que ser el SHA-1 de los parámetros más el secreto
		esperada := sha1.Sum([]byte(fmt.Sprintf("public_id=%s&timestamp=%s%s",
			r.FormValue("public_id"), r.FormValue("timestamp"), "secreto-api")))
		assert.Equal(t, hex.EncodeToString(esperada[:]), r.FormValue("signature"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": "ok"}`))
	}))
	defer srv.Close()

	media := NewCloudinaryRepository(srv.URL, "mi-nube", "clave-api", "secreto-api")

	require.NoError(t, media.DestruirImagen(context.Background(), "galeria/foto1"))
}

func TestDestruirImagen_NoEncontradaEsIdempotente(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": "not found"}`))
	}))
	defer srv.Close()

	media := NewCloudinaryRepository(srv.URL, "mi-nube", "clave-api", "secreto-api")

	require.NoError(t, media.DestruirImagen(context.Background(), "galeria/nada"))
}

func TestDestruirImagen_ResultadoInesperado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": "pending"}`))
	}))
	defer srv.Close()

	media := NewCloudinaryRepository(srv.URL, "mi-nube", "clave-api", "secreto-api")

	assert.Error(t, media.DestruirImagen(context.Background(), "galeria/foto1"))
}

func TestDestruirImagen_ProveedorInalcanzable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	media := NewCloudinaryRepository(srv.URL, "mi-nube", "clave-api", "secreto-api")

	assert.Error(t, media.DestruirImagen(context.Background(), "galeria/foto1"))
}
