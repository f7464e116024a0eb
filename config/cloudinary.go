package config

import (
	"fmt"
	"os"
)

func GetCloudinaryCredentials() (cloudName, apiKey, apiSecret string, err error) {
	cloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	if cloudName == "" {
		return "", "", "", fmt.Errorf("cloudinary cloud name is missing")
	}

	apiKey = os.Getenv("CLOUDINARY_API_KEY")
	if apiKey == "" {
		return "", "", "", fmt.Errorf("cloudinary api key is missing")
	}

	apiSecret = os.Getenv("CLOUDINARY_API_SECRET")
	if apiSecret == "" {
		return "", "", "", fmt.Errorf("cloudinary api secret is missing")
	}

	return cloudName, apiKey, apiSecret, nil
}
