package utils

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/spf13/viper"
)

// Cloudinary initializes a Cloudinary client from configuration. Credentials
// live under the "cloudinary" key of the config file (or CLOUDINARY_* env).
func Cloudinary() (*cloudinary.Cloudinary, error) {
	viper.SetDefault("cloudinary.cloudName", "")
	viper.SetDefault("cloudinary.apiKey", "")
	viper.SetDefault("cloudinary.apiSecret", "")

	cloudName := viper.GetString("cloudinary.cloudName")
	apiKey := viper.GetString("cloudinary.apiKey")
	apiSecret := viper.GetString("cloudinary.apiSecret")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return cld, nil
}
