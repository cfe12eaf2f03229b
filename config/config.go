package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MongoURL string `env:"MONGO_URL,required"`
	MongoDB  string `env:"MONGO_DB" envDefault:"shirtpay"`

	RazorpayKeyID             string        `env:"RAZORPAY_KEY_ID,required"`
	RazorpayKeySecret         string        `env:"RAZORPAY_KEY_SECRET,required"`
	RazorpayBaseURL           string        `env:"RAZORPAY_BASE_URL" envDefault:"https://api.razorpay.com"`
	HTTPRazorpayClientTimeout time.Duration `env:"HTTP_RAZORPAY_CLIENT_TIMEOUT" envDefault:"20s"`

	CloudinaryCloudName         string        `env:"CLOUDINARY_CLOUD_NAME,required"`
	CloudinaryAPIKey            string        `env:"CLOUDINARY_API_KEY,required"`
	CloudinaryAPISecret         string        `env:"CLOUDINARY_API_SECRET,required"`
	CloudinaryBaseURL           string        `env:"CLOUDINARY_BASE_URL" envDefault:"https://api.cloudinary.com"`
	HTTPCloudinaryClientTimeout time.Duration `env:"HTTP_CLOUDINARY_CLIENT_TIMEOUT" envDefault:"60s"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
