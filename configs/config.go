package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type EmailFrom struct {
	Name  string `yaml:"name" env:"SENDGRID_FROM_NAME"`
	Email string `yaml:"email" env:"SENDGRID_FROM_EMAIL"`
}

type SendGrid struct {
	APIKey       string    `yaml:"apiKey" env:"SENDGRID_API_KEY"`
	Host         string    `yaml:"host"`
	SendEndpoint string    `yaml:"sendEndpoint"`
	From         EmailFrom `yaml:"from"`
}

type Keeper struct {
	ConfigPath string `yaml:"configPath" env:"KEEPER_CONFIG"`
}

type Maps struct {
	DirectionsURL string        `yaml:"directionsUrl" env:"DIRECTIONS_URL"`
	StaticMapURL  string        `yaml:"staticMapUrl" env:"STATIC_MAP_URL"`
	Size          string        `yaml:"size" env:"MAP_SIZE"`
	Scale         int           `yaml:"scale" env:"MAP_SCALE"`
	MapType       string        `yaml:"mapType"`
	Timeout       time.Duration `yaml:"timeout" env:"MAPS_TIMEOUT"`
}

type Report struct {
	RatePerKm  float64 `yaml:"ratePerKm" env:"RATE_PER_KM"`
	Currency   string  `yaml:"currency" env:"CURRENCY"`
	ImageWidth int     `yaml:"imageWidth" env:"REPORT_IMAGE_WIDTH"`
}

type Config struct {
	Maps     Maps     `yaml:"maps"`
	Report   Report   `yaml:"report"`
	Keeper   Keeper   `yaml:"keeper"`
	SendGrid SendGrid `yaml:"sendgrid"`

	// Version is injected by the command, not read from file or env.
	Version string `yaml:"-"`
}

// Default returns the built-in configuration. The rate, canvas and scale
// defaults are the shipped policy values; all of them can be overridden
// through a YAML file or environment variables.
func Default() *Config {
	return &Config{
		Maps: Maps{
			DirectionsURL: "https://maps.googleapis.com",
			StaticMapURL:  "https://maps.googleapis.com",
			Size:          "1200x800",
			Scale:         2,
			MapType:       "roadmap",
			Timeout:       30 * time.Second,
		},
		Report: Report{
			RatePerKm:  0.3,
			Currency:   "EUR",
			ImageWidth: 700,
		},
		Keeper: Keeper{
			ConfigPath: "ksm-config.json",
		},
		SendGrid: SendGrid{
			Host:         "https://api.sendgrid.com",
			SendEndpoint: "/v3/mail/send",
		},
	}
}

func (c *Config) Read(configFile string) error {
	f, err := os.Open(configFile)
	if err != nil {
		return errors.Wrap(err, "Config.Read")
	}
	defer f.Close()

	if err = yaml.NewDecoder(f).Decode(c); err != nil {
		return errors.Wrapf(err, "Config.Read: %s", configFile)
	}
	return nil
}

func (c *Config) ReadEnv() error {
	if err := envconfig.Process("", c); err != nil {
		return errors.Wrap(err, "Config.ReadEnv")
	}
	if err := envdecode.Decode(c); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return errors.Wrap(err, "Config.ReadEnv")
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Report.RatePerKm <= 0 {
		return errors.Errorf("report.ratePerKm must be positive, got %v", c.Report.RatePerKm)
	}
	if c.Report.ImageWidth <= 0 {
		return errors.Errorf("report.imageWidth must be positive, got %d", c.Report.ImageWidth)
	}
	if c.Maps.Timeout <= 0 {
		return errors.Errorf("maps.timeout must be positive, got %v", c.Maps.Timeout)
	}
	if c.Maps.Scale <= 0 {
		return errors.Errorf("maps.scale must be positive, got %d", c.Maps.Scale)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("Maps:{Directions:%s Static:%s Size:%s Scale:%d Timeout:%s}, Report:{Rate:%v %s Width:%d}, Keeper:%s",
		c.Maps.DirectionsURL, c.Maps.StaticMapURL, c.Maps.Size, c.Maps.Scale, c.Maps.Timeout,
		c.Report.RatePerKm, c.Report.Currency, c.Report.ImageWidth, c.Keeper.ConfigPath)
}
