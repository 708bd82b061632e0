package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8081"`
}

// Upstream is the articulos REST API both front ends talk to.
type Upstream struct {
	BaseURL string        `yaml:"BASE_URL" env:"UPSTREAM_BASE_URL" env-default:"http://localhost:8080/api/articulos"`
	Timeout time.Duration `yaml:"TIMEOUT" env:"UPSTREAM_TIMEOUT" env-default:"10s"`
}

const (
	CartBackendFile  = "file"
	CartBackendRedis = "redis"
)

type CartConfig struct {
	StorageKey string        `yaml:"STORAGE_KEY" env:"CART_STORAGE_KEY" env-default:"tienda_carrito"`
	Backend    string        `yaml:"BACKEND" env:"CART_BACKEND" env-default:"file"`
	FilePath   string        `yaml:"FILE_PATH" env:"CART_FILE_PATH" env-default:"./data/carrito.json"`
	TTL        time.Duration `yaml:"TTL" env:"CART_TTL" env-default:"720h"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

const (
	OrderIDTimestamp = "timestamp"
	OrderIDUUID      = "uuid"

	PaymentSimulated = "simulated"
	PaymentStripe    = "stripe"
)

type Checkout struct {
	ShippingCost            float64       `yaml:"SHIPPING_COST" env:"CHECKOUT_SHIPPING_COST" env-default:"15.00"`
	ProcessingDelay         time.Duration `yaml:"PROCESSING_DELAY" env:"CHECKOUT_PROCESSING_DELAY" env-default:"2s"`
	OrderIDStrategy         string        `yaml:"ORDER_ID_STRATEGY" env:"CHECKOUT_ORDER_ID_STRATEGY" env-default:"timestamp"`
	OrderIDPrefix           string        `yaml:"ORDER_ID_PREFIX" env:"CHECKOUT_ORDER_ID_PREFIX" env-default:"ORD-"`
	PaymentProcessor        string        `yaml:"PAYMENT_PROCESSOR" env:"CHECKOUT_PAYMENT_PROCESSOR" env-default:"simulated"`
	Currency                string        `yaml:"CURRENCY" env:"CHECKOUT_CURRENCY" env-default:"usd"`
	CheckDuplicatesOnUpdate bool          `yaml:"CHECK_DUPLICATES_ON_UPDATE" env:"CHECK_DUPLICATES_ON_UPDATE" env-default:"false"`
}

type Stripe struct {
	APIKey string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
}

type SendGrid struct {
	Enabled   bool   `yaml:"ENABLED" env:"SENDGRID_ENABLED" env-default:"false"`
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"pedidos@tienda.local"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Tienda Online"`
}

type OTel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"tienda"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Upstream     Upstream     `yaml:"upstream"`
	Cart         CartConfig   `yaml:"cart"`
	RedisConnect RedisConnect `yaml:"redis"`
	Checkout     Checkout     `yaml:"checkout"`
	Stripe       Stripe       `yaml:"stripe"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	OTel         OTel         `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = "./config/local.yaml"
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {

	switch c.Cart.Backend {
	case CartBackendFile, CartBackendRedis:
	default:
		return fmt.Errorf("unsupported cart backend %q", c.Cart.Backend)
	}

	switch c.Checkout.OrderIDStrategy {
	case OrderIDTimestamp, OrderIDUUID:
	default:
		return fmt.Errorf("unsupported order id strategy %q", c.Checkout.OrderIDStrategy)
	}

	switch c.Checkout.PaymentProcessor {
	case PaymentSimulated:
	case PaymentStripe:
		if c.Stripe.APIKey == "" {
			return fmt.Errorf("stripe payment processor requires STRIPE_API_KEY")
		}
	default:
		return fmt.Errorf("unsupported payment processor %q", c.Checkout.PaymentProcessor)
	}

	if c.Checkout.ShippingCost < 0 {
		return fmt.Errorf("shipping cost cannot be negative")
	}

	return nil
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
