package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Shoper  ShoperConfig
	Pricing PricingConfig
	NBP     NBPConfig
	FTP     FTPConfig
	AI      AIConfig
	Catalog CatalogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host     string
	Port     int
	APIToken string // token Bearer estático para las rutas mutantes; vacío = sin protección
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig geometría física del almacén de cartas.
// El despliegue de referencia usa 8 cartones de 4 columnas de 1000 posiciones.
type StorageConfig struct {
	Boxes     int
	Columns   int
	Positions int
	BookPath  string // CSV con el libro de inventario (magazyn.csv)
}

// ShoperConfig acceso a la API REST de Shoper y datos fijos de publicación.
type ShoperConfig struct {
	APIURL     string
	APIToken   string
	DeliveryID int    // id de la forma de envío asignada a cada producto publicado
	ImageBase  string // URL base pública de las imágenes subidas (BASE_IMAGE_URL)
}

// PricingConfig acceso al API de precios TCGGO vía RapidAPI y base local de precios.
type PricingConfig struct {
	RapidAPIKey  string
	RapidAPIHost string
	PriceDBPath  string // CSV local con precios de referencia (card_prices.csv)
}

// NBPConfig tipo de cambio EUR->PLN desde api.nbp.pl.
type NBPConfig struct {
	BaseURL      string
	FallbackRate string // usado cuando el API no responde (ej. "4.265")
}

// FTPConfig credenciales del servidor FTP para subir imágenes y CSV.
type FTPConfig struct {
	Host     string
	User     string
	Password string
	ImageDir string // directorio remoto donde se suben las imágenes de producto
}

// AIConfig reconocimiento de cartas por imagen vía OpenAI.
type AIConfig struct {
	OpenAIAPIKey string
	Model        string // suele ser "gpt-4o"
}

// CatalogConfig rutas de los catálogos de sets TCG.
type CatalogConfig struct {
	SetsFileENG string
	SetsFileJP  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SHOPER_API_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "kartoteka-api"),
		},
		HTTP: HTTPConfig{
			Host:     getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:     getInt(v, "HTTP_PORT", 8080),
			APIToken: getString(v, "API_TOKEN", ""),
		},
		Storage: StorageConfig{
			Boxes:     getInt(v, "STORAGE_BOXES", 8),
			Columns:   getInt(v, "STORAGE_COLUMNS", 4),
			Positions: getInt(v, "STORAGE_POSITIONS", 1000),
			BookPath:  getString(v, "BOOK_PATH", "magazyn.csv"),
		},
		Shoper: ShoperConfig{
			APIURL:     getString(v, "SHOPER_API_URL", ""),
			APIToken:   getString(v, "SHOPER_API_TOKEN", ""),
			DeliveryID: getInt(v, "SHOPER_DELIVERY_ID", 1),
			ImageBase:  getString(v, "BASE_IMAGE_URL", "https://sklep839679.shoparena.pl/upload/images"),
		},
		Pricing: PricingConfig{
			RapidAPIKey:  getString(v, "RAPIDAPI_KEY", ""),
			RapidAPIHost: getString(v, "RAPIDAPI_HOST", ""),
			PriceDBPath:  getString(v, "PRICE_DB_PATH", "card_prices.csv"),
		},
		NBP: NBPConfig{
			BaseURL:      getString(v, "NBP_BASE_URL", "https://api.nbp.pl"),
			FallbackRate: getString(v, "NBP_FALLBACK_RATE", "4.265"),
		},
		FTP: FTPConfig{
			Host:     getString(v, "FTP_HOST", ""),
			User:     getString(v, "FTP_USER", ""),
			Password: getString(v, "FTP_PASSWORD", ""),
			ImageDir: getString(v, "FTP_IMAGE_DIR", "images"),
		},
		AI: AIConfig{
			OpenAIAPIKey: getString(v, "OPENAI_API_KEY", ""),
			Model:        getString(v, "OPENAI_MODEL", "gpt-4o"),
		},
		Catalog: CatalogConfig{
			SetsFileENG: getString(v, "SETS_FILE_ENG", "tcg_sets.csv"),
			SetsFileJP:  getString(v, "SETS_FILE_JP", "tcg_sets_jp.csv"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
