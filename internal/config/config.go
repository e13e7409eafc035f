package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env string `yaml:"env" env:"ENV" env-default:"prod"`

	// Исходные книги. Их отсутствие на старте — фатальная ошибка.
	OpsWorkbook    string `yaml:"ops_workbook" env:"OPS_WORKBOOK" env-required:"true"`
	ClientWorkbook string `yaml:"client_workbook" env:"CLIENT_WORKBOOK" env-required:"true"`

	// Результаты сборки.
	JSONOutput string `yaml:"json_output" env-default:"v3_data.json"`
	HTMLOutput string `yaml:"html_output" env-default:"dashboard_v7.html"`

	// Фрагменты статической страницы.
	CSSFragment  string `yaml:"css_fragment" env-default:"new_css.txt"`
	BodyFragment string `yaml:"body_fragment" env-default:"new_body.txt"`
	JSFragment   string `yaml:"js_fragment" env-default:"new_js.txt"`

	// Общая папка для копии дашборда; пустая строка отключает копирование.
	SharedDir  string `yaml:"shared_dir"`
	SharedName string `yaml:"shared_name" env-default:"teams-customers-dashboard.html"`

	// Открытие книг: число попыток и пауза между ними.
	LoadRetries int           `yaml:"load_retries" env-default:"3"`
	RetryDelay  time.Duration `yaml:"retry_delay" env-default:"5s"`

	WatchInterval time.Duration `yaml:"watch_interval" env-default:"30s"`

	HTTPServer `yaml:"http_server"`

	// Доступ к принудительной пересборке; пустой логин отключает маршрут.
	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4017"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

// MustConfig читает конфигурацию из yaml-файла с перекрытием из
// окружения и падает при любой проблеме.
func MustConfig(path string) *Config {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		log.Fatalf("cannot read config %s: %s", path, err)
	}

	// Исходные книги обязаны существовать до первой сборки.
	for _, p := range []string{cfg.OpsWorkbook, cfg.ClientWorkbook} {
		if _, err := os.Stat(p); err != nil {
			log.Fatalf("source workbook not found: %s", p)
		}
	}

	return &cfg
}
