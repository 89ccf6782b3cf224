package config

// Config is the top-level configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	SocialAPI SocialAPIConfig `mapstructure:"social_api"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Storage   StorageConfig   `mapstructure:"storage"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Mail      MailConfig      `mapstructure:"mail"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Tracker   TrackerConfig   `mapstructure:"tracker"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig holds the hosted Postgres connection settings.
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// SocialAPIConfig configures the third-party Instagram data provider.
type SocialAPIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	ApiKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"`
}

type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	TextModel   string           `mapstructure:"text_model"`
	ImageModel  string           `mapstructure:"image_model"`
	ApiKey      string           `mapstructure:"api_key"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	KeywordResearch string `mapstructure:"keyword_research"`
	Outline         string `mapstructure:"outline"`
	Article         string `mapstructure:"article"`
}

// StorageConfig selects the blob backend once at startup: "minio" or "local".
type StorageConfig struct {
	Backend   string `mapstructure:"backend"`
	LocalPath string `mapstructure:"local_path"`
}

type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	Mock     bool   `mapstructure:"mock"`
}

type AdminConfig struct {
	Password string `mapstructure:"password"`
}

type TrackerConfig struct {
	// Cron spec for the daily batch, robfig/cron format with seconds.
	UpdateSchedule string `mapstructure:"update_schedule"`
	// Requests per second against the social API during the batch.
	RatePerSecond float64 `mapstructure:"rate_per_second"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
