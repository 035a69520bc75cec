package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	AppName  string
	Build    string
	WorkDir  string

	// path of the JSON file holding the survey response collection
	DataFile string

	DefaultFromEmail    mail.Address
	SendgridApiKey      string
	ProgramManagerEmail mail.Address
	DashboardURL        string

	RollbarToken string

	Server struct {
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "MDP Dashboard")
	v.SetDefault("build", "dev")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("programManagerEmail", "")
	v.SetDefault("dashboardURL", "http://localhost:8000")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("serverDebugHost", "localhost:4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	wd := Getwd()
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	v.SetDefault("dataFile", filepath.Join(wd, "data.json"))

	conf := &Config{
		Env:                 env,
		Debug:               v.GetBool("debug"),
		TestMode:            v.GetBool("testMode"),
		AppName:             v.GetString("appName"),
		Build:               v.GetString("build"),
		WorkDir:             wd,
		DataFile:            v.GetString("dataFile"),
		DefaultFromEmail:    mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		SendgridApiKey:      v.GetString("sendgridApiKey"),
		ProgramManagerEmail: mail.Address{Address: v.GetString("programManagerEmail")},
		DashboardURL:        v.GetString("dashboardURL"),
		RollbarToken:        v.GetString("rollbarToken"),
	}
	conf.Server.Addr = v.GetString("serverAddr")
	conf.Server.DebugHost = v.GetString("serverDebugHost")
	conf.Server.ShutdownTimeout = v.GetDuration("serverShutdownTimeout")
	return conf
}
