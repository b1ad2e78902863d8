// Package config loads typed configuration structs from environment
// variables.
//
// A .env file in the working directory is loaded once, if present, before the
// first parse; after that every Load call maps env-tagged struct fields via
// caarlos0/env. Required variables that are missing make Load fail, and
// MustLoad turns that failure into a startup panic so a misconfigured process
// never begins serving.
//
//	type emailConfig struct {
//		SenderEmail string `env:"SENDER_EMAIL,required"`
//		AdminEmail  string `env:"ADMIN_EMAIL,required"`
//	}
//
//	var cfg emailConfig
//	config.MustLoad(&cfg)
package config
