// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/paperlist/pkg/types"
)

// sourceConfig assembles the spreadsheet source settings from viper.
// There is no default URL: an unset source.url fails at load time.
func sourceConfig() types.SourceConfig {
	timeout := viper.GetDuration("source.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	userAgent := viper.GetString("source.user_agent")
	if userAgent == "" {
		userAgent = "paperlist/" + version
	}
	return types.SourceConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		URL:          viper.GetString("source.url"),
		MaxBodyBytes: viper.GetInt64("source.max_body_bytes"),
	}
}

func viewConfig() types.ViewConfig {
	return types.ViewConfig{PageSize: viper.GetInt("view.page_size")}
}

func serveConfig() types.ServeConfig {
	port := viper.GetString("serve.port")
	if port == "" {
		port = "8787"
	}
	return types.ServeConfig{Port: port}
}
