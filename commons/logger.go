// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"strings"

	"github.com/labstack/gommon/log"
)

var Logger = log.New("greetme")

// InitLogger applies LOG_LEVEL once the env file has been loaded.
func InitLogger() {
	level := strings.ToUpper(GetEnv("LOG_LEVEL"))
	switch level {
	case "DEBUG":
		Logger.SetLevel(log.DEBUG)
	case "INFO":
		Logger.SetLevel(log.INFO)
	case "WARN":
		Logger.SetLevel(log.WARN)
	case "ERROR":
		Logger.SetLevel(log.ERROR)
	case "OFF":
		Logger.SetLevel(log.OFF)
	default:
		Logger.SetLevel(log.INFO)
	}
	Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")
}
