package util

/*
A lightweight canvas-style chart renderer.
Copyright (C) 2024 Haris Khan

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogLevels lists the level names accepted by ParseLogLevel, most verbose first.
var LogLevels = []string{"Debug", "Info", "Warning", "Error", "Fatal", "Panic"}

// ParseLogLevel maps a level name from LogLevels to its logrus level.
// Matching ignores case.
func ParseLogLevel(name string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warning", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	case "fatal":
		return logrus.FatalLevel, nil
	case "panic":
		return logrus.PanicLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// LevelName returns the LogLevels entry for lvl. Levels not in LogLevels
// map to "Info".
func LevelName(lvl logrus.Level) string {
	switch lvl {
	case logrus.DebugLevel, logrus.TraceLevel:
		return "Debug"
	case logrus.WarnLevel:
		return "Warning"
	case logrus.ErrorLevel:
		return "Error"
	case logrus.FatalLevel:
		return "Fatal"
	case logrus.PanicLevel:
		return "Panic"
	default:
		return "Info"
	}
}

// SetupLogging configures the standard logger used by every package.
func SetupLogging(out io.Writer, level string) error {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return err
	}
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: false,
	})
	log.SetOutput(out)
	log.SetLevel(lvl)
	return nil
}

// BuildInfo formats the version and commit set at build time.
func BuildInfo() string {
	return fmt.Sprintf("simplechart %s (%s)", Version, GitCommit)
}
