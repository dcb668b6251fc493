//go:build debug

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

func init() {
	basePath, _ := filepath.Abs(".")
	logrus.SetLevel(logrus.TraceLevel)
	logrus.StandardLogger().SetReportCaller(true)
	logrus.StandardLogger().Formatter.(*logrus.TextFormatter).CallerPrettyfier = func(frame *runtime.Frame) (function string, file string) {
		file = strings.TrimPrefix(frame.File, basePath+string(filepath.Separator))
		return "", " " + file + ":" + strconv.Itoa(frame.Line)
	}
}
