package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"tideland.dev/go/audit/capture"
)

var levels = map[string]int{debugLvl: 0, warnLvl: 2, errorLvl: 3}

func TestLogger(t *testing.T) {
	testCases := []struct {
		name         string
		loggerLvl    string
		msgLvl       string
		msg          string
		expLogFields []string
	}{
		{
			name:      "loggerLvl:error-msgLvl:debug",
			loggerLvl: "error",
			msgLvl:    "debug",
			msg:       "any debug msg",
		},
		{
			name:      "loggerLvl:error-msgLvl:warn",
			loggerLvl: "error",
			msgLvl:    "warn",
			msg:       "skipping malformed line",
		},
		{
			name:      "loggerLvl:error-msgLvl:error",
			loggerLvl: "error",
			msgLvl:    "error",
			msg:       "any err msg",
			expLogFields: []string{
				`"level":"error"`,
				`"time":`,
				`"message":"any err msg"`,
				`"caller":`,
			},
		},
		{
			name:      "loggerLvl:warn-msgLvl:warn",
			loggerLvl: "WARN",
			msgLvl:    "warn",
			msg:       "skipping malformed line",
			expLogFields: []string{
				`"level":"warn"`,
				`"message":"skipping malformed line"`,
			},
		},
		{
			name:      "loggerLvl:debug-msgLvl:debug",
			loggerLvl: "debug",
			msgLvl:    "debug",
			msg:       "any debug msg",
			expLogFields: []string{
				`"level":"debug"`,
				`"time":`,
				`"message":"any debug msg"`,
				`"caller":`,
			},
		},
		{
			name:      "loggerLvl:debug-msgLvl:error",
			loggerLvl: "debug",
			msgLvl:    "error",
			msg:       "any err msg",
			expLogFields: []string{
				`"level":"error"`,
				`"time":`,
				`"message":"any err msg"`,
				`"caller":`,
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var loggerMethod func(Logger, string, ...any)
			switch tc.msgLvl {
			case debugLvl:
				loggerMethod = Logger.Debug
			case warnLvl:
				loggerMethod = Logger.Warn
			case errorLvl:
				loggerMethod = Logger.Error
			}

			capturedLogOut := capture.Stderr(func() {
				logger := NewLogger(tc.loggerLvl, os.Stderr)
				loggerMethod(logger, tc.msg)
			})

			if levels[tc.msgLvl] < levels[parseLevelName(tc.loggerLvl)] {
				require.Equal(t, "", capturedLogOut.String(),
					"unexpected log, msgLvl (%s) < loggerLvl (%s)", tc.msgLvl, tc.loggerLvl)
				return
			}

			for _, expLogField := range tc.expLogFields {
				require.Contains(t, capturedLogOut.String(), expLogField)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	require.True(t, ValidLevel("Debug"))
	require.True(t, ValidLevel("warn"))
	require.False(t, ValidLevel("trace"))
	require.False(t, ValidLevel(""))
}

func parseLevelName(lvl string) string {
	return parseLevel(lvl).String()
}
