package log

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLog(t *testing.T) {
	f := &bytes.Buffer{}
	LogJSON = false
	SetOutput(f)
	Infof("hello %v", "everyone")
	if !strings.HasSuffix(f.String(), "hello everyone\n") {
		t.Fatal("fail")
	}
}

func TestLogJSON(t *testing.T) {
	LogJSON = true
	if err := Build(); err != nil {
		t.Fatal(err)
	}

	type tcase struct {
		level  int
		fops   func(string, ...interface{})
		expMsg string
		expLvl zapcore.Level
	}

	tests := map[string]tcase{
		"Infof":  {level: 1, fops: Infof, expMsg: "Infof json logger", expLvl: zapcore.InfoLevel},
		"Debugf": {level: 2, fops: Debugf, expMsg: "Debugf json logger", expLvl: zapcore.DebugLevel},
		"Warnf":  {level: 1, fops: Warnf, expMsg: "Warnf json logger", expLvl: zapcore.WarnLevel},
		"Errorf": {level: 1, fops: Errorf, expMsg: "Errorf json logger", expLvl: zapcore.ErrorLevel},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			observedZapCore, observedLogs := observer.New(zap.DebugLevel)
			Set(zap.New(observedZapCore).Sugar())
			Level = tc.level

			tc.fops("%s", tc.expMsg)

			if observedLogs.Len() < 1 {
				t.Fatal("no log emitted")
			}
			got := observedLogs.All()[0]
			if got.Message != tc.expMsg {
				t.Fatalf("got message %q, want %q", got.Message, tc.expMsg)
			}
			if got.Level != tc.expLvl {
				t.Fatalf("got level %v, want %v", got.Level, tc.expLvl)
			}
		})
	}
}
