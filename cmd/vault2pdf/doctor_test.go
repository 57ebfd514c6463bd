package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestRunDoctorCmdJSON(t *testing.T) {
	env, stdout, _ := testEnv()

	code := run(context.Background(), []string{"doctor", "--json"}, env)
	if code != ExitSuccess && code != ExitGeneral {
		t.Fatalf("exit code = %d", code)
	}

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("doctor --json output is not valid JSON: %v\n%s", err, stdout.String())
	}
	switch result.Status {
	case "ready", "warnings", "errors":
	default:
		t.Errorf("status = %q", result.Status)
	}
	if result.Env.OS == "" || result.Env.Arch == "" {
		t.Errorf("platform fields missing: %+v", result.Env)
	}
}

func TestRunDoctorCmdHuman(t *testing.T) {
	env, stdout, _ := testEnv()

	run(context.Background(), []string{"doctor"}, env)

	out := stdout.String()
	for _, s := range []string{"vault2pdf doctor", "Browser", "Environment", "System", "Status:"} {
		if !strings.Contains(out, s) {
			t.Errorf("doctor output missing %q:\n%s", s, out)
		}
	}
}

func TestCheckSystemTempWritable(t *testing.T) {
	result := &doctorResult{}
	checkSystem(result)
	if !result.System.TempWritable {
		t.Error("temp directory should be writable in the test environment")
	}
}

func TestPrintDoctorResultStatuses(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"ready", "Ready to convert"},
		{"warnings", "Ready with warnings"},
		{"errors", "Not ready"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			var buf bytes.Buffer
			printDoctorResult(&buf, &doctorResult{Status: tt.status})
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}
