package actlog_test

import (
	"testing"

	"pkt.systems/actlog"
)

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		in   string
		want actlog.Severity
		ok   bool
	}{
		{"trace", actlog.TraceSeverity, true},
		{"debug", actlog.DebugSeverity, true},
		{"info", actlog.InfoSeverity, true},
		{"warn", actlog.WarnSeverity, true},
		{"warning", actlog.WarnSeverity, true},
		{"error", actlog.ErrorSeverity, true},
		{"fatal", actlog.FatalSeverity, true},
		{" INFO ", actlog.InfoSeverity, true},
		{"verbose", actlog.InfoSeverity, false},
		{"", actlog.InfoSeverity, false},
	}
	for _, tc := range cases {
		got, ok := actlog.ParseSeverity(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseSeverity(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSeverityStringRoundTrip(t *testing.T) {
	for _, sev := range []actlog.Severity{
		actlog.TraceSeverity,
		actlog.DebugSeverity,
		actlog.InfoSeverity,
		actlog.WarnSeverity,
		actlog.ErrorSeverity,
		actlog.FatalSeverity,
	} {
		parsed, ok := actlog.ParseSeverity(actlog.SeverityString(sev))
		if !ok || parsed != sev {
			t.Fatalf("round trip failed for %v: parsed %v ok=%v", sev, parsed, ok)
		}
	}
}

func TestSeverityZeroValueIsInfo(t *testing.T) {
	var sev actlog.Severity
	if sev != actlog.InfoSeverity {
		t.Fatalf("zero Severity = %v, want InfoSeverity", sev)
	}
}

func TestSeverityFromEnv(t *testing.T) {
	t.Setenv("ACTLOG_SEVERITY", "error")
	sev, ok := actlog.SeverityFromEnv("ACTLOG_SEVERITY")
	if !ok || sev != actlog.ErrorSeverity {
		t.Fatalf("SeverityFromEnv = %v, %v; want error, true", sev, ok)
	}
	if _, ok := actlog.SeverityFromEnv("ACTLOG_SEVERITY_UNSET_KEY"); ok {
		t.Fatal("expected ok=false for unset key")
	}
	if _, ok := actlog.SeverityFromEnv(""); ok {
		t.Fatal("expected ok=false for empty key")
	}
}
