package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("STORE_URL", "http://localhost:3000")
	t.Setenv("STORE_KEY", "store-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")
}

func TestLoad(t *testing.T) {
	setRequired(t)
	conf, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.StoreURL != "http://localhost:3000" {
		t.Errorf("unexpected store url: %q", conf.StoreURL)
	}
	if conf.Model != defaultModel {
		t.Errorf("expected default model %q, got %q", defaultModel, conf.Model)
	}
	if conf.MaxArgRetries != defaultMaxArgRetries {
		t.Errorf("expected default retries %v, got %v", defaultMaxArgRetries, conf.MaxArgRetries)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MODEL", "gpt-custom")
	t.Setenv("MAX_ARG_RETRIES", "5")
	conf, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Model != "gpt-custom" {
		t.Errorf("expected model override, got %q", conf.Model)
	}
	if conf.MaxArgRetries != 5 {
		t.Errorf("expected retries override, got %v", conf.MaxArgRetries)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	tcs := []struct {
		name    string
		unset   string
		wantMsg string
	}{
		{name: "store url", unset: "STORE_URL", wantMsg: "STORE_URL"},
		{name: "store key", unset: "STORE_KEY", wantMsg: "STORE_KEY"},
		{name: "openai key", unset: "OPENAI_API_KEY", wantMsg: "OPENAI_API_KEY"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.unset, "")
			_, err := Load()
			if err == nil {
				t.Fatal("expected error for missing configuration")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("expected error naming %q, got: %v", tc.wantMsg, err)
			}
		})
	}
}

func TestLoad_BadRetries(t *testing.T) {
	tcs := []struct {
		name  string
		value string
	}{
		{name: "unparsable", value: "lots"},
		{name: "negative", value: "-1"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv("MAX_ARG_RETRIES", tc.value)
			if _, err := Load(); err == nil {
				t.Fatal("expected error for bad MAX_ARG_RETRIES")
			}
		})
	}
}
