package config

import (
	"os"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	os.Setenv("BOT_TOKEN", "test_bot_token")
	os.Setenv("DB_PASSWORD", "test_password")
	os.Setenv("SHEET1_URL", "https://example.com/sheet1.json")
	os.Setenv("SHEET2_URL", "https://example.com/sheet2.json")
	os.Setenv("INVITE_SECRET_KEY", "this_is_a_test_secret_key_with_32_chars_minimum")
	t.Cleanup(func() {
		os.Unsetenv("BOT_TOKEN")
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("SHEET1_URL")
		os.Unsetenv("SHEET2_URL")
		os.Unsetenv("INVITE_SECRET_KEY")
	})
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.BotToken != "test_bot_token" {
		t.Errorf("BotToken = %q, want %q", cfg.BotToken, "test_bot_token")
	}

	if cfg.Sheet1URL != "https://example.com/sheet1.json" {
		t.Errorf("Sheet1URL = %q, want %q", cfg.Sheet1URL, "https://example.com/sheet1.json")
	}

	if cfg.FetchTimeoutSeconds != 15 {
		t.Errorf("FetchTimeoutSeconds = %d, want 15", cfg.FetchTimeoutSeconds)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing BOT_TOKEN",
			envVars: map[string]string{
				"DB_PASSWORD":       "password",
				"SHEET1_URL":        "https://example.com/1.json",
				"SHEET2_URL":        "https://example.com/2.json",
				"INVITE_SECRET_KEY": "this_is_a_test_secret_key_with_32_chars_minimum",
			},
		},
		{
			name: "Missing DB_PASSWORD",
			envVars: map[string]string{
				"BOT_TOKEN":         "token",
				"SHEET1_URL":        "https://example.com/1.json",
				"SHEET2_URL":        "https://example.com/2.json",
				"INVITE_SECRET_KEY": "this_is_a_test_secret_key_with_32_chars_minimum",
			},
		},
		{
			name: "Missing sheet URLs",
			envVars: map[string]string{
				"BOT_TOKEN":         "token",
				"DB_PASSWORD":       "password",
				"INVITE_SECRET_KEY": "this_is_a_test_secret_key_with_32_chars_minimum",
			},
		},
		{
			name: "Missing INVITE_SECRET_KEY",
			envVars: map[string]string{
				"BOT_TOKEN":   "token",
				"DB_PASSWORD": "password",
				"SHEET1_URL":  "https://example.com/1.json",
				"SHEET2_URL":  "https://example.com/2.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			_, err := LoadConfig()
			if err == nil {
				t.Error("LoadConfig() expected error for missing required field, got nil")
			}
		})
	}
}

func TestValidate_InviteSecretTooShort(t *testing.T) {
	cfg := &Config{
		BotToken:     "token",
		DBPassword:   "password",
		Sheet1URL:    "https://example.com/1.json",
		Sheet2URL:    "https://example.com/2.json",
		InviteSecret: "short",
	}

	err := cfg.Validate()
	if err == nil {
		t.Error("Validate() expected error for short invite secret, got nil")
	}
}

func TestSheetURL(t *testing.T) {
	cfg := &Config{
		Sheet1URL: "https://example.com/1.json",
		Sheet2URL: "https://example.com/2.json",
	}

	tests := []struct {
		key     string
		wantURL string
		wantOK  bool
	}{
		{key: "quiz1", wantURL: "https://example.com/1.json", wantOK: true},
		{key: "quiz2", wantURL: "https://example.com/2.json", wantOK: true},
		{key: "quiz3", wantURL: "", wantOK: false},
		{key: "", wantURL: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			url, ok := cfg.SheetURL(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("SheetURL(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if url != tt.wantURL {
				t.Errorf("SheetURL(%q) = %q, want %q", tt.key, url, tt.wantURL)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "testuser",
		DBPassword: "testpass",
		DBName:     "testdb",
		DBSSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	dsn := cfg.GetDSN()

	if dsn != expected {
		t.Errorf("GetDSN() = %q, want %q", dsn, expected)
	}
}

func TestGetFetchTimeout(t *testing.T) {
	cfg := &Config{
		FetchTimeoutSeconds: 15,
	}

	timeout := cfg.GetFetchTimeout()
	if timeout.Seconds() != 15 {
		t.Errorf("GetFetchTimeout() = %v, want 15s", timeout)
	}
}
