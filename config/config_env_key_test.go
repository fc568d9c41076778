package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"sms": map[string]any{
			"topicId":       "",
			"ratePerSecond": 10,
		},
		"delivery": map[string]any{
			"channelTimeout": "10s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SMS_TOPICID", want: "sms.topicId"},
		{envKey: "SMS_RATEPERSECOND", want: "sms.ratePerSecond"},
		{envKey: "DELIVERY_CHANNELTIMEOUT", want: "delivery.channelTimeout"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestDeliveryConfig_ApplyDefaults(t *testing.T) {
	cfg := DeliveryConfig{BatchSize: 10, BaseDelay: 2 * time.Second}
	cfg.applyDefaults()

	if cfg.BatchSize != 10 {
		t.Fatalf("BatchSize = %d, want configured value 10", cfg.BatchSize)
	}
	if cfg.BaseDelay != 2*time.Second {
		t.Fatalf("BaseDelay = %s, want configured value 2s", cfg.BaseDelay)
	}
	if cfg.MaxAttempts != 3 || cfg.ChannelTimeout != 10*time.Second || cfg.HistoryLimit != 100 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ProcessInterval != 0 {
		t.Fatalf("ProcessInterval = %s, want sweep left disabled", cfg.ProcessInterval)
	}
}
