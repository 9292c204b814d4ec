package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func TestValidateConfig(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: AppConfig{
				MongoURI:      "mongodb://localhost:27017",
				MongoDatabase: "quantum",
			},
			wantErr: false,
		},
		{
			name: "bad URI",
			cfg: AppConfig{
				MongoURI:      "not-a-mongo-uri",
				MongoDatabase: "quantum",
			},
			wantErr: true,
		},
		{
			name: "empty database",
			cfg: AppConfig{
				MongoURI:      "mongodb://localhost:27017",
				MongoDatabase: "",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(nil, tt.cfg, logger)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig: err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
