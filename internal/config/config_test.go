package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		source  SalesSource
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name:   "Modo static com localização",
			source: SalesSource{Mode: "static", StaticLocation: "./salesData.json", Timeout: time.Second},
		},
		{
			name:   "Modo normalizado para minúsculas",
			source: SalesSource{Mode: " QUERY ", QueryURL: "http://localhost:8000"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, SalesSourceModeQuery, c.SalesSource.Mode)
				assert.Equal(t, 30*time.Second, c.SalesSource.Timeout)
			},
		},
		{
			name:    "Modo static sem localização",
			source:  SalesSource{Mode: "static"},
			wantErr: true,
		},
		{
			name:    "Modo query sem URL",
			source:  SalesSource{Mode: "query"},
			wantErr: true,
		},
		{
			name:    "Modo desconhecido",
			source:  SalesSource{Mode: "grpc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{SalesSource: tt.source}
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}
