package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
)

func TestNewObjectKey(t *testing.T) {
	key := NewObjectKey(PrefixAvatars, "Me.PNG")
	assert.Regexp(t, `^avatars/[0-9a-f-]{36}\.png$`, key)

	key = NewObjectKey(PrefixProducts, "noext")
	assert.Regexp(t, `^products/[0-9a-f-]{36}$`, key)
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"missing endpoint", config.MinIOConfig{}, "minio endpoint is required"},
		{"missing credentials", config.MinIOConfig{Endpoint: "localhost:9000"}, "minio credentials are required"},
		{"missing bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "minio bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.EqualError(t, err, tt.want)
		})
	}
}
