package bootstrap

import (
	"context"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/GregMSThompson/factcheck/internal/config"
	"github.com/GregMSThompson/factcheck/pkg/logger"
)

type secretAccessor interface {
	AccessSecret(ctx context.Context, name string) (string, error)
	Close() error
}

type secretManagerAccessor struct {
	client *secretmanager.Client
}

func newSecretManagerAccessor(ctx context.Context) (secretAccessor, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &secretManagerAccessor{client: client}, nil
}

func (s *secretManagerAccessor) AccessSecret(ctx context.Context, name string) (string, error) {
	res, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: secretVersionName(name),
	})
	if err != nil {
		return "", err
	}
	return string(res.GetPayload().GetData()), nil
}

func (s *secretManagerAccessor) Close() error {
	return s.client.Close()
}

// secretVersionName accepts projects/{p}/secrets/{s} with or without a version.
func secretVersionName(name string) string {
	if strings.Contains(name, "/versions/") {
		return name
	}
	return strings.TrimSuffix(name, "/") + "/versions/latest"
}

// resolveAPIKey prefers the key from the environment and only then consults
// Secret Manager. Lookup failures are logged and yield an empty key.
func resolveAPIKey(ctx context.Context, cfg *config.Config, open func(context.Context) (secretAccessor, error)) string {
	if cfg.APIKey != "" || cfg.APIKeySecret == "" {
		return cfg.APIKey
	}

	log := logger.FromContext(ctx)
	accessor, err := open(ctx)
	if err != nil {
		log.Error("secret manager client failed", "error", err)
		return ""
	}
	defer accessor.Close()

	key, err := accessor.AccessSecret(ctx, cfg.APIKeySecret)
	if err != nil {
		log.Error("provider credential lookup failed", "secret", cfg.APIKeySecret, "error", err)
		return ""
	}
	return strings.TrimSpace(key)
}
