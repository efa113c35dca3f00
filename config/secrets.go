package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

var errNoSecretData = errors.New("no secret data found in AWS Secrets Manager")

// DatabaseSecret is the JSON document stored under database.secret_name. It
// follows the layout RDS uses for its managed credentials.
type DatabaseSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DBName   string `json:"dbname"`
}

// LoadSecretsFromAWS overlays the database credentials stored in AWS Secrets
// Manager. It does nothing when no secret name is configured.
func LoadSecretsFromAWS(ctx context.Context, cfg *Config) error {
	if cfg.Database.SecretName == "" {
		return nil
	}
	secret, err := fetchSecretsFromAWS(ctx, cfg.Database.SecretRegion, cfg.Database.SecretName)
	if err != nil {
		return err
	}
	overlaySecretsOnConfig(cfg, secret)
	return nil
}

func fetchSecretsFromAWS(ctx context.Context, region, secretName string) (*DatabaseSecret, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := secretsmanager.NewFromConfig(awsCfg)
	result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret %s: %w", secretName, err)
	}
	return parseSecretData(result)
}

func parseSecretData(result *secretsmanager.GetSecretValueOutput) (*DatabaseSecret, error) {
	var secret DatabaseSecret
	switch {
	case result.SecretString != nil:
		if err := json.Unmarshal([]byte(*result.SecretString), &secret); err != nil {
			return nil, fmt.Errorf("failed to parse secret JSON: %w", err)
		}
	case result.SecretBinary != nil:
		if err := json.Unmarshal(result.SecretBinary, &secret); err != nil {
			return nil, fmt.Errorf("failed to parse secret binary: %w", err)
		}
	default:
		return nil, errNoSecretData
	}
	return &secret, nil
}

func overlaySecretsOnConfig(cfg *Config, secret *DatabaseSecret) {
	if secret.Username != "" {
		cfg.Database.User = secret.Username
	}
	if secret.Password != "" {
		cfg.Database.Password = secret.Password
	}
	if secret.Host != "" {
		cfg.Database.Host = secret.Host
	}
	if secret.Port != 0 {
		cfg.Database.Port = secret.Port
	}
	if secret.DBName != "" {
		cfg.Database.Name = secret.DBName
	}
}
