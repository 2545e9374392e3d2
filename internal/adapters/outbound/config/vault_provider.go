package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider serves configuration values from one KVv2 secret, kept for cacheTTL.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	cache      *secretCache
}

type secretCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	data      map[string]any
	fetchedAt time.Time
	now       func() time.Time
}

// NewVaultProvider creates a new VaultProvider.
//
// server is the Vault address (e.g. "http://localhost:8200"), mountPath the KV
// engine mount (e.g. "secret") and secretPath the secret within it (e.g. "fareassist").
// A cacheTTL of zero reads the secret on every lookup.
func NewVaultProvider(server, token, mountPath, secretPath string, cacheTTL time.Duration) (VaultProvider, error) {
	if server == "" {
		return VaultProvider{}, fmt.Errorf("server is required")
	}
	if token == "" {
		return VaultProvider{}, fmt.Errorf("token is required")
	}
	if mountPath == "" {
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	}
	if secretPath == "" {
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		cache:      &secretCache{ttl: cacheTTL, now: time.Now},
	}, nil
}

// Get returns the value stored under key. Numbers and booleans are returned
// in their string form so they can feed int, bool and duration fields.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secretData(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("vault secret key %s has unsupported type %T", key, value)
}

func (vp VaultProvider) secretData(ctx context.Context) (map[string]any, error) {
	c := vp.cache
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.data, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	c.data = secret.Data
	c.fetchedAt = c.now()
	return c.data, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider chains Vault behind environment variables as the global
// config provider. Setting VAULT_ADDR to "-" keeps configuration on environment
// variables only.
type InitVaultProvider struct {
	Logger     *log.Logger   `resolve:""`
	Server     string        `config:"VAULT_ADDR" default:"-"`
	Token      string        `config:"VAULT_TOKEN" default:"-"`
	MountPath  string        `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string        `config:"VAULT_SECRET_PATH" default:"fareassist"`
	CacheTTL   time.Duration `config:"VAULT_CACHE_TTL" default:"5m"`
}

// Initialize sets the composite provider when Vault is configured.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "-" {
		ivp.Logger.Println("InitVaultProvider: vault disabled, reading configuration from environment variables")
		return ctx, nil
	}
	if ivp.Token == "-" {
		ivp.Token = ""
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath, ivp.CacheTTL)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	ivp.Logger.Printf("InitVaultProvider: reading secrets from %s/%s", ivp.MountPath, ivp.SecretPath)
	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)
	return ctx, nil
}
