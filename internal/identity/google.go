package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wisely_backend/internal/config"
	"wisely_backend/internal/util"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

const defaultIdentityBaseURL = "https://identitytoolkit.googleapis.com"

// GoogleProvider verifies Google-issued ID tokens offline (signature +
// audience) and checks subject liveness through the Identity Toolkit
// accounts:lookup endpoint.
type GoogleProvider struct {
	cfg        config.IdentityConfig
	httpClient *http.Client
}

func NewGoogleProvider(cfg config.IdentityConfig) *GoogleProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleProvider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *GoogleProvider) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{p.cfg.ClientID}); err != nil {
		return nil, util.ErrInvalidIDToken
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, util.ErrInvalidIDToken
	}

	name := claims.Name
	if name == "" {
		name = strings.TrimSpace(claims.GivenName + " " + claims.FamilyName)
	}

	return &Identity{
		Subject: claims.Sub,
		Email:   claims.Email,
		Name:    name,
		Picture: claims.Picture,
	}, nil
}

type lookupRequest struct {
	LocalID []string `json:"localId"`
}

type lookupResponse struct {
	Users []struct {
		LocalID  string `json:"localId"`
		Disabled bool   `json:"disabled"`
	} `json:"users"`
}

// LookupSubject asks the provider whether the account behind subject still
// exists and is enabled. Any negative answer surfaces as ErrUserNotFound;
// the caller treats it as unauthenticated, not as a system fault.
func (p *GoogleProvider) LookupSubject(ctx context.Context, subject string) error {
	baseURL := p.cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultIdentityBaseURL
	}

	jsonData, err := json.Marshal(lookupRequest{LocalID: []string{subject}})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/accounts:lookup?key=%s", baseURL, p.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity lookup error (status %d): %s", resp.StatusCode, string(body))
	}

	var result lookupResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return err
	}

	for _, u := range result.Users {
		if u.LocalID == subject && !u.Disabled {
			return nil
		}
	}

	return util.ErrUserNotFound
}
