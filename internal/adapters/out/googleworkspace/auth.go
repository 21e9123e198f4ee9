// Package googleworkspace implements the mailbox and calendar ports on the
// Gmail and Google Calendar APIs. Both adapters share one OAuth2 client
// authorized for the four scopes the service needs.
package googleworkspace

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
)

// scopes covers reading and sending mail, marking messages read, and
// managing delivery events.
func scopes() []string {
	return []string{
		gmail.GmailReadonlyScope,
		gmail.GmailSendScope,
		gmail.GmailModifyScope,
		calendar.CalendarScope,
	}
}

// NewHTTPClient builds an authorized HTTP client from an OAuth2 client
// credentials file and a previously stored token file. The token is obtained
// out of band with the installed-application flow; this service never runs
// the interactive consent step itself.
func NewHTTPClient(ctx context.Context, credentialsFile, tokenFile string) (*http.Client, error) {
	credentials, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read google credentials: %w", err)
	}

	config, err := google.ConfigFromJSON(credentials, scopes()...)
	if err != nil {
		return nil, fmt.Errorf("parse google credentials: %w", err)
	}

	token, err := readToken(tokenFile)
	if err != nil {
		return nil, err
	}

	return config.Client(ctx, token), nil
}

func readToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open google token: %w", err)
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("parse google token: %w", err)
	}
	return token, nil
}
