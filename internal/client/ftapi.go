package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const ftapiBaseURL = "https://ftapi.pythonanywhere.com"

// FTAPIClient calls the free translate/dictionary API at
// ftapi.pythonanywhere.com, which returns definitions alongside the
// translation.
type FTAPIClient struct {
	baseURL string
}

func NewFTAPIClient() *FTAPIClient {
	return &FTAPIClient{baseURL: ftapiBaseURL}
}

type ftapiResponse struct {
	SourceText      string `json:"source-text"`
	DestinationText string `json:"destination-text"`
	Definitions     []struct {
		PartOfSpeech string `json:"part-of-speech"`
		Definition   string `json:"definition"`
		Example      string `json:"example"`
	} `json:"definitions"`
}

// Lookup returns the first dictionary definition for a word, or an empty
// string when the service has none.
func (c *FTAPIClient) Lookup(ctx context.Context, word string) (string, error) {
	reqURL := fmt.Sprintf(
		"%s/translate?sl=en&dl=en&text=%s",
		c.baseURL,
		url.QueryEscape(word),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var data ftapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to look up word %q: %w", word, err)
	}

	if len(data.Definitions) == 0 {
		return "", nil
	}

	return data.Definitions[0].Definition, nil
}
