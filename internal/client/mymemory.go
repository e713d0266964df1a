package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const myMemoryBaseURL = "https://api.mymemory.translated.net"

// MyMemoryClient calls the MyMemory translation API.
type MyMemoryClient struct {
	baseURL string
}

func NewMyMemoryClient() *MyMemoryClient {
	return &MyMemoryClient{baseURL: myMemoryBaseURL}
}

type myMemoryResponse struct {
	ResponseBody struct {
		TranslatedText  string `json:"translatedText"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	} `json:"responseData"`
}

// Translate translates text from English into targetLang. A non-200
// service status is reported as an error so callers can degrade.
func (c *MyMemoryClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	reqURL := fmt.Sprintf(
		"%s/get?q=%s&langpair=en|%s",
		c.baseURL,
		url.QueryEscape(text),
		url.QueryEscape(targetLang),
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

	var data myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode MyMemory response: %w", err)
	}

	if data.ResponseBody.ResponseStatus != 200 {
		return "", fmt.Errorf("MyMemory error: %s", data.ResponseBody.ResponseDetails)
	}

	return data.ResponseBody.TranslatedText, nil
}
