// services/advisory_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"safir-backend/models"
)

// PricingFallback is shown whenever the advisory provider cannot answer.
// Advisory output is never an error surface for the caller.
const PricingFallback = "Smart pricing suggestions are unavailable right now."

// AdvisoryService fronts the external AI provider: smart pricing prose for
// the dashboard and a suspicious-booking signal for online submissions. Both
// calls fail soft.
type AdvisoryService struct {
	Client *http.Client
}

func NewAdvisoryService() *AdvisoryService {
	return &AdvisoryService{
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// advisoryResponse is the provider's envelope.
type advisoryResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Text    string `json:"text"`
	Flagged bool   `json:"flagged"`
}

func (s *AdvisoryService) call(path string, payload interface{}) (*advisoryResponse, error) {
	endpoint := strings.TrimRight(os.Getenv("ADVISORY_ENDPOINT"), "/")
	apiKey := os.Getenv("ADVISORY_API_KEY")
	if endpoint == "" || apiKey == "" {
		return nil, fmt.Errorf("advisory provider not configured")
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", endpoint+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-advisory-key", apiKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var ar advisoryResponse
	if err := json.Unmarshal(bodyBytes, &ar); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	if ar.Status != "success" {
		return nil, fmt.Errorf("API status error: %s - %s", ar.Status, ar.Message)
	}
	return &ar, nil
}

// SmartPricingSuggestions asks the provider for seasonal pricing advice over
// the current room inventory. Any failure returns the fixed fallback string.
func (s *AdvisoryService) SmartPricingSuggestions(rooms []models.Room) string {
	payload := map[string]interface{}{
		"task":  "smart-pricing",
		"rooms": rooms,
	}

	ar, err := s.call("/suggestions", payload)
	if err != nil {
		log.Printf("[advisory] pricing suggestions failed: %v", err)
		return PricingFallback
	}
	if strings.TrimSpace(ar.Text) == "" {
		return PricingFallback
	}
	return ar.Text
}

// DetectSuspiciousBooking asks the provider whether a candidate reservation
// looks anomalous. The signal is advisory only and never blocks a booking;
// failures read as not suspicious.
func (s *AdvisoryService) DetectSuspiciousBooking(reservation models.Reservation) bool {
	payload := map[string]interface{}{
		"task":        "suspicious-booking",
		"reservation": reservation,
	}

	ar, err := s.call("/screen", payload)
	if err != nil {
		log.Printf("[advisory] suspicious booking check failed: %v", err)
		return false
	}
	return ar.Flagged
}
