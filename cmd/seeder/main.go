// Command seeder populates a running portal with demonstration data over
// its HTTP API. It logs in with the demo admin account, creates a property
// with a handful of units, moves tenants in, and files maintenance requests
// and rent transactions, so a fresh deployment has something to show.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type loginResponse struct {
	Token string `json:"token"`
}

type entity struct {
	ID string `json:"id"`
}

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

func (c *client) post(path string, payload interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("POST %s: status %d: %s", path, resp.StatusCode, data)
	}
	var e entity
	if err := json.Unmarshal(data, &e); err != nil {
		return "", nil
	}
	return e.ID, nil
}

func (c *client) login(email, password string) error {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := c.http.Post(c.baseURL+"/api/auth/login", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d", resp.StatusCode)
	}
	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return err
	}
	c.token = lr.Token
	return nil
}

var firstNames = []string{"Ava", "Noah", "Mia", "Leo", "Ines", "Omar", "Nina", "Jonas", "Carla", "Felix"}
var lastNames = []string{"Brandt", "Okafor", "Silva", "Kovacs", "Lindqvist", "Moreau", "Tanaka", "Petrov", "Nguyen", "Haas"}

func randomName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	baseURL := os.Getenv("PORTAL_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	email := os.Getenv("SEED_EMAIL")
	if email == "" {
		email = "admin@lodgeworks.dev"
	}
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password"
	}
	unitCount := 8
	if v := os.Getenv("SEED_UNITS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			unitCount = n
		}
	}

	c := &client{baseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
	if err := c.login(email, password); err != nil {
		log.WithError(err).Fatal("seeder login failed")
	}
	log.WithField("portal", baseURL).Info("logged in, seeding demo data")

	propertyID, err := c.post("/api/properties", map[string]interface{}{
		"name":        "Cedar Row Demo",
		"address":     "12 Cedar Row",
		"description": "Seeded demonstration property",
		"total_units": unitCount,
		"year_built":  2005,
		"square_feet": float64(unitCount) * 780,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create property")
	}

	for i := 0; i < unitCount; i++ {
		rent := 950 + float64(rand.Intn(12))*75
		unitID, err := c.post("/api/units", map[string]interface{}{
			"property_id":    propertyID,
			"unit_number":    fmt.Sprintf("%d%c", i/2+1, 'A'+i%2),
			"floor":          i/2 + 1,
			"unit_type":      []string{"studio", "1br", "2br"}[rand.Intn(3)],
			"square_feet":    550 + float64(rand.Intn(500)),
			"bedrooms":       rand.Intn(3),
			"bathrooms":      1 + rand.Intn(2),
			"rent_amount":    rent,
			"deposit_amount": rent,
		})
		if err != nil {
			log.WithError(err).Fatal("failed to create unit")
		}

		// Roughly two out of three units get a tenant.
		if rand.Intn(3) == 0 {
			continue
		}
		name := randomName()
		start := time.Now().AddDate(0, -rand.Intn(10), 0)
		_, err = c.post("/api/tenants", map[string]interface{}{
			"unit_id":     unitID,
			"name":        name,
			"email":       fmt.Sprintf("tenant%d@example.com", i),
			"phone":       fmt.Sprintf("555-02%02d", i),
			"lease_start": start.Format(time.RFC3339),
			"lease_end":   start.AddDate(1, 0, 0).Format(time.RFC3339),
			"rent_amount": rent,
			"occupation":  []string{"nurse", "teacher", "engineer", "barista"}[rand.Intn(4)],
		})
		if err != nil {
			log.WithError(err).Fatal("failed to create tenant")
		}

		_, err = c.post("/api/transactions", map[string]interface{}{
			"property_id": propertyID,
			"type":        "income",
			"description": "First month rent",
			"amount":      rent,
			"category":    "rent",
			"date":        time.Now().Format(time.RFC3339),
		})
		if err != nil {
			log.WithError(err).Fatal("failed to create transaction")
		}

		if rand.Intn(4) == 0 {
			_, err = c.post("/api/maintenance", map[string]interface{}{
				"unit_id":     unitID,
				"title":       "Routine inspection follow-up",
				"description": "Generated by the demo seeder.",
				"category":    "general",
				"priority":    []string{"low", "medium"}[rand.Intn(2)],
				"reported_by": name,
			})
			if err != nil {
				log.WithError(err).Fatal("failed to create maintenance request")
			}
		}
	}

	log.WithFields(log.Fields{
		"property": propertyID,
		"units":    unitCount,
	}).Info("demo data seeded")
}
