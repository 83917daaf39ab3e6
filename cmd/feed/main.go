package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"signalbench/internal/models"
	"signalbench/internal/secrets"
	"signalbench/internal/store"
	"signalbench/pkg/config"
)

const (
	reconnectDelay    = 5 * time.Second
	maxReconnectDelay = 1 * time.Minute
)

// tickerEvent is one upstream ticker message
type tickerEvent struct {
	Symbol     string  `json:"symbol"`
	Price      float64 `json:"price,string"`
	Volume     float64 `json:"volume,string"`
	LowestAsk  float64 `json:"lowest_ask,string"`
	HighestBid float64 `json:"highest_bid,string"`
}

func main() {
	godotenv.Load()

	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	feedURL := os.Getenv("FEED_URL")
	if feedURL == "" {
		log.Fatal("FEED_URL not configured")
	}

	// Initialize database
	config.InitDB()

	cipher := secrets.NewCipher(os.Getenv("SECRET_ENCRYPTION_KEY"))
	st := store.New(config.DB, cipher, secrets.NewSystemSaltSource())

	delay := reconnectDelay
	for {
		if err := readFeed(feedURL, st); err != nil {
			log.Errorf("Feed connection lost: %v. Reconnecting in %v...", err, delay)
		}
		time.Sleep(delay)
		delay *= 2
		if delay > maxReconnectDelay {
			delay = maxReconnectDelay
		}
	}
}

// readFeed consumes ticker events until the connection drops, persisting one
// Price row per event.
func readFeed(feedURL string, st *store.Store) error {
	conn, _, err := websocket.DefaultDialer.Dial(feedURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Infof("Connected to feed at %s", feedURL)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var event tickerEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			log.Warnf("Skipping malformed ticker event: %v", err)
			continue
		}
		if event.Symbol == "" {
			continue
		}

		price := models.Price{
			Symbol:     event.Symbol,
			Price:      event.Price,
			Volume:     event.Volume,
			LowestAsk:  event.LowestAsk,
			HighestBid: event.HighestBid,
			ObservedAt: time.Now().UTC(),
		}
		if err := st.InsertPrice(context.Background(), &price); err != nil {
			log.Errorf("Failed to store price for %s: %v", event.Symbol, err)
			continue
		}
		log.Debugf("Stored ticker event for %s", event.Symbol)
	}
}
