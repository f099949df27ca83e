package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ikkim/shop-api/config"
)

// seed imports catalog items from an xlsx file into a running server.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path> [server_url]")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	serverURL := fmt.Sprintf("http://localhost:%s", cfg.Server.Port)
	if len(os.Args) > 2 {
		serverURL = strings.TrimRight(os.Args[2], "/")
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	items, skipped, err := readItemsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Items to import: %d (skipped rows: %d)\n", len(items), skipped)

	fmt.Printf("Import into %s? (yes/no): ", serverURL)
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}
	imported := 0
	for i, item := range items {
		location, err := postItem(client, serverURL, item)
		if err != nil {
			log.Fatalf("Failed to import item %d (%s): %v", i+1, item.Name, err)
		}
		imported++
		if imported%100 == 0 {
			fmt.Printf("Imported %d items... (last %s)\n", imported, location)
		}
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total items imported: %d\n", imported)
}

func postItem(client *http.Client, serverURL string, item seedItem) (string, error) {
	body, err := json.Marshal(item)
	if err != nil {
		return "", err
	}

	resp, err := client.Post(serverURL+"/item", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.Header.Get("Location"), nil
}
