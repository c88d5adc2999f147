package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalLines     = 24000 // Total log lines written to the source file
	serverErrEvery = 10    // Every Nth line gets status 500
	malformedEvery = 100   // Every Nth line is deliberately malformed
)

var (
	minutes = []string{"18:03", "18:04", "18:05", "18:06"}
	paths   = []string{"/", "/about", "/careers", "/contact"}
	agents  = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

type pageResponse struct {
	Records    []json.RawMessage `json:"records"`
	TotalCount int64             `json:"totalCount"`
	NextCursor string            `json:"nextCursor"`
}

type statisticsResponse struct {
	TotalCount          int64            `json:"totalCount"`
	RequestsByStatus    map[string]int64 `json:"requestsByStatus"`
	RequestsByUserAgent map[string]int64 `json:"requestsByUserAgent"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Ingestion struct {
		ParseFailureTotal int64 `json:"parseFailureTotal"`
		CursorOffset      int64 `json:"cursorOffset"`
	} `json:"ingestion"`
}

// main runs the e2e scenario: 001_ingest_query_roundtrip
//
// This scenario tests the end-to-end flow of tailing an nginx access log,
// parsing and storing its lines, and querying them back through the API.
// It appends 24,000 lines (including a fixed share of malformed ones) to the
// configured source file, waits for the ingestion worker to catch up, then
// checks the query endpoints against the known generated distribution.
//
// What it tests:
//   - Periodic source tailing with a durable cursor (via /healthz counters)
//   - Malformed lines are counted and skipped without blocking later lines
//   - GET /logs filtering by status class and cursor pagination
//   - GET /logs count consistency between pages and totalCount
//   - GET /statistics status histogram over the same window
//
// Expected results:
//   - cursorOffset reaches the source file size and parseFailureTotal equals
//     the number of malformed lines written
//   - totalCount for the window equals the number of well-formed lines
//   - the 5xx-filtered totalCount equals the generated 500 share
//   - walking every page via nextCursor yields exactly totalCount records
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"   // Base URL of the logwatch API server
	dateUTC := "2025-12-28"              // Date used for generated timestamps (UTC)
	sourcePath := ".tmp/access.log"      // Must match ingestion.source_path in configs.yml
	pageLimit := 500                     // Page size used when walking /logs
	settleTimeout := 90 * time.Second    // How long to wait for ingestion to catch up
	wantCleanSource := true              // If true, truncate the source file before writing

	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		fail("resolve source path: %v", err)
	}
	if wantCleanSource {
		_ = os.Remove(absSource)
	}
	if err := os.MkdirAll(filepath.Dir(absSource), 0755); err != nil {
		fail("create source dir: %v", err)
	}

	fmt.Println("Starting e2e scenario: 001_ingest_query_roundtrip")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("SOURCE_PATH: %s\n", absSource)
	fmt.Printf("TOTAL_LINES: %d\n", totalLines)
	fmt.Println()

	// Write the source file
	wellFormed, malformed, status500 := writeSource(absSource)
	info, err := os.Stat(absSource)
	if err != nil {
		fail("stat source: %v", err)
	}
	fmt.Printf("Wrote %d lines (%d well-formed, %d malformed, %d with status 500), %d bytes\n",
		totalLines, wellFormed, malformed, status500, info.Size())

	// Wait for the ingestion worker to reach the end of the file
	fmt.Println("Waiting for ingestion to catch up...")
	deadline := time.Now().Add(settleTimeout)
	var health healthResponse
	for {
		if time.Now().After(deadline) {
			fail("ingestion did not reach offset %d in time (last offset %d)", info.Size(), health.Ingestion.CursorOffset)
		}
		if err := getJSON(baseURL+"/healthz", &health); err == nil &&
			health.Ingestion.CursorOffset >= info.Size() {
			break
		}
		time.Sleep(2 * time.Second)
	}
	fmt.Printf("Ingestion caught up (cursorOffset=%d, parseFailureTotal=%d)\n",
		health.Ingestion.CursorOffset, health.Ingestion.ParseFailureTotal)
	if health.Ingestion.ParseFailureTotal != int64(malformed) {
		fail("expected %d parse failures, got %d", malformed, health.Ingestion.ParseFailureTotal)
	}

	window := url.Values{}
	window.Set("from", dateUTC+"T18:00:00Z")
	window.Set("to", dateUTC+"T19:00:00Z")

	// Check the unfiltered window total
	var page pageResponse
	if err := getJSON(baseURL+"/logs?"+window.Encode()+"&limit=1", &page); err != nil {
		fail("query /logs: %v", err)
	}
	fmt.Printf("Window totalCount: %d\n", page.TotalCount)
	if page.TotalCount != int64(wellFormed) {
		fail("expected totalCount %d, got %d", wellFormed, page.TotalCount)
	}

	// Check the 5xx-filtered total
	var errPage pageResponse
	if err := getJSON(baseURL+"/logs?"+window.Encode()+"&status=5xx&limit=1", &errPage); err != nil {
		fail("query /logs status=5xx: %v", err)
	}
	fmt.Printf("5xx totalCount: %d\n", errPage.TotalCount)
	if errPage.TotalCount != int64(status500) {
		fail("expected 5xx totalCount %d, got %d", status500, errPage.TotalCount)
	}

	// Walk every page via nextCursor and count records
	walked := 0
	pages := 0
	cursor := ""
	for {
		target := fmt.Sprintf("%s/logs?%s&limit=%d", baseURL, window.Encode(), pageLimit)
		if cursor != "" {
			target += "&cursor=" + url.QueryEscape(cursor)
		}
		var p pageResponse
		if err := getJSON(target, &p); err != nil {
			fail("query /logs page %d: %v", pages+1, err)
		}
		walked += len(p.Records)
		pages++
		if p.NextCursor == "" {
			break
		}
		cursor = p.NextCursor
	}
	fmt.Printf("Walked %d records across %d pages\n", walked, pages)
	if walked != wellFormed {
		fail("expected to walk %d records, walked %d", wellFormed, walked)
	}

	// Cross-check the statistics histogram
	var statistics statisticsResponse
	if err := getJSON(baseURL+"/statistics?"+window.Encode(), &statistics); err != nil {
		fail("query /statistics: %v", err)
	}
	fmt.Printf("Statistics totalCount: %d, 500s: %d\n", statistics.TotalCount, statistics.RequestsByStatus["500"])
	if statistics.TotalCount != int64(wellFormed) {
		fail("expected statistics totalCount %d, got %d", wellFormed, statistics.TotalCount)
	}
	if statistics.RequestsByStatus["500"] != int64(status500) {
		fail("expected %d 500s in histogram, got %d", status500, statistics.RequestsByStatus["500"])
	}

	fmt.Println()
	fmt.Println("=== Statistics ===")
	fmt.Printf("Lines written: %d\n", totalLines)
	fmt.Printf("Well-formed: %d\n", wellFormed)
	fmt.Printf("Malformed: %d\n", malformed)
	fmt.Printf("Status 500: %d\n", status500)
	fmt.Printf("Pages walked: %d\n", pages)
	fmt.Println("Scenario completed successfully")
}

// writeSource generates the deterministic source file and returns the counts
// of well-formed lines, malformed lines, and lines with status 500. Line
// timestamps always fall on 28/Dec/2025; dateUTC in main must match.
func writeSource(path string) (wellFormed, malformed, status500 int) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fail("open source file: %v", err)
	}
	defer file.Close()

	for i := 0; i < totalLines; i++ {
		if (i+1)%malformedEvery == 0 {
			fmt.Fprintf(file, "garbage line %d that no parser should accept\n", i)
			malformed++
			continue
		}

		status := 200
		if (i+1)%serverErrEvery == 0 {
			status = 500
			status500++
		}
		minute := minutes[i%len(minutes)]
		second := i % 60
		reqPath := paths[i%len(paths)]
		agent := agents[i%len(agents)]
		responseTime := float64(i%500) / 1000.0

		fmt.Fprintf(file, "203.0.113.%d - - [28/Dec/2025:%s:%02d +0000] \"GET %s HTTP/1.1\" %d %d %.3f \"-\" \"%s\"\n",
			i%250, minute, second, reqPath, status, 512+i%1024, responseTime, agent)
		wellFormed++
	}
	return wellFormed, malformed, status500
}

func getJSON(target string, out any) error {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(target)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
