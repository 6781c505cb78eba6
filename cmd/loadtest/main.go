package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LineItem is one product line of a purchase
type LineItem struct {
	ProductID   uint64 `json:"prd_id"`
	ProductCode string `json:"prd_code"`
	ProductName string `json:"prd_name"`
	Price       int64  `json:"prd_price"`
}

// Purchase represents the purchase payload
type Purchase struct {
	OperatorCode string     `json:"emp_cd"`
	StoreCode    string     `json:"store_cd"`
	TerminalCode string     `json:"pos_no"`
	Products     []LineItem `json:"products"`
}

// Response represents the purchase answer
type Response struct {
	Success     bool  `json:"success"`
	TotalAmount int64 `json:"total_amount"`
}

// Product is a catalog row as listed by the API
type Product struct {
	ID    uint64 `json:"prd_id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Amount       int64
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalAmount        int64
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	StoreStats         map[string]int
	Lock               sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of purchases to send")
	baseURL := flag.String("url", "http://localhost:8000", "Base URL for the API")
	maxItems := flag.Int("items", 5, "Maximum line items per purchase")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	stores := flag.String("stores", "30,31,32", "Comma-separated store codes")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	products, err := fetchProducts(client, *baseURL)
	if err != nil {
		fmt.Printf("Failed to load catalog: %v\n", err)
		return
	}
	if len(products) == 0 {
		fmt.Println("Catalog is empty, enable seed.sampleProducts or create products first")
		return
	}

	storeCodes := splitCodes(*stores)
	if *maxItems < 1 {
		*maxItems = 1
	}

	fmt.Printf("Load testing %s with %d products across stores %v\n", *baseURL, len(products), storeCodes)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total purchases: %d\n", *totalRequests)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ErrorCounts:   make(map[string]int),
		StoreStats:    make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, *maxItems, products, storeCodes, jobs, results, stats)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
				stats.TotalAmount += result.Amount
			} else {
				stats.FailedRequests++
				errMsg := "rejected"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	collected.Wait()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(client *http.Client, baseURL string, delayMs, maxItems int, products []Product,
	storeCodes []string, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		store := storeCodes[rand.Intn(len(storeCodes))]
		stats.Lock.Lock()
		stats.StoreStats[store]++
		stats.Lock.Unlock()

		purchase := Purchase{StoreCode: store}
		for n := 1 + rand.Intn(maxItems); n > 0; n-- {
			p := products[rand.Intn(len(products))]
			purchase.Products = append(purchase.Products, LineItem{
				ProductID:   p.ID,
				ProductCode: p.Code,
				ProductName: p.Name,
				Price:       p.Price,
			})
		}

		results <- send(client, baseURL, purchase)
	}
}

func send(client *http.Client, baseURL string, purchase Purchase) TestResult {
	body, err := json.Marshal(purchase)
	if err != nil {
		return TestResult{Error: err}
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/purchase", bytes.NewReader(body))
	if err != nil {
		return TestResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := client.Do(req)
	result := TestResult{ResponseTime: time.Since(start)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return result
	}

	var answer Response
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		result.Error = fmt.Errorf("decode response: %w", err)
		return result
	}
	result.Success = answer.Success
	result.Amount = answer.TotalAmount
	return result
}

func fetchProducts(client *http.Client, baseURL string) ([]Product, error) {
	resp, err := client.Get(baseURL + "/api/products?limit=1000")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}

func splitCodes(s string) []string {
	var codes []string
	for _, code := range strings.Split(s, ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		codes = []string{"30"}
	}
	return codes
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Purchases:     %d\n", stats.TotalRequests)
	fmt.Printf("Successful:          %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed:              %d\n", stats.FailedRequests)
	fmt.Printf("Total Amount:        %d\n", stats.TotalAmount)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("TPS:                 %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- STORE DISTRIBUTION -----------------")
	for store, count := range stats.StoreStats {
		fmt.Printf("Store %-6s: %d purchases\n", store, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
