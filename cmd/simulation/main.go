package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"time"
)

const baseURL = "http://localhost:3000/api"

// Simplified DTOs for the script
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type OverviewData struct {
	Sites []struct {
		Id       string `json:"id"`
		Name     string `json:"name"`
		Status   string `json:"status"`
		Progress int    `json:"progress"`
	} `json:"sites"`
}

type SiteDetailData struct {
	Site struct {
		Name string `json:"name"`
	} `json:"site"`
	Sections []struct {
		Id    string `json:"id"`
		Title string `json:"title"`
	} `json:"sections"`
	Content struct {
		Title       string `json:"title"`
		Placeholder bool   `json:"placeholder"`
		Toc         []struct {
			Title string `json:"title"`
			Depth int    `json:"depth"`
		} `json:"toc"`
	} `json:"content"`
}

type AskData struct {
	QAId string `json:"qa_id"`
}

type AnswerData struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Sources  []struct {
		Document   string  `json:"document"`
		Page       int     `json:"page"`
		Confidence float64 `json:"confidence"`
	} `json:"sources"`
}

type MetricsData struct {
	Total   int `json:"total"`
	Info    int `json:"info"`
	Warning int `json:"warning"`
	Error   int `json:"error"`
}

// client keeps the session cookie across calls, like a browser would.
var client *http.Client

func main() {
	fmt.Println("=== Construction DeepWiki Simulation Client ===")

	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatalf("Failed to create cookie jar: %v", err)
	}
	client = &http.Client{Jar: jar}

	// 1. First contact mints the session and returns the overview.
	var overview OverviewData
	if err := call("GET", "/page/v1/overview", nil, &overview); err != nil {
		log.Fatalf("Failed to load overview: %v", err)
	}
	fmt.Printf("Projects available: %d\n", len(overview.Sites))
	for _, s := range overview.Sites {
		fmt.Printf("  - %s [%s, %d%%]\n", s.Name, s.Status, s.Progress)
	}

	// 2. Open the Harbor Bridge project.
	if err := call("POST", "/navigation/v1/site", map[string]string{"site_id": "harbor_bridge"}, nil); err != nil {
		log.Fatalf("Failed to open project: %v", err)
	}

	var detail SiteDetailData
	if err := call("GET", "/page/v1/site", nil, &detail); err != nil {
		log.Fatalf("Failed to load site detail: %v", err)
	}
	fmt.Printf("\nOpened: %s (%d sections)\n", detail.Site.Name, len(detail.Sections))

	// 3. Switch to the structural plans and show the outline.
	if err := call("POST", "/navigation/v1/section", map[string]string{"section_id": "structural_plans"}, nil); err != nil {
		log.Fatalf("Failed to open section: %v", err)
	}
	if err := call("GET", "/page/v1/site", nil, &detail); err != nil {
		log.Fatalf("Failed to load section: %v", err)
	}
	fmt.Printf("Section: %s\n", detail.Content.Title)
	for _, h := range detail.Content.Toc {
		for i := 1; i < h.Depth; i++ {
			fmt.Print("  ")
		}
		fmt.Printf("- %s\n", h.Title)
	}

	// 4. Ask about load capacity and fetch the answer page. The first
	// render blocks for the simulated processing delay.
	question := "What is the maximum load capacity of the bridge?"
	fmt.Printf("\nUSER: %s\n", question)

	var ask AskData
	if err := call("POST", "/qa/v1/questions", map[string]string{"question": question}, &ask); err != nil {
		log.Fatalf("Failed to submit question: %v", err)
	}

	start := time.Now()
	var answer AnswerData
	if err := call("GET", "/page/v1/question", nil, &answer); err != nil {
		log.Fatalf("Failed to load answer: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("AI (%v, qa=%s):\n%s\n", elapsed.Round(time.Millisecond), ask.QAId, answer.Answer)
	fmt.Printf("Sources: %d\n", len(answer.Sources))
	for _, src := range answer.Sources {
		fmt.Printf("  - %s p.%d (%.0f%%)\n", src.Document, src.Page, src.Confidence*100)
	}

	// 5. Check what the session logged along the way.
	var metrics MetricsData
	if err := call("GET", "/activity/v1/metrics", nil, &metrics); err != nil {
		log.Fatalf("Failed to load metrics: %v", err)
	}
	fmt.Printf("\nActivity recorded: %d events (%d info / %d warning / %d error)\n",
		metrics.Total, metrics.Info, metrics.Warning, metrics.Error)
}

func call(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}
	return json.Unmarshal(env.Data, out)
}
