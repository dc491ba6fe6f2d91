package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// sessionCookie holds the wiki_session cookie minted on first contact.
var sessionCookie string

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}

	client := &http.Client{} // No timeout: the answer page blocks on purpose
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	captureSession(resp)
	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func captureSession(resp *http.Response) {
	for _, c := range resp.Cookies() {
		if c.Name == "wiki_session" {
			sessionCookie = c.Name + "=" + c.Value
		}
	}
}

func main() {
	color.Cyan("🚀 Construction DeepWiki API Smoke Test\n")

	// 1. Overview (first contact mints the session cookie)
	color.Yellow("\n1. Overview Page")
	resp, body, err := sendRequest("GET", "/page/v1/overview", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var overviewResp map[string]interface{}
	json.Unmarshal(body, &overviewResp)
	if data, ok := overviewResp["data"].(map[string]interface{}); ok {
		if sites, ok := data["sites"].([]interface{}); ok {
			fmt.Printf("Projects: %d\n", len(sites))
		}
	}

	// 2. Open the Harbor Bridge project
	color.Yellow("\n2. Open Project: harbor_bridge")
	resp, body, err = sendRequest("POST", "/navigation/v1/site", map[string]string{"site_id": "harbor_bridge"})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	// 3. Read the structural plans
	color.Yellow("\n3. Open Section: structural_plans")
	resp, _, err = sendRequest("POST", "/navigation/v1/section", map[string]string{"section_id": "structural_plans"})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	resp, body, err = sendRequest("GET", "/page/v1/site", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var siteResp map[string]interface{}
	json.Unmarshal(body, &siteResp)
	if data, ok := siteResp["data"].(map[string]interface{}); ok {
		if content, ok := data["content"].(map[string]interface{}); ok {
			if toc, ok := content["toc"].([]interface{}); ok {
				fmt.Printf("TOC headings: %d\n", len(toc))
			}
		}
	}

	// 4. Ask about load capacity, then render the answer page
	color.Yellow("\n4. Ask: load capacity question")
	resp, body, err = sendRequest("POST", "/qa/v1/questions", map[string]string{
		"question": "What is the maximum load capacity?",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	color.Yellow("\n5. Answer Page (blocks for the mock processing delay)")
	start := time.Now()
	resp, body, err = sendRequest("GET", "/page/v1/question", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s (%v)", resp.Status, time.Since(start).Round(time.Millisecond))
	var answerResp map[string]interface{}
	json.Unmarshal(body, &answerResp)
	if data, ok := answerResp["data"].(map[string]interface{}); ok {
		if answer, ok := data["answer"].(string); ok && len(answer) > 80 {
			fmt.Printf("Answer: %s...\n", answer[:80])
		}
		if sources, ok := data["sources"].([]interface{}); ok {
			fmt.Printf("Sources: %d\n", len(sources))
		}
	}

	// 6. Upload a fake project and watch the pipeline finish
	color.Yellow("\n6. Create Project (multipart upload)")
	jobID := createProject("Smoke Test Tower", []string{"foundation.pdf", "elevations.pdf"})
	if jobID != "" {
		pollJob(jobID)
	}

	// 7. Dashboard view
	color.Yellow("\n7. Activity Metrics")
	resp, body, err = sendRequest("GET", "/activity/v1/metrics", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var metricsResp map[string]interface{}
	json.Unmarshal(body, &metricsResp)
	prettyPrint(metricsResp["data"])

	// 8. Export download headers
	color.Yellow("\n8. Export Logs")
	resp, body, err = sendRequest("GET", "/activity/v1/export", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	fmt.Printf("Content-Disposition: %s\n", resp.Header.Get("Content-Disposition"))
	fmt.Printf("Export size: %d bytes\n", len(body))

	color.Cyan("\n✅ Smoke test finished")
}

func createProject(name string, files []string) string {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("project_name", name)
	for _, f := range files {
		part, _ := w.CreateFormFile("documents", f)
		part.Write([]byte("%PDF-1.4 smoke test payload"))
	}
	w.Close()

	req, _ := http.NewRequest("POST", baseURL+"/project/v1", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if sessionCookie != "" {
		req.Header.Set("Cookie", sessionCookie)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		color.Red("Failed: %v", err)
		return ""
	}
	defer resp.Body.Close()
	captureSession(resp)

	body, _ := io.ReadAll(resp.Body)
	color.Green("Status: %s", resp.Status)

	var createResp map[string]interface{}
	json.Unmarshal(body, &createResp)
	if data, ok := createResp["data"].(map[string]interface{}); ok {
		if id, ok := data["project_id"].(string); ok {
			fmt.Printf("Job: %s\n", id)
			return id
		}
	}
	return ""
}

func pollJob(jobID string) {
	for i := 0; i < 30; i++ {
		_, body, err := sendRequest("GET", "/project/v1/jobs/"+jobID, nil)
		if err != nil {
			color.Red("Failed: %v", err)
			return
		}

		var statusResp map[string]interface{}
		json.Unmarshal(body, &statusResp)
		data, ok := statusResp["data"].(map[string]interface{})
		if !ok {
			return
		}

		status, _ := data["status"].(string)
		step, _ := data["step"].(string)
		progress, _ := data["progress"].(float64)
		fmt.Printf("  [%3.0f%%] %s %s\n", progress*100, status, step)

		if status == "completed" || status == "cancelled" {
			return
		}
		time.Sleep(500 * time.Millisecond)
	}
}
