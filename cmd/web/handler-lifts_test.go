package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func postLift(t *testing.T, client *http.Client, url, body string) *http.Response {
	t.Helper()
	resp, err := client.Post(url+"/api/lifts", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post lift: %v", err)
	}
	return resp
}

func Test_application_liftPOST(t *testing.T) {
	server, client := newTestServer(t)

	t.Run("records and feeds progression hints", func(t *testing.T) {
		resp := postLift(t, client, server.URL, `{"exerciseCode": "barbell_bench_press", "maxWeight": 80}`)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", resp.StatusCode)
		}

		planResp := postPlan(t, client, server.URL, `{
			"experience": "intermediate",
			"goal": "mass",
			"daysPerWeek": 3,
			"sessionTime": 60,
			"equipment": ["barbell", "dumbbell", "machine", "cable"]
		}`)
		defer func() { _ = planResp.Body.Close() }()
		if planResp.StatusCode != http.StatusOK {
			t.Fatalf("plan status = %d, want 200", planResp.StatusCode)
		}
		var plan planResponse
		if err := json.NewDecoder(planResp.Body).Decode(&plan); err != nil {
			t.Fatalf("decode plan: %v", err)
		}
		for _, day := range plan.Days {
			for _, ex := range day.Exercises {
				if ex.Code == "barbell_bench_press" && ex.SuggestedWeight != "82.0" {
					t.Errorf("SuggestedWeight = %q, want 82.0", ex.SuggestedWeight)
				}
			}
		}
	})

	t.Run("unknown exercise", func(t *testing.T) {
		resp := postLift(t, client, server.URL, `{"exerciseCode": "does_not_exist", "maxWeight": 80}`)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{name: "missing code", body: `{"maxWeight": 80}`},
			{name: "non-positive weight", body: `{"exerciseCode": "barbell_bench_press", "maxWeight": 0}`},
			{name: "malformed JSON", body: `{"exerciseCode":`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp := postLift(t, client, server.URL, tt.body)
				defer func() { _ = resp.Body.Close() }()
				if resp.StatusCode != http.StatusBadRequest {
					t.Errorf("status = %d, want 400", resp.StatusCode)
				}
			})
		}
	})
}
