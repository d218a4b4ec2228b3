package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func Test_application_healthy(t *testing.T) {
	server, client := newTestServer(t)

	resp, err := client.Get(server.URL + "/api/healthy")
	if err != nil {
		t.Fatalf("get healthy: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Status string `json:"status"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
}

func Test_application_exercisesGET(t *testing.T) {
	server, client := newTestServer(t)

	get := func(t *testing.T, url string) []exerciseSummary {
		t.Helper()
		resp, err := client.Get(url)
		if err != nil {
			t.Fatalf("get exercises: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var exercises []exerciseSummary
		if err = json.NewDecoder(resp.Body).Decode(&exercises); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		return exercises
	}

	findName := func(exercises []exerciseSummary, code string) string {
		for _, ex := range exercises {
			if ex.Code == code {
				return ex.Name
			}
		}
		return ""
	}

	t.Run("default language", func(t *testing.T) {
		exercises := get(t, server.URL+"/api/exercises")
		if len(exercises) < 20 {
			t.Errorf("catalog size = %d, want at least the fixture set", len(exercises))
		}
		if name := findName(exercises, "barbell_bench_press"); name != "Barbell Bench Press" {
			t.Errorf("name = %q, want Barbell Bench Press", name)
		}
	})

	t.Run("finnish names", func(t *testing.T) {
		exercises := get(t, server.URL+"/api/exercises?lang=fi")
		if name := findName(exercises, "barbell_bench_press"); name != "Penkkipunnerrus" {
			t.Errorf("name = %q, want Penkkipunnerrus", name)
		}
	})
}

func Test_application_exerciseGET(t *testing.T) {
	server, client := newTestServer(t)

	t.Run("known exercise", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/api/exercises/barbell_bench_press")
		if err != nil {
			t.Fatalf("get exercise: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var detail exerciseDetail
		if err = json.NewDecoder(resp.Body).Decode(&detail); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if detail.Code != "barbell_bench_press" {
			t.Errorf("code = %q, want barbell_bench_press", detail.Code)
		}
		if !strings.Contains(detail.DescriptionHTML, "<") {
			t.Errorf("description not rendered to HTML: %q", detail.DescriptionHTML)
		}
	})

	t.Run("unknown exercise", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/api/exercises/does_not_exist")
		if err != nil {
			t.Fatalf("get exercise: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}
