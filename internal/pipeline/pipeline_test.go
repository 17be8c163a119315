package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/hf-uploader/internal/huntflow"
	"github.com/spigell/hf-uploader/internal/roster"
)

type attachBody struct {
	Vacancy *int   `json:"vacancy"`
	Status  *int   `json:"status"`
	Comment string `json:"comment"`
	Files   []int  `json:"files"`
}

// TestRunSubmitsSingleRow replays the whole per-row workflow against a
// fake Huntflow: upload, create applicant, fresh status fetch, attach.
func TestRunSubmitsSingleRow(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	positionDir := filepath.Join(baseDir, "Backend Engineer")
	if err := os.Mkdir(positionDir, 0o755); err != nil {
		t.Fatal(err)
	}
	// The resolver picks the first entry NOT named after the candidate.
	if err := os.WriteFile(filepath.Join(positionDir, "John Smith.pdf"), []byte("resume"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls []string
	var attached attachBody

	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/42/vacancies", func(w http.ResponseWriter, _ *http.Request) {
		calls = append(calls, "vacancies")
		fmt.Fprint(w, `{"items":[{"id":7,"position":"Backend Engineer"}],"total_pages":1}`)
	})
	mux.HandleFunc("/accounts/42/vacancies/statuses", func(w http.ResponseWriter, _ *http.Request) {
		calls = append(calls, "statuses")
		fmt.Fprint(w, `{"items":[{"id":3,"name":"Interview"}]}`)
	})
	mux.HandleFunc("/accounts/42/upload", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "upload")

		_, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("reading multipart file: %v", err)
		} else if header.Filename != "John Smith.pdf" {
			t.Errorf("unexpected uploaded filename: %q", header.Filename)
		}

		fmt.Fprint(w, `{"id":99,"name":"John Smith.pdf"}`)
	})
	mux.HandleFunc("/accounts/42/applicants", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "applicants")

		var body huntflow.ApplicantBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding applicant body: %v", err)
		}
		want := huntflow.ApplicantBody{FirstName: "Jane", LastName: "Doe", Money: "50000"}
		if body != want {
			t.Errorf("expected applicant body %+v, got %+v", want, body)
		}

		fmt.Fprint(w, `{"id":1001}`)
	})
	mux.HandleFunc("/accounts/42/applicants/1001/vacancy", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "attach")

		if err := json.NewDecoder(r.Body).Decode(&attached); err != nil {
			t.Errorf("decoding application body: %v", err)
		}

		fmt.Fprint(w, `{"vacancy":7,"status":3,"comment":"strong","files":[99]}`)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	hf := huntflow.New(context.Background(), zap.NewNop(), srv.URL, "42", "secret")

	vacancies, err := hf.GetVacancies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := []roster.Row{
		{Position: "Backend Engineer", FullName: "Jane Doe", Salary: "50000", Comment: "strong", Status: "Interview"},
	}

	p := New(baseDir, 0, &Deps{HF: hf, Logger: zap.NewNop()})
	if err := p.Run(context.Background(), vacancies, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCalls := []string{"vacancies", "upload", "applicants", "statuses", "attach"}
	if len(calls) != len(wantCalls) {
		t.Fatalf("expected calls %v, got %v", wantCalls, calls)
	}
	for i := range wantCalls {
		if calls[i] != wantCalls[i] {
			t.Fatalf("expected calls %v, got %v", wantCalls, calls)
		}
	}

	if attached.Vacancy == nil || *attached.Vacancy != 7 {
		t.Fatalf("expected vacancy 7, got %v", attached.Vacancy)
	}
	if attached.Status == nil || *attached.Status != 3 {
		t.Fatalf("expected status 3, got %v", attached.Status)
	}
	if attached.Comment != "strong" {
		t.Fatalf("expected comment strong, got %q", attached.Comment)
	}
	if len(attached.Files) != 1 || attached.Files[0] != 99 {
		t.Fatalf("expected files [99], got %v", attached.Files)
	}
}

// The row loop is fail-fast: a malformed name stops the run before any
// remote call and the following rows are not processed.
func TestRunStopsOnMalformedName(t *testing.T) {
	t.Parallel()

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		requests++
	}))
	defer srv.Close()

	hf := huntflow.New(context.Background(), zap.NewNop(), srv.URL, "42", "secret")

	catalog := &huntflow.Vacancies{
		Items: []*huntflow.Vacancy{{ID: 7, Position: "Backend Engineer"}},
	}

	rows := []roster.Row{
		{Position: "Backend Engineer", FullName: "Jane", Salary: "50000", Status: "Interview"},
		{Position: "Backend Engineer", FullName: "Jane Doe", Salary: "50000", Status: "Interview"},
	}

	p := New(t.TempDir(), 0, &Deps{HF: hf, Logger: zap.NewNop()})

	err := p.Run(context.Background(), catalog, rows)
	if err == nil {
		t.Fatal("expected an error for a one-token full name")
	}

	if requests != 0 {
		t.Fatalf("expected no HTTP calls, got %d", requests)
	}
}

// A missing position directory fails the row before any remote call.
func TestRunStopsOnMissingPositionDirectory(t *testing.T) {
	t.Parallel()

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		requests++
	}))
	defer srv.Close()

	hf := huntflow.New(context.Background(), zap.NewNop(), srv.URL, "42", "secret")

	rows := []roster.Row{
		{Position: "Backend Engineer", FullName: "Jane Doe", Salary: "50000", Status: "Interview"},
	}

	p := New(t.TempDir(), 0, &Deps{HF: hf, Logger: zap.NewNop()})

	err := p.Run(context.Background(), &huntflow.Vacancies{}, rows)
	if err == nil {
		t.Fatal("expected an error for a missing position directory")
	}

	if requests != 0 {
		t.Fatalf("expected no HTTP calls, got %d", requests)
	}
}
