package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"
)

var (
	appURL string
)

// fakeBackend stands in for the remote REST API the server talks to. It
// keeps everything in memory and implements just enough of the contract for
// the browser flows under test.
type fakeBackend struct {
	mu        sync.Mutex
	nextID    int64
	debts     []map[string]any
	customers []map[string]any
	messages  []map[string]any
	gallery   []map[string]any
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		nextID: 100,
		customers: []map[string]any{
			{"id": int64(1), "first_name": "Ahmet", "last_name": "Yılmaz", "full_name": "Ahmet Yılmaz", "phone": "0555 111 22 33", "is_active": true},
		},
		gallery: []map[string]any{
			{"id": int64(1), "title": "Atölyeden", "image_url": "https://example.com/1.jpg", "is_active": true, "order": 0, "created_at": "2026-08-01T10:00:00Z"},
		},
	}
}

func (b *fakeBackend) id() int64 {
	b.nextID++
	return b.nextID
}

func writeList(w http.ResponseWriter, items []map[string]any) {
	json.NewEncoder(w).Encode(map[string]any{"count": len(items), "results": items})
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != "testuser" || creds.Password != "testpass123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Kullanıcı adı veya şifre hatalı"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access":  "e2e-access",
			"refresh": "e2e-refresh",
			"user":    map[string]any{"id": 1, "username": "testuser", "email": "test@example.com"},
		})
	})

	mux.HandleFunc("GET /api/customers/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeList(w, b.customers)
	})

	mux.HandleFunc("GET /api/debts/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		filter := r.URL.Query().Get("is_paid")
		var out []map[string]any
		for _, d := range b.debts {
			if filter == "" || strconv.FormatBool(d["is_paid"].(bool)) == filter {
				out = append(out, d)
			}
		}
		writeList(w, out)
	})

	mux.HandleFunc("POST /api/debts/", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			CustomerID  int64   `json:"customer_id"`
			DebtType    string  `json:"debt_type"`
			Amount      float64 `json:"amount"`
			Description string  `json:"description"`
			DueDate     string  `json:"due_date"`
		}
		json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		defer b.mu.Unlock()
		debt := map[string]any{
			"id":            b.id(),
			"customer_id":   in.CustomerID,
			"customer_name": "Ahmet Yılmaz",
			"debt_type":     in.DebtType,
			"amount":        fmt.Sprintf("%.2f", in.Amount),
			"description":   in.Description,
			"is_paid":       false,
			"due_date":      in.DueDate,
			"created_at":    time.Now().UTC().Format(time.RFC3339),
		}
		b.debts = append(b.debts, debt)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(debt)
	})

	mux.HandleFunc("POST /api/debts/{id}/mark_paid/", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, d := range b.debts {
			if d["id"] == id {
				d["is_paid"] = true
				json.NewEncoder(w).Encode(d)
				return
			}
		}
		http.NotFound(w, r)
	})

	mux.HandleFunc("GET /api/gallery/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeList(w, b.gallery)
	})

	mux.HandleFunc("POST /api/contact/", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		defer b.mu.Unlock()
		in["id"] = b.id()
		in["is_read"] = false
		in["created_at"] = time.Now().UTC().Format(time.RFC3339)
		b.messages = append(b.messages, in)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	})

	mux.HandleFunc("GET /api/contact/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeList(w, b.messages)
	})

	return mux
}

func TestMain(m *testing.M) {
	os.Exit(runTestMain(m))
}

func runTestMain(m *testing.M) int {
	// 1. Build the binary
	buildPath := filepath.Join(os.TempDir(), "kardeslastik-web-test")
	cmd := exec.Command("go", "build", "-o", buildPath, "../cmd/server")
	if _, err := os.Stat("../cmd/server"); os.IsNotExist(err) {
		if _, err := os.Stat("cmd/server"); err == nil {
			cmd = exec.Command("go", "build", "-o", buildPath, "./cmd/server")
		} else {
			fmt.Println("Could not find cmd/server to build")
			return 1
		}
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		fmt.Printf("Failed to build app: %v\n%s\n", err, output)
		return 1
	}
	defer os.Remove(buildPath)

	// 2. Start the fake backend API
	backend := &http.Server{Addr: "127.0.0.1:8089", Handler: newFakeBackend().handler()}
	go backend.ListenAndServe()
	defer backend.Close()

	// 3. Start the web server against it
	dbPath := filepath.Join(os.TempDir(), "test_sessions.db")
	os.Remove(dbPath)
	defer os.Remove(dbPath)

	port := "8088"
	appURL = "http://localhost:" + port

	serverCmd := exec.Command(buildPath)
	serverCmd.Env = append(os.Environ(),
		"PORT="+port,
		"API_BASE_URL=http://127.0.0.1:8089/api",
		"SESSION_DB_PATH="+dbPath,
	)
	serverCmd.Dir = ".." // Run from project root so it finds web/templates
	serverCmd.Stdout = os.Stdout
	serverCmd.Stderr = os.Stderr

	if err := serverCmd.Start(); err != nil {
		fmt.Printf("Failed to start server: %v\n", err)
		return 1
	}

	// Wait for server to be ready
	ready := false
	for range 50 {
		time.Sleep(100 * time.Millisecond)
		resp, err := http.Get(appURL + "/")
		if err == nil && resp.StatusCode == 200 {
			ready = true
			resp.Body.Close()
			break
		}
	}

	if !ready {
		fmt.Println("Server failed to start or is not reachable")
		serverCmd.Process.Kill()
		return 1
	}

	// 4. Run tests
	code := m.Run()

	// 5. Cleanup
	if err := serverCmd.Process.Kill(); err != nil {
		fmt.Printf("Failed to kill server: %v\n", err)
	}

	return code
}
