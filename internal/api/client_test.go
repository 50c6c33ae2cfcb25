package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokens is a TokenSource that records invalidation.
type fakeTokens struct {
	token       string
	invalidated bool
}

func (f *fakeTokens) AccessToken() string { return f.token }
func (f *fakeTokens) Invalidate()         { f.invalidated = true }

func boolPtr(b bool) *bool { return &b }

func TestAdminAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(list[Debt]{Count: 0, Results: nil})
	}))
	defer srv.Close()

	admin := NewAdmin(NewTransport(srv.URL), &fakeTokens{token: "tok-123"})
	_, err := admin.ListDebts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestPublicSendsNoAuthorizationHeader(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization") != ""
		_ = json.NewEncoder(w).Encode(list[GalleryImage]{})
	}))
	defer srv.Close()

	pub := NewPublic(NewTransport(srv.URL))
	_, err := pub.ListGalleryImages(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, sawAuth, "public client must not send credentials")
}

func TestAdminInvalidatesSessionOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"token expired"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	tokens := &fakeTokens{token: "stale"}
	admin := NewAdmin(NewTransport(srv.URL), tokens)

	_, err := admin.ListContactMessages(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized, "caller's error path must still see the failure")
	assert.True(t, tokens.invalidated, "401 must tear the session down")
}

func TestErrorPayloadSurfacedVerbatim(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"error key", `{"error":"Tutar pozitif olmalıdır."}`, http.StatusBadRequest, "Tutar pozitif olmalıdır."},
		{"detail key", `{"detail":"Bulunamadı."}`, http.StatusNotFound, "Bulunamadı."},
		{"no payload", `oops`, http.StatusBadRequest, "Bad Request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			admin := NewAdmin(NewTransport(srv.URL), &fakeTokens{token: "tok"})
			_, err := admin.CreateDebt(context.Background(), DebtInput{CustomerID: 1, DebtType: DebtTypeDebt, Amount: 10})
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestBooleanFiltersEncoded(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(list[Debt]{})
	}))
	defer srv.Close()

	admin := NewAdmin(NewTransport(srv.URL), &fakeTokens{token: "tok"})

	_, err := admin.ListDebts(context.Background(), boolPtr(false))
	require.NoError(t, err)
	assert.Equal(t, "is_paid=false", gotQuery)

	_, err = admin.ListDebts(context.Background(), boolPtr(true))
	require.NoError(t, err)
	assert.Equal(t, "is_paid=true", gotQuery)

	_, err = admin.ListDebts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestMarkPaidRoundTrip(t *testing.T) {
	// Paid then unpaid returns the record to its original state with only
	// is_paid toggled twice.
	debt := Debt{ID: 7, CustomerID: 3, CustomerName: "Ahmet Yılmaz", DebtType: DebtTypeDebt, Amount: "150.00", Description: "lastik montajı"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		out := debt
		switch r.URL.Path {
		case "/debts/7/mark_paid/":
			out.IsPaid = true
		case "/debts/7/mark_unpaid/":
			out.IsPaid = false
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	admin := NewAdmin(NewTransport(srv.URL), &fakeTokens{token: "tok"})

	paid, err := admin.MarkDebtPaid(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)

	unpaid, err := admin.MarkDebtUnpaid(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, unpaid.IsPaid)

	// Everything but the paid flag is unchanged.
	assert.Equal(t, debt.ID, unpaid.ID)
	assert.Equal(t, debt.Amount, unpaid.Amount)
	assert.Equal(t, debt.DebtType, unpaid.DebtType)
	assert.Equal(t, debt.Description, unpaid.Description)
}

func TestLoginPostsCredentialsWithoutBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login/", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "admin" || req.Password != "secret" {
			http.Error(w, `{"error":"Kullanıcı adı veya şifre hatalı."}`, http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(LoginResult{
			Access:  "acc",
			Refresh: "ref",
			User:    User{ID: 1, Username: "admin", Email: "admin@example.com"},
		})
	}))
	defer srv.Close()

	pub := NewPublic(NewTransport(srv.URL))

	res, err := pub.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "acc", res.Access)
	assert.Equal(t, "ref", res.Refresh)
	assert.Equal(t, "admin", res.User.Username)

	_, err = pub.Login(context.Background(), "admin", "wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Kullanıcı adı veya şifre hatalı.", apiErr.Message)
}

func TestListEnvelopeFirstPageOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// count reports more records than the page holds; the client must
		// not try to follow pagination.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"count":   120,
			"next":    "http://" + r.Host + "/customers/?page=2",
			"results": []Customer{{ID: 1, FullName: "Ayşe Demir", IsActive: true}},
		})
	}))
	defer srv.Close()

	admin := NewAdmin(NewTransport(srv.URL), &fakeTokens{token: "tok"})
	customers, err := admin.ListCustomers(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ayşe Demir", customers[0].FullName)
}

func TestCustomerDebtsPath(t *testing.T) {
	var gotPath string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(list[Debt]{Count: 1, Results: []Debt{{ID: 5, CustomerID: 3, Amount: "120.00"}}})
	}))
	defer s.Close()

	admin := NewAdmin(NewTransport(s.URL), &fakeTokens{token: "tok"})
	debts, err := admin.CustomerDebts(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "/customers/3/debts/", gotPath)
	require.Len(t, debts, 1)
	assert.Equal(t, int64(3), debts[0].CustomerID)
}

func TestDeleteSendsNoBody(t *testing.T) {
	var gotMethod, gotPath string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer s.Close()

	admin := NewAdmin(NewTransport(s.URL), &fakeTokens{token: "tok"})
	require.NoError(t, admin.DeleteContactMessage(context.Background(), 42))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/contact/42/", gotPath)
}
