package courier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	var gotRequest BookingRequest
	var gotHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/create_order", r.URL.Path)
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(BookingResponse{
			ConsignmentID: 99170,
			TrackingCode:  "TRK-99170",
			Status:        "pending",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key-1", "secret-1")

	resp, err := client.CreateBooking(context.Background(), BookingRequest{
		Invoice:          "ORD-4f9d2c1a",
		RecipientName:    "Rahim",
		RecipientPhone:   "01700000000",
		RecipientAddress: "Mirpur, Dhaka",
		CODAmount:        1500,
		Note:             "call first",
	})

	require.NoError(t, err)
	assert.Equal(t, "TRK-99170", resp.TrackingCode)
	assert.Equal(t, int64(99170), resp.ConsignmentID)

	assert.Equal(t, "key-1", gotHeaders.Get("Api-Key"))
	assert.Equal(t, "secret-1", gotHeaders.Get("Secret-Key"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))

	assert.Equal(t, "ORD-4f9d2c1a", gotRequest.Invoice)
	assert.Equal(t, 1500.0, gotRequest.CODAmount)
}

func TestCreateBooking_NonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", "bad-secret")

	_, err := client.CreateBooking(context.Background(), BookingRequest{Invoice: "ORD-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestGetBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/get_balance", r.URL.Path)
		require.Equal(t, "key-1", r.Header.Get("Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current_balance": 2450.75}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key-1", "secret-1")

	balance, err := client.GetBalance(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2450.75, balance)
}

func TestGetBalance_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key-1", "secret-1")

	_, err := client.GetBalance(context.Background())
	assert.Error(t, err)
}
