package payout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/snapchallan/rewards/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestClient_SubmitPayout(t *testing.T) {
	type want struct {
		resp *PayoutResponse
		err  error
	}
	tests := []struct {
		name           string
		serverResponse string
		serverStatus   int
		serverDelay    time.Duration
		want           want
	}{
		{
			name:           "payout accepted",
			serverResponse: `{"reference":"w1","provider_ref":"prov-1","status":"SUCCESS"}`,
			serverStatus:   http.StatusOK,
			want: want{
				resp: &PayoutResponse{Reference: "w1", ProviderRef: "prov-1", Status: StatusSuccess},
			},
		},
		{
			name:           "payout queued",
			serverResponse: `{"reference":"w1","provider_ref":"prov-1","status":"PENDING"}`,
			serverStatus:   http.StatusCreated,
			want: want{
				resp: &PayoutResponse{Reference: "w1", ProviderRef: "prov-1", Status: StatusPending},
			},
		},
		{
			name:           "payout rejected",
			serverResponse: `{"reference":"w1","status":"FAILED","reason":"destination VPA closed"}`,
			serverStatus:   http.StatusUnprocessableEntity,
			want: want{
				resp: &PayoutResponse{Reference: "w1", Status: StatusFailed, Reason: "destination VPA closed"},
			},
		},
		{
			name:           "gateway error",
			serverResponse: "",
			serverStatus:   http.StatusInternalServerError,
			want: want{
				err: apperrors.ErrPayoutProvider,
			},
		},
		{
			name:           "invalid json",
			serverResponse: `{"reference":}`,
			serverStatus:   http.StatusOK,
			want: want{
				err: apperrors.ErrPayoutProvider,
			},
		},
		{
			name:           "timeout is not a failure",
			serverResponse: `{"reference":"w1","status":"SUCCESS"}`,
			serverStatus:   http.StatusOK,
			serverDelay:    200 * time.Millisecond,
			want: want{
				err: apperrors.ErrUnknownPayoutOutcome,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/payouts", r.URL.Path)
				if tt.serverDelay > 0 {
					time.Sleep(tt.serverDelay)
				}
				w.WriteHeader(tt.serverStatus)
				_, _ = w.Write([]byte(tt.serverResponse))
			}))
			defer srv.Close()

			client := NewClient(srv.URL)
			client.httpClient.Timeout = 100 * time.Millisecond

			resp, err := client.SubmitPayout(context.Background(), PayoutRequest{
				Reference:   "w1",
				Destination: "citizen@upi",
				Amount:      1500,
			})

			if tt.want.err != nil {
				assert.ErrorIs(t, err, tt.want.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want.resp, resp)
		})
	}
}

func TestClient_QueryPayoutStatus(t *testing.T) {
	type want struct {
		status PayoutStatus
		err    error
	}
	tests := []struct {
		name           string
		serverResponse string
		serverStatus   int
		want           want
	}{
		{
			name:           "payout succeeded",
			serverResponse: `{"reference":"w1","status":"SUCCESS"}`,
			serverStatus:   http.StatusOK,
			want:           want{status: StatusSuccess},
		},
		{
			name:           "payout still pending",
			serverResponse: `{"reference":"w1","status":"PENDING"}`,
			serverStatus:   http.StatusOK,
			want:           want{status: StatusPending},
		},
		{
			name:           "payout unknown to gateway",
			serverResponse: "",
			serverStatus:   http.StatusNotFound,
			want:           want{status: StatusNotFound},
		},
		{
			name:           "gateway error",
			serverResponse: "",
			serverStatus:   http.StatusBadGateway,
			want:           want{err: apperrors.ErrPayoutProvider},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/payouts/w1", r.URL.Path)
				w.WriteHeader(tt.serverStatus)
				_, _ = w.Write([]byte(tt.serverResponse))
			}))
			defer srv.Close()

			client := NewClient(srv.URL)

			status, err := client.QueryPayoutStatus(context.Background(), "w1")
			if tt.want.err != nil {
				assert.ErrorIs(t, err, tt.want.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want.status, status)
		})
	}
}
