package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital/internal/domain/entity"
	domainerrors "hospital/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagination(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    entity.Pagination
		wantErr bool
	}{
		{name: "defaults", query: "", want: entity.Pagination{Limit: 10, Offset: 0}},
		{name: "explicit", query: "?limit=25&offset=50", want: entity.Pagination{Limit: 25, Offset: 50}},
		{name: "clamped limit", query: "?limit=500", want: entity.Pagination{Limit: 100, Offset: 0}},
		{name: "page number", query: "?limit=20&page=3", want: entity.Pagination{Limit: 20, Offset: 40}},
		{name: "offset wins over page", query: "?limit=20&page=3&offset=5", want: entity.Pagination{Limit: 20, Offset: 5}},
		{name: "negative offset", query: "?offset=-3", want: entity.Pagination{Limit: 10, Offset: 0}},
		{name: "not a number", query: "?limit=ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/patients"+tt.query, nil), httptest.NewRecorder())

			got, err := pagination(c)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := doRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
