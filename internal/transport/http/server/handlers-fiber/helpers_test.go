package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"exam-results/internal/entities"
	"exam-results/internal/mapper"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   entities.Outcome
	}{
		{name: "not_found", err: fmt.Errorf("%w: 1", entities.ErrRecordNotFound), status: http.StatusNotFound, code: entities.OutcomeNotFound},
		{name: "invalid", err: entities.ErrInvalidArgument, status: http.StatusBadRequest, code: entities.OutcomeInvalidArgument},
		{name: "semester", err: entities.ErrUnknownSemester, status: http.StatusBadRequest, code: entities.OutcomeUnknownSemester},
		{name: "load", err: entities.ErrLoadFailure, status: http.StatusInternalServerError, code: entities.OutcomeLoadFailure},
		{name: "unexpected", err: fmt.Errorf("boom"), status: http.StatusInternalServerError, code: entities.OutcomeLoadFailure},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body mapper.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, mapper.Message(tt.err), body.Error.Message)
		})
	}
}
