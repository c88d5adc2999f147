package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("QRY_1000", "time range required", nil),
			wantErr: NewInvalidArgumentError("QRY_1000", "time range required", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("QRY_9000", nil)),
			wantErr: NewInternalError("QRY_9000", nil),
			wantOk:  true,
		},
		{
			name:    "scope too large",
			err:     NewScopeTooLargeError("QRY_1002", "time range too large", nil),
			wantErr: NewScopeTooLargeError("QRY_1002", "time range too large", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_IsScopeTooLarge(t *testing.T) {
	assert.True(t, NewScopeTooLargeError("QRY_1002", "too large", nil).IsScopeTooLarge())
	assert.False(t, NewInvalidArgumentError("QRY_1000", "bad", nil).IsScopeTooLarge())
	assert.Equal(t, 422, NewScopeTooLargeError("QRY_1002", "too large", nil).HttpStatusCode)
}
