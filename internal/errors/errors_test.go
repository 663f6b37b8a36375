package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "setup error",
			code:    "T001",
			wantMsg: "Toaster not provided",
			wantCat: CategorySetup,
		},
		{
			name:    "config error",
			code:    "T021",
			wantMsg: "Invalid configuration value",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "T999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.wantCat, err.Category)
			assert.Equal(t, tt.code, err.Code)
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "unknown mode %q", "grid")
	assert.Equal(t, `unknown mode "grid"`, err.Error())
	assert.Equal(t, CategoryCLI, err.Category)
}

func TestIsMatchesByCode(t *testing.T) {
	a := New("T001").WithSuggestion("install one")
	b := New("T001")

	assert.True(t, stderrors.Is(a, b))
	assert.True(t, stderrors.Is(fmt.Errorf("setup: %w", a), b))
	assert.False(t, stderrors.Is(a, New("T020")))
	assert.False(t, stderrors.Is(Newf(CategoryCLI, "x"), Newf(CategoryCLI, "x")))
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := New("T020").Wrap(cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "T020: Invalid configuration file: permission denied", err.Error())
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil, "T020"))

	original := New("T021")
	assert.Same(t, original, FromError(fmt.Errorf("wrapped: %w", original), "T020"))

	plain := stderrors.New("boom")
	converted := FromError(plain, "T020")
	assert.Equal(t, "T020", converted.Code)
	assert.Same(t, plain, converted.Wrapped)
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("T001").
		WithSuggestion("Call toaster.Provide at startup").
		WithExample("ctx = toaster.Provide(ctx, toaster.New())").
		Format()

	assert.Contains(t, out, "ERROR T001: Toaster not provided")
	assert.Contains(t, out, "Hint: Call toaster.Provide at startup")
	assert.Contains(t, out, "    ctx = toaster.Provide(ctx, toaster.New())")
	assert.Contains(t, out, "Learn more: https://vango.dev/docs/toaster/errors/T001")
	assert.NotContains(t, out, "\033[")
}

func TestFormatJSON(t *testing.T) {
	var decoded map[string]string
	err := New("T021").WithDetail(`mode "grid" is not supported`).Wrap(stderrors.New("bad"))
	require.NoError(t, json.Unmarshal([]byte(err.FormatJSON()), &decoded))

	assert.Equal(t, "T021", decoded["code"])
	assert.Equal(t, "config", decoded["category"])
	assert.Equal(t, `mode "grid" is not supported`, decoded["detail"])
	assert.Equal(t, "bad", decoded["cause"])
}

func TestWrapText(t *testing.T) {
	lines := wrapText(strings.Repeat("word ", 40), 20)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 20)
	}
	assert.Nil(t, wrapText("", 10))
}

func TestPrintError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	PrintError(&buf, stderrors.New("plain failure"))
	assert.Contains(t, buf.String(), "ERROR: plain failure")

	buf.Reset()
	PrintError(&buf, New("T030"))
	assert.Contains(t, buf.String(), "ERROR T030: Invalid command usage")
}

func TestAllCodesHaveTemplates(t *testing.T) {
	codes := GetAllCodes()
	require.NotEmpty(t, codes)
	for _, code := range codes {
		tmpl, ok := GetTemplate(code)
		require.True(t, ok, code)
		assert.NotEmpty(t, tmpl.Message, code)
		assert.True(t, strings.HasPrefix(code, "T"), code)
	}
}
