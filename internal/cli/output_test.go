package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output: %s", buf.String())
	return result
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.Success(mockDataWithID{ID: 123, Name: "Test"}))

	result := decode(t, out)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "Test", data["Name"])
	assert.Equal(t, float64(123), data["ID"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	t.Run("with ID prints only the ID", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Success(mockDataWithID{ID: 7}))
		assert.Equal(t, "7\n", out.String())
	})

	t.Run("quiet wins over JSON", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, true)
		require.NoError(t, f.Success(mockDataWithID{ID: 9}))
		assert.Equal(t, "9\n", out.String())
	})

	t.Run("without ID falls back to human output", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Success(mockDataWithoutID{Name: "x", Value: 1}))
		assert.Contains(t, out.String(), "Name:x")
	})
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)
	require.NoError(t, f.Success("simple string"))
	assert.Equal(t, "simple string\n", out.String())
}

func TestOutputFormatter_Error(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		f, out, errOut := newTestFormatter(true, false)
		require.NoError(t, f.ErrorWithSuggestion("TASK_NOT_FOUND", "task 3 not found", "Run tick task list"))

		result := decode(t, out)
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]interface{})
		assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
		assert.Equal(t, "task 3 not found", errData["message"])
		assert.Equal(t, "Run tick task list", errData["suggestion"])
		assert.Empty(t, errOut.String())
	})

	t.Run("JSON without suggestion omits it", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, false)
		require.NoError(t, f.Error("X", "boom"))
		errData := decode(t, out)["error"].(map[string]interface{})
		_, has := errData["suggestion"]
		assert.False(t, has)
	})

	t.Run("human goes to stderr", func(t *testing.T) {
		f, out, errOut := newTestFormatter(false, false)
		require.NoError(t, f.ErrorWithSuggestion("X", "boom", "try again"))
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "Error: boom")
		assert.Contains(t, errOut.String(), "Suggestion: try again")
	})
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)
	cause := errors.New("title required")

	err := f.Fail(ExitValidation, "VALIDATION_ERROR", cause)
	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, errOut.String(), "title required")
}

func TestOutputFormatter_PrintlnQuiet(t *testing.T) {
	f, out, _ := newTestFormatter(false, true)
	require.NoError(t, f.Println("hidden"))
	assert.Empty(t, out.String())
}
