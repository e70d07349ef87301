package installer

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func feed(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestWizard_ConsoleOnly(t *testing.T) {
	dir := t.TempDir()
	m := initialModel(dir)

	m = feed(t, m, enter, enter)
	_, ok := m.steps[m.currentStep].(*SaveEnvStep)
	require.True(t, ok, "telegram steps should be skipped")

	m = feed(t, m, nextMsg{})
	assert.Equal(t, len(m.steps), m.currentStep)

	values, err := godotenv.Read(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "prod", values["TUSK_ENVIRONMENT"])
	assert.Equal(t, "true", values["TUSK_ENABLE_CLI"])
	assert.Equal(t, "false", values["TUSK_ENABLE_TELEGRAM"])
	assert.NotContains(t, values, "TUSK_TELEGRAM_TOKEN")
}

func TestWizard_Telegram(t *testing.T) {
	dir := t.TempDir()
	m := initialModel(dir)

	m = feed(t, m,
		down, enter, // RELEASE
		down, enter, // Telegram
		enter, // empty token is rejected
	)
	step := m.steps[m.currentStep].(*InputStep)
	require.Error(t, step.err)
	assert.Contains(t, m.View(), "the token is required")

	m = feed(t, m,
		typed("123:abc"), enter,
		typed("owner"), enter,
	)
	assert.Contains(t, m.View(), "positive number")

	m = feed(t, m,
		tea.KeyMsg{Type: tea.KeyCtrlU}, typed("42"), enter,
		typed("7, 8"), enter,
		nextMsg{},
	)
	assert.Equal(t, len(m.steps), m.currentStep)
	assert.Equal(t, int64(42), m.state.Telegram.OwnerID)

	values, err := godotenv.Read(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "release", values["TUSK_ENVIRONMENT"])
	assert.Equal(t, "false", values["TUSK_ENABLE_CLI"])
	assert.Equal(t, "true", values["TUSK_ENABLE_TELEGRAM"])
	assert.Equal(t, "123:abc", values["TUSK_TELEGRAM_TOKEN"])
	assert.Equal(t, "42", values["TUSK_TELEGRAM_OWNER_ID"])
	assert.Equal(t, "7,8", values["TUSK_TELEGRAM_ALLOWED_USERS"])
	assert.Equal(t, "tusk.help", values["TUSK_TELEGRAM_USER_PERMISSIONS"])
}

func TestSaveEnv_RefusesOverwrite(t *testing.T) {
	state := NewInstallState(t.TempDir())

	_, err := SaveEnv(state)
	require.NoError(t, err)

	_, err = SaveEnv(state)
	assert.ErrorContains(t, err, "already exists")
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs(" 1, 2,,3 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	_, err = parseIDs("1,x")
	assert.Error(t, err)

	ids, err = parseIDs("")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
