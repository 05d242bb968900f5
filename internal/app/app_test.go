package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rhr/internal/router"
	"github.com/abhisek/rhr/internal/screen"
	"github.com/abhisek/rhr/internal/screens/home"
	"github.com/abhisek/rhr/internal/screens/session"
	"github.com/abhisek/rhr/internal/screens/welcome"
)

func testModel(skipWelcome bool) AppModel {
	return newAppModel(Options{
		Env:         screen.NewEnv(nil, nil, nil),
		SkipWelcome: skipWelcome,
	})
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestAppModel_StartsOnWelcome(t *testing.T) {
	m := testModel(false)
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
	assert.NotNil(t, m.Init(), "welcome animation ticks")

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'x', Text: "x"})
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &home.HomeScreen{}, replace.Screen)

	m, _ = update(t, m, replace)
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_SkipWelcome(t *testing.T) {
	m := testModel(true)
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := testModel(true)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_EscAtRootIsNoop(t *testing.T) {
	m := testModel(true)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestAppModel_EscPopsPlainScreens(t *testing.T) {
	m := testModel(true)
	env := screen.NewEnv(nil, nil, nil)
	m, _ = update(t, m, router.PushScreenMsg{Screen: home.New(env)})
	require.Equal(t, 2, m.router.Depth())

	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestAppModel_EscGoesToBackHandlers(t *testing.T) {
	m := testModel(true)
	quiz := session.New(screen.NewEnv(nil, nil, nil))
	m, _ = update(t, m, router.PushScreenMsg{Screen: quiz})
	require.Equal(t, 2, m.router.Depth())

	// The quiz asks for confirmation instead of being popped.
	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.router.Depth())

	hints := m.footerHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "y", hints[0].Key)
}

func TestAppModel_FooterHints(t *testing.T) {
	m := testModel(true)
	hints := m.footerHints()
	assert.Equal(t, "Ctrl+C", hints[len(hints)-1].Key)
}

func TestAppModel_WindowSize(t *testing.T) {
	m := testModel(true)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.True(t, m.View().AltScreen)
}
