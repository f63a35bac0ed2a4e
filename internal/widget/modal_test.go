package widget

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func images(n int) MediaSet {
	srcs := make([]string, n)
	for i := range srcs {
		srcs[i] = fmt.Sprintf("/img/%d.png", i)
	}
	return ImageSet("Demo", srcs...)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModal_ClosedRendersNothing(t *testing.T) {
	m := NewModal()
	m.SetSize(80, 24)
	assert.False(t, m.IsOpen())
	assert.Equal(t, "", m.View())
	assert.Equal(t, "", m.Current())
	assert.Nil(t, m.Update(keyMsg("esc")))
}

func TestModal_NextPrevWrap(t *testing.T) {
	m := NewModal()
	m.Open(images(3), 2)
	assert.Equal(t, "/img/2.png", m.Current())

	m.Next()
	assert.Equal(t, 0, m.Index(), "next from last wraps to first")
	m.Prev()
	assert.Equal(t, 2, m.Index(), "prev from first wraps to last")
}

func TestModal_PrevNextRoundTrip(t *testing.T) {
	for n := 2; n <= 6; n++ {
		for k := 0; k < n; k++ {
			m := NewModal()
			m.Open(images(n), k)
			m.Prev()
			m.Next()
			assert.Equal(t, k, m.Index(), "n=%d k=%d", n, k)
		}
	}
}

func TestModal_OpenTakesIndexModuloLength(t *testing.T) {
	m := NewModal()
	m.Open(images(3), 7)
	assert.Equal(t, 1, m.Index())
	m.Open(images(3), -1)
	assert.Equal(t, 2, m.Index())
}

func TestModal_EmptySetStaysClosed(t *testing.T) {
	m := NewModal()
	m.SetSize(80, 24)
	assert.NotPanics(t, func() {
		m.Open(ImageSet("nothing"), 3)
		m.Next()
		m.Prev()
		_ = m.View()
	})
	assert.False(t, m.IsOpen())
	assert.Equal(t, "", m.View())
}

func TestModal_VideoHasNoNavigation(t *testing.T) {
	m := NewModal()
	m.Open(VideoSet("Demo", "https://example.com/demo.mp4"), 0)
	require.True(t, m.IsOpen())
	assert.True(t, m.Playing())

	m.Next()
	m.Prev()
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, "https://example.com/demo.mp4", m.Current())

	m.Update(keyMsg(" "))
	assert.False(t, m.Playing(), "space toggles playback")
}

func TestModal_KeysNavigateAndRequestClose(t *testing.T) {
	m := NewModal()
	m.Open(images(4), 0)

	m.Update(keyMsg("right"))
	m.Update(keyMsg("l"))
	assert.Equal(t, 2, m.Index())
	m.Update(keyMsg("left"))
	assert.Equal(t, 1, m.Index())

	cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMediaMsg{}, cmd())
	assert.True(t, m.IsOpen(), "the host closes the modal, not the key handler")
}

func TestModal_OpenKeyRequestsExternalLink(t *testing.T) {
	m := NewModal()
	m.Open(images(2), 1)
	cmd := m.Update(keyMsg("o"))
	require.NotNil(t, cmd)
	assert.Equal(t, OpenLinkMsg{URL: "/img/1.png"}, cmd())
}

func TestModal_ClickOnContentDoesNotClose(t *testing.T) {
	m := NewModal()
	m.SetSize(120, 40)
	m.Open(images(3), 0)

	r := m.ContentRect()
	require.Greater(t, r.W, 0)
	require.Greater(t, r.X, 0, "content should not touch the left edge at this size")

	assert.Nil(t, m.Click(r.X+1, r.Y+1))
	assert.Nil(t, m.Click(r.X+r.W-1, r.Y+r.H-1))
}

func TestModal_ClickOnBackdropCloses(t *testing.T) {
	m := NewModal()
	m.SetSize(120, 40)
	m.Open(images(3), 0)

	cmd := m.Click(0, 0)
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMediaMsg{}, cmd())

	mouse := tea.MouseMsg{X: 119, Y: 39, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	cmd = m.Update(mouse)
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMediaMsg{}, cmd())
}

func TestModal_ClickOutsideOverlayIgnored(t *testing.T) {
	m := NewModal()
	m.SetSize(120, 40)
	m.Open(images(1), 0)
	assert.Nil(t, m.Click(200, 5))
}

func TestModal_ViewFillsOverlay(t *testing.T) {
	m := NewModal()
	m.SetSize(100, 30)
	m.Open(images(2), 0)
	view := m.View()
	assert.Contains(t, view, "0.png")
	assert.Contains(t, view, "1/2")
}
