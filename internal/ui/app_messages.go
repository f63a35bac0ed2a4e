package ui

// ScrollToSectionMsg scrolls the page so the named section starts at the top (SPC g <letter>).
type ScrollToSectionMsg struct {
	Name string
}

// StepSectionMsg scrolls to the next (+1) or previous (-1) section (tab / shift+tab).
type StepSectionMsg struct {
	Delta int
}

// ScrollEdgeMsg scrolls to the top or bottom of the page (g / G).
type ScrollEdgeMsg struct {
	Bottom bool
}

// CarouselStepMsg moves the gallery carousel by Delta photos ([ / ]).
type CarouselStepMsg struct {
	Delta int
}

// CarouselJumpMsg shows gallery photo Index (0-based; keys 1-9).
type CarouselJumpMsg struct {
	Index int
}

// SelectItemMsg moves the selection by Delta (n / p): the experience entry
// while Experience is active, the project otherwise.
type SelectItemMsg struct {
	Delta int
}

// OpenProjectMediaMsg opens the selected project's images, or its video when Video is set (i / v).
type OpenProjectMediaMsg struct {
	Video bool
}

// OpenProjectRepoMsg opens the selected project's repository link (o).
type OpenProjectRepoMsg struct{}

// ActivateMsg is enter: it opens whatever the active section offers.
type ActivateMsg struct{}

// ToggleHelpMsg shows or hides the key help (?).
type ToggleHelpMsg struct{}

// QuitMsg tears the page down and exits.
type QuitMsg struct{}

// linkOpenedMsg reports the outcome of a LinkOpener call.
type linkOpenedMsg struct {
	URL string
	Err error
}
