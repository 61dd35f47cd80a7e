package ui

// RenderLoaderPanel wraps the rendered animation with a styled border.
// The animation itself is rendered by the caller.
func RenderLoaderPanel(width, height int, content, legend string) string {
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content + "\n" + legend)
}
