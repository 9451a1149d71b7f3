// Package ui provides styled terminal output for the swatch CLI.
//
// Styling is built on charmbracelet/lipgloss. The palette's emphasis and data
// colors come from the default registry theme, so the CLI itself is drawn in
// the colors it reports:
//
//	renderer := ui.NewSwatchRenderer()
//	fmt.Println(renderer.RenderTheme("default", theme.Get("default")))
//
// Smaller building blocks (headers, label/value pairs, status lines, boxes and
// tables) follow a builder style and all implement Component, so they can be
// laid out with Stack.
//
// Semantic color usage:
//   - Green: success
//   - Red: errors, colors that fail to decode
//   - Yellow: warnings, fallbacks
//   - Emphasis: headers and box borders (default theme primaryColor)
//   - Data: values (default theme primaryTextColor)
//   - Gray: muted text, secondary information
package ui
