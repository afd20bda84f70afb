package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"folio/pkg/ui"
)

// getPreferredEditor resolves the editor to use: folio.yaml setting,
// then $EDITOR, then vi.
func getPreferredEditor() string {
	if appConfig != nil && appConfig.Editor != "" {
		return appConfig.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// openInEditor launches the preferred editor on the given file and
// waits for it to exit.
func openInEditor(path string) error {
	editor := getPreferredEditor()

	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		fmt.Println(ui.FormatWarning("Could not open editor: " + err.Error()))
		fmt.Println(ui.FormatInfo("Edit the file manually: " + path))
		return nil
	}
	return nil
}

// openInBrowser opens a URL or file path with the platform opener.
func openInBrowser(target string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", target)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		c = exec.Command("xdg-open", target)
	}

	if err := c.Start(); err != nil {
		fmt.Println(ui.FormatWarning("Could not open browser: " + err.Error()))
		fmt.Println(ui.FormatInfo(target))
		return nil
	}
	return nil
}

// truncate shortens a string to max characters, ellipsized. Cuts on
// rune boundaries so multibyte titles stay valid UTF-8.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
