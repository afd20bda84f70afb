package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
	"folio/internal/core/services"
	"folio/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the workspace for problems",
	Long:  "Verify the workspace layout, the YAML records, and referenced assets.",
	RunE:  runDoctor,
}

type checkResult int

const (
	checkOK checkResult = iota
	checkWarn
	checkFail
)

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.FormatTitle("Workspace check"))
	fmt.Println()

	failures := 0

	report := func(name string, result checkResult, detail string) {
		switch result {
		case checkOK:
			fmt.Println(ui.FormatSuccess(name))
		case checkWarn:
			fmt.Println(ui.FormatWarning(name + ": " + detail))
		case checkFail:
			fmt.Println(ui.FormatError(name + ": " + detail))
			failures++
		}
	}

	// Layout
	for _, dir := range []struct {
		name string
		path string
	}{
		{"posts directory", appWorkspace.PostsPath},
		{"assets directory", appWorkspace.AssetsPath},
	} {
		if info, err := os.Stat(dir.path); err != nil || !info.IsDir() {
			report(dir.name, checkFail, "missing, run 'folio init'")
		} else {
			report(dir.name, checkOK, "")
		}
	}

	// Profile
	profile, err := siteRepo.LoadProfile(getContext())
	if err != nil {
		report("profile.yaml", checkFail, err.Error())
	} else {
		report("profile.yaml", checkOK, "")

		// Referenced assets are optional but a broken reference renders
		// a broken page. Photo and CV are assets-relative, like the
		// generated hrefs.
		checkAssetRef(report, "profile photo", profile.Photo, appWorkspace.GetAssetPath(filepath.FromSlash(profile.Photo)))
		checkAssetRef(report, "CV file", profile.CV, appWorkspace.GetAssetPath(filepath.FromSlash(profile.CV)))
	}

	// Publications
	pubs, err := siteRepo.LoadPublications(getContext())
	if err != nil {
		report("publications.yaml", checkFail, err.Error())
	} else {
		report("publications.yaml", checkOK, "")
		// Publication links are hrefs on the root page, so local ones
		// resolve against the workspace root
		for _, pub := range pubs {
			if pub.PDF != "" && !isURL(pub.PDF) {
				resolved := filepath.Join(appWorkspace.RootPath, filepath.FromSlash(pub.PDF))
				checkAssetRef(report, "paper PDF for '"+truncate(pub.Title, 40)+"'", pub.PDF, resolved)
			}
		}
	}

	// Posts parse cleanly. Listing tolerates broken frontmatter with a
	// fallback header, so each post goes through the same parse the
	// build uses.
	if resp, err := listService.Execute(getContext(), services.ListRequest{}); err != nil {
		report("posts", checkFail, err.Error())
	} else {
		report(fmt.Sprintf("posts (%d found)", resp.Total), checkOK, "")
		for filename, parseErr := range brokenPosts(getContext(), postRepo, resp.Posts) {
			report("post "+filename, checkFail, parseErr.Error())
		}
	}

	fmt.Println()
	if failures > 0 {
		fmt.Println(ui.FormatError(fmt.Sprintf("%d problem(s) found", failures)))
		os.Exit(1)
	}
	fmt.Println(ui.FormatSuccess("Everything looks good"))
	return nil
}

func checkAssetRef(report func(string, checkResult, string), name, ref, resolved string) {
	if ref == "" {
		report(name, checkWarn, "not set in profile.yaml")
		return
	}
	if _, err := os.Stat(resolved); err != nil {
		report(name, checkWarn, ref+" not found")
		return
	}
	report(name, checkOK, "")
}

// brokenPosts returns the parse error for every post whose full body
// fails to load, keyed by filename.
func brokenPosts(ctx context.Context, repo ports.PostRepository, headers []domain.PostHeader) map[string]error {
	broken := make(map[string]error)
	for _, header := range headers {
		if _, err := repo.Get(ctx, header.Slug); err != nil {
			broken[header.Filename] = err
		}
	}
	return broken
}

func isURL(s string) bool {
	return len(s) > 8 && (s[:7] == "http://" || s[:8] == "https://")
}
