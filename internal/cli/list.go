package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/hugopost/hugopost/internal/frontmatter"
	"github.com/hugopost/hugopost/internal/scaffold"
	"github.com/hugopost/hugopost/internal/stamp"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var listLimit int

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Show at most this many posts (0 for all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List post bundles, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := listPosts(newFs(), settings.VaultRoot)
		if err != nil {
			return err
		}
		if listLimit > 0 && len(posts) > listLimit {
			posts = posts[:listLimit]
		}

		out := cmd.OutOrStdout()
		if len(posts) == 0 {
			fmt.Fprintln(out, "No posts found.")
			return nil
		}
		for _, p := range posts {
			title := p.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(out, "  %s  %s\n", faint(p.Folder), bold(title))
		}
		return nil
	},
}

type postEntry struct {
	Folder string
	Title  string
}

// listPosts returns the bundles under content/post whose names were produced
// by stamp.FolderName, newest first. Other directories are ignored.
func listPosts(fs afero.Fs, root string) ([]postEntry, error) {
	postsDir := filepath.Join(root, filepath.FromSlash(scaffold.PostsDir))
	entries, err := afero.ReadDir(fs, postsDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", postsDir, err)
	}

	var posts []postEntry
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, ok := stamp.ParseFolderName(e.Name()); !ok {
			continue
		}
		p := postEntry{Folder: e.Name()}
		if data, err := afero.ReadFile(fs, filepath.Join(postsDir, e.Name(), scaffold.IndexFile)); err == nil {
			p.Title = frontmatter.Title(string(data))
		}
		posts = append(posts, p)
	}

	// Folder names sort in creation order.
	sort.Slice(posts, func(i, j int) bool { return posts[i].Folder > posts[j].Folder })
	return posts, nil
}
